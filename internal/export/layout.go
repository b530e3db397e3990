package export

// The PDF backend lays pages out manually: every block is measured
// before it is drawn, and a block that does not fit in the remaining
// space moves to a fresh page rather than being split. The cursor
// below tracks the vertical position; all units are millimetres.

// Geometry describes the fixed page frame.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	Margin       float64 // left and right margin
	TopOffset    float64 // first baseline on continuation pages
	BottomBuffer float64 // reserved above the footer; content never enters it
}

// a4Geometry matches the layout constants used across the PDF backend.
var a4Geometry = Geometry{
	PageWidth:    210,
	PageHeight:   297,
	Margin:       20,
	TopOffset:    25,
	BottomBuffer: 25,
}

// ContentWidth is the horizontal space available to a block.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// Cursor tracks the write position while blocks are placed top to
// bottom. Page is 1-based.
type Cursor struct {
	geo  Geometry
	Y    float64
	Page int
}

// NewCursor starts on page one at the given offset, which lets the
// first page reserve extra room for the header band.
func NewCursor(geo Geometry, firstY float64) *Cursor {
	return &Cursor{geo: geo, Y: firstY, Page: 1}
}

// Fits reports whether a block of the given height can be placed at
// the current position without entering the footer buffer.
func (c *Cursor) Fits(blockHeight float64) bool {
	return c.Y+blockHeight <= c.geo.PageHeight-c.geo.BottomBuffer
}

// StartPage moves the cursor to the top of a new page.
func (c *Cursor) StartPage() {
	c.Page++
	c.Y = c.geo.TopOffset
}

// Advance moves the cursor down by the height of a placed block.
func (c *Cursor) Advance(height float64) {
	c.Y += height
}
