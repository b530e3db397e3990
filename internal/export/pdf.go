package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/powerdash/iqpack/internal/models"
)

// Layout constants, millimetres unless noted. Auto page break is off;
// every block is measured and placed through the cursor instead.
const (
	titleFontSize   = 16
	headingFontSize = 13
	bodyFontSize    = 10
	questionFont    = 10.5
	rowFontSize     = 9
	footerFontSize  = 8

	titleLineH   = 7.0
	headingLineH = 6.5
	bodyLineH    = 5.0
	questionLine = 5.2
	rowLineH     = 4.5
	noteGap      = 6.0 // spacing between writing lines in a question box
	boxPad       = 3.0
	rowGap       = 1.5
	blockGap     = 4.0

	noteLineCount = 5
	footerY       = 285.0 // baseline of the footer text
)

type pdfRenderer struct {
	pdf        *gofpdf.Fpdf
	tr         func(string) string
	cur        *Cursor
	geo        Geometry
	footerLogo bool
}

// PackToPDF renders the pack as a paginated A4 document. Question
// boxes, section headings and the housekeeping block are never split
// across a page boundary.
func PackToPDF(pack models.Pack, opts Options) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(pack.Title, true)

	r := &pdfRenderer{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		geo: a4Geometry,
	}

	clientLogo := FetchLogo(opts.ClientLogoURL)
	if clientLogo != nil {
		pdf.RegisterImageOptionsReader("client-logo",
			gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(clientLogo))
	}
	if footer := LoadFooterLogo(opts.FooterLogoPath); footer != nil {
		pdf.RegisterImageOptionsReader("footer-logo",
			gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(footer))
		r.footerLogo = true
	}

	pdf.AddPage()
	firstY := r.drawHeader(pack, opts, clientLogo != nil)
	r.cur = NewCursor(r.geo, firstY)

	r.drawHousekeeping(pack.Housekeeping)
	for _, sec := range pack.Sections {
		r.drawSectionHeading(sec)
		for i, q := range sec.Questions {
			r.drawQuestionBox(i+1, q)
		}
	}
	r.drawFooter()

	if pdf.Err() {
		return nil, fmt.Errorf("failed to render PDF: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// drawHeader paints the first-page band and returns the content start.
func (r *pdfRenderer) drawHeader(pack models.Pack, opts Options, hasLogo bool) float64 {
	x := r.geo.Margin
	y := 18.0
	if hasLogo {
		r.pdf.ImageOptions("client-logo", x, 10, 30, 0, false,
			gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		y = 32.0
	}

	r.pdf.SetFont("Helvetica", "B", titleFontSize)
	r.pdf.SetTextColor(31, 41, 55)
	for _, line := range r.wrap(pack.Title, r.geo.ContentWidth()) {
		r.pdf.Text(x, y, line)
		y += titleLineH
	}

	r.pdf.SetFont("Helvetica", "", bodyFontSize)
	r.pdf.SetTextColor(75, 85, 99)
	r.pdf.Text(x, y, r.tr(pack.MetaLine()))
	y += bodyLineH

	tenant := opts.TenantName
	if tenant == "" {
		tenant = pack.Inputs.TenantName
	}
	if tenant != "" {
		r.pdf.Text(x, y, r.tr("Prepared for "+tenant))
		y += bodyLineH
	}

	r.pdf.SetDrawColor(209, 213, 219)
	r.pdf.SetLineWidth(0.3)
	r.pdf.Line(x, y+1, r.geo.PageWidth-r.geo.Margin, y+1)
	return y + 7
}

func (r *pdfRenderer) drawHousekeeping(items []string) {
	if len(items) == 0 {
		return
	}
	r.pdf.SetFont("Helvetica", "", bodyFontSize)
	var lines []string
	for _, item := range items {
		lines = append(lines, r.wrapIndent("- "+item, "  ", r.geo.ContentWidth())...)
	}
	height := headingLineH + float64(len(lines))*bodyLineH
	r.ensureSpace(height)

	x := r.geo.Margin
	y := r.cur.Y
	r.pdf.SetFont("Helvetica", "B", headingFontSize)
	r.pdf.SetTextColor(31, 41, 55)
	r.pdf.Text(x, y+headingLineH, r.tr("Housekeeping"))
	y += headingLineH

	r.pdf.SetFont("Helvetica", "", bodyFontSize)
	r.pdf.SetTextColor(55, 65, 81)
	for _, line := range lines {
		y += bodyLineH
		r.pdf.Text(x, y, line)
	}
	r.cur.Advance(height + blockGap)
}

// drawSectionHeading places the section name together with its notes
// and bullets as one unsplittable block.
func (r *pdfRenderer) drawSectionHeading(sec models.Section) {
	width := r.geo.ContentWidth()
	r.pdf.SetFont("Helvetica", "I", bodyFontSize)
	noteLines := r.wrap(sec.Notes, width)
	r.pdf.SetFont("Helvetica", "", bodyFontSize)
	var bulletLines []string
	for _, b := range sec.Bullets {
		bulletLines = append(bulletLines, r.wrapIndent("- "+b, "  ", width)...)
	}
	height := headingLineH + float64(len(noteLines)+len(bulletLines))*bodyLineH
	r.ensureSpace(height)

	x := r.geo.Margin
	y := r.cur.Y
	r.pdf.SetFont("Helvetica", "B", headingFontSize)
	r.pdf.SetTextColor(31, 41, 55)
	r.pdf.Text(x, y+headingLineH, r.tr(sec.DisplayName()))
	y += headingLineH

	r.pdf.SetTextColor(55, 65, 81)
	r.pdf.SetFont("Helvetica", "I", bodyFontSize)
	for _, line := range noteLines {
		y += bodyLineH
		r.pdf.Text(x, y, line)
	}
	r.pdf.SetFont("Helvetica", "", bodyFontSize)
	for _, line := range bulletLines {
		y += bodyLineH
		r.pdf.Text(x, y, line)
	}
	r.cur.Advance(height + blockGap)
}

// drawQuestionBox renders one bordered question card: the numbered
// question, its label/value rows, then ruled note-taking lines. The
// whole card is pre-measured so it never straddles a page break.
func (r *pdfRenderer) drawQuestionBox(num int, q models.Question) {
	width := r.geo.ContentWidth()
	inner := width - 2*boxPad

	r.pdf.SetFont("Helvetica", "B", questionFont)
	qLines := r.wrap(fmt.Sprintf("%d. %s", num, q.Question), inner)

	type row struct{ lines []string }
	var rows []row
	r.pdf.SetFont("Helvetica", "", rowFontSize)
	addRow := func(label, value string) {
		if value == "" {
			return
		}
		rows = append(rows, row{r.wrapIndent(label+": "+value, "  ", inner)})
	}
	addRow("Intent", q.Intent)
	addRow("What good looks like", q.Good)
	if len(q.Followups) > 0 {
		addRow("Follow-ups", q.FollowupLine())
	}

	height := boxPad + float64(len(qLines))*questionLine
	for _, rw := range rows {
		height += rowGap + float64(len(rw.lines))*rowLineH
	}
	height += noteLineCount*noteGap + boxPad
	r.ensureSpace(height)

	x := r.geo.Margin
	top := r.cur.Y
	r.pdf.SetDrawColor(209, 213, 219)
	r.pdf.SetLineWidth(0.3)
	r.pdf.Rect(x, top, width, height, "D")

	y := top + boxPad
	r.pdf.SetFont("Helvetica", "B", questionFont)
	r.pdf.SetTextColor(17, 24, 39)
	for _, line := range qLines {
		y += questionLine
		r.pdf.Text(x+boxPad, y, line)
	}

	r.pdf.SetFont("Helvetica", "", rowFontSize)
	r.pdf.SetTextColor(75, 85, 99)
	for _, rw := range rows {
		y += rowGap
		for _, line := range rw.lines {
			y += rowLineH
			r.pdf.Text(x+boxPad, y, line)
		}
	}

	// Writing lines for interviewer notes
	r.pdf.SetDrawColor(229, 231, 235)
	r.pdf.SetDashPattern([]float64{1.2, 1.2}, 0)
	for i := 0; i < noteLineCount; i++ {
		y += noteGap
		r.pdf.Line(x+boxPad, y, x+width-boxPad, y)
	}
	r.pdf.SetDashPattern([]float64{}, 0)

	r.cur.Advance(height + blockGap)
}

// drawFooter paints the centered brand mark at the bottom of the
// current page: optional logo, then the fixed text.
func (r *pdfRenderer) drawFooter() {
	r.pdf.SetFont("Helvetica", "", footerFontSize)
	r.pdf.SetTextColor(156, 163, 175)

	text := r.tr(footerText)
	width := r.pdf.GetStringWidth(text)
	if r.footerLogo {
		width += 9
	}
	x := (r.geo.PageWidth - width) / 2
	if r.footerLogo {
		r.pdf.ImageOptions("footer-logo", x, footerY-5.5, 7, 7, false,
			gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		x += 9
	}
	r.pdf.Text(x, footerY, text)
}

// ensureSpace breaks to a new page when the block cannot fit above the
// footer buffer. The departing page gets its footer before the break.
func (r *pdfRenderer) ensureSpace(height float64) {
	if r.cur.Fits(height) {
		return
	}
	r.drawFooter()
	r.pdf.AddPage()
	r.cur.StartPage()
}

// wrap greedily fills lines up to maxWidth in the current font. The
// returned strings are already translated for the core-font encoding.
func (r *pdfRenderer) wrap(text string, maxWidth float64) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return r.wrapIndent(text, "", maxWidth)
}

func (r *pdfRenderer) wrapIndent(text, contIndent string, maxWidth float64) []string {
	words := strings.Fields(r.tr(text))
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	indent := ""
	for _, word := range words[1:] {
		candidate := line + " " + word
		if r.pdf.GetStringWidth(candidate) > maxWidth {
			lines = append(lines, line)
			indent = contIndent
			line = indent + word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
