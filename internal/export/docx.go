package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/powerdash/iqpack/internal/models"
)

// Word sizes are half-points
const (
	docxTitleSize   = "32"
	docxHeadingSize = "26"
	docxBodySize    = "20"
	docxRowSize     = "18"
	docxFooterSize  = "16"

	docxTableWidth = 8200 // twips, roughly the A4 text column
	docxRuleWidth  = 72   // underscores per note-taking line
)

// PackToDOCX renders the pack as a flow-layout Word document. Word
// reflows content itself, so unlike the PDF backend there is no manual
// pagination; the brand mark is appended after each section instead of
// a page footer, which the writer does not support.
func PackToDOCX(pack models.Pack, opts Options) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	if logo := FetchLogo(opts.ClientLogoURL); logo != nil {
		// best-effort: a bad image just drops the logo
		if _, err := doc.AddParagraph().AddInlineDrawing(logo); err != nil {
			doc.AddParagraph()
		}
	}

	doc.AddParagraph().AddText(pack.Title).Size(docxTitleSize).Bold().Color("1F2937")
	doc.AddParagraph().AddText(pack.MetaLine()).Size(docxBodySize).Color("4B5563")

	tenant := opts.TenantName
	if tenant == "" {
		tenant = pack.Inputs.TenantName
	}
	if tenant != "" {
		doc.AddParagraph().AddText("Prepared for " + tenant).Size(docxBodySize).Color("4B5563")
	}
	doc.AddParagraph()

	if len(pack.Housekeeping) > 0 {
		doc.AddParagraph().AddText("Housekeeping").Size(docxHeadingSize).Bold().Color("1F2937")
		for _, item := range pack.Housekeeping {
			doc.AddParagraph().AddText("• " + item).Size(docxBodySize)
		}
		doc.AddParagraph()
	}

	for _, sec := range pack.Sections {
		writeSection(doc, sec)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render DOCX: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(doc *docx.Docx, sec models.Section) {
	doc.AddParagraph().AddText(sec.DisplayName()).Size(docxHeadingSize).Bold().Color("1F2937")
	if sec.Notes != "" {
		doc.AddParagraph().AddText(sec.Notes).Size(docxBodySize).Italic().Color("4B5563")
	}
	for _, b := range sec.Bullets {
		doc.AddParagraph().AddText("• " + b).Size(docxBodySize)
	}

	for i, q := range sec.Questions {
		doc.AddParagraph().
			AddText(fmt.Sprintf("%d. %s", i+1, q.Question)).
			Size(docxBodySize).Bold()

		writeDetailTable(doc, q)

		// Ruled lines for interviewer notes
		for n := 0; n < noteLineCount; n++ {
			doc.AddParagraph().
				AddText(strings.Repeat("_", docxRuleWidth)).
				Size(docxRowSize).Color("D1D5DB")
		}
		doc.AddParagraph()
	}

	mark := doc.AddParagraph().Justification("center")
	mark.AddText(footerText).Size(docxFooterSize).Color("9CA3AF")
	doc.AddParagraph()
}

// writeDetailTable emits the two-column label/value rows for one
// question. Questions with no detail fields get no table at all.
func writeDetailTable(doc *docx.Docx, q models.Question) {
	type row struct{ label, value string }
	var rows []row
	if q.Intent != "" {
		rows = append(rows, row{"Intent", q.Intent})
	}
	if q.Good != "" {
		rows = append(rows, row{"What good looks like", q.Good})
	}
	if len(q.Followups) > 0 {
		rows = append(rows, row{"Follow-ups", q.FollowupLine()})
	}
	if len(rows) == 0 {
		return
	}

	table := doc.AddTable(len(rows), 2, docxTableWidth, nil)
	for i, r := range rows {
		cells := table.TableRows[i].TableCells
		cells[0].AddParagraph().AddText(r.label).Size(docxRowSize).Bold()
		cells[1].AddParagraph().AddText(r.value).Size(docxRowSize)
	}
}
