package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/powerdash/iqpack/internal/models"
)

// PackToXLSX generates the interviewer scoring workbook: an overview
// sheet with the pack parameters and a scoring sheet with one row per
// question for notes and a 1-5 score.
func PackToXLSX(pack models.Pack, opts Options) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	overviewSheet := "Overview"
	scoringSheet := "Scoring Sheet"

	f.SetSheetName("Sheet1", overviewSheet)
	f.NewSheet(scoringSheet)

	if err := createOverviewSheet(f, overviewSheet, pack, opts); err != nil {
		return nil, fmt.Errorf("failed to create overview sheet: %w", err)
	}
	if err := createScoringSheet(f, scoringSheet, pack); err != nil {
		return nil, fmt.Errorf("failed to create scoring sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// createOverviewSheet writes the pack parameters as label/value rows
func createOverviewSheet(f *excelize.File, sheetName string, pack models.Pack, opts Options) error {
	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "B", 60)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	row := 1
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), pack.Title)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row += 2

	setLabelValue := func(label string, value interface{}) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), label)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), value)
		row++
	}

	in := pack.Inputs
	setLabelValue("Role Title:", in.RoleTitle)
	if in.Level != "" {
		setLabelValue("Level:", in.Level)
	}
	if in.Department != "" {
		setLabelValue("Department:", in.Department)
	}
	setLabelValue("Interview Type:", in.InterviewType)
	setLabelValue("Duration (mins):", in.DurationMins)
	if len(in.Competencies) > 0 {
		setLabelValue("Competencies:", strings.Join(in.Competencies, ", "))
	}
	tenant := opts.TenantName
	if tenant == "" {
		tenant = in.TenantName
	}
	if tenant != "" {
		setLabelValue("Prepared For:", tenant)
	}
	setLabelValue("Generated:", time.Now().Format("2006-01-02 15:04:05"))
	setLabelValue("Questions:", pack.QuestionCount())
	row++

	if len(pack.Housekeeping) > 0 {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Housekeeping")
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
		f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
		row++
		for _, item := range pack.Housekeeping {
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item)
			row++
		}
	}

	return nil
}

// createScoringSheet writes one row per question with empty score and
// evidence columns for the interviewer to fill in.
func createScoringSheet(f *excelize.File, sheetName string, pack models.Pack) error {
	f.SetColWidth(sheetName, "A", "A", 24)
	f.SetColWidth(sheetName, "B", "B", 6)
	f.SetColWidth(sheetName, "C", "C", 60)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 60)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}
	wrapStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	headers := []string{"Section", "#", "Question", "Score (1-5)", "Evidence / Notes"}
	for col, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row := 2
	for _, sec := range pack.Sections {
		for i, q := range sec.Questions {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), sec.DisplayName())
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), i+1)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), q.Question)
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), wrapStyle)
			f.SetRowHeight(sheetName, row, 45)
			row++
		}
	}

	if row > 2 {
		f.AutoFilter(sheetName, fmt.Sprintf("A1:E%d", row-1), []excelize.AutoFilterOptions{})
	}
	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	return nil
}
