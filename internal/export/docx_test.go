package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/powerdash/iqpack/internal/models"
)

// documentXML unpacks the main document part from a rendered .docx
func documentXML(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Output is not a zip container: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open document part: %v", err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("Failed to read document part: %v", err)
		}
		return string(b)
	}
	t.Fatal("word/document.xml missing from output")
	return ""
}

func TestPackToDOCX(t *testing.T) {
	data, err := PackToDOCX(testPack(2), Options{})
	if err != nil {
		t.Fatalf("PackToDOCX() failed: %v", err)
	}

	doc := documentXML(t, data)
	mustContain := []string{
		"Interview Pack: Accountant (Mid)",
		"Interview type: Competency",
		"Housekeeping",
		"Introduce the panel",
		"Core Questions",
		"Tell me about a time you closed the books under pressure, round 1?",
		"Intent",
		"What good looks like",
		"Follow-ups",
		"Thank the candidate for their time",
		footerText,
	}
	for _, want := range mustContain {
		if !strings.Contains(doc, want) {
			t.Errorf("Document missing %q", want)
		}
	}

	// Ampersand in the section name survives as escaped XML
	if !strings.Contains(doc, "Close-down &amp; Next Steps") {
		t.Error("Close-down section heading missing")
	}
}

func TestPackToDOCXEmptyPack(t *testing.T) {
	pack := models.Pack{
		Title:  "Interview Pack",
		Inputs: models.GenerateRequest{InterviewType: "Mixed", DurationMins: 45},
	}
	data, err := PackToDOCX(pack, Options{})
	if err != nil {
		t.Fatalf("PackToDOCX() failed on empty pack: %v", err)
	}

	doc := documentXML(t, data)
	if !strings.Contains(doc, "Interview Pack") {
		t.Error("Title missing from empty-pack document")
	}
	if !strings.Contains(doc, "45 mins") {
		t.Error("Meta line missing from empty-pack document")
	}
}

func TestPackToDOCXNoteLines(t *testing.T) {
	data, err := PackToDOCX(testPack(1), Options{})
	if err != nil {
		t.Fatalf("PackToDOCX() failed: %v", err)
	}

	doc := documentXML(t, data)
	rule := strings.Repeat("_", docxRuleWidth)
	// two sections with one question each, five ruled lines per question
	if got := strings.Count(doc, rule); got != 2*noteLineCount {
		t.Errorf("Expected %d ruled note lines, got %d", 2*noteLineCount, got)
	}
}
