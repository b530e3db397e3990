package ingestion

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/jung-kurt/gofpdf"
)

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText("jd.txt", []byte("  We need an accountant.\nMust know IFRS.  "))
	if err != nil {
		t.Fatalf("ExtractText() failed: %v", err)
	}
	if !strings.Contains(text, "We need an accountant.") {
		t.Errorf("Extracted text = %q", text)
	}
}

func TestExtractTextRejectsBinaryAsTxt(t *testing.T) {
	data := append([]byte("%PDF-1.4"), bytes.Repeat([]byte{0x01, 0x02}, 100)...)
	_, err := ExtractText("jd.txt", data)
	// PDF magic wins over the extension, so this parses as (broken) PDF
	if err == nil {
		t.Fatal("Expected an error for binary content")
	}

	_, err = ExtractText("notes.txt", bytes.Repeat([]byte{0x01, 0x02, 0x03}, 100))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Expected ErrUnsupportedType for binary .txt, got %v", err)
	}
}

func TestExtractTextDOCX(t *testing.T) {
	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText("Senior Accountant role.")
	doc.AddParagraph().AddText("Responsible for month-end close and IFRS reporting.")

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("Failed to build test DOCX: %v", err)
	}

	text, err := ExtractText("jd.docx", buf.Bytes())
	if err != nil {
		t.Fatalf("ExtractText() failed: %v", err)
	}
	if !strings.Contains(text, "Senior Accountant role.") {
		t.Errorf("Extracted text missing first paragraph: %q", text)
	}
	if !strings.Contains(text, "month-end close") {
		t.Errorf("Extracted text missing second paragraph: %q", text)
	}
}

func TestExtractTextPDF(t *testing.T) {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetFont("Helvetica", "", 12)
	p.Text(20, 30, "Senior Accountant role with IFRS reporting duties and month-end close ownership.")

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		t.Fatalf("Failed to build test PDF: %v", err)
	}

	text, err := ExtractText("jd.pdf", buf.Bytes())
	if err != nil {
		t.Fatalf("ExtractText() failed: %v", err)
	}
	if !strings.Contains(text, "Senior Accountant") {
		t.Errorf("Extracted text = %q", text)
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := ExtractText("jd.pages", []byte{0xff, 0xfe, 0x00, 0x01})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Expected ErrUnsupportedType, got %v", err)
	}
}

func TestExtractTextEmpty(t *testing.T) {
	_, err := ExtractText("jd.txt", nil)
	if !errors.Is(err, ErrNoText) {
		t.Errorf("Expected ErrNoText for empty upload, got %v", err)
	}
}

func TestIsBinaryData(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"Empty", "", false},
		{"Plain text", "We need an accountant who knows IFRS.", false},
		{"PDF marker", "%PDF-1.7 binary follows", true},
		{"ZIP marker", "PK\x03\x04 docx bytes", true},
		{"Control characters", strings.Repeat("\x01\x02", 200), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinaryData(tt.content); got != tt.expected {
				t.Errorf("IsBinaryData() = %v, want %v", got, tt.expected)
			}
		})
	}
}
