// Package ingestion extracts plain text from uploaded job description
// files. Uploads arrive as in-memory bytes; the true type is sniffed
// from magic bytes before any extension-based guess is trusted.
package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

const (
	// MinExtractedTextLength is the minimum text length required for successful extraction
	MinExtractedTextLength = 30
	// BinarySampleSize is the number of bytes to sample for binary detection
	BinarySampleSize = 1000
	// BinaryThreshold is the proportion of non-printable characters that indicates binary data
	BinaryThreshold = 0.3
)

var (
	// ErrUnsupportedType means the file is not a txt, docx or pdf
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrNoText means extraction ran but produced nothing usable
	ErrNoText = errors.New("no text could be extracted")
)

// ExtractText extracts plain text from a PDF, DOCX, or TXT upload
func ExtractText(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file %s", ErrNoText, filename)
	}

	// Sniff by magic bytes first; extensions lie
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return extractPDF(data)
	}
	if isZip(data) {
		return extractDOCX(data)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".md", "":
		if IsBinaryData(string(data)) {
			return "", fmt.Errorf("%w: %s looks binary, not plain text", ErrUnsupportedType, filename)
		}
		return strings.TrimSpace(string(data)), nil
	case ".pdf":
		return "", fmt.Errorf("%w: %s claims PDF but has no %%PDF header", ErrNoText, filename)
	case ".docx":
		return "", fmt.Errorf("%w: %s claims DOCX but is not a zip container", ErrNoText, filename)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
}

func isZip(b []byte) bool {
	return len(b) >= 4 && b[0] == 'P' && b[1] == 'K' && b[2] == 3 && b[3] == 4
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	text := collapseWhitespace(string(b))
	if len(text) < MinExtractedTextLength {
		return "", fmt.Errorf("%w: extracted text too short, likely a scanned PDF", ErrNoText)
	}
	return text, nil
}

// extractDOCX pulls the text runs out of word/document.xml
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX container: %w", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("%w: zip container has no word/document.xml", ErrUnsupportedType)
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open document part: %w", err)
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read document part: %w", err)
	}

	text := collapseWhitespace(textRuns(raw))
	if text == "" {
		return "", fmt.Errorf("%w: DOCX contains no text runs", ErrNoText)
	}
	return text, nil
}

// textRuns gathers the contents of every <w:t> element
func textRuns(xmlBytes []byte) string {
	dec := xml.NewDecoder(bytes.NewReader(xmlBytes))
	var out strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "t" {
			continue
		}
		var v string
		if err := dec.DecodeElement(&v, &se); err != nil {
			continue
		}
		if v != "" {
			out.WriteString(v)
			out.WriteString(" ")
		}
	}
	return out.String()
}

// IsBinaryData checks if content appears to be binary (PDF/ZIP markers)
func IsBinaryData(content string) bool {
	if len(content) == 0 {
		return false
	}

	if strings.HasPrefix(content, "%PDF-") {
		return true
	}
	if len(content) >= 2 && content[:2] == "PK" {
		return true
	}

	sampleSize := min(BinarySampleSize, len(content))
	nonPrintable := 0
	for i := 0; i < sampleSize; i++ {
		ch := content[i]
		if ch < 32 && ch != '\n' && ch != '\r' && ch != '\t' {
			nonPrintable++
		}
	}

	return float64(nonPrintable)/float64(sampleSize) > BinaryThreshold
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
