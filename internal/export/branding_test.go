package export

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func testImageBytes(t *testing.T, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestFetchLogoReencodesToPNG(t *testing.T) {
	jpegData := testImageBytes(t, func(buf *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(buf, img, nil)
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(jpegData)
	}))
	defer srv.Close()

	got := FetchLogo(srv.URL + "/logo.jpg")
	if got == nil {
		t.Fatal("Expected logo bytes")
	}
	if _, err := png.Decode(bytes.NewReader(got)); err != nil {
		t.Errorf("Fetched logo is not valid PNG: %v", err)
	}
}

func TestFetchLogoFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/garbage":
			w.Write([]byte("this is not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tests := []struct {
		name string
		url  string
	}{
		{"Empty URL", ""},
		{"Not found", srv.URL + "/missing.png"},
		{"Undecodable body", srv.URL + "/garbage"},
		{"Unreachable host", "http://127.0.0.1:1/logo.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FetchLogo(tt.url); got != nil {
				t.Errorf("FetchLogo(%q) should return nil", tt.url)
			}
		})
	}
}

func TestLoadFooterLogo(t *testing.T) {
	pngData := testImageBytes(t, func(buf *bytes.Buffer, img image.Image) error {
		return png.Encode(buf, img)
	})
	path := filepath.Join(t.TempDir(), "powerdash-logo.png")
	if err := os.WriteFile(path, pngData, 0644); err != nil {
		t.Fatalf("Failed to write test logo: %v", err)
	}

	if got := LoadFooterLogo(path); got == nil {
		t.Error("Expected footer logo bytes")
	}
	if got := LoadFooterLogo(filepath.Join(t.TempDir(), "absent.png")); got != nil {
		t.Error("Missing file should return nil")
	}
	if got := LoadFooterLogo(""); got != nil {
		t.Error("Empty path should return nil")
	}
}
