package export

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// maxLogoBytes caps how much of a remote logo we will read
const maxLogoBytes = 5 << 20

var logoHTTPClient = &http.Client{Timeout: 10 * time.Second}

// FetchLogo downloads the client logo and re-encodes it as PNG so the
// renderers only ever deal with one format. Branding is best-effort:
// any failure returns nil and the documents render without the logo.
func FetchLogo(url string) []byte {
	if url == "" {
		return nil
	}
	resp, err := logoHTTPClient.Get(url)
	if err != nil {
		log.Printf("Logo fetch failed for %s: %v", url, err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("Logo fetch for %s returned status %d", url, resp.StatusCode)
		return nil
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		log.Printf("Logo read failed for %s: %v", url, err)
		return nil
	}
	return reencodePNG(data)
}

// LoadFooterLogo reads the local brand mark, if present.
func LoadFooterLogo(path string) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return reencodePNG(data)
}

// reencodePNG validates the bytes as an image and normalizes them to
// PNG. Rejecting undecodable data here keeps a bad logo from failing
// the whole document render downstream.
func reencodePNG(data []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("Logo decode failed: %v", err)
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Printf("Logo encode failed: %v", err)
		return nil
	}
	return buf.Bytes()
}
