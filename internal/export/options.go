// Package export renders a normalized pack as downloadable documents:
// a fixed-page paginated PDF, a flow-layout DOCX, and a scoring XLSX
// workbook. All backends consume the same pack and branding options.
package export

// Options carries the branding parameters shared by every backend.
// Every field is optional; missing assets are silently omitted.
type Options struct {
	// TenantName is printed under the title when set
	TenantName string
	// ClientLogoURL is fetched best-effort for the document header
	ClientLogoURL string
	// FooterLogoPath points at the local brand mark used in footers
	FooterLogoPath string
}

// footerText is the fixed mark rendered on every page footer
const footerText = "Powered by PowerDash HR"
