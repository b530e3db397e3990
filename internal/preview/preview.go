// Package preview renders a normalized pack as an HTML fragment for
// on-screen display. The pack is first written as markdown, then
// converted, so the preview and the exported documents share one
// content model.
package preview

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/powerdash/iqpack/internal/models"
)

var md = goldmark.New(
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// Render converts the pack to an HTML fragment
func Render(pack models.Pack) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(pack)), &buf); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}

// Markdown writes the pack in the shared document layout: title, meta
// line, housekeeping bullets, then one block per section with bold
// questions and their label/value rows.
func Markdown(pack models.Pack) string {
	var sb strings.Builder

	sb.WriteString("## " + pack.Title + "\n\n")
	sb.WriteString(pack.MetaLine() + "\n\n")
	if tenant := pack.Inputs.TenantName; tenant != "" {
		sb.WriteString(tenant + "\n\n")
	}

	if len(pack.Housekeeping) > 0 {
		sb.WriteString("### Housekeeping\n\n")
		for _, item := range pack.Housekeeping {
			sb.WriteString("- " + item + "\n")
		}
		sb.WriteString("\n")
	}

	for _, sec := range pack.Sections {
		sb.WriteString("### " + sec.DisplayName() + "\n\n")
		if sec.Notes != "" {
			sb.WriteString(sec.Notes + "\n\n")
		}
		for _, bullet := range sec.Bullets {
			sb.WriteString("- " + bullet + "\n")
		}
		if len(sec.Bullets) > 0 {
			sb.WriteString("\n")
		}

		for i, q := range sec.Questions {
			sb.WriteString(fmt.Sprintf("**%d. %s**\n\n", i+1, q.Question))
			if q.Intent != "" {
				sb.WriteString("*Intent:* " + q.Intent + "\n\n")
			}
			if q.Good != "" {
				sb.WriteString("*What good looks like:* " + q.Good + "\n\n")
			}
			if len(q.Followups) > 0 {
				sb.WriteString("*Follow-ups:* " + q.FollowupLine() + "\n\n")
			}
		}
	}

	return sb.String()
}
