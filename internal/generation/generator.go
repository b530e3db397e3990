package generation

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/powerdash/iqpack/internal/llm"
	"github.com/powerdash/iqpack/internal/models"
)

// Generator orchestrates one pack generation: prompt build, LLM call,
// response parsing, and normalization.
type Generator struct {
	llmClient llm.Client
	now       func() time.Time
}

// NewGenerator creates a generator backed by the given LLM client
func NewGenerator(client llm.Client) *Generator {
	return &Generator{
		llmClient: client,
		now:       time.Now,
	}
}

// Generate produces a normalized pack for the request. Warnings carry
// non-fatal degradations (unparsable model output, skipped JD summary);
// only a failed LLM call is returned as an error.
func (g *Generator) Generate(ctx context.Context, req models.GenerateRequest) (models.Pack, []string, error) {
	var warnings []string

	prompt := BuildPrompt(req)

	response, err := g.llmClient.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return models.Pack{}, nil, fmt.Errorf("failed to get LLM response: %w", err)
	}

	housekeeping, sections, parsed := ParseResponse(response)
	if !parsed {
		log.Printf("Generation output did not match the pack schema; falling back to raw text")
		warnings = append(warnings, "The model response was not structured; showing it as raw text.")
	}

	pack := models.Pack{
		Title:        packTitle(req),
		Slug:         Slugify(req.RoleTitle, g.now()),
		Inputs:       req,
		Housekeeping: housekeeping,
		Sections:     NormalizeSections(sections),
	}

	return pack, warnings, nil
}

// SummarizeJD compresses a raw job description into crisp bullets for the
// main prompt. Failure is never fatal: the caller receives a truncated
// raw snippet and a warning instead.
func (g *Generator) SummarizeJD(ctx context.Context, jdRaw string) (summary string, warning string) {
	jdRaw = strings.TrimSpace(jdRaw)
	if jdRaw == "" {
		return "", ""
	}
	if len(jdRaw) <= jdInlineBudget {
		return jdRaw, ""
	}

	out, err := g.llmClient.Complete(ctx, jdSummarySystemPrompt, truncate(jdRaw, 15000))
	if err != nil {
		log.Printf("JD summary failed, using raw snippet: %v", err)
		return truncate(jdRaw, jdInlineBudget), "Job description could not be summarized; using a raw snippet."
	}

	return strings.TrimSpace(out), ""
}

func packTitle(req models.GenerateRequest) string {
	title := strings.TrimSpace(req.RoleTitle)
	if title == "" {
		title = "Interview Pack"
	} else {
		title = "Interview Pack: " + title
	}
	if level := strings.TrimSpace(req.Level); level != "" {
		title += " (" + level + ")"
	}
	return title
}
