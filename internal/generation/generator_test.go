package generation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/powerdash/iqpack/internal/llm"
)

func newTestGenerator(client llm.Client) *Generator {
	g := NewGenerator(client)
	g.now = func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerateStructuredPack(t *testing.T) {
	g := newTestGenerator(&llm.MockClient{})

	pack, warnings, err := g.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings for a structured reply, got %v", warnings)
	}

	if pack.Title != "Interview Pack: Accountant (Mid)" {
		t.Errorf("Title = %q", pack.Title)
	}
	if pack.Slug != "accountant-interview-pack-2025-01-15" {
		t.Errorf("Slug = %q", pack.Slug)
	}
	if len(pack.Housekeeping) == 0 {
		t.Error("Housekeeping should be carried over")
	}
	if pack.Inputs.RoleTitle != "Accountant" {
		t.Error("Inputs should copy the original request")
	}

	// Normalization ran: close-down exists and questions end in "?"
	foundCloseDown := false
	for _, sec := range pack.Sections {
		if sec.Name == SectionCloseDown {
			foundCloseDown = true
		}
		for _, q := range sec.Questions {
			last := q.Question[len(q.Question)-1]
			if last != '?' && last != '.' && last != '!' {
				t.Errorf("Question not normalized: %q", q.Question)
			}
		}
	}
	if !foundCloseDown {
		t.Error("Close-down section missing after generation")
	}
}

func TestGenerateRawTextFallback(t *testing.T) {
	g := newTestGenerator(&llm.MockClient{Response: "Ask about ledgers.\nAsk about audits."})

	pack, warnings, err := g.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate() should not fail on unstructured output: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("Expected one degradation warning, got %v", warnings)
	}

	// Raw-text section plus the synthesized close-down
	if len(pack.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(pack.Sections))
	}
	raw := pack.Sections[1] // unnamed sections sort after canonical ones
	if isCloseDown(raw.Name) {
		raw = pack.Sections[0]
	}
	if len(raw.Bullets) != 2 {
		t.Errorf("Raw section bullets = %v", raw.Bullets)
	}
}

func TestGenerateLLMFailure(t *testing.T) {
	boom := errors.New("model unavailable")
	g := newTestGenerator(&llm.MockClient{Err: boom})

	_, _, err := g.Generate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("Expected error when the LLM call fails")
	}
	if !errors.Is(err, boom) {
		t.Errorf("Error should wrap the LLM failure, got %v", err)
	}
}

func TestSummarizeJD(t *testing.T) {
	t.Run("Short JD passes through", func(t *testing.T) {
		g := newTestGenerator(&llm.MockClient{})
		summary, warning := g.SummarizeJD(context.Background(), "A short job description.")
		if summary != "A short job description." {
			t.Errorf("Short JD should pass through, got %q", summary)
		}
		if warning != "" {
			t.Errorf("Unexpected warning: %s", warning)
		}
	})

	t.Run("Long JD is summarized", func(t *testing.T) {
		g := newTestGenerator(&llm.MockClient{Response: "- Responsibility one\n- Skill two"})
		long := strings.Repeat("duties and responsibilities ", 200)
		summary, warning := g.SummarizeJD(context.Background(), long)
		if summary != "- Responsibility one\n- Skill two" {
			t.Errorf("Expected model summary, got %q", summary)
		}
		if warning != "" {
			t.Errorf("Unexpected warning: %s", warning)
		}
	})

	t.Run("Summary failure degrades to snippet", func(t *testing.T) {
		g := newTestGenerator(&llm.MockClient{Err: errors.New("quota exceeded")})
		long := strings.Repeat("duties and responsibilities ", 200)
		summary, warning := g.SummarizeJD(context.Background(), long)
		if summary == "" {
			t.Error("Expected a raw snippet fallback")
		}
		if len(summary) > 2000 {
			t.Errorf("Snippet should be truncated, length %d", len(summary))
		}
		if warning == "" {
			t.Error("Expected a degradation warning")
		}
	})

	t.Run("Empty JD", func(t *testing.T) {
		g := newTestGenerator(&llm.MockClient{})
		summary, warning := g.SummarizeJD(context.Background(), "  ")
		if summary != "" || warning != "" {
			t.Errorf("Empty JD should be a no-op, got %q / %q", summary, warning)
		}
	})
}

func TestSlugify(t *testing.T) {
	now := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		role     string
		expected string
	}{
		{"Simple role", "Accountant", "accountant-interview-pack-2025-03-02"},
		{"Spaces and case", "Senior Data Engineer", "senior-data-engineer-interview-pack-2025-03-02"},
		{"Punctuation", "VP, Finance & Ops!", "vp-finance-ops-interview-pack-2025-03-02"},
		{"Empty role", "", "interview-pack-2025-03-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.role, now); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.role, got, tt.expected)
			}
		})
	}
}
