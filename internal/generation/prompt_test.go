package generation

import (
	"strings"
	"testing"

	"github.com/powerdash/iqpack/internal/models"
)

func testRequest() models.GenerateRequest {
	return models.GenerateRequest{
		RoleTitle:        "Accountant",
		Level:            "Mid",
		Department:       "Finance",
		InterviewType:    "Competency",
		DurationMins:     60,
		Competencies:     []string{"Problem solving", "Stakeholder management"},
		NumCore:          4,
		NumTechnical:     3,
		NumCompetency:    5,
		IncludeFollowups: true,
		IncludeGood:      true,
		IncludeScoring:   true,
		HouseGuidance:    "Use UK English. Keep questions short and open.",
		Language:         "English",
		Jurisdiction:     "UK",
	}
}

func TestBuildPromptContainsRoleAndCounts(t *testing.T) {
	prompt := BuildPrompt(testRequest())

	mustContain := []string{
		"Title: Accountant",
		"Seniority level: Mid",
		"Department: Finance",
		"Interview type: Competency",
		"Duration: 60 minutes",
		"- Problem solving",
		"- Stakeholder management",
		`4 questions in a section named "Core Questions"`,
		`3 questions in a section named "Technical Questions"`,
		`5 questions in a section named "Competency Questions"`,
		`"Scoring Rubric"`,
		`"Close-down & Next Steps"`,
		"Use UK English",
		"UK jurisdiction",
		"Return ONLY the JSON object",
		`"housekeeping"`,
		`"followups"`,
	}

	for _, want := range mustContain {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q", want)
		}
	}
}

func TestBuildPromptToggles(t *testing.T) {
	req := testRequest()
	req.IncludeFollowups = false
	req.IncludeGood = false
	req.IncludeScoring = false

	prompt := BuildPrompt(req)

	if !strings.Contains(prompt, "Omit follow-ups.") {
		t.Error("Expected follow-ups to be omitted")
	}
	if !strings.Contains(prompt, `Omit the "good" field.`) {
		t.Error("Expected the good field to be omitted")
	}
	if strings.Contains(prompt, "1-5 scoring scale") {
		t.Error("Scoring rubric should not be requested when toggled off")
	}
}

func TestBuildPromptTruncatesJDContext(t *testing.T) {
	req := testRequest()
	req.JDContext = strings.Repeat("responsibilities ", 500) // well past the budget

	prompt := BuildPrompt(req)

	if !strings.Contains(prompt, "JOB DESCRIPTION CONTEXT") {
		t.Fatal("JD context section missing")
	}
	// The embedded context must not exceed the inline budget
	idx := strings.Index(prompt, "JOB DESCRIPTION CONTEXT")
	tail := prompt[idx:]
	if len(tail) > jdInlineBudget+2000 {
		t.Errorf("JD context not truncated, tail length %d", len(tail))
	}
}
