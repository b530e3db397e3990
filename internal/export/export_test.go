package export

import (
	"fmt"

	"github.com/powerdash/iqpack/internal/models"
)

// testPack builds a pack with the given number of questions per
// section, enough to force pagination when the count is high.
func testPack(questionsPerSection int) models.Pack {
	var core, technical []models.Question
	for i := 0; i < questionsPerSection; i++ {
		core = append(core, models.Question{
			Question:  fmt.Sprintf("Tell me about a time you closed the books under pressure, round %d?", i+1),
			Intent:    "Resilience and process discipline",
			Good:      "A concrete example with a measurable outcome",
			Followups: []string{"What would you do differently?", "Who did you escalate to?"},
		})
		technical = append(technical, models.Question{
			Question: fmt.Sprintf("How would you reconcile an intercompany mismatch, case %d?", i+1),
		})
	}
	return models.Pack{
		Title: "Interview Pack: Accountant (Mid)",
		Slug:  "accountant-interview-pack-2025-01-15",
		Inputs: models.GenerateRequest{
			RoleTitle:     "Accountant",
			Level:         "Mid",
			InterviewType: "Competency",
			DurationMins:  60,
			Competencies:  []string{"Attention to detail", "Communication"},
			TenantName:    "Acme Recruiting",
		},
		Housekeeping: []string{"Introduce the panel", "Confirm consent for notes"},
		Sections: []models.Section{
			{Name: "Core Questions", Notes: "Keep this section under 20 minutes.", Questions: core},
			{Name: "Technical Questions", Questions: technical},
			{Name: "Close-down & Next Steps", Bullets: []string{
				"Thank the candidate for their time",
				"Explain the remaining stages of the process",
			}},
		},
	}
}
