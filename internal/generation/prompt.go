package generation

import (
	"fmt"
	"strings"

	"github.com/powerdash/iqpack/internal/models"
)

// systemPrompt pins the model to the structured-JSON contract.
const systemPrompt = "You are an expert HR interviewer designing structured, legally safe interview question packs. Return ONLY the JSON object, no markdown, no explanation."

// jdSummarySystemPrompt drives the optional job-description compression call.
const jdSummarySystemPrompt = "Summarize the job description into crisp bullets of responsibilities, must-have skills, nice-to-haves, stakeholders, and tools. Keep it under 350 words. Return plain text only."

// jdInlineBudget is the maximum JD text carried into the main prompt
// without a summarization pass.
const jdInlineBudget = 2000

// BuildPrompt creates the generation instruction for the LLM
func BuildPrompt(req models.GenerateRequest) string {
	var sb strings.Builder

	sb.WriteString("Create an interview question pack for the following role.\n\n")

	sb.WriteString("## ROLE\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", req.RoleTitle))
	if req.Level != "" {
		sb.WriteString(fmt.Sprintf("Seniority level: %s\n", req.Level))
	}
	if req.Department != "" {
		sb.WriteString(fmt.Sprintf("Department: %s\n", req.Department))
	}
	sb.WriteString(fmt.Sprintf("Interview type: %s\n", req.InterviewType))
	sb.WriteString(fmt.Sprintf("Duration: %d minutes\n", req.DurationMins))

	if len(req.Competencies) > 0 {
		sb.WriteString("\n## TARGET COMPETENCIES\n")
		for _, c := range req.Competencies {
			sb.WriteString(fmt.Sprintf("- %s\n", c))
		}
	}

	sb.WriteString("\n## REQUIREMENTS\n")
	sb.WriteString(fmt.Sprintf("- %d questions in a section named %q.\n", req.NumCore, SectionCore))
	sb.WriteString(fmt.Sprintf("- %d questions in a section named %q.\n", req.NumTechnical, SectionTechnical))
	sb.WriteString(fmt.Sprintf("- %d questions in a section named %q, mapped to the target competencies.\n", req.NumCompetency, SectionCompetency))
	sb.WriteString("- A \"housekeeping\" list of 3-5 opening logistics bullets (agenda, consent, timing).\n")
	if req.IncludeFollowups {
		sb.WriteString("- Each question includes 1-3 short suggested follow-ups.\n")
	} else {
		sb.WriteString("- Omit follow-ups.\n")
	}
	if req.IncludeGood {
		sb.WriteString("- Each question includes a one-sentence \"what good looks like\" rubric in the \"good\" field.\n")
	} else {
		sb.WriteString("- Omit the \"good\" field.\n")
	}
	if req.IncludeScoring {
		sb.WriteString(fmt.Sprintf("- A section named %q whose \"bullets\" describe a 1-5 scoring scale with behavioural anchors.\n", SectionScoring))
	}
	sb.WriteString(fmt.Sprintf("- A closing section named %q with wrap-up bullets.\n", SectionCloseDown))
	if req.Language != "" {
		sb.WriteString(fmt.Sprintf("- Write everything in %s.\n", req.Language))
	}
	if req.Jurisdiction != "" {
		sb.WriteString(fmt.Sprintf("- Questions must be lawful to ask in the %s jurisdiction; avoid protected characteristics.\n", req.Jurisdiction))
	}
	if req.HouseGuidance != "" {
		sb.WriteString("\n## HOUSE GUIDANCE\n")
		sb.WriteString(req.HouseGuidance)
		sb.WriteString("\n")
	}

	if req.JDContext != "" {
		sb.WriteString("\n## JOB DESCRIPTION CONTEXT\n")
		sb.WriteString(truncate(req.JDContext, jdInlineBudget))
		sb.WriteString("\n")
	}

	sb.WriteString("\nProvide the pack in the following JSON format:\n")
	sb.WriteString("{\n")
	sb.WriteString(`  "housekeeping": ["<bullet>", ...],` + "\n")
	sb.WriteString(`  "sections": [` + "\n")
	sb.WriteString("    {\n")
	sb.WriteString(`      "name": "<section name>",` + "\n")
	sb.WriteString(`      "notes": "<optional interviewer note>",` + "\n")
	sb.WriteString(`      "bullets": ["<optional bullet>", ...],` + "\n")
	sb.WriteString(`      "questions": [` + "\n")
	sb.WriteString("        {\n")
	sb.WriteString(`          "question": "<the question>",` + "\n")
	sb.WriteString(`          "intent": "<what the question probes>",` + "\n")
	sb.WriteString(`          "followups": ["<short follow-up>", ...],` + "\n")
	sb.WriteString(`          "good": "<what a strong answer covers>"` + "\n")
	sb.WriteString("        }\n")
	sb.WriteString("      ]\n")
	sb.WriteString("    }\n")
	sb.WriteString("  ]\n")
	sb.WriteString("}\n\n")
	sb.WriteString("Return ONLY the JSON object, no additional text.\n")

	return sb.String()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
