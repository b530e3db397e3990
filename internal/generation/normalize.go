package generation

import (
	"sort"
	"strings"

	"github.com/powerdash/iqpack/internal/models"
)

// Canonical section names. Sections carrying these names are ordered
// ahead of everything else, in this sequence.
const (
	SectionCore       = "Core Questions"
	SectionTechnical  = "Technical Questions"
	SectionCompetency = "Competency Questions"
	SectionScoring    = "Scoring Rubric"
	SectionCloseDown  = "Close-down & Next Steps"
)

var canonicalOrder = []string{
	SectionCore,
	SectionTechnical,
	SectionCompetency,
	SectionScoring,
	SectionCloseDown,
}

// closeDownAliases are the accepted spellings for the mandatory closing
// section, matched case-insensitively after trimming.
var closeDownAliases = map[string]bool{
	"close-down & next steps":   true,
	"close down & next steps":   true,
	"close-down and next steps": true,
	"close down and next steps": true,
	"close-down":                true,
	"close down":                true,
	"closedown":                 true,
	"closing":                   true,
	"wrap-up":                   true,
	"wrap up":                   true,
	"next steps":                true,
}

// defaultCloseDownBullets is the synthesized content when the upstream
// response has no closing section.
var defaultCloseDownBullets = []string{
	"Thank the candidate for their time",
	"Explain the remaining stages of the process",
	"Share the expected timeline for a decision",
	"Invite the candidate to ask questions",
	"Confirm how and when feedback will be shared",
}

// isCloseDown reports whether a section name is an accepted spelling of
// the closing section.
func isCloseDown(name string) bool {
	return closeDownAliases[strings.ToLower(strings.TrimSpace(name))]
}

// canonicalRank returns the position of a canonical section name, or -1.
// Close-down aliases all rank as the canonical close-down section.
func canonicalRank(name string) int {
	trimmed := strings.TrimSpace(name)
	for i, canonical := range canonicalOrder {
		if strings.EqualFold(trimmed, canonical) {
			return i
		}
	}
	if isCloseDown(trimmed) {
		return len(canonicalOrder) - 1
	}
	return -1
}

// NormalizeSections enforces the canonical section contract:
// canonical sections first in their fixed sequence, unrecognized sections
// afterward in their original relative order, a close-down section always
// present (synthesized with default bullets when missing), question text
// normalized to end in terminal punctuation, and empty questions dropped.
// Normalizing an already-normalized list is a no-op.
func NormalizeSections(sections []models.Section) []models.Section {
	out := make([]models.Section, 0, len(sections)+1)
	for _, sec := range sections {
		sec.Questions = normalizeQuestions(sec.Questions)
		out = append(out, sec)
	}

	if !hasCloseDown(out) {
		out = append(out, models.Section{
			Name:    SectionCloseDown,
			Bullets: append([]string(nil), defaultCloseDownBullets...),
		})
	}

	// Stable sort: canonical sections by fixed rank, everything else
	// after them with original order preserved.
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := canonicalRank(out[i].Name), canonicalRank(out[j].Name)
		switch {
		case ri >= 0 && rj >= 0:
			return ri < rj
		case ri >= 0:
			return true
		case rj >= 0:
			return false
		default:
			return false
		}
	})

	return out
}

func hasCloseDown(sections []models.Section) bool {
	for _, sec := range sections {
		if isCloseDown(sec.Name) {
			return true
		}
	}
	return false
}

// normalizeQuestions drops empty questions and fixes trailing punctuation
func normalizeQuestions(questions []models.Question) []models.Question {
	out := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		q.Question = NormalizeQuestionText(q.Question)
		if q.Question == "" {
			continue
		}
		out = append(out, q)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// NormalizeQuestionText trims the text and appends exactly one question
// mark unless it already ends in terminal punctuation.
func NormalizeQuestionText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	switch text[len(text)-1] {
	case '?', '.', '!':
		return text
	}
	return text + "?"
}
