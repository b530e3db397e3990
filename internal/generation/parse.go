package generation

import (
	"encoding/json"
	"strings"

	"github.com/powerdash/iqpack/internal/models"
)

// rawPack mirrors the JSON schema the prompt requests
type rawPack struct {
	Housekeeping []string         `json:"housekeeping"`
	Sections     []models.Section `json:"sections"`
}

// ParseResponse extracts the structured pack from the model's reply.
// When the reply cannot be parsed against the expected schema the whole
// text degrades to a single unnamed section carrying the raw lines as a
// pseudo-bullet list; no error is ever returned to the caller.
func ParseResponse(response string) (housekeeping []string, sections []models.Section, parsed bool) {
	// Find JSON in response (in case there's extra text)
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx != -1 && endIdx > startIdx {
		jsonStr := response[startIdx : endIdx+1]

		var raw rawPack
		if err := json.Unmarshal([]byte(jsonStr), &raw); err == nil && len(raw.Sections) > 0 {
			return raw.Housekeeping, raw.Sections, true
		}
	}

	return nil, rawTextSections(response), false
}

// rawTextSections wraps an unstructured reply as one unnamed section
func rawTextSections(response string) []models.Section {
	text := strings.TrimSpace(response)
	if text == "" {
		return nil
	}

	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
	}

	return []models.Section{{Bullets: bullets}}
}
