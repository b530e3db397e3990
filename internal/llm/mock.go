package llm

import "context"

// MockClient is a placeholder implementation for local runs and tests;
// it never calls an external model.
type MockClient struct {
	// Response overrides the canned reply when set
	Response string
	// Err is returned from Complete when set
	Err error
}

const mockPackJSON = `{
  "housekeeping": [
    "Introduce the panel and explain the interview format",
    "Confirm the candidate consents to notes being taken",
    "Outline the timing for each stage"
  ],
  "sections": [
    {
      "name": "Core Questions",
      "questions": [
        {
          "question": "What attracted you to this role",
          "intent": "Motivation and role understanding",
          "followups": ["What do you know about our team"],
          "good": "Specific, researched reasons tied to the role"
        },
        {
          "question": "Walk me through your most relevant experience",
          "intent": "Baseline fit against the role profile"
        }
      ]
    }
  ]
}`

// Complete returns the configured response or a canned pack JSON
func (m *MockClient) Complete(_ context.Context, _, _ string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return mockPackJSON, nil
}

// Close is a no-op
func (m *MockClient) Close() error {
	return nil
}
