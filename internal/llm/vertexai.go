package llm

import (
	"context"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
)

// VertexAIClient wraps the Vertex AI Gemini API
type VertexAIClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	projectID string
	location  string
}

// NewVertexAIClient creates a new Vertex AI client
func NewVertexAIClient(projectID, location, model string, temperature float64) (*VertexAIClient, error) {
	if projectID == "" {
		return nil, fmt.Errorf("google cloud project not set")
	}
	if location == "" {
		location = "us-central1" // Default location
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	gm := client.GenerativeModel(model)

	// Configure model parameters
	gm.SetTemperature(float32(temperature))
	gm.SetTopK(40)
	gm.SetTopP(0.95)
	gm.SetMaxOutputTokens(4096)

	return &VertexAIClient{
		client:    client,
		model:     gm,
		projectID: projectID,
		location:  location,
	}, nil
}

// Complete sends a prompt to the model and returns the response text.
// Gemini has no separate system channel here, so the system message is
// prepended to the user content.
func (v *VertexAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	prompt := user
	if system != "" {
		prompt = system + "\n\n" + user
	}

	resp, err := v.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates returned")
	}

	// Extract text from response
	var result string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			result += string(text)
		}
	}

	return result, nil
}

// Close closes the Vertex AI client
func (v *VertexAIClient) Close() error {
	return v.client.Close()
}
