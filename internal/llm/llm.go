package llm

import (
	"context"
	"fmt"

	"github.com/powerdash/iqpack/internal/config"
)

// Client abstracts the outbound LLM call so providers can be swapped or
// mocked. The generator only depends on this interface.
type Client interface {
	// Complete sends a system and user message and returns the raw text
	// of the model's reply.
	Complete(ctx context.Context, system, user string) (string, error)
	Close() error
}

// NewClient creates a provider from config
func NewClient(cfg *config.Config) (Client, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai requires an API key")
		}
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Model, cfg.Temperature, cfg.OpenAIBaseURL), nil

	case "vertexai":
		return NewVertexAIClient(cfg.GoogleCloudProject, cfg.GoogleCloudLocation, cfg.Model, cfg.Temperature)

	case "mock":
		return &MockClient{}, nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
