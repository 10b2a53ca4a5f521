package driven

import "context"

// LLMService provides language model text generation.
//
// Implementations correspond to distinct backing providers (OpenAI,
// Gemini), selected once at construction and fixed for the client's
// lifetime. Rate limiting and retry are composed around
// implementations by the ai.Resilient wrapper, so adapters stay plain
// HTTP round-trips.
type LLMService interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}
