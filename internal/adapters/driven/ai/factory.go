// Package ai provides factory functions for creating language-model
// service adapters and the resilience wrapper composed around them.
package ai

import (
	"context"
	"fmt"
	"time"

	geminillm "github.com/docsage-labs/docsage-cli/internal/adapters/driven/llm/gemini"
	openaillm "github.com/docsage-labs/docsage-cli/internal/adapters/driven/llm/openai"
	"github.com/docsage-labs/docsage-cli/internal/core/domain"
	"github.com/docsage-labs/docsage-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity
// validation.
const pingTimeout = 5 * time.Second

// CreateLLMService creates the configured provider adapter, wrapped
// with rate limiting and retry. The provider is resolved once here;
// there is no runtime switching.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	var (
		svc driven.LLMService
		err error
	)

	switch settings.Provider {
	case domain.AIProviderOpenAI:
		svc, err = openaillm.NewLLMService(openaillm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderGemini:
		svc, err = geminillm.NewLLMService(geminillm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider %q", domain.ErrInvalidConfig, settings.Provider)
	}

	if err != nil {
		return nil, err
	}

	return NewResilient(svc, settings.CallsPerMinute), nil
}

// CreateAndValidateLLMService creates the LLM service and validates
// connectivity with a lightweight ping.
func CreateAndValidateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	svc, err := CreateLLMService(settings)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%v)", domain.ErrProvider, err)
	}

	return svc, nil
}
