package domain

import "fmt"

// AIProvider identifies a language-model provider.
type AIProvider string

// Available AI providers. The set is closed; the provider is selected
// once at startup and fixed for the client's lifetime.
const (
	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderGemini is the Google Gemini cloud API.
	AIProviderGemini AIProvider = "gemini"
)

// IsValid returns true if the provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOpenAI, AIProviderGemini:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// LLMSettings configures the language-model client.
type LLMSettings struct {
	// Provider selects the backing provider.
	Provider AIProvider `toml:"provider"`

	// APIKey authenticates against the provider.
	APIKey string `toml:"api_key"`

	// Model is the provider model name. Empty selects the adapter's
	// default.
	Model string `toml:"model"`

	// BaseURL overrides the provider endpoint, e.g. for compatible
	// gateways.
	BaseURL string `toml:"base_url"`

	// CallsPerMinute bounds client calls within a one-minute window.
	// Zero selects the default.
	CallsPerMinute int `toml:"calls_per_minute"`

	// MaxTokens is the default generation budget per call.
	MaxTokens int `toml:"max_tokens"`
}

// Validate checks the settings are usable.
func (s *LLMSettings) Validate() error {
	if !s.Provider.IsValid() {
		return fmt.Errorf("%w: unsupported LLM provider %q", ErrInvalidConfig, s.Provider)
	}
	if s.APIKey == "" {
		return fmt.Errorf("%w: %s API key is required", ErrInvalidConfig, s.Provider)
	}
	return nil
}

// ChunkingSettings configures the text chunker.
type ChunkingSettings struct {
	// Size is the chunk window length in bytes.
	Size int `toml:"size"`

	// Overlap is the number of bytes shared between neighbouring
	// chunks. Must be smaller than Size.
	Overlap int `toml:"overlap"`
}

// Validate checks the chunking parameters.
func (s *ChunkingSettings) Validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("%w: chunk size must be positive", ErrInvalidConfig)
	}
	if s.Overlap < 0 {
		return fmt.Errorf("%w: chunk overlap must not be negative", ErrInvalidConfig)
	}
	if s.Overlap >= s.Size {
		return fmt.Errorf("%w: chunk overlap %d must be smaller than chunk size %d",
			ErrInvalidConfig, s.Overlap, s.Size)
	}
	return nil
}

// Settings is the root application configuration.
type Settings struct {
	LLM      LLMSettings      `toml:"llm"`
	Chunking ChunkingSettings `toml:"chunking"`

	// PDFDir is the inbox directory for uploaded PDFs.
	PDFDir string `toml:"pdf_dir"`

	// ProcessedDir holds one JSON blob per processed document.
	ProcessedDir string `toml:"processed_dir"`

	// HTTPAddr is the listen address for the HTTP front end.
	HTTPAddr string `toml:"http_addr"`
}

// Validate checks the full configuration.
func (s *Settings) Validate() error {
	if err := s.LLM.Validate(); err != nil {
		return err
	}
	return s.Chunking.Validate()
}
