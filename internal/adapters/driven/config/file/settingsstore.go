package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/docsage-labs/docsage-cli/internal/chunker"
	"github.com/docsage-labs/docsage-cli/internal/core/domain"
	"github.com/docsage-labs/docsage-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// Defaults applied to fields the config file leaves unset.
const (
	defaultProvider       = domain.AIProviderOpenAI
	defaultCallsPerMinute = 50
	defaultMaxTokens      = 2000
	defaultPDFDir         = "pdfs"
	defaultProcessedDir   = "processed_docs"
	defaultHTTPAddr       = ":8080"
)

// SettingsStore is a TOML-file implementation of driven.SettingsStore.
// Configuration lives in config.toml inside the docsage config
// directory, with environment variables taking precedence over file
// values so API keys can stay out of the file.
type SettingsStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSettingsStore creates a TOML-based settings store.
// If configDir is empty, defaults to ~/.docsage/config.toml.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".docsage")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads the configuration file, fills defaults and applies
// environment overrides. A missing file yields pure defaults.
func (s *SettingsStore) Load() (*domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := defaultSettings()

	data, err := os.ReadFile(s.filePath)
	switch {
	case os.IsNotExist(err):
		// No config file yet, start from defaults.
	case err != nil:
		return nil, err
	default:
		if err := toml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrInvalidConfig, s.filePath, err)
		}
		fillDefaults(settings)
	}

	applyEnv(settings)
	return settings, nil
}

// Save persists the configuration with restricted permissions, since
// it may carry an API key.
func (s *SettingsStore) Save(settings *domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}

func defaultSettings() *domain.Settings {
	settings := &domain.Settings{}
	fillDefaults(settings)
	return settings
}

func fillDefaults(settings *domain.Settings) {
	if settings.LLM.Provider == "" {
		settings.LLM.Provider = defaultProvider
	}
	if settings.LLM.CallsPerMinute <= 0 {
		settings.LLM.CallsPerMinute = defaultCallsPerMinute
	}
	if settings.LLM.MaxTokens <= 0 {
		settings.LLM.MaxTokens = defaultMaxTokens
	}
	if settings.Chunking.Size <= 0 {
		settings.Chunking.Size = chunker.DefaultSize
	}
	if settings.Chunking.Overlap <= 0 {
		settings.Chunking.Overlap = chunker.DefaultOverlap
	}
	if settings.PDFDir == "" {
		settings.PDFDir = defaultPDFDir
	}
	if settings.ProcessedDir == "" {
		settings.ProcessedDir = defaultProcessedDir
	}
	if settings.HTTPAddr == "" {
		settings.HTTPAddr = defaultHTTPAddr
	}
}

// applyEnv overlays environment variables on the loaded settings.
// The provider-specific key variable wins over a generic LLM_API_KEY.
func applyEnv(settings *domain.Settings) {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		settings.LLM.Provider = domain.AIProvider(v)
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		settings.LLM.Model = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		settings.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		settings.LLM.APIKey = v
	}

	switch settings.LLM.Provider {
	case domain.AIProviderOpenAI:
		if v := os.Getenv("OPENAI_API_KEY"); v != "" {
			settings.LLM.APIKey = v
		}
	case domain.AIProviderGemini:
		if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
			settings.LLM.APIKey = v
		}
	}
}
