package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

func TestNewSettingsStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewSettingsStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestSettingsStore_LoadDefaults(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOpenAI, settings.LLM.Provider)
	assert.Equal(t, 50, settings.LLM.CallsPerMinute)
	assert.Equal(t, 2000, settings.LLM.MaxTokens)
	assert.Equal(t, 1000, settings.Chunking.Size)
	assert.Equal(t, 200, settings.Chunking.Overlap)
	assert.Equal(t, "pdfs", settings.PDFDir)
	assert.Equal(t, "processed_docs", settings.ProcessedDir)
	assert.Equal(t, ":8080", settings.HTTPAddr)
}

func TestSettingsStore_SaveAndLoad(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	want := &domain.Settings{
		LLM: domain.LLMSettings{
			Provider:       domain.AIProviderGemini,
			APIKey:         "test-key",
			Model:          "gemini-1.5-pro",
			CallsPerMinute: 10,
			MaxTokens:      512,
		},
		Chunking:     domain.ChunkingSettings{Size: 800, Overlap: 100},
		PDFDir:       "inbox",
		ProcessedDir: "store",
		HTTPAddr:     ":9090",
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsStore_LoadFillsMissingFields(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewSettingsStore(tmpDir)
	require.NoError(t, err)

	partial := []byte("[llm]\nprovider = \"gemini\"\napi_key = \"key\"\n")
	require.NoError(t, os.WriteFile(store.Path(), partial, 0600))

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderGemini, settings.LLM.Provider)
	assert.Equal(t, "key", settings.LLM.APIKey)
	assert.Equal(t, 50, settings.LLM.CallsPerMinute)
	assert.Equal(t, 1000, settings.Chunking.Size)
	assert.Equal(t, "pdfs", settings.PDFDir)
}

func TestSettingsStore_LoadInvalidTOML(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.Path(), []byte("not = [valid"), 0600))

	_, err = store.Load()

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestSettingsStore_EnvOverrides(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("LLM_MODEL", "gemini-2.0-flash")
	t.Setenv("GOOGLE_API_KEY", "env-key")

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderGemini, settings.LLM.Provider)
	assert.Equal(t, "gemini-2.0-flash", settings.LLM.Model)
	assert.Equal(t, "env-key", settings.LLM.APIKey)
}

func TestSettingsStore_ProviderKeyBeatsGenericKey(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	t.Setenv("LLM_API_KEY", "generic")
	t.Setenv("OPENAI_API_KEY", "specific")

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOpenAI, settings.LLM.Provider)
	assert.Equal(t, "specific", settings.LLM.APIKey)
}
