package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Embedder.Type)
	require.NotNil(t, cfg.Embedder.OpenAI)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedder.OpenAI.Model)
	assert.Equal(t, 1536, cfg.Embedder.OpenAI.Dimensions)
	assert.Equal(t, 500, cfg.Chunker.MaxTokens)
	assert.Equal(t, "cl100k_base", cfg.Chunker.Encoding)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	require.NotNil(t, cfg.Completion.OpenAI)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Completion.OpenAI.Model)
}

func TestLoad_FillsMissingFields(t *testing.T) {
	path := writeConfig(t, `
embedder:
  type: hashing
chunker:
  max_tokens: 64
completion:
  type: none
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hashing", cfg.Embedder.Type)
	require.NotNil(t, cfg.Embedder.Hashing)
	assert.Equal(t, 1536, cfg.Embedder.Hashing.Dimensions)
	assert.Nil(t, cfg.Embedder.OpenAI)
	assert.Equal(t, 64, cfg.Chunker.MaxTokens)
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, "none", cfg.Completion.Type)
	assert.Nil(t, cfg.Completion.OpenAI)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "embedder: [unterminated"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DOCQA_ADDR", ":8080")
	t.Setenv("DOCQA_EMBEDDER", "hashing")
	t.Setenv("DOCQA_MAX_TOKENS", "120")
	t.Setenv("DOCQA_TOP_K", "not-a-number")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1")

	cfg, err := Load(writeConfig(t, `
embedder:
  type: openai
  openai:
    model: custom-embed
retrieval:
  top_k: 7
`))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "hashing", cfg.Embedder.Type)
	assert.Nil(t, cfg.Embedder.OpenAI)
	assert.Equal(t, 120, cfg.Chunker.MaxTokens)
	assert.Equal(t, 7, cfg.Retrieval.TopK)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Completion.OpenAI.BaseURL)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Chunker.MaxTokens = 256
	cfg.Server.CORSOrigins = []string{"https://app.example.com"}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadDefault_PrefersWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("chunker:\n  max_tokens: 42\n"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, path, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", path)
	assert.Equal(t, 42, cfg.Chunker.MaxTokens)
}

func TestLoadDefault_WritesUserConfig(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, path, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "docqa", "config.yaml"), path)
	assert.FileExists(t, path)
	assert.Equal(t, "memory", cfg.VectorStore.Type)
}
