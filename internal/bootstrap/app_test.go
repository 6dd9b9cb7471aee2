package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/internal/config"
)

func offlineConfig() *config.AppConfig {
	return &config.AppConfig{
		Embedder:   config.EmbedderConfig{Type: "hashing", Hashing: &config.HashingEmbedderConfig{Dimensions: 256}},
		Chunker:    config.ChunkerConfig{Type: "token", MaxTokens: 8},
		Retrieval:  config.RetrievalConfig{TopK: 2},
		Completion: config.CompletionConfig{Type: "none"},
		Summarizer: config.SummarizerConfig{Type: "none"},
	}
}

func TestNew_Offline(t *testing.T) {
	app, err := New(offlineConfig())
	require.NoError(t, err)
	assert.False(t, app.StartedAt.IsZero())

	_, err = app.Pipeline.Ingest(context.Background(), "Insulin lowers blood sugar. Metformin is taken with food. Exercise helps too")
	require.NoError(t, err)

	answer, err := app.Assistant.Ask(context.Background(), "metformin food", 0)
	require.NoError(t, err)
	assert.Empty(t, answer.Reply)
	require.Len(t, answer.Sources, 2)
	assert.Contains(t, answer.Sources[0].Chunk.Text, "Metformin")
}

func TestNew_UnknownComponents(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.AppConfig)
	}{
		{"embedder", func(c *config.AppConfig) { c.Embedder.Type = "word2vec" }},
		{"chunker", func(c *config.AppConfig) { c.Chunker.Type = "paragraph" }},
		{"vector store", func(c *config.AppConfig) { c.VectorStore.Type = "faiss" }},
		{"summarizer", func(c *config.AppConfig) { c.Summarizer.Type = "llm" }},
		{"completion", func(c *config.AppConfig) { c.Completion.Type = "anthropic" }},
		{"encoding", func(c *config.AppConfig) { c.Chunker.Encoding = "no_such_encoding" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := offlineConfig()
			tt.mutate(cfg)
			_, err := New(cfg)
			assert.Error(t, err)
		})
	}
}

func TestNew_OpenAIRequiresKey(t *testing.T) {
	cfg := offlineConfig()
	cfg.Embedder = config.EmbedderConfig{Type: "openai", OpenAI: &config.OpenAIEmbedderConfig{APIKeyEnv: "DOCQA_TEST_UNSET_KEY"}}

	_, err := New(cfg)
	assert.ErrorContains(t, err, "DOCQA_TEST_UNSET_KEY")
}
