package bootstrap

import (
	"fmt"
	"time"

	"docqa/internal/chunker"
	"docqa/internal/completion/openai"
	"docqa/internal/config"
	"docqa/internal/domain"
	"docqa/internal/embedding/hashing"
	embedopenai "docqa/internal/embedding/openai"
	"docqa/internal/service"
	"docqa/internal/summarizer"
	"docqa/internal/vectorstore"
	"docqa/internal/vectorstore/memory"
)

// App holds the assembled components shared by every command.
type App struct {
	Config    *config.AppConfig
	Pipeline  *service.Pipeline
	Assistant *service.Assistant

	StartedAt time.Time
}

// New assembles the pipeline and assistant described by cfg.
func New(cfg *config.AppConfig) (*App, error) {
	emb, embedTimeout, err := newEmbedder(cfg.Embedder)
	if err != nil {
		return nil, err
	}
	ch, err := newChunker(cfg.Chunker)
	if err != nil {
		return nil, err
	}

	var newIndex vectorstore.Factory
	switch cfg.VectorStore.Type {
	case "memory", "":
		newIndex = memory.Factory
	default:
		return nil, fmt.Errorf("unknown vector store: %s", cfg.VectorStore.Type)
	}

	var sum domain.Summarizer
	switch cfg.Summarizer.Type {
	case "frequency", "":
		sum = summarizer.NewFrequencySummarizer()
	case "none":
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	pipeline, err := service.NewPipeline(service.PipelineConfig{
		Chunker:             ch,
		Embedder:            emb,
		NewIndex:            newIndex,
		Summarizer:          sum,
		SummaryMaxSentences: cfg.Summarizer.MaxSentences,
		EmbedTimeout:        embedTimeout,
		DefaultTopK:         cfg.Retrieval.TopK,
	})
	if err != nil {
		return nil, err
	}

	var completer domain.Completer
	switch cfg.Completion.Type {
	case "openai", "":
		o := cfg.Completion.OpenAI
		if o == nil {
			o = &config.OpenAICompletionConfig{}
		}
		client, err := openai.NewClient(openai.Config{
			BaseURL:   o.BaseURL,
			APIKeyEnv: o.APIKeyEnv,
			Model:     o.Model,
			Timeout:   time.Duration(o.TimeoutSecs) * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("openai completion init failed: %w", err)
		}
		completer = client
	case "none":
	default:
		return nil, fmt.Errorf("unknown completion: %s", cfg.Completion.Type)
	}

	return &App{
		Config:    cfg,
		Pipeline:  pipeline,
		Assistant: service.NewAssistant(pipeline, completer, cfg.Completion.SystemPrompt),
		StartedAt: time.Now(),
	}, nil
}

func newEmbedder(cfg config.EmbedderConfig) (domain.Embedder, time.Duration, error) {
	switch cfg.Type {
	case "openai", "":
		o := cfg.OpenAI
		if o == nil {
			o = &config.OpenAIEmbedderConfig{}
		}
		timeout := time.Duration(o.TimeoutSecs) * time.Second
		client, err := embedopenai.NewClient(embedopenai.Config{
			BaseURL:     o.BaseURL,
			APIKeyEnv:   o.APIKeyEnv,
			Model:       o.Model,
			Dimensions:  o.Dimensions,
			Timeout:     timeout,
			BatchSize:   o.BatchSize,
			Concurrency: o.Concurrency,
		})
		if err != nil {
			return nil, 0, fmt.Errorf("openai embedder init failed: %w", err)
		}
		return client, timeout, nil
	case "hashing":
		dims := hashing.DefaultDimension
		if cfg.Hashing != nil && cfg.Hashing.Dimensions > 0 {
			dims = cfg.Hashing.Dimensions
		}
		return hashing.NewEmbedder(dims), 0, nil
	default:
		return nil, 0, fmt.Errorf("unknown embedder: %s", cfg.Type)
	}
}

func newChunker(cfg config.ChunkerConfig) (domain.Chunker, error) {
	switch cfg.Type {
	case "token", "":
		counter, err := chunker.NewTiktokenCounter(cfg.Encoding)
		if err != nil {
			return nil, fmt.Errorf("token counter init failed: %w", err)
		}
		return chunker.NewTokenChunker(cfg.MaxTokens, counter), nil
	case "words":
		return chunker.NewTokenChunker(cfg.MaxTokens, chunker.WhitespaceCounter{}), nil
	default:
		return nil, fmt.Errorf("unknown chunker: %s", cfg.Type)
	}
}
