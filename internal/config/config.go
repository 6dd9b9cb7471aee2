package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	GinMode     string   `yaml:"gin_mode"`
	MaxUploadMB int      `yaml:"max_upload_mb"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// OpenAIEmbedderConfig holds configuration for the OpenAI-compatible embedder.
type OpenAIEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	Dimensions  int    `yaml:"dimensions"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	BatchSize   int    `yaml:"batch_size"`
	Concurrency int    `yaml:"concurrency"`
}

// HashingEmbedderConfig configures the offline feature-hashing embedder.
type HashingEmbedderConfig struct {
	Dimensions int `yaml:"dimensions"`
}

// EmbedderConfig selects and configures the text embedder implementation.
type EmbedderConfig struct {
	Type    string                 `yaml:"type"`
	OpenAI  *OpenAIEmbedderConfig  `yaml:"openai,omitempty"`
	Hashing *HashingEmbedderConfig `yaml:"hashing,omitempty"`
}

// ChunkerConfig configures how documents are split into chunks.
type ChunkerConfig struct {
	Type      string `yaml:"type"`
	MaxTokens int    `yaml:"max_tokens"`
	Encoding  string `yaml:"encoding"`
}

// VectorStoreConfig selects the vector index implementation.
type VectorStoreConfig struct {
	Type string `yaml:"type"`
}

// RetrievalConfig configures queries.
type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// OpenAICompletionConfig holds configuration for the chat completion client.
type OpenAICompletionConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// CompletionConfig selects the language model used to phrase answers.
// Type "none" answers with the retrieved chunks only.
type CompletionConfig struct {
	Type         string                  `yaml:"type"`
	SystemPrompt string                  `yaml:"system_prompt"`
	OpenAI       *OpenAICompletionConfig `yaml:"openai,omitempty"`
}

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type         string `yaml:"type"`
	MaxSentences int    `yaml:"max_sentences"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Server      ServerConfig      `yaml:"server"`
	Embedder    EmbedderConfig    `yaml:"embedder"`
	Chunker     ChunkerConfig     `yaml:"chunker"`
	VectorStore VectorStoreConfig `yaml:"vector_store"`
	Retrieval   RetrievalConfig   `yaml:"retrieval"`
	Completion  CompletionConfig  `yaml:"completion"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			applyConfigDefaults(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(&cfg)
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/docqa/config.yaml.
// If neither exists, it writes defaults to ~/.config/docqa/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	applyConfigDefaults(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// MaxUploadBytes is the upload limit in bytes.
func (c *AppConfig) MaxUploadBytes() int64 {
	return int64(c.Server.MaxUploadMB) << 20
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "docqa", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Server: ServerConfig{
			Addr:        ":5000",
			GinMode:     "release",
			MaxUploadMB: 10,
			CORSOrigins: []string{"http://localhost:5173"},
		},
		Embedder:    EmbedderConfig{Type: "openai"},
		Chunker:     ChunkerConfig{Type: "token", MaxTokens: 500, Encoding: "cl100k_base"},
		VectorStore: VectorStoreConfig{Type: "memory"},
		Retrieval:   RetrievalConfig{TopK: 3},
		Completion:  CompletionConfig{Type: "openai", SystemPrompt: "You are a helpful AI assistant."},
		Summarizer:  SummarizerConfig{Type: "frequency", MaxSentences: 5},
	}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "openai"
	}
	if cfg.Completion.Type == "" {
		cfg.Completion.Type = "openai"
	}
	if cfg.Completion.SystemPrompt == "" {
		cfg.Completion.SystemPrompt = "You are a helpful AI assistant."
	}
	if cfg.VectorStore.Type == "" {
		cfg.VectorStore.Type = "memory"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":5000"
	}
	if cfg.Server.GinMode == "" {
		cfg.Server.GinMode = "release"
	}
	if cfg.Server.MaxUploadMB == 0 {
		cfg.Server.MaxUploadMB = 10
	}
	if cfg.Chunker.MaxTokens == 0 {
		cfg.Chunker.MaxTokens = 500
	}
	if cfg.Chunker.Encoding == "" {
		cfg.Chunker.Encoding = "cl100k_base"
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 3
	}
	if cfg.Summarizer.MaxSentences == 0 {
		cfg.Summarizer.MaxSentences = 5
	}
	if cfg.Embedder.Type == "openai" {
		if cfg.Embedder.OpenAI == nil {
			cfg.Embedder.OpenAI = &OpenAIEmbedderConfig{}
		}
		o := cfg.Embedder.OpenAI
		if o.BaseURL == "" {
			o.BaseURL = "https://api.openai.com/v1"
		}
		if o.APIKeyEnv == "" {
			o.APIKeyEnv = "OPENAI_API_KEY"
		}
		if o.Model == "" {
			o.Model = "text-embedding-3-small"
		}
		if o.Dimensions == 0 {
			o.Dimensions = 1536
		}
		if o.TimeoutSecs == 0 {
			o.TimeoutSecs = 30
		}
		if o.BatchSize == 0 {
			o.BatchSize = 32
		}
		if o.Concurrency == 0 {
			o.Concurrency = 4
		}
	}
	if cfg.Embedder.Type == "hashing" {
		if cfg.Embedder.Hashing == nil {
			cfg.Embedder.Hashing = &HashingEmbedderConfig{}
		}
		if cfg.Embedder.Hashing.Dimensions == 0 {
			cfg.Embedder.Hashing.Dimensions = 1536
		}
	}
	if cfg.Completion.Type == "openai" {
		if cfg.Completion.OpenAI == nil {
			cfg.Completion.OpenAI = &OpenAICompletionConfig{}
		}
		o := cfg.Completion.OpenAI
		if o.BaseURL == "" {
			o.BaseURL = "https://api.openai.com/v1"
		}
		if o.APIKeyEnv == "" {
			o.APIKeyEnv = "OPENAI_API_KEY"
		}
		if o.Model == "" {
			o.Model = "gpt-3.5-turbo"
		}
		if o.TimeoutSecs == 0 {
			o.TimeoutSecs = 60
		}
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	cfg.Server.Addr = getEnv("DOCQA_ADDR", cfg.Server.Addr)
	cfg.Server.GinMode = getEnv("DOCQA_GIN_MODE", cfg.Server.GinMode)
	if origins := getEnv("DOCQA_CORS_ORIGINS", ""); origins != "" {
		cfg.Server.CORSOrigins = strings.Split(origins, ",")
	}
	if typ := getEnv("DOCQA_EMBEDDER", ""); typ != "" && typ != cfg.Embedder.Type {
		cfg.Embedder = EmbedderConfig{Type: typ}
	}
	cfg.Chunker.MaxTokens = getEnvAsInt("DOCQA_MAX_TOKENS", cfg.Chunker.MaxTokens)
	cfg.Retrieval.TopK = getEnvAsInt("DOCQA_TOP_K", cfg.Retrieval.TopK)

	if baseURL := getEnv("OPENAI_BASE_URL", ""); baseURL != "" {
		if isOpenAI(cfg.Embedder.Type) {
			if cfg.Embedder.OpenAI == nil {
				cfg.Embedder.OpenAI = &OpenAIEmbedderConfig{}
			}
			cfg.Embedder.OpenAI.BaseURL = baseURL
		}
		if isOpenAI(cfg.Completion.Type) {
			if cfg.Completion.OpenAI == nil {
				cfg.Completion.OpenAI = &OpenAICompletionConfig{}
			}
			cfg.Completion.OpenAI.BaseURL = baseURL
		}
	}
}

// isOpenAI reports whether typ selects the OpenAI provider, which is also the default.
func isOpenAI(typ string) bool { return typ == "" || typ == "openai" }

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
