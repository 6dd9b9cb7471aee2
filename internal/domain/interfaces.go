package domain

import "context"

// Chunk is a contiguous span of the ingested document, in source order.
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// SearchResult represents a matching chunk with its squared L2 distance to the query.
type SearchResult struct {
	Chunk    Chunk   `json:"chunk"`
	Distance float32 `json:"distance"`
}

// Embedder converts free text into a fixed-dimension numeric vector.
type Embedder interface {
	Name() string
	Dimension() int
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch returns one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Chunker splits document text into chunks suitable for retrieval indexing.
type Chunker interface {
	Segment(text string) []string
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

// Completer sends a system instruction and a prompt to a language model and returns its reply.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}
