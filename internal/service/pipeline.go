package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"docqa/internal/domain"
	"docqa/internal/vectorstore"
)

// DefaultTopK is used when a query asks for a non-positive number of chunks.
const DefaultTopK = 3

// PipelineConfig wires the pipeline's collaborators.
type PipelineConfig struct {
	Chunker  domain.Chunker
	Embedder domain.Embedder
	NewIndex vectorstore.Factory
	// Summarizer is optional; without it IngestResult.Summary is empty.
	Summarizer          domain.Summarizer
	SummaryMaxSentences int
	// EmbedTimeout bounds every call to the embedder. Zero means no extra deadline.
	EmbedTimeout time.Duration
	DefaultTopK  int
}

// snapshot pairs an index with the chunk texts it was built from.
// It is never mutated after being published.
type snapshot struct {
	documentID string
	index      vectorstore.Index
	chunks     []string
	summary    string
}

// Pipeline segments, embeds and indexes one document at a time and answers
// nearest-chunk queries against it.
type Pipeline struct {
	cfg     PipelineConfig
	current atomic.Pointer[snapshot]
}

// IngestResult describes a committed document.
type IngestResult struct {
	DocumentID string `json:"document_id"`
	Chunks     int    `json:"chunks"`
	Summary    string `json:"summary,omitempty"`
}

// Status reports what the pipeline currently serves.
type Status struct {
	Indexed    bool   `json:"indexed"`
	DocumentID string `json:"document_id,omitempty"`
	Chunks     int    `json:"chunks"`
	Summary    string `json:"summary,omitempty"`
}

func NewPipeline(cfg PipelineConfig) (*Pipeline, error) {
	if cfg.Chunker == nil || cfg.Embedder == nil || cfg.NewIndex == nil {
		return nil, errors.New("pipeline requires a chunker, an embedder and an index factory")
	}
	if cfg.DefaultTopK <= 0 {
		cfg.DefaultTopK = DefaultTopK
	}
	return &Pipeline{cfg: cfg}, nil
}

// Ingest replaces the indexed document with text. The previous document stays
// queryable until the new one is fully embedded and indexed; on any error it
// remains the current one.
func (p *Pipeline) Ingest(ctx context.Context, text string) (*IngestResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty document: %w", domain.ErrInvalidInput)
	}
	chunks := p.cfg.Chunker.Segment(text)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("document produced no chunks: %w", domain.ErrInvalidInput)
	}

	started := time.Now()
	vectors, err := p.embedChunks(ctx, chunks)
	if err != nil {
		return nil, err
	}

	index, err := p.cfg.NewIndex(p.cfg.Embedder.Dimension())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	if err := index.Add(vectors); err != nil {
		return nil, fmt.Errorf("index chunks: %w", err)
	}

	var summary string
	if p.cfg.Summarizer != nil {
		summary, err = p.cfg.Summarizer.Summarize(text, p.cfg.SummaryMaxSentences)
		if err != nil {
			return nil, fmt.Errorf("summarize: %w", err)
		}
	}

	snap := &snapshot{
		documentID: uuid.NewString(),
		index:      index,
		chunks:     chunks,
		summary:    summary,
	}
	p.current.Store(snap)

	log.Printf("indexed document %s: %d chunks with %s in %s", snap.documentID, len(chunks), p.cfg.Embedder.Name(), time.Since(started).Round(time.Millisecond))
	return &IngestResult{DocumentID: snap.documentID, Chunks: len(chunks), Summary: summary}, nil
}

func (p *Pipeline) embedChunks(ctx context.Context, chunks []string) ([][]float32, error) {
	ctx, cancel := p.embedContext(ctx)
	defer cancel()
	vectors, err := p.cfg.Embedder.EmbedBatch(ctx, chunks)
	if err != nil {
		return nil, domain.WrapEmbedding("chunks", err)
	}
	if len(vectors) != len(chunks) {
		return nil, domain.WrapEmbedding("chunks", fmt.Errorf("got %d vectors for %d chunks", len(vectors), len(chunks)))
	}
	return vectors, nil
}

func (p *Pipeline) embedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.EmbedTimeout > 0 {
		return context.WithTimeout(ctx, p.cfg.EmbedTimeout)
	}
	return context.WithCancel(ctx)
}

// Retrieve returns the k chunks nearest to question, closest first.
func (p *Pipeline) Retrieve(ctx context.Context, question string, k int) ([]domain.SearchResult, error) {
	snap := p.current.Load()
	if snap == nil {
		return nil, domain.ErrNotIndexed
	}
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("empty question: %w", domain.ErrInvalidInput)
	}
	if k <= 0 {
		k = p.cfg.DefaultTopK
	}

	embedCtx, cancel := p.embedContext(ctx)
	vec, err := p.cfg.Embedder.Embed(embedCtx, question)
	cancel()
	if err != nil {
		return nil, domain.WrapEmbedding("query", err)
	}

	hits, err := snap.index.Search(vec, k)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	results := make([]domain.SearchResult, 0, len(hits))
	for _, h := range hits {
		if h.Position < 0 || h.Position >= len(snap.chunks) {
			continue
		}
		results = append(results, domain.SearchResult{
			Chunk:    domain.Chunk{Index: h.Position, Text: snap.chunks[h.Position]},
			Distance: h.Distance,
		})
	}
	return results, nil
}

// Query returns the texts of the k chunks nearest to question, closest first.
func (p *Pipeline) Query(ctx context.Context, question string, k int) ([]string, error) {
	results, err := p.Retrieve(ctx, question, k)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.Chunk.Text
	}
	return texts, nil
}

// Chunks returns the chunk texts of the current document in source order.
func (p *Pipeline) Chunks() []string {
	snap := p.current.Load()
	if snap == nil {
		return nil
	}
	return append([]string(nil), snap.chunks...)
}

func (p *Pipeline) Status() Status {
	snap := p.current.Load()
	if snap == nil {
		return Status{}
	}
	return Status{Indexed: true, DocumentID: snap.documentID, Chunks: len(snap.chunks), Summary: snap.summary}
}
