package chunker

import "strings"

const (
	// DefaultMaxTokens is the per-chunk token budget used when none is configured.
	DefaultMaxTokens = 500
	// Delimiter separates candidate units. It is a heuristic, not a sentence tokenizer.
	Delimiter = ". "
)

// TokenChunker groups sentences into chunks whose token count stays within a budget.
type TokenChunker struct {
	maxTokens int
	counter   TokenCounter
}

// NewTokenChunker returns a chunker with the given budget. Non-positive budgets
// fall back to DefaultMaxTokens and a nil counter to WhitespaceCounter.
func NewTokenChunker(maxTokens int, counter TokenCounter) *TokenChunker {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if counter == nil {
		counter = WhitespaceCounter{}
	}
	return &TokenChunker{maxTokens: maxTokens, counter: counter}
}

// MaxTokens returns the configured budget.
func (c *TokenChunker) MaxTokens() int { return c.maxTokens }

// Segment splits text into chunks in source order. Units that are blank, such
// as the one after a trailing Delimiter, are dropped; joining the result with
// Delimiter reproduces text without them. A single unit larger than the budget
// becomes its own oversized chunk; it is never split further.
func (c *TokenChunker) Segment(text string) []string {
	if text == "" {
		return nil
	}
	var chunks []string
	var buffer []string
	for _, unit := range strings.Split(text, Delimiter) {
		if strings.TrimSpace(unit) == "" {
			continue
		}
		candidate := append(buffer[:len(buffer):len(buffer)], unit)
		if len(buffer) == 0 || c.counter.Count(strings.Join(candidate, Delimiter)) <= c.maxTokens {
			buffer = candidate
			continue
		}
		chunks = append(chunks, strings.Join(buffer, Delimiter))
		buffer = []string{unit}
	}
	if len(buffer) > 0 {
		chunks = append(chunks, strings.Join(buffer, Delimiter))
	}
	return chunks
}
