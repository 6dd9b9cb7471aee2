package chunker

import (
	"fmt"
	"unicode"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

// DefaultEncoding is the BPE encoding used by the OpenAI text-embedding-3 models.
const DefaultEncoding = "cl100k_base"

func init() {
	// Ship the BPE ranks with the binary instead of fetching them on first use.
	tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
}

// TokenCounter reports how many tokens a text occupies.
type TokenCounter interface {
	Count(text string) int
}

// TiktokenCounter counts tokens with the same BPE encoding the embedding model uses,
// so chunk budgets reflect real embedding input limits.
type TiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenCounter loads the named encoding. An empty name selects DefaultEncoding.
func NewTiktokenCounter(encoding string) (*TiktokenCounter, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", encoding, err)
	}
	return &TiktokenCounter{enc: enc}, nil
}

// Count returns the number of BPE tokens in text.
func (c *TiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// WhitespaceCounter approximates tokens as whitespace-separated words.
type WhitespaceCounter struct{}

func (WhitespaceCounter) Count(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if inWord {
				count++
				inWord = false
			}
		} else {
			inWord = true
		}
	}
	if inWord {
		count++
	}
	return count
}
