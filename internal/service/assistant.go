package service

import (
	"context"
	"fmt"
	"strings"

	"docqa/internal/domain"
)

const DefaultSystemPrompt = "You are a helpful AI assistant."

// Answer is a grounded reply together with the chunks it was grounded on.
type Answer struct {
	Reply   string                `json:"reply"`
	Sources []domain.SearchResult `json:"sources"`
}

// Assistant answers questions about the indexed document using a language model.
type Assistant struct {
	pipeline     *Pipeline
	completer    domain.Completer
	systemPrompt string
}

// NewAssistant returns an assistant over pipeline. A nil completer makes Ask
// return the retrieved sources without a reply.
func NewAssistant(pipeline *Pipeline, completer domain.Completer, systemPrompt string) *Assistant {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	return &Assistant{pipeline: pipeline, completer: completer, systemPrompt: systemPrompt}
}

// Ask retrieves the k chunks closest to question and asks the model to answer from them only.
func (a *Assistant) Ask(ctx context.Context, question string, k int) (*Answer, error) {
	sources, err := a.pipeline.Retrieve(ctx, question, k)
	if err != nil {
		return nil, err
	}
	answer := &Answer{Sources: sources}
	if a.completer == nil {
		return answer, nil
	}
	reply, err := a.completer.Complete(ctx, a.systemPrompt, BuildPrompt(question, sources))
	if err != nil {
		return nil, fmt.Errorf("complete answer: %w", err)
	}
	answer.Reply = strings.TrimSpace(reply)
	return answer, nil
}

// BuildPrompt joins the retrieved chunks into a context block followed by the question.
func BuildPrompt(question string, sources []domain.SearchResult) string {
	texts := make([]string, len(sources))
	for i, s := range sources {
		texts[i] = s.Chunk.Text
	}
	var b strings.Builder
	b.WriteString("Use only the following document data to answer the question:\n\n")
	b.WriteString(strings.Join(texts, "\n\n"))
	b.WriteString("\n\nQuestion: ")
	b.WriteString(strings.TrimSpace(question))
	b.WriteString("\nAnswer:")
	return b.String()
}
