package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/internal/domain"
	"docqa/internal/service"
)

type stubAssistant struct {
	question string
	k        int
	answer   *service.Answer
	err      error
}

func (s *stubAssistant) Ask(_ context.Context, question string, k int) (*service.Answer, error) {
	s.question, s.k = question, k
	return s.answer, s.err
}

func submit(t *testing.T, m Model, question string) Model {
	t.Helper()
	m.input.SetValue(question)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.True(t, m.pending)
	require.NotNil(t, cmd)
	next, _ = m.Update(cmd())
	return next.(Model)
}

func TestModel_AskAndBrowseSources(t *testing.T) {
	stub := &stubAssistant{answer: &service.Answer{
		Reply: "The patient takes insulin.",
		Sources: []domain.SearchResult{
			{Chunk: domain.Chunk{Index: 2, Text: "The patient takes insulin daily."}, Distance: 0.4},
			{Chunk: domain.Chunk{Index: 0, Text: "The patient has diabetes"}, Distance: 1.2},
		},
	}}
	m := New(context.Background(), stub, "summary", 3)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	m = submit(t, m, "  what medication?  ")
	assert.Equal(t, "what medication?", stub.question)
	assert.Equal(t, 3, stub.k)
	assert.False(t, m.pending)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.renderAnswer(), "Source 1/2")
	assert.Contains(t, m.renderAnswer(), "The patient takes insulin.")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)
	assert.Contains(t, m.renderAnswer(), "chunk #0")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)
}

func TestModel_AskError(t *testing.T) {
	stub := &stubAssistant{err: errors.New("no document uploaded")}
	m := New(context.Background(), stub, "", 3)

	m = submit(t, m, "anything")
	assert.True(t, strings.HasPrefix(m.status, "Error:"))
	assert.Equal(t, "No answer yet.", m.renderAnswer())
}

func TestModel_IgnoresBlankInput(t *testing.T) {
	m := New(context.Background(), &stubAssistant{}, "", 3)
	m.input.SetValue("   ")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, next.(Model).pending)
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := New(context.Background(), &stubAssistant{}, "", 3)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHighlightBestSentence(t *testing.T) {
	out := highlightBestSentence("The patient has diabetes. The patient takes insulin. Checked weekly", "insulin dose")
	assert.Contains(t, out, "The patient has diabetes.")
	assert.Contains(t, out, "insulin")
	assert.Contains(t, out, "Checked weekly")

	assert.Equal(t, "", highlightBestSentence("", "x"))
	assert.Equal(t, "One. Two.", highlightBestSentence("One. Two.", ""))
}
