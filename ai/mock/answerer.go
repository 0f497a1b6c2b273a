package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/vedicarchive/riksearch/ai"
)

// MockAnswerer is a test double for ai.Answerer.
// It allows custom behavior injection via function fields.
type MockAnswerer struct {
	// AnswerFunc is called by Answer if set.
	// If nil, uses a deterministic default that echoes the question
	// and the passage citations.
	AnswerFunc func(ctx context.Context, question string, passages []ai.Passage) (string, error)

	callCount int
}

// NewMockAnswerer creates a mock answerer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockAnswerer().
func NewMockAnswerer() *MockAnswerer {
	return &MockAnswerer{}
}

// Answer returns a deterministic answer built from the question and
// passage citations, or delegates to AnswerFunc if set.
func (m *MockAnswerer) Answer(ctx context.Context, question string, passages []ai.Passage) (string, error) {
	m.callCount++

	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, question, passages)
	}

	citations := make([]string, 0, len(passages))
	for _, p := range passages {
		citations = append(citations, p.Citation)
	}
	return fmt.Sprintf("mock answer to %q based on [%s]", question, strings.Join(citations, "; ")), nil
}

// CallCount returns the number of times Answer was called.
func (m *MockAnswerer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockAnswerer) Reset() {
	m.callCount = 0
	m.AnswerFunc = nil
}
