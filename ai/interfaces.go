package ai

import "context"

// Passage is one retrieved verse handed to the model as grounding context.
type Passage struct {
	// Citation identifies the verse, e.g. "Mandala 1, Sukta 1, Rik 1".
	Citation string

	// Text is the verse content shown to the model, typically the translation.
	Text string

	// Relevance is the retrieval similarity score in [0, 1].
	Relevance float64
}

// Answerer generates an answer to a question grounded in verse passages.
// Implementations must be thread-safe for concurrent use.
type Answerer interface {
	// Answer produces a prose answer to the question using the provided
	// passages as context. Passages are ordered by relevance, highest first.
	// Returns an error if generation fails.
	Answer(ctx context.Context, question string, passages []Passage) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management.
type AIProvider interface {
	// Answerer returns the question-answering service.
	// The returned Answerer is safe for concurrent use.
	Answerer() Answerer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
