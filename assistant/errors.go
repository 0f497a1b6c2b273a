package assistant

import "errors"

var (
	// ErrEngineRequired indicates a nil search engine was supplied.
	ErrEngineRequired = errors.New("search engine is required")

	// ErrAnswererRequired indicates a nil answerer was supplied.
	ErrAnswererRequired = errors.New("answerer is required")

	// ErrEmptyQuestion indicates an empty question.
	ErrEmptyQuestion = errors.New("question must not be empty")
)
