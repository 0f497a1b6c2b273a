// Package mock provides test double implementations of AI service interfaces.
//
// The mocks allow tests to run without an external model service and
// enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	provider := mock.NewMockProvider()
//	answer, err := provider.Answerer().Answer(ctx, "Who is Agni?", passages)
//
//	// Custom behavior injection
//	answerer := mock.NewMockAnswerer()
//	answerer.AnswerFunc = func(ctx context.Context, question string, passages []ai.Passage) (string, error) {
//	    return "canned answer", nil
//	}
//
// The default MockAnswerer echoes the question and the passage citations,
// so tests can assert that retrieved context reached the model.
package mock
