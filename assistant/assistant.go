// Copyright 2026 Vedic Archive Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/vedicarchive/riksearch/ai"
	"github.com/vedicarchive/riksearch/core"
	"github.com/vedicarchive/riksearch/search"
)

const (
	// DefaultMaxResults bounds how many verses are retrieved as context.
	DefaultMaxResults = 5

	// DefaultMinSimilarity is the retrieval threshold. It sits well below
	// the search default so the model sees loosely related verses too.
	DefaultMinSimilarity = 0.1
)

// noResultsAnswer is returned without calling the model when retrieval
// finds no verses for the question.
const noResultsAnswer = "I apologize, but I couldn't find any verses in the Rigveda that specifically mention your query. " +
	"Could you try:\n" +
	"1. Using different keywords or terms\n" +
	"2. Being more specific about what aspect you're interested in\n" +
	"3. Checking if there's a different way to phrase your question"

// Assistant answers questions about hymns using retrieved verses as
// grounding context for a language model.
type Assistant struct {
	engine        *search.Engine
	answerer      ai.Answerer
	maxResults    int
	minSimilarity float64
	logger        *slog.Logger
}

// Option configures an Assistant.
type Option func(*Assistant) error

// WithMaxResults sets how many verses are retrieved as context.
// Default is DefaultMaxResults.
func WithMaxResults(n int) Option {
	return func(a *Assistant) error {
		if n < 1 || n > search.MaxPageSize {
			return fmt.Errorf("max results must be in 1..%d, got %d", search.MaxPageSize, n)
		}
		a.maxResults = n
		return nil
	}
}

// WithMinSimilarity sets the retrieval threshold.
// Default is DefaultMinSimilarity.
func WithMinSimilarity(min float64) Option {
	return func(a *Assistant) error {
		if min < 0 || min > 1 {
			return fmt.Errorf("min similarity must be in 0..1, got %g", min)
		}
		a.minSimilarity = min
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assistant) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// New creates a new assistant.
func New(engine *search.Engine, answerer ai.Answerer, opts ...Option) (*Assistant, error) {
	if engine == nil {
		return nil, ErrEngineRequired
	}
	if answerer == nil {
		return nil, ErrAnswererRequired
	}

	a := &Assistant{
		engine:        engine,
		answerer:      answerer,
		maxResults:    DefaultMaxResults,
		minSimilarity: DefaultMinSimilarity,
		logger:        slog.Default().With("component", "assistant"),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// AskResponse carries the answer together with the verses it was
// grounded in, so callers can cite them.
type AskResponse struct {
	Query   string          `json:"query"`
	Context []search.Result `json:"context"`
	Answer  string          `json:"answer"`
}

// Ask answers a question about the hymns. The fields parameter selects
// which verse fields are projected into the returned context; the
// translation is always retrieved since it grounds the model.
func (a *Assistant) Ask(ctx context.Context, question string, fields []string) (*AskResponse, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	resp, err := a.engine.Search(search.Params{
		Query:         question,
		Fields:        withTranslation(fields),
		Page:          1,
		PageSize:      a.maxResults,
		MinSimilarity: a.minSimilarity,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		a.logger.Debug("no context retrieved", "question", question)
		return &AskResponse{
			Query:   question,
			Context: []search.Result{},
			Answer:  noResultsAnswer,
		}, nil
	}

	passages := make([]ai.Passage, 0, len(resp.Results))
	for _, res := range resp.Results {
		passages = append(passages, buildPassage(res))
	}

	answer, err := a.answerer.Answer(ctx, question, passages)
	if err != nil {
		a.logger.Error("failed to generate answer", "question", question, "err", err)
		return nil, err
	}

	a.logger.Info("answered question", "question", question, "passages", len(passages))
	return &AskResponse{
		Query:   question,
		Context: resp.Results,
		Answer:  answer,
	}, nil
}

// withTranslation ensures the translation field is among the requested ones.
func withTranslation(fields []string) []string {
	if slices.Contains(fields, string(core.FieldTranslation)) {
		return fields
	}
	out := make([]string, 0, len(fields)+1)
	out = append(out, fields...)
	return append(out, string(core.FieldTranslation))
}

// buildPassage renders one search hit into model-facing context.
func buildPassage(res search.Result) ai.Passage {
	var sb strings.Builder
	if res.Translation != "" {
		fmt.Fprintf(&sb, "Translation: %s\n", res.Translation)
	}
	if res.OriginalScript != "" {
		fmt.Fprintf(&sb, "Devanagari: %s\n", res.OriginalScript)
	}
	if res.Transliteration != "" {
		fmt.Fprintf(&sb, "Transliteration: %s\n", res.Transliteration)
	}
	if res.Deity != "" {
		fmt.Fprintf(&sb, "Deity: %s\n", res.Deity)
	}

	var relevance float64
	if res.SimilarityScore != nil {
		relevance = *res.SimilarityScore
	}

	return ai.Passage{
		Citation:  fmt.Sprintf("Mandala %d, Sukta %d, Rik %d", res.Mandala, res.Sukta, res.Rik),
		Text:      sb.String(),
		Relevance: relevance,
	}
}
