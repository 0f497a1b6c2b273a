package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedicarchive/riksearch/ai"
	"github.com/vedicarchive/riksearch/ai/mock"
	"github.com/vedicarchive/riksearch/core"
	"github.com/vedicarchive/riksearch/index"
	"github.com/vedicarchive/riksearch/search"
)

func buildTestEngine(t *testing.T) *search.Engine {
	t.Helper()

	verses := []core.Verse{
		{
			Ref:         core.VerseRef{Mandala: 1, Sukta: 1, Rik: 1},
			Translation: "I magnify Agni the priest, the divine minister of the sacrifice.",
			Deity:       "Agni",
		},
		{
			Ref:         core.VerseRef{Mandala: 1, Sukta: 1, Rik: 2},
			Translation: "Agni worthy to be magnified by ancient and modern seers.",
			Deity:       "Agni",
		},
		{
			Ref:         core.VerseRef{Mandala: 2, Sukta: 12, Rik: 1},
			Translation: "Indra the mighty wielder of the thunderbolt slew the dragon.",
			Deity:       "Indra",
		},
	}

	snap, err := index.Build(verses)
	require.NoError(t, err)

	engine, err := search.NewEngine()
	require.NoError(t, err)
	t.Cleanup(engine.Close)
	engine.Install(snap)
	return engine
}

func TestNewValidation(t *testing.T) {
	engine := buildTestEngine(t)
	answerer := mock.NewMockAnswerer()

	_, err := New(nil, answerer)
	assert.ErrorIs(t, err, ErrEngineRequired)

	_, err = New(engine, nil)
	assert.ErrorIs(t, err, ErrAnswererRequired)

	_, err = New(engine, answerer, WithMaxResults(0))
	assert.Error(t, err)

	_, err = New(engine, answerer, WithMinSimilarity(1.5))
	assert.Error(t, err)
}

func TestAskGroundsAnswerInRetrievedVerses(t *testing.T) {
	engine := buildTestEngine(t)
	answerer := mock.NewMockAnswerer()

	var gotQuestion string
	var gotPassages []ai.Passage
	answerer.AnswerFunc = func(ctx context.Context, question string, passages []ai.Passage) (string, error) {
		gotQuestion = question
		gotPassages = passages
		return "Agni is the fire deity invoked as priest of the sacrifice.", nil
	}

	a, err := New(engine, answerer)
	require.NoError(t, err)

	resp, err := a.Ask(context.Background(), "who is agni the priest of the sacrifice", nil)
	require.NoError(t, err)

	assert.Equal(t, "who is agni the priest of the sacrifice", gotQuestion)
	require.NotEmpty(t, gotPassages)
	assert.Contains(t, gotPassages[0].Citation, "Mandala 1")
	assert.Contains(t, gotPassages[0].Text, "Translation:")
	assert.Greater(t, gotPassages[0].Relevance, 0.0)

	assert.Equal(t, "Agni is the fire deity invoked as priest of the sacrifice.", resp.Answer)
	assert.NotEmpty(t, resp.Context)
	// Translation is always retrieved for grounding
	assert.NotEmpty(t, resp.Context[0].Translation)
	assert.Equal(t, 1, answerer.CallCount())
}

func TestAskNoContextSkipsModel(t *testing.T) {
	engine := buildTestEngine(t)
	answerer := mock.NewMockAnswerer()

	a, err := New(engine, answerer, WithMinSimilarity(0.99))
	require.NoError(t, err)

	resp, err := a.Ask(context.Background(), "zzz qqq xxx", nil)
	require.NoError(t, err)

	assert.Empty(t, resp.Context)
	assert.True(t, strings.HasPrefix(resp.Answer, "I apologize"), "expected canned answer, got %q", resp.Answer)
	assert.Equal(t, 0, answerer.CallCount(), "model must not be called without context")
}

func TestAskEmptyQuestion(t *testing.T) {
	engine := buildTestEngine(t)
	a, err := New(engine, mock.NewMockAnswerer())
	require.NoError(t, err)

	_, err = a.Ask(context.Background(), "  ", nil)
	assert.ErrorIs(t, err, ErrEmptyQuestion)
}

func TestAskPropagatesAnswererError(t *testing.T) {
	engine := buildTestEngine(t)
	answerer := mock.NewMockAnswerer()
	answerer.AnswerFunc = func(ctx context.Context, question string, passages []ai.Passage) (string, error) {
		return "", errors.New("model unavailable")
	}

	a, err := New(engine, answerer)
	require.NoError(t, err)

	_, err = a.Ask(context.Background(), "who is agni", nil)
	assert.EqualError(t, err, "model unavailable")
}

func TestAskFieldsProjectedIntoContext(t *testing.T) {
	engine := buildTestEngine(t)
	a, err := New(engine, mock.NewMockAnswerer())
	require.NoError(t, err)

	resp, err := a.Ask(context.Background(), "who is agni the priest", []string{"deity"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Context)
	assert.Equal(t, "Agni", resp.Context[0].Deity)
	assert.NotEmpty(t, resp.Context[0].Translation)
}
