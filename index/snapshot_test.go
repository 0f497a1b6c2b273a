package index

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedicarchive/riksearch/core"
)

func testVerses() []core.Verse {
	return []core.Verse{
		{
			Ref:         core.VerseRef{Mandala: 1, Sukta: 1, Rik: 1},
			Translation: "Praise be to Agni, god of fire",
			Deity:       "Agni",
		},
		{
			Ref:         core.VerseRef{Mandala: 1, Sukta: 1, Rik: 2},
			Translation: "Praise be to Indra, lord of storms",
			Deity:       "Indra",
		},
		{
			Ref:         core.VerseRef{Mandala: 2, Sukta: 1, Rik: 1},
			Translation: "Soma flows for the singers",
			Deity:       "Soma",
		},
	}
}

func TestBuild_EmptyCorpus(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestBuild_EmptyVocabulary(t *testing.T) {
	verses := []core.Verse{
		{Ref: core.VerseRef{Mandala: 1, Sukta: 1, Rik: 1}, Translation: ""},
		{Ref: core.VerseRef{Mandala: 1, Sukta: 1, Rik: 2}, Translation: "of the and"},
	}
	_, err := Build(verses)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestBuild_RowAlignment(t *testing.T) {
	verses := testVerses()
	snap, err := Build(verses)
	require.NoError(t, err)

	require.Equal(t, len(verses), snap.Len())
	for i := 0; i < snap.Len(); i++ {
		assert.Equal(t, verses[i].Ref, snap.Verse(i).Ref, "row %d must describe verse %d", i, i)
		assert.False(t, snap.Row(i).IsZero(), "row %d must carry weight", i)
	}
}

func TestBuild_AlignmentUnderConcurrency(t *testing.T) {
	// A large synthetic corpus tokenized across the worker pool must still
	// come out index-aligned.
	verses := make([]core.Verse, 500)
	for i := range verses {
		verses[i] = core.Verse{
			Ref:         core.VerseRef{Mandala: 1, Sukta: 1, Rik: i + 1},
			Translation: fmt.Sprintf("unique verse token%04d among common praise", i),
		}
	}

	snap, err := Build(verses, WithPoolSize(8))
	require.NoError(t, err)

	for i := range verses {
		require.Equal(t, verses[i].Ref, snap.Verse(i).Ref)
		q := snap.QueryVector(fmt.Sprintf("token%04d", i))
		sims := snap.Similarities(q)
		best, bestScore := -1, 0.0
		for doc, score := range sims {
			if score > bestScore {
				best, bestScore = doc, score
			}
		}
		require.Equal(t, i, best, "query for verse %d's unique token must hit row %d", i, i)
	}
}

func TestSnapshot_Similarities(t *testing.T) {
	snap, err := Build(testVerses())
	require.NoError(t, err)

	q := snap.QueryVector("Agni fire")
	sims := snap.Similarities(q)
	require.Len(t, sims, 3)

	assert.Greater(t, sims[0], sims[1], "the Agni verse must outscore the Indra verse")
	assert.Zero(t, sims[2], "the Soma verse shares no terms with the query")
	for _, s := range sims {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0+1e-12)
	}
}

func TestSnapshot_Similarities_ZeroQuery(t *testing.T) {
	snap, err := Build(testVerses())
	require.NoError(t, err)

	sims := snap.Similarities(snap.QueryVector("varuna mitra aryaman"))
	for _, s := range sims {
		assert.Zero(t, s)
	}
}

func TestSnapshot_SelfSimilarity(t *testing.T) {
	verses := testVerses()
	snap, err := Build(verses)
	require.NoError(t, err)

	// A verse queried with its own translation is its own best match.
	q := snap.QueryVector(verses[0].Translation)
	sims := snap.Similarities(q)
	assert.InDelta(t, 1.0, sims[0], 1e-9)
	assert.Less(t, sims[1], sims[0])
}

func TestBuild_MaxFeaturesOption(t *testing.T) {
	snap, err := Build(testVerses(), WithMaxFeatures(4))
	require.NoError(t, err)
	assert.Equal(t, 4, snap.VocabularySize())
}
