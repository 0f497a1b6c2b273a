package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedicarchive/riksearch/core"
	"github.com/vedicarchive/riksearch/index"
)

func buildTestEngine(t *testing.T, verses []core.Verse) *Engine {
	t.Helper()
	snap, err := index.Build(verses)
	require.NoError(t, err)

	engine, err := NewEngine()
	require.NoError(t, err)
	t.Cleanup(engine.Close)
	engine.Install(snap)
	return engine
}

func agniIndraCorpus() []core.Verse {
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
	}
}

func largeCorpus() []core.Verse {
	deities := []string{"Agni", "Indra", "Soma", "Varuna", "Ushas"}
	texts := []string{
		"Praise be to Agni, god of fire and guardian of the hearth",
		"Indra the mighty hurls his thunderbolt across the storm",
		"Soma flows bright for the singers of the sacred hymn",
		"Varuna watches the waters and upholds the cosmic law",
		"Ushas the dawn opens the doors of the morning sky",
		"Agni carries the offering upward with tongues of fire",
		"The singers praise Indra with hymns at the morning rite",
	}
	verses := make([]core.Verse, 0, len(texts))
	for i, text := range texts {
		verses = append(verses, core.Verse{
			Ref:         core.VerseRef{Mandala: 1, Sukta: 1 + i/3, Rik: 1 + i%3},
			Translation: text,
			Deity:       deities[i%len(deities)],
		})
	}
	return verses
}

func TestSearch_NotReady(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)
	defer engine.Close()

	assert.False(t, engine.Ready())

	_, err = engine.Search(Params{Query: "agni", Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = engine.KeywordSearch(KeywordParams{Query: "agni", Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestSearch_Validation(t *testing.T) {
	engine := buildTestEngine(t, agniIndraCorpus())

	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			name:    "empty query",
			params:  Params{Query: "", Page: 1, PageSize: 10},
			wantErr: ErrEmptyQuery,
		},
		{
			name:    "page zero",
			params:  Params{Query: "agni", Page: 0, PageSize: 10},
			wantErr: ErrInvalidPage,
		},
		{
			name:    "page size zero",
			params:  Params{Query: "agni", Page: 1, PageSize: 0},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "page size 101",
			params:  Params{Query: "agni", Page: 1, PageSize: 101},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "negative threshold",
			params:  Params{Query: "agni", Page: 1, PageSize: 10, MinSimilarity: -0.1},
			wantErr: ErrInvalidMinSimilarity,
		},
		{
			name:    "threshold above one",
			params:  Params{Query: "agni", Page: 1, PageSize: 10, MinSimilarity: 1.1},
			wantErr: ErrInvalidMinSimilarity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Search(tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSearch_AgniOutranksIndra(t *testing.T) {
	engine := buildTestEngine(t, agniIndraCorpus())

	resp, err := engine.Search(Params{
		Query:         "Agni fire",
		Fields:        []string{"translation"},
		Page:          1,
		PageSize:      10,
		MinSimilarity: 0.1,
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Results)
	first := resp.Results[0]
	assert.Equal(t, 1, first.Mandala)
	assert.Equal(t, 1, first.Sukta)
	assert.Equal(t, 1, first.Rik)
	require.NotNil(t, first.SimilarityScore)

	if resp.TotalResults == 2 {
		second := resp.Results[1]
		require.NotNil(t, second.SimilarityScore)
		assert.Greater(t, *first.SimilarityScore, *second.SimilarityScore)
	} else {
		assert.Equal(t, 1, resp.TotalResults)
	}
}

func TestSearch_Determinism(t *testing.T) {
	engine := buildTestEngine(t, largeCorpus())

	params := Params{
		Query:         "praise the morning singers",
		Fields:        []string{"translation", "deity"},
		Page:          1,
		PageSize:      100,
		MinSimilarity: 0,
	}
	first, err := engine.Search(params)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := engine.Search(params)
		require.NoError(t, err)
		assert.Equal(t, first.TotalResults, again.TotalResults)
		assert.Equal(t, first.Results, again.Results)
	}
}

func TestSearch_ThresholdMonotonicity(t *testing.T) {
	engine := buildTestEngine(t, largeCorpus())

	prev := -1
	for _, min := range []float64{0, 0.05, 0.1, 0.2, 0.4, 0.8, 1.0} {
		resp, err := engine.Search(Params{
			Query:         "agni fire praise",
			Page:          1,
			PageSize:      100,
			MinSimilarity: min,
		})
		require.NoError(t, err)
		if prev >= 0 {
			assert.LessOrEqual(t, resp.TotalResults, prev,
				"raising min_similarity to %g must not grow total_results", min)
		}
		prev = resp.TotalResults
	}
}

func TestSearch_CosineBounds(t *testing.T) {
	engine := buildTestEngine(t, largeCorpus())

	resp, err := engine.Search(Params{
		Query:         "agni fire",
		Page:          1,
		PageSize:      100,
		MinSimilarity: 0.05,
	})
	require.NoError(t, err)

	for _, result := range resp.Results {
		require.NotNil(t, result.SimilarityScore)
		assert.GreaterOrEqual(t, *result.SimilarityScore, 0.05)
		assert.LessOrEqual(t, *result.SimilarityScore, 1.0+1e-12)
	}
}

func TestSearch_PaginationCompleteness(t *testing.T) {
	engine := buildTestEngine(t, largeCorpus())

	full, err := engine.Search(Params{
		Query:         "praise agni indra soma",
		Page:          1,
		PageSize:      100,
		MinSimilarity: 0,
	})
	require.NoError(t, err)
	require.Greater(t, full.TotalResults, 2)

	pageSize := 2
	var stitched []Result
	for page := 1; (page-1)*pageSize < full.TotalResults; page++ {
		resp, err := engine.Search(Params{
			Query:         "praise agni indra soma",
			Page:          page,
			PageSize:      pageSize,
			MinSimilarity: 0,
		})
		require.NoError(t, err)
		assert.Equal(t, full.TotalResults, resp.TotalResults)
		stitched = append(stitched, resp.Results...)
	}
	assert.Equal(t, full.Results, stitched, "concatenated pages must reproduce the full ranking")
}

func TestSearch_PageBeyondEnd(t *testing.T) {
	engine := buildTestEngine(t, agniIndraCorpus())

	resp, err := engine.Search(Params{
		Query:         "agni",
		Page:          50,
		PageSize:      10,
		MinSimilarity: 0,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 2, resp.TotalResults)
}

func TestSearch_EmptyResultIsNotAnError(t *testing.T) {
	engine := buildTestEngine(t, agniIndraCorpus())

	resp, err := engine.Search(Params{
		Query:         "varuna mitra aryaman",
		Page:          1,
		PageSize:      10,
		MinSimilarity: 0.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalResults)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestSearch_TiesKeepCorpusOrder(t *testing.T) {
	// Two identical translations score identically; the earlier verse wins.
	verses := []core.Verse{
		{Ref: core.VerseRef{Mandala: 1, Sukta: 1, Rik: 1}, Translation: "Agni the fire"},
		{Ref: core.VerseRef{Mandala: 1, Sukta: 1, Rik: 2}, Translation: "Agni the fire"},
		{Ref: core.VerseRef{Mandala: 1, Sukta: 1, Rik: 3}, Translation: "Indra the storm"},
	}
	engine := buildTestEngine(t, verses)

	resp, err := engine.Search(Params{
		Query:         "agni fire",
		Page:          1,
		PageSize:      10,
		MinSimilarity: 0.1,
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(resp.Results), 2)
	assert.Equal(t, 1, resp.Results[0].Rik)
	assert.Equal(t, 2, resp.Results[1].Rik)
}

func TestSearch_FieldProjection(t *testing.T) {
	verses := []core.Verse{
		{
			Ref:             core.VerseRef{Mandala: 1, Sukta: 1, Rik: 1},
			Translation:     "Praise be to Agni, god of fire",
			OriginalScript:  "अग्निमीळे",
			Transliteration: "agnim ILe",
			Deity:           "Agni",
		},
	}
	engine := buildTestEngine(t, verses)

	resp, err := engine.Search(Params{
		Query:         "agni",
		Fields:        []string{"deity", "nonsense_field"},
		Page:          1,
		PageSize:      10,
		MinSimilarity: 0.1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	result := resp.Results[0]
	assert.Equal(t, "Agni", result.Deity)
	assert.Empty(t, result.Translation, "unrequested fields must not be projected")
	assert.Empty(t, result.OriginalScript)
	assert.Empty(t, result.Transliteration)
	assert.Equal(t, []string{"deity"}, resp.Fields, "unknown field names are dropped silently")
}

func TestInstall_SwapsSnapshot(t *testing.T) {
	engine := buildTestEngine(t, agniIndraCorpus())

	// Rebuild over a different corpus and swap it in.
	snap, err := index.Build([]core.Verse{
		{Ref: core.VerseRef{Mandala: 9, Sukta: 1, Rik: 1}, Translation: "Soma pours through the filter"},
	})
	require.NoError(t, err)
	engine.Install(snap)

	resp, err := engine.Search(Params{Query: "soma filter", Page: 1, PageSize: 10, MinSimilarity: 0.1})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 9, resp.Results[0].Mandala)
}
