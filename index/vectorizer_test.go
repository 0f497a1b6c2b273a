package index

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitVectorizer_EmptyVocabulary(t *testing.T) {
	_, err := fitVectorizer([][]string{nil, nil}, DefaultMaxFeatures)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestFitVectorizer_IDF(t *testing.T) {
	docs := [][]string{
		{"agni", "fire"},
		{"agni", "storm"},
	}
	v, err := fitVectorizer(docs, DefaultMaxFeatures)
	require.NoError(t, err)
	require.Equal(t, 3, v.VocabularySize())

	// agni appears in both documents, fire in one.
	agni := v.idf[v.vocab["agni"]]
	fire := v.idf[v.vocab["fire"]]
	assert.InDelta(t, math.Log(3.0/3.0)+1, agni, 1e-12)
	assert.InDelta(t, math.Log(3.0/2.0)+1, fire, 1e-12)
	assert.Greater(t, fire, agni, "rarer terms must weigh more")
}

func TestFitVectorizer_FeatureCap(t *testing.T) {
	docs := [][]string{
		{"agni", "agni", "agni", "indra", "indra", "soma"},
	}
	v, err := fitVectorizer(docs, 2)
	require.NoError(t, err)

	// Top two terms by corpus frequency survive; soma is cut.
	assert.Equal(t, 2, v.VocabularySize())
	_, hasAgni := v.vocab["agni"]
	_, hasIndra := v.vocab["indra"]
	_, hasSoma := v.vocab["soma"]
	assert.True(t, hasAgni)
	assert.True(t, hasIndra)
	assert.False(t, hasSoma)

	// Terms outside the cap never match.
	assert.True(t, v.Transform([]string{"soma"}).IsZero())
}

func TestFitVectorizer_CapTieBreakDeterministic(t *testing.T) {
	docs := [][]string{{"zebra", "apple", "mango"}}

	for i := 0; i < 10; i++ {
		v, err := fitVectorizer(docs, 2)
		require.NoError(t, err)
		// Equal frequencies: lexicographic tie-break keeps apple and mango.
		assert.Equal(t, []string{"apple", "mango"}, v.terms)
	}
}

func TestTransform_Normalized(t *testing.T) {
	docs := [][]string{
		{"agni", "fire"},
		{"indra", "storm"},
	}
	v, err := fitVectorizer(docs, DefaultMaxFeatures)
	require.NoError(t, err)

	vec := v.Transform([]string{"agni", "fire", "fire"})
	require.False(t, vec.IsZero())

	var norm float64
	for _, val := range vec.Values {
		norm += val * val
	}
	assert.InDelta(t, 1.0, norm, 1e-12)
}

func TestTransform_OutOfVocabulary(t *testing.T) {
	v, err := fitVectorizer([][]string{{"agni"}}, DefaultMaxFeatures)
	require.NoError(t, err)

	assert.True(t, v.Transform([]string{"varuna", "mitra"}).IsZero())
	assert.True(t, v.Transform(nil).IsZero())
}

func TestSparseVector_Dot(t *testing.T) {
	a := SparseVector{Indices: []int{0, 2, 5}, Values: []float64{1, 2, 3}}
	b := SparseVector{Indices: []int{2, 3, 5}, Values: []float64{4, 5, 6}}

	assert.InDelta(t, 2*4+3*6, a.Dot(b), 1e-12)
	assert.InDelta(t, a.Dot(b), b.Dot(a), 1e-12)
	assert.Zero(t, a.Dot(SparseVector{}))
}
