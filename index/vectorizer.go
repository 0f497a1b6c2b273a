package index

import (
	"math"
	"sort"
)

// DefaultMaxFeatures caps the vocabulary at the same size the production
// corpus was tuned for. Terms beyond the cap never enter the vector space.
const DefaultMaxFeatures = 5000

// SparseVector is a term-weight vector with entries sorted by column index.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// IsZero reports whether the vector has no weight in the term space.
func (v SparseVector) IsZero() bool {
	return len(v.Indices) == 0
}

// Dot returns the dot product of two sparse vectors. For L2-normalized
// vectors this is their cosine similarity.
func (v SparseVector) Dot(other SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(other.Indices) {
		switch {
		case v.Indices[i] < other.Indices[j]:
			i++
		case v.Indices[i] > other.Indices[j]:
			j++
		default:
			sum += v.Values[i] * other.Values[j]
			i++
			j++
		}
	}
	return sum
}

// Vectorizer is a fitted TF-IDF transform. It is immutable after
// fitVectorizer and safe for concurrent use.
type Vectorizer struct {
	vocab map[string]int // term -> column
	terms []string       // column -> term
	idf   []float64      // column -> inverse document frequency
}

// fitVectorizer builds the capped vocabulary and idf weights from the
// tokenized corpus. When more distinct terms exist than maxFeatures, the
// top terms by corpus frequency are kept, ties broken lexicographically so
// the fit is deterministic. Columns are assigned in lexicographic term
// order.
func fitVectorizer(docs [][]string, maxFeatures int) (*Vectorizer, error) {
	counts := make(map[string]int)
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			counts[term]++
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}
	if len(counts) == 0 {
		return nil, ErrEmptyVocabulary
	}

	kept := make([]string, 0, len(counts))
	for term := range counts {
		kept = append(kept, term)
	}
	if len(kept) > maxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if counts[kept[i]] != counts[kept[j]] {
				return counts[kept[i]] > counts[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:maxFeatures]
	}
	sort.Strings(kept)

	v := &Vectorizer{
		vocab: make(map[string]int, len(kept)),
		terms: kept,
		idf:   make([]float64, len(kept)),
	}
	n := float64(len(docs))
	for col, term := range kept {
		v.vocab[term] = col
		// Smoothed idf: ln((1+n)/(1+df)) + 1.
		v.idf[col] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v, nil
}

// Transform maps tokenized terms into the fitted space: raw term counts
// weighted by idf, L2-normalized. Out-of-vocabulary terms contribute
// nothing; a text with no known terms maps to the zero vector.
func (v *Vectorizer) Transform(terms []string) SparseVector {
	tf := make(map[int]float64)
	for _, term := range terms {
		if col, ok := v.vocab[term]; ok {
			tf[col]++
		}
	}
	if len(tf) == 0 {
		return SparseVector{}
	}

	vec := SparseVector{
		Indices: make([]int, 0, len(tf)),
		Values:  make([]float64, 0, len(tf)),
	}
	for col := range tf {
		vec.Indices = append(vec.Indices, col)
	}
	sort.Ints(vec.Indices)

	var norm float64
	for _, col := range vec.Indices {
		w := tf[col] * v.idf[col]
		vec.Values = append(vec.Values, w)
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i := range vec.Values {
		vec.Values[i] /= norm
	}
	return vec
}

// VocabularySize returns the number of fitted terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.terms)
}
