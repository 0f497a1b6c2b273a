package search

import "fmt"

const (
	// MaxPageSize bounds how many results one page may carry.
	MaxPageSize = 100

	// DefaultPageSize is the page size the serving layer applies when the
	// caller does not choose one.
	DefaultPageSize = 10

	// DefaultMinSimilarity is the ranked-search threshold the serving
	// layer applies when the caller does not choose one.
	DefaultMinSimilarity = 0.4
)

// Params describes one ranked search request.
type Params struct {
	// Query is the free-text query; it must not be empty.
	Query string

	// Fields names the verse fields to project into each result.
	// Unknown names are silently ignored.
	Fields []string

	// Page is the 1-based result page.
	Page int

	// PageSize is the number of results per page, in [1, MaxPageSize].
	PageSize int

	// MinSimilarity is the inclusive cosine threshold in [0, 1]; verses
	// scoring strictly below it are discarded.
	MinSimilarity float64
}

// Validate rejects malformed parameters before any scan or ranking work,
// reporting the first violated constraint.
func (p Params) Validate() error {
	if p.Query == "" {
		return ErrEmptyQuery
	}
	if p.Page < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidPageSize, p.PageSize, MaxPageSize)
	}
	if p.MinSimilarity < 0 || p.MinSimilarity > 1 {
		return fmt.Errorf("%w: got %g, want 0..1", ErrInvalidMinSimilarity, p.MinSimilarity)
	}
	return nil
}

// KeywordParams describes one keyword (substring) search request.
// Keyword search has no similarity threshold; matching is exact.
type KeywordParams struct {
	Query    string
	Fields   []string
	Page     int
	PageSize int
}

// Validate rejects malformed parameters before the corpus scan.
func (p KeywordParams) Validate() error {
	return Params{
		Query:    p.Query,
		Page:     p.Page,
		PageSize: p.PageSize,
	}.Validate()
}

// pageBounds returns the [start, end) window of page within total items.
// A page beyond the last one yields an empty window, not an error.
func pageBounds(total, page, pageSize int) (int, int) {
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}
