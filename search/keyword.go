package search

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// KeywordSearch returns all verses whose translation contains the query
// as a case-insensitive substring, in corpus order, paginated like Search.
// Results carry no similarity score.
//
// Responses are memoized in the engine's bounded cache: repeated identical
// requests are common and the scan is linear in corpus size. Cached
// responses are shared between callers and must be treated as read-only.
func (e *Engine) KeywordSearch(p KeywordParams) (*Response, error) {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	fields, canonical := parseFields(p.Fields)

	key := keywordCacheKey(p.Query, canonical, p.Page, p.PageSize)
	if resp, ok := e.cache.Get(key); ok {
		return resp, nil
	}

	needle := strings.ToLower(p.Query)
	verses := snap.Verses()
	matched := make([]int, 0)
	for i, verse := range verses {
		if strings.Contains(strings.ToLower(verse.Translation), needle) {
			matched = append(matched, i)
		}
	}

	total := len(matched)
	start, end := pageBounds(total, p.Page, p.PageSize)
	results := make([]Result, 0, end-start)
	for _, doc := range matched[start:end] {
		results = append(results, project(verses[doc], nil, fields))
	}

	resp := &Response{
		Query:        p.Query,
		Fields:       canonical,
		Page:         p.Page,
		PageSize:     p.PageSize,
		TotalResults: total,
		Results:      results,
	}

	// Wait flushes the set buffer so an immediate identical request is
	// served from the cache.
	if e.cache.Set(key, resp, 1) {
		e.cache.Wait()
	}
	return resp, nil
}

// keywordCacheKey digests the canonicalized request tuple.
func keywordCacheKey(query string, fields []string, page, pageSize int) string {
	h, _ := blake2b.New(16, nil)
	fmt.Fprintf(h, "%s\x00%s\x00%d\x00%d", query, strings.Join(fields, ","), page, pageSize)
	return hex.EncodeToString(h.Sum(nil))
}
