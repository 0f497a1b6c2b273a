package search

import (
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/vedicarchive/riksearch/index"
)

// defaultCacheCapacity bounds the keyword-search memoization cache.
const defaultCacheCapacity = 1024

// Engine answers ranked and keyword queries against the active index
// snapshot. The snapshot reference is swapped atomically and its contents
// are immutable, so query paths never take a lock; the keyword cache is
// the only mutable shared state.
type Engine struct {
	snapshot atomic.Pointer[index.Snapshot]
	cache    *ristretto.Cache[string, *Response]
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	cacheCapacity int64
	logger        *slog.Logger
}

// WithCacheCapacity bounds the number of memoized keyword responses.
// Default is 1024 entries.
func WithCacheCapacity(entries int64) Option {
	return func(c *engineConfig) {
		if entries > 0 {
			c.cacheCapacity = entries
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewEngine creates an engine with no snapshot installed. Queries return
// ErrNotReady until Install is called with a built index.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{
		cacheCapacity: defaultCacheCapacity,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, *Response]{
		NumCounters: cfg.cacheCapacity * 10,
		MaxCost:     cfg.cacheCapacity,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &Engine{
		cache:  cache,
		logger: cfg.logger,
	}, nil
}

// Install atomically swaps in a new snapshot and drops memoized keyword
// responses computed against the previous one. Requests already running
// against the old snapshot finish on it; new requests see the new one.
func (e *Engine) Install(snap *index.Snapshot) {
	e.snapshot.Store(snap)
	e.cache.Clear()
	if snap != nil {
		e.logger.Info("index snapshot installed",
			"verses", snap.Len(),
			"vocabulary", snap.VocabularySize())
	}
}

// Ready reports whether an index snapshot is installed and queryable.
func (e *Engine) Ready() bool {
	return e.snapshot.Load() != nil
}

// Close releases the keyword cache.
func (e *Engine) Close() {
	e.cache.Close()
}

// Search ranks all verses by cosine similarity to the query.
//
// Verses scoring strictly below MinSimilarity are discarded; the rest are
// ordered by similarity descending, ties broken by corpus order, then
// paginated. TotalResults counts every verse at or above the threshold,
// not just the returned window. An empty result is a normal outcome.
func (e *Engine) Search(p Params) (*Response, error) {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	fields, canonical := parseFields(p.Fields)

	sims := snap.Similarities(snap.QueryVector(p.Query))

	order := make([]int, len(sims))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if sims[a] > sims[b] {
			return -1
		}
		if sims[a] < sims[b] {
			return 1
		}
		return a - b // equal scores keep corpus order
	})

	// Scores are non-increasing after the sort, so the threshold is a
	// prefix cut: the first verse below it ends the scan.
	total := 0
	for _, doc := range order {
		if sims[doc] < p.MinSimilarity {
			break
		}
		total++
	}

	start, end := pageBounds(total, p.Page, p.PageSize)
	results := make([]Result, 0, end-start)
	for _, doc := range order[start:end] {
		score := sims[doc]
		results = append(results, project(snap.Verse(doc), &score, fields))
	}

	minSim := p.MinSimilarity
	return &Response{
		Query:         p.Query,
		Fields:        canonical,
		Page:          p.Page,
		PageSize:      p.PageSize,
		TotalResults:  total,
		MinSimilarity: &minSim,
		Results:       results,
	}, nil
}
