package index

import (
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/vedicarchive/riksearch/core"
)

// posting records one verse's weight for a vocabulary term.
type posting struct {
	doc    int
	weight float64
}

// Snapshot is the built, immutable search index: the fitted vectorizer,
// one L2-normalized row per verse, and the verse sequence the rows align
// to. Row i always describes verse i. A Snapshot is read-only after Build
// and safe for unlimited concurrent readers.
type Snapshot struct {
	vectorizer *Vectorizer
	rows       []SparseVector
	verses     []core.Verse
	postings   [][]posting // column -> verse weights, ascending doc order
}

type buildConfig struct {
	maxFeatures int
	poolSize    int
	logger      *slog.Logger
}

// Option configures Build.
type Option func(*buildConfig)

// WithMaxFeatures caps the vocabulary size.
// Default is DefaultMaxFeatures.
func WithMaxFeatures(n int) Option {
	return func(c *buildConfig) {
		if n > 0 {
			c.maxFeatures = n
		}
	}
}

// WithPoolSize sets the worker pool size used to tokenize and vectorize
// the corpus. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(c *buildConfig) {
		if size > 0 {
			c.poolSize = size
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *buildConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Build fits the vector space over the verses' translation texts.
//
// The verse slice is copied; the snapshot does not alias the caller's
// memory. Build fails if the corpus is empty or if no term survives
// tokenization; a partial index is never returned.
func Build(verses []core.Verse, opts ...Option) (*Snapshot, error) {
	if len(verses) == 0 {
		return nil, ErrEmptyCorpus
	}

	cfg := &buildConfig{
		maxFeatures: DefaultMaxFeatures,
		poolSize:    max(runtime.NumCPU()/2, 1),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()

	snap := &Snapshot{
		verses: make([]core.Verse, len(verses)),
		rows:   make([]SparseVector, len(verses)),
	}
	copy(snap.verses, verses)

	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	// Tokenize every translation; output stays index-aligned with verses.
	docs := make([][]string, len(snap.verses))
	runIndexed(pool, len(snap.verses), func(i int) {
		docs[i] = Terms(snap.verses[i].Translation)
	})

	snap.vectorizer, err = fitVectorizer(docs, cfg.maxFeatures)
	if err != nil {
		return nil, err
	}

	runIndexed(pool, len(docs), func(i int) {
		snap.rows[i] = snap.vectorizer.Transform(docs[i])
	})

	// Postings are built serially in ascending doc order so that score
	// accumulation is deterministic.
	snap.postings = make([][]posting, snap.vectorizer.VocabularySize())
	for doc, row := range snap.rows {
		for k, col := range row.Indices {
			snap.postings[col] = append(snap.postings[col], posting{doc: doc, weight: row.Values[k]})
		}
	}

	cfg.logger.Info("search index built",
		"verses", len(snap.verses),
		"vocabulary", snap.vectorizer.VocabularySize(),
		"elapsed", time.Since(start))
	return snap, nil
}

// runIndexed executes fn(i) for i in [0,n) on the pool and waits for all
// tasks to finish. Tasks that cannot be submitted run inline.
func runIndexed(pool *ants.Pool, n int, fn func(i int)) {
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			fn(i)
		}
		if err := pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()
}

// Len returns the number of indexed verses.
func (s *Snapshot) Len() int {
	return len(s.verses)
}

// Verse returns the verse aligned with row i.
func (s *Snapshot) Verse(i int) core.Verse {
	return s.verses[i]
}

// Verses returns the index-aligned verse sequence in corpus order.
// Callers must treat the returned slice as read-only.
func (s *Snapshot) Verses() []core.Verse {
	return s.verses
}

// Row returns the term-weight vector aligned with verse i.
func (s *Snapshot) Row(i int) SparseVector {
	return s.rows[i]
}

// VocabularySize returns the number of fitted vocabulary terms.
func (s *Snapshot) VocabularySize() int {
	return s.vectorizer.VocabularySize()
}

// QueryVector projects a free-text query into the fitted term space.
// Out-of-vocabulary terms contribute zero weight.
func (s *Snapshot) QueryVector(query string) SparseVector {
	return s.vectorizer.Transform(Terms(query))
}

// Similarities computes the cosine similarity of the query vector against
// every verse row, in row order. Both sides are L2-normalized, so the
// accumulated dot product is the cosine; a zero-magnitude side scores 0.
func (s *Snapshot) Similarities(query SparseVector) []float64 {
	scores := make([]float64, len(s.rows))
	for k, col := range query.Indices {
		qw := query.Values[k]
		for _, p := range s.postings[col] {
			scores[p.doc] += qw * p.weight
		}
	}
	return scores
}
