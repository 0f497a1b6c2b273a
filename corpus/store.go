package corpus

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vedicarchive/riksearch/core"
)

// Book is one mandala with its suktas in ascending order.
type Book struct {
	Number   int
	Sections []*Section
}

// Section is one sukta with its riks in source order.
type Section struct {
	Number int
	Verses []core.Verse
}

// Store is the loaded, immutable corpus. All methods are safe for
// unlimited concurrent readers; nothing mutates a Store after newStore.
type Store struct {
	books    []*Book
	byNumber map[int]*Book
	byRef    map[core.VerseRef]int // index into the flat verse sequence
	verses   []core.Verse          // flattened corpus order
}

func newStore(books []*Book) (*Store, error) {
	s := &Store{
		books:    books,
		byNumber: make(map[int]*Book, len(books)),
		byRef:    make(map[core.VerseRef]int),
	}
	for _, book := range books {
		s.byNumber[book.Number] = book
		for _, section := range book.Sections {
			for _, verse := range section.Verses {
				if _, dup := s.byRef[verse.Ref]; dup {
					return nil, fmt.Errorf("duplicate verse reference %s", verse.Ref)
				}
				s.byRef[verse.Ref] = len(s.verses)
				s.verses = append(s.verses, verse)
			}
		}
	}
	if len(s.verses) == 0 {
		return nil, ErrEmptyCorpus
	}
	return s, nil
}

// Len returns the number of verses in the corpus.
func (s *Store) Len() int {
	return len(s.verses)
}

// Verses returns the full corpus in its flattened, stable order.
// Callers must treat the returned slice as read-only.
func (s *Store) Verses() []core.Verse {
	return s.verses
}

// Mandalas lists the mandala numbers in ascending order.
func (s *Store) Mandalas() []int {
	numbers := make([]int, len(s.books))
	for i, book := range s.books {
		numbers[i] = book.Number
	}
	return numbers
}

// Suktas lists the sukta numbers of a mandala in ascending order.
func (s *Store) Suktas(mandala int) ([]int, error) {
	book, ok := s.byNumber[mandala]
	if !ok {
		return nil, fmt.Errorf("%w: mandala %d", ErrMandalaNotFound, mandala)
	}
	numbers := make([]int, len(book.Sections))
	for i, section := range book.Sections {
		numbers[i] = section.Number
	}
	return numbers, nil
}

// Riks lists the rik numbers of a sukta in source order.
func (s *Store) Riks(mandala, sukta int) ([]int, error) {
	section, err := s.section(mandala, sukta)
	if err != nil {
		return nil, err
	}
	numbers := make([]int, len(section.Verses))
	for i, verse := range section.Verses {
		numbers[i] = verse.Ref.Rik
	}
	return numbers, nil
}

// Verse fetches a single verse by reference.
func (s *Store) Verse(ref core.VerseRef) (core.Verse, error) {
	i, ok := s.byRef[ref]
	if !ok {
		return core.Verse{}, fmt.Errorf("%w: %s", ErrRikNotFound, ref)
	}
	return s.verses[i], nil
}

// Sukta returns all verses of a sukta in source order.
func (s *Store) Sukta(mandala, sukta int) ([]core.Verse, error) {
	section, err := s.section(mandala, sukta)
	if err != nil {
		return nil, err
	}
	return section.Verses, nil
}

func (s *Store) section(mandala, sukta int) (*Section, error) {
	book, ok := s.byNumber[mandala]
	if !ok {
		return nil, fmt.Errorf("%w: mandala %d", ErrMandalaNotFound, mandala)
	}
	for _, section := range book.Sections {
		if section.Number == sukta {
			return section, nil
		}
	}
	return nil, fmt.Errorf("%w: mandala %d sukta %d", ErrSuktaNotFound, mandala, sukta)
}

// Random returns a uniformly random verse.
func (s *Store) Random(rng *rand.Rand) core.Verse {
	return s.verses[rng.Intn(len(s.verses))]
}

// Daily returns the verse of the day: the choice is seeded by the date
// ordinal, so every caller sees the same verse for the same calendar day.
func (s *Store) Daily(day time.Time) core.Verse {
	ordinal := day.UTC().Truncate(24*time.Hour).Unix() / 86400
	rng := rand.New(rand.NewSource(ordinal))
	return s.Random(rng)
}

// AudioURL derives the recitation audio link for a sukta. The recordings
// are hosted externally, keyed by zero-padded mandala and sukta numbers.
func AudioURL(mandala, sukta int) string {
	return fmt.Sprintf(
		"https://sri-aurobindo.co.in/workings/matherials/rigveda/%02d/%02d-%03d.mp3",
		mandala, mandala, sukta)
}
