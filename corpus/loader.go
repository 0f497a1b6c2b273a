package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/vedicarchive/riksearch/core"
)

// rawRik mirrors one verse record in the scraped JSON corpus.
type rawRik struct {
	RikNumber   int    `json:"rik_number"`
	Translation string `json:"translation"`
	Deity       string `json:"deity"`
	Samhita     struct {
		Devanagari struct {
			Text string `json:"text"`
		} `json:"devanagari"`
	} `json:"samhita"`
	Padapatha struct {
		Transliteration struct {
			Text string `json:"text"`
		} `json:"transliteration"`
	} `json:"padapatha"`
}

// LoadFile loads the corpus from a JSON file on disk.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses the scraped corpus from r and builds an immutable Store.
//
// The source format is a nested mapping of "Mandala N" -> "Sukta N" ->
// ordered verse records. Labels are parsed to integers here, once; books
// and sections are ordered numerically, verses keep source order.
func Load(r io.Reader) (*Store, error) {
	var raw map[string]map[string][]rawRik
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	books := make([]*Book, 0, len(raw))
	for mandalaLabel, rawSuktas := range raw {
		mandala, err := parseLabel(mandalaLabel)
		if err != nil {
			return nil, err
		}

		sections := make([]*Section, 0, len(rawSuktas))
		for suktaLabel, riks := range rawSuktas {
			sukta, err := parseLabel(suktaLabel)
			if err != nil {
				return nil, err
			}

			verses := make([]core.Verse, 0, len(riks))
			for _, rik := range riks {
				verses = append(verses, core.Verse{
					Ref: core.VerseRef{
						Mandala: mandala,
						Sukta:   sukta,
						Rik:     rik.RikNumber,
					},
					OriginalScript:  rik.Samhita.Devanagari.Text,
					Transliteration: rik.Padapatha.Transliteration.Text,
					Translation:     rik.Translation,
					Deity:           rik.Deity,
				})
			}
			sections = append(sections, &Section{Number: sukta, Verses: verses})
		}

		sort.Slice(sections, func(i, j int) bool {
			return sections[i].Number < sections[j].Number
		})
		books = append(books, &Book{Number: mandala, Sections: sections})
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].Number < books[j].Number
	})

	store, err := newStore(books)
	if err != nil {
		return nil, err
	}

	slog.Default().Info("corpus loaded",
		"mandalas", len(store.books),
		"verses", store.Len())
	return store, nil
}

// parseLabel extracts the trailing integer from a corpus label such as
// "Mandala 3" or "Sukta 12".
func parseLabel(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}
	return n, nil
}
