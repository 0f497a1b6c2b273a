package search

import (
	"github.com/vedicarchive/riksearch/core"
)

// Result is one caller-facing hit. Identity fields are always present;
// optional fields appear only when requested and non-empty. Keyword hits
// carry no similarity score.
type Result struct {
	Mandala         int      `json:"mandala"`
	Sukta           int      `json:"sukta"`
	Rik             int      `json:"rik_number"`
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
	OriginalScript  string   `json:"original_script,omitempty"`
	Transliteration string   `json:"transliteration,omitempty"`
	Translation     string   `json:"translation,omitempty"`
	Deity           string   `json:"deity,omitempty"`
}

// Response is the shared envelope of both search paths. Results of a
// ranked search carry MinSimilarity; keyword responses omit it.
type Response struct {
	Query         string   `json:"query"`
	Fields        []string `json:"fields"`
	Page          int      `json:"page"`
	PageSize      int      `json:"page_size"`
	TotalResults  int      `json:"total_results"`
	MinSimilarity *float64 `json:"min_similarity,omitempty"`
	Results       []Result `json:"results"`
}

// fieldSet is the parsed projection mask.
type fieldSet struct {
	originalScript  bool
	transliteration bool
	translation     bool
	deity           bool
}

// parseFields builds the projection mask from requested field names.
// Unknown names are silently ignored. The second return value is the
// canonical list of recognized names in declaration order; it is echoed
// in responses and keys the keyword cache, so that requests naming the
// same set in different orders are the same request.
func parseFields(names []string) (fieldSet, []string) {
	var set fieldSet
	for _, name := range names {
		switch core.Field(name) {
		case core.FieldOriginalScript:
			set.originalScript = true
		case core.FieldTransliteration:
			set.transliteration = true
		case core.FieldTranslation:
			set.translation = true
		case core.FieldDeity:
			set.deity = true
		}
	}

	canonical := make([]string, 0, len(core.Fields))
	for _, f := range core.Fields {
		switch {
		case f == core.FieldOriginalScript && set.originalScript,
			f == core.FieldTransliteration && set.transliteration,
			f == core.FieldTranslation && set.translation,
			f == core.FieldDeity && set.deity:
			canonical = append(canonical, string(f))
		}
	}
	return set, canonical
}

// project shapes one verse into a Result under the projection mask.
// Optional fields are included only when requested AND non-empty.
func project(verse core.Verse, score *float64, fields fieldSet) Result {
	r := Result{
		Mandala:         verse.Ref.Mandala,
		Sukta:           verse.Ref.Sukta,
		Rik:             verse.Ref.Rik,
		SimilarityScore: score,
	}
	if fields.originalScript && verse.OriginalScript != "" {
		r.OriginalScript = verse.OriginalScript
	}
	if fields.transliteration && verse.Transliteration != "" {
		r.Transliteration = verse.Transliteration
	}
	if fields.translation && verse.Translation != "" {
		r.Translation = verse.Translation
	}
	if fields.deity && verse.Deity != "" {
		r.Deity = verse.Deity
	}
	return r
}
