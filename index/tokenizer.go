package index

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// English stop words excluded from the vector space. Matches the common
// analyzer list; stop words are removed before bigrams are formed, so
// "praise the lord" yields the bigram "praise lord".
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"being": true, "am": true, "do": true, "does": true, "did": true, "have": true,
	"has": true, "had": true, "will": true, "would": true, "shall": true,
	"should": true, "may": true, "might": true, "can": true, "could": true,
	"to": true, "of": true, "in": true, "on": true, "at": true, "by": true,
	"for": true, "with": true, "from": true, "into": true, "unto": true,
	"as": true, "that": true, "this": true, "these": true, "those": true,
	"it": true, "its": true, "he": true, "him": true, "his": true, "she": true,
	"her": true, "they": true, "them": true, "their": true, "we": true,
	"us": true, "our": true, "you": true, "your": true, "ye": true, "thy": true,
	"thee": true, "thou": true, "who": true, "whom": true, "which": true,
	"what": true, "then": true, "than": true, "so": true, "not": true,
	"no": true, "nor": true, "all": true, "both": true, "each": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"only": true, "own": true, "same": true, "too": true, "very": true,
	"when": true, "where": true, "while": true, "there": true, "here": true,
	"up": true, "down": true, "out": true, "over": true, "under": true,
	"again": true, "once": true, "now": true, "also": true,
}

// tokenize lowercases text, splits on non-alphanumeric runes, and drops
// stop words and single-character tokens.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	filtered := make([]string, 0, len(words))
	for _, word := range words {
		if utf8.RuneCountInString(word) < 2 {
			continue
		}
		if stopWords[word] {
			continue
		}
		filtered = append(filtered, word)
	}
	return filtered
}

// Terms extracts the indexable terms of a text: every surviving unigram
// followed by every adjacent bigram, bigram halves joined with a space.
func Terms(text string) []string {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	terms := make([]string, 0, 2*len(tokens)-1)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
