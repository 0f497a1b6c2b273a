package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and strips punctuation",
			text: "Praise be to Agni, god of fire!",
			want: []string{"praise", "agni", "god", "fire"},
		},
		{
			name: "drops stop words",
			text: "the and of to",
			want: []string{},
		},
		{
			name: "drops single characters",
			text: "I a x agni",
			want: []string{"agni"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.text))
		})
	}
}

func TestTerms_Bigrams(t *testing.T) {
	terms := Terms("Praise be to Agni, god of fire")

	// Unigrams first, then adjacent bigrams of the filtered tokens.
	assert.Equal(t, []string{
		"praise", "agni", "god", "fire",
		"praise agni", "agni god", "god fire",
	}, terms)
}

func TestTerms_SingleToken(t *testing.T) {
	assert.Equal(t, []string{"agni"}, Terms("Agni"))
}

func TestTerms_Empty(t *testing.T) {
	assert.Nil(t, Terms("the of and"))
}
