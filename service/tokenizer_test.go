package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_OffsetsIndexOriginalText(t *testing.T) {
	text := "The Eiffel Tower, built in 1889, is 330 meters tall."
	tokens := Tokenize(text)
	require.NotEmpty(t, tokens)

	for _, tok := range tokens {
		assert.Equal(t, tok.Text, text[tok.Start:tok.End])
	}
}

func TestTokenize_WordsAndNumbers(t *testing.T) {
	tokens := Tokenize("built in 1889, it's tall")
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}
	assert.Equal(t, []string{"built", "in", "1889", "it's", "tall"}, words)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  ...  "))
}

func TestTokenize_TrailingWord(t *testing.T) {
	tokens := Tokenize("ends with word")
	require.Len(t, tokens, 3)
	assert.Equal(t, "word", tokens[2].Text)
	assert.Equal(t, len("ends with word"), tokens[2].End)
}
