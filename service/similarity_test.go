package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccardSimilarity_Symmetric(t *testing.T) {
	a := "the quick brown fox"
	b := "the lazy brown dog"
	assert.Equal(t, JaccardSimilarity(a, b), JaccardSimilarity(b, a))
}

func TestJaccardSimilarity_Identity(t *testing.T) {
	assert.Equal(t, 1.0, JaccardSimilarity("steam turbine blade", "steam turbine blade"))
}

func TestJaccardSimilarity_Empty(t *testing.T) {
	assert.Equal(t, 0.0, JaccardSimilarity("", "anything"))
	assert.Equal(t, 0.0, JaccardSimilarity("anything", ""))
	assert.Equal(t, 0.0, JaccardSimilarity("", ""))
	assert.Equal(t, 0.0, JaccardSimilarity("   ", "word"))
}

func TestJaccardSimilarity_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, JaccardSimilarity("Paris France", "paris france"))
}

func TestJaccardSimilarity_PartialOverlap(t *testing.T) {
	// {a b c} vs {b c d}: 2 shared of 4 total
	assert.InDelta(t, 0.5, JaccardSimilarity("a b c", "b c d"), 1e-9)
}
