package service

import (
	"context"
	"errors"
	"math"
	"sort"
)

// stopwords filtered out of TF-IDF vocabularies and frequency summaries.
var embeddingStopwords = newStringSet(
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to",
	"of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were",
	"be", "been", "being", "it", "this", "that", "these", "those", "from",
	"up", "down", "over", "under", "again", "further", "than", "so", "such",
	"into", "about", "between", "through", "during", "before", "after",
	"above", "below", "out", "off", "own", "same", "too", "very", "can",
	"will", "just", "should", "now",
)

func newStringSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// TFIDFEmbedder produces fixed-dimension vectors without any external model.
// Prepare builds a vocabulary and smoothed IDF weights from the chunk corpus;
// Embed then maps any text onto that vocabulary. The dimension is fixed once
// Prepare has run, which is all the vector index requires.
type TFIDFEmbedder struct {
	vocabulary map[string]int
	idf        []float64
	prepared   bool
}

// NewTFIDFEmbedder creates an unprepared TF-IDF embedder.
func NewTFIDFEmbedder() *TFIDFEmbedder {
	return &TFIDFEmbedder{vocabulary: make(map[string]int)}
}

func (e *TFIDFEmbedder) Name() string { return "tfidf" }

// Prepare builds the vocabulary and IDF values from the provided corpus.
func (e *TFIDFEmbedder) Prepare(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus")
	}
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, term := range embeddingTerms(text) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return errors.New("no indexable terms in corpus")
	}

	// Stable term order keeps vector positions deterministic.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	e.vocabulary = make(map[string]int, len(terms))
	e.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		e.vocabulary[term] = i
		e.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	e.prepared = true
	return nil
}

func (e *TFIDFEmbedder) Dimension() int { return len(e.idf) }

// Embed computes the TF-IDF vector for the given text.
func (e *TFIDFEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if !e.prepared {
		return nil, errors.New("tfidf embedder not prepared")
	}
	vec := make([]float64, len(e.idf))
	tf := make(map[int]int)
	total := 0
	for _, term := range embeddingTerms(text) {
		if pos, ok := e.vocabulary[term]; ok {
			tf[pos]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}
	for pos, count := range tf {
		vec[pos] = float64(count) / float64(total) * e.idf[pos]
	}
	return vec, nil
}

func embeddingTerms(text string) []string {
	tokens := Tokenize(text)
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		term := tok.Norm()
		if _, stop := embeddingStopwords[term]; stop {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}
