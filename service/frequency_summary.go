package service

import (
	"context"
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

var sentencePattern = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

// FrequencySummaryModel is a local extractive summarizer: sentences are ranked
// by normalized word frequency (stopwords excluded) and the top ones are
// returned in their original order. It needs no external model, which makes
// it the default summary capability.
type FrequencySummaryModel struct {
	maxSentences int
}

// NewFrequencySummaryModel creates a summarizer keeping up to maxSentences
// sentences per segment.
func NewFrequencySummaryModel(maxSentences int) *FrequencySummaryModel {
	if maxSentences <= 0 {
		maxSentences = 5
	}
	return &FrequencySummaryModel{maxSentences: maxSentences}
}

func (m *FrequencySummaryModel) Summarize(_ context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("nothing to summarize")
	}
	sentences := sentencePattern.FindAllString(text, -1)
	if len(sentences) == 0 {
		return strings.TrimSpace(text), nil
	}

	freq := map[string]float64{}
	for _, sent := range sentences {
		for _, term := range embeddingTerms(sent) {
			freq[term]++
		}
	}
	maxFreq := 0.0
	for _, v := range freq {
		if v > maxFreq {
			maxFreq = v
		}
	}
	if maxFreq > 0 {
		for k, v := range freq {
			freq[k] = v / maxFreq
		}
	}

	type ranked struct {
		idx   int
		score float64
	}
	scores := make([]ranked, len(sentences))
	for i, sent := range sentences {
		terms := embeddingTerms(sent)
		score := 0.0
		for _, term := range terms {
			score += freq[term]
		}
		// Length normalization so long sentences do not dominate.
		if n := float64(len(terms)); n > 0 {
			score /= math.Sqrt(n)
		}
		scores[i] = ranked{i, score}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	keep := m.maxSentences
	if keep > len(scores) {
		keep = len(scores)
	}
	selected := make([]int, keep)
	for i := 0; i < keep; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)

	out := make([]string, 0, keep)
	for _, idx := range selected {
		out = append(out, strings.TrimSpace(sentences[idx]))
	}
	return strings.Join(out, " "), nil
}
