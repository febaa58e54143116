package service

import "strings"

// JaccardSimilarity computes word-overlap similarity between two texts:
// the size of the intersection of their lowercased whitespace-delimited word
// sets divided by the size of the union. Returns 0 when either side has no
// words. Used both for challenge context uniqueness filtering and for answer
// scoring as a cheap proxy for semantic similarity.
func JaccardSimilarity(text1, text2 string) float64 {
	words1 := wordSet(text1)
	words2 := wordSet(text2)
	if len(words1) == 0 || len(words2) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range words1 {
		if _, ok := words2[w]; ok {
			intersection++
		}
	}
	union := len(words1) + len(words2) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
