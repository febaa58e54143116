package service

import (
	"context"
	"errors"
	"strings"
	"unicode"
)

// SpanModel scores every candidate answer position within a context window.
// For a window of n tokens it returns n start scores and n end scores; the
// extractor picks the span from the argmax of each. Any model producing such
// scores satisfies the contract.
type SpanModel interface {
	ScoreSpans(ctx context.Context, question, window []Token) (start, end []float64, err error)
}

// LexicalSpanModel is a local extractive QA model. It locates the region of
// the context densest in question terms and favors entity-like tokens there,
// with a question-type bias (where -> capitalized terms, when/how many ->
// numbers) and a penalty for tokens that merely echo the question.
type LexicalSpanModel struct {
	densityRadius int
}

// NewLexicalSpanModel creates a span model with the default scoring weights.
func NewLexicalSpanModel() *LexicalSpanModel {
	return &LexicalSpanModel{densityRadius: 8}
}

const (
	densityWeight   = 1.0
	entityBonus     = 1.5
	typeBonus       = 2.5
	echoPenalty     = 3.0
	firstTokenNudge = 0.1
)

func (m *LexicalSpanModel) ScoreSpans(_ context.Context, question, window []Token) ([]float64, []float64, error) {
	if len(window) == 0 {
		return nil, nil, errors.New("empty context window")
	}

	questionTerms := make(map[string]struct{})
	questionType := ""
	for _, tok := range question {
		norm := tok.Norm()
		switch norm {
		case "where", "when", "who", "what", "why", "how":
			if questionType == "" {
				questionType = norm
			}
			continue
		}
		if _, stop := embeddingStopwords[norm]; stop {
			continue
		}
		questionTerms[norm] = struct{}{}
	}

	matches := make([]bool, len(window))
	for i, tok := range window {
		matches[i] = termMatches(tok.Norm(), questionTerms)
	}

	scores := make([]float64, len(window))
	for i, tok := range window {
		density := 0.0
		lo := i - m.densityRadius
		if lo < 0 {
			lo = 0
		}
		hi := i + m.densityRadius
		if hi >= len(window) {
			hi = len(window) - 1
		}
		for j := lo; j <= hi; j++ {
			if matches[j] {
				density++
			}
		}
		score := densityWeight * density

		norm := tok.Norm()
		_, stop := embeddingStopwords[norm]
		entity := !stop && (isCapitalized(tok.Text) || containsDigit(tok.Text))
		if entity {
			score += entityBonus
		}
		if entity && !matches[i] {
			switch questionType {
			case "where", "who":
				if isCapitalized(tok.Text) {
					score += typeBonus
				}
			case "when", "how":
				if containsDigit(tok.Text) {
					score += typeBonus
				}
			}
		}
		if matches[i] {
			score -= echoPenalty
		}
		if i == 0 {
			// Keeps the all-zero degenerate case deterministic.
			score += firstTokenNudge
		}
		scores[i] = score
	}

	// Start and end share the same position scores; the extractor's tie
	// policy (earliest start, latest end) is what stretches spans across
	// plateaus of equally scored tokens.
	end := make([]float64, len(scores))
	copy(end, scores)
	return scores, end, nil
}

// termMatches reports whether norm matches any question term exactly or by a
// shared stem prefix of at least four characters.
func termMatches(norm string, terms map[string]struct{}) bool {
	if _, ok := terms[norm]; ok {
		return true
	}
	for term := range terms {
		if len(term) >= 4 && len(norm) >= 4 {
			if strings.HasPrefix(norm, term[:4]) || strings.HasPrefix(term, norm[:4]) {
				return true
			}
		}
	}
	return false
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func containsDigit(word string) bool {
	for _, r := range word {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
