package service

import (
	"fmt"

	"github.com/docmind-ai/docmind-be/types"
)

const (
	correctFeedback   = "Excellent! Your answer is correct."
	incorrectFeedback = "Not quite. A better answer would be: %s"
)

// AnswerScorer grades a user-submitted answer against the extracted reference
// answer by word-overlap similarity.
type AnswerScorer struct {
	threshold float64
}

// NewAnswerScorer creates a scorer marking answers correct above threshold.
// A non-positive threshold takes the default of 0.8.
func NewAnswerScorer(threshold float64) *AnswerScorer {
	if threshold <= 0 {
		threshold = 0.8
	}
	return &AnswerScorer{threshold: threshold}
}

// Score compares userAnswer with the reference answer and its context.
// The result's Reference field carries the context passage, not the short
// answer string, so the user can self-grade against the surrounding text.
func (s *AnswerScorer) Score(userAnswer string, reference types.Answer) types.EvaluationResult {
	similarity := JaccardSimilarity(userAnswer, reference.Answer)
	isCorrect := similarity > s.threshold

	feedback := correctFeedback
	if !isCorrect {
		feedback = fmt.Sprintf(incorrectFeedback, reference.Answer)
	}
	return types.EvaluationResult{
		IsCorrect: isCorrect,
		Feedback:  feedback,
		Reference: reference.Context,
	}
}
