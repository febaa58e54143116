package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/docmind-ai/docmind-be/types"
)

// AnswerExtractor runs extractive question answering: given a question and a
// context passage it returns the best-scoring answer span as a verbatim
// substring of the context.
//
// Question and context share a combined token budget. When the pair exceeds
// it, the context is evaluated in sliding windows advancing by stride tokens;
// the first window is always evaluated, so short contexts are never skipped.
// Within each window the span is chosen by an independent argmax over start
// scores and over end scores. This mirrors the selection policy of common
// extractive QA pipelines and is deliberately not a joint argmax over valid
// (start, end) pairs: the picked end can precede the picked start, in which
// case the answer is the empty string. Ties go to the earliest start and the
// latest end.
type AnswerExtractor struct {
	model     SpanModel
	maxTokens int
	stride    int
}

// ExtractorConfig bounds the token window of the span model.
type ExtractorConfig struct {
	MaxTokens int // combined question+context token budget
	Stride    int // window advance in tokens
}

var DefaultExtractorConfig = ExtractorConfig{
	MaxTokens: 384,
	Stride:    128,
}

// NewAnswerExtractor creates an extractor over the given span model.
func NewAnswerExtractor(model SpanModel, config ExtractorConfig) *AnswerExtractor {
	if config.MaxTokens <= 0 {
		config.MaxTokens = DefaultExtractorConfig.MaxTokens
	}
	if config.Stride <= 0 {
		config.Stride = DefaultExtractorConfig.Stride
	}
	return &AnswerExtractor{
		model:     model,
		maxTokens: config.MaxTokens,
		stride:    config.Stride,
	}
}

// Extract returns the best answer span for question within contextText.
// The returned Answer.Answer is always a substring of contextText (possibly
// empty); Answer.Context is the full passage that was searched.
func (e *AnswerExtractor) Extract(ctx context.Context, question, contextText string) (types.Answer, error) {
	if strings.TrimSpace(contextText) == "" {
		return types.Answer{}, fmt.Errorf("%w: context is empty", types.ErrNoContext)
	}

	questionTokens := Tokenize(question)
	contextTokens := Tokenize(contextText)
	if len(contextTokens) == 0 {
		return types.Answer{}, fmt.Errorf("%w: context contains no words", types.ErrNoContext)
	}

	windowSize := e.maxTokens - len(questionTokens)
	if windowSize < e.stride {
		windowSize = e.stride
	}

	bestScore := 0.0
	bestStart, bestEnd := -1, -1
	for offset := 0; ; offset += e.stride {
		end := offset + windowSize
		if end > len(contextTokens) {
			end = len(contextTokens)
		}
		window := contextTokens[offset:end]

		startScores, endScores, err := e.model.ScoreSpans(ctx, questionTokens, window)
		if err != nil {
			return types.Answer{}, fmt.Errorf("%w: scoring spans: %v", types.ErrModelFailure, err)
		}

		si := argmaxFirst(startScores)
		ei := argmaxLast(endScores)
		if score := startScores[si] + endScores[ei]; bestStart < 0 || score > bestScore {
			bestScore = score
			bestStart = offset + si
			bestEnd = offset + ei
		}

		if end == len(contextTokens) {
			break
		}
	}

	startChar := contextTokens[bestStart].Start
	endChar := contextTokens[bestEnd].End
	answer := ""
	if startChar <= endChar {
		answer = contextText[startChar:endChar]
	}
	return types.Answer{Answer: answer, Context: contextText}, nil
}

func argmaxFirst(scores []float64) int {
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best
}

func argmaxLast(scores []float64) int {
	best := 0
	for i, s := range scores {
		if s >= scores[best] {
			best = i
		}
	}
	return best
}
