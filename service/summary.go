package service

import (
	"context"
	"log"
	"strings"

	"github.com/docmind-ai/docmind-be/types"
)

// FailedSummaryText is returned when no segment could be summarized.
// Summarization is best-effort and must never block an upload, so every model
// failure here is captured into this sentinel instead of propagating.
const FailedSummaryText = "Failed to generate summary."

// SummaryModel condenses a single bounded segment of text.
type SummaryModel interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Summarizer produces a summary of arbitrary-length text with a
// chunk-then-reduce pass: the text is split into segments that fit the model
// input, each segment is summarized independently, and when more than one
// segment summary survives they are concatenated and summarized once more.
type Summarizer struct {
	chunker *TextChunker
	model   SummaryModel
}

// NewSummarizer creates a summarizer that segments input with the given
// chunking config before calling the model.
func NewSummarizer(config types.DocumentServiceConfig, model SummaryModel) *Summarizer {
	return &Summarizer{
		chunker: NewTextChunker(config),
		model:   model,
	}
}

// Summarize returns the summary of text, or FailedSummaryText when every
// segment summarization failed. It never returns an error.
func (s *Summarizer) Summarize(ctx context.Context, text string) string {
	segments, err := s.chunker.Split(text)
	if err != nil || len(segments) == 0 {
		return FailedSummaryText
	}

	summaries := make([]string, 0, len(segments))
	for i, segment := range segments {
		summary, err := s.model.Summarize(ctx, segment)
		if err != nil {
			log.Printf("Warning: failed to summarize segment %d: %v", i, err)
			continue
		}
		if strings.TrimSpace(summary) != "" {
			summaries = append(summaries, strings.TrimSpace(summary))
		}
	}
	if len(summaries) == 0 {
		return FailedSummaryText
	}
	if len(summaries) == 1 {
		return summaries[0]
	}

	combined := strings.Join(summaries, " ")
	reduced, err := s.model.Summarize(ctx, combined)
	if err != nil || strings.TrimSpace(reduced) == "" {
		log.Printf("Warning: reduction pass failed, returning combined segment summaries: %v", err)
		return combined
	}
	return strings.TrimSpace(reduced)
}
