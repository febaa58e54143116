package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmind-ai/docmind-be/types"
)

// stubSummaryModel records calls and can be scripted to fail.
type stubSummaryModel struct {
	calls   []string
	failOn  func(call int) bool
	results func(text string) string
}

func (m *stubSummaryModel) Summarize(_ context.Context, text string) (string, error) {
	call := len(m.calls)
	m.calls = append(m.calls, text)
	if m.failOn != nil && m.failOn(call) {
		return "", errors.New("model unavailable")
	}
	if m.results != nil {
		return m.results(text), nil
	}
	return "summary of segment", nil
}

func summaryConfig(segmentSize int) types.DocumentServiceConfig {
	return types.DocumentServiceConfig{ChunkSize: segmentSize, OverlapSize: 0}
}

func TestSummarizer_SingleSegment(t *testing.T) {
	model := &stubSummaryModel{}
	s := NewSummarizer(summaryConfig(1000), model)

	out := s.Summarize(context.Background(), "short text that fits one segment")
	assert.Equal(t, "summary of segment", out)
	assert.Len(t, model.calls, 1, "single segment must not trigger a reduction pass")
}

func TestSummarizer_MultiSegmentReduces(t *testing.T) {
	model := &stubSummaryModel{results: func(text string) string {
		if strings.Contains(text, "summary:") {
			return "reduced"
		}
		return "summary: " + text[:8]
	}}
	s := NewSummarizer(summaryConfig(50), model)

	text := strings.Repeat("many words repeated to overflow the segment size. ", 10)
	out := s.Summarize(context.Background(), text)
	assert.Equal(t, "reduced", out)
	require.Greater(t, len(model.calls), 2)
	// The final call receives the concatenated segment summaries.
	assert.Contains(t, model.calls[len(model.calls)-1], "summary:")
}

func TestSummarizer_SkipsFailedSegments(t *testing.T) {
	// First segment fails, the rest succeed; the failure must be absorbed.
	model := &stubSummaryModel{failOn: func(call int) bool { return call == 0 }}
	s := NewSummarizer(summaryConfig(50), model)

	text := strings.Repeat("sentence about machinery and maintenance schedules. ", 5)
	out := s.Summarize(context.Background(), text)
	assert.NotEqual(t, FailedSummaryText, out)
	assert.NotEmpty(t, out)
}

func TestSummarizer_AllSegmentsFail(t *testing.T) {
	model := &stubSummaryModel{failOn: func(int) bool { return true }}
	s := NewSummarizer(summaryConfig(50), model)

	out := s.Summarize(context.Background(), strings.Repeat("text ", 100))
	assert.Equal(t, FailedSummaryText, out)
}

func TestSummarizer_EmptyText(t *testing.T) {
	model := &stubSummaryModel{}
	s := NewSummarizer(summaryConfig(1000), model)

	assert.Equal(t, FailedSummaryText, s.Summarize(context.Background(), ""))
	assert.Empty(t, model.calls)
}

func TestSummarizer_ReduceFailureFallsBack(t *testing.T) {
	// All segment passes succeed, only the reduction pass fails; the
	// concatenated segment summaries are still returned.
	segmentCalls := 0
	model := &stubSummaryModel{
		failOn: func(call int) bool {
			return call == segmentCalls // set below once segment count is known
		},
	}
	s := NewSummarizer(summaryConfig(50), model)
	text := strings.Repeat("different sentences fill the segments completely here. ", 6)

	chunker := NewTextChunker(summaryConfig(50))
	segments, err := chunker.Split(text)
	require.NoError(t, err)
	segmentCalls = len(segments)

	out := s.Summarize(context.Background(), text)
	assert.Contains(t, out, "summary of segment")
	assert.NotEqual(t, FailedSummaryText, out)
}

func TestFrequencySummaryModel_RanksSentences(t *testing.T) {
	model := NewFrequencySummaryModel(1)
	text := "Turbines drive the propeller shaft. Turbines need steam. The cook prepares lunch."

	out, err := model.Summarize(context.Background(), text)
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(out), "turbines")
}

func TestFrequencySummaryModel_EmptyInput(t *testing.T) {
	model := NewFrequencySummaryModel(3)
	_, err := model.Summarize(context.Background(), "   ")
	assert.Error(t, err)
}
