package service

import (
	"fmt"

	"github.com/docmind-ai/docmind-be/types"
)

// TextChunker splits raw document text into overlapping fixed-size chunks.
// Sizes are counted in characters, not tokens. Each chunk after the first
// starts overlapSize characters before the end of its predecessor, so
// adjacent chunks share a boundary region and retrieval keeps context that
// would otherwise be cut at chunk edges.
type TextChunker struct {
	chunkSize   int
	overlapSize int
}

var DefaultDocumentServiceConfig = types.DocumentServiceConfig{
	ChunkSize:   1000,
	OverlapSize: 200,
}

// NewTextChunker creates a chunker with the given chunk and overlap sizes.
// Zero or negative values fall back to the defaults.
func NewTextChunker(config types.DocumentServiceConfig) *TextChunker {
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultDocumentServiceConfig.ChunkSize
	}
	if config.OverlapSize < 0 {
		config.OverlapSize = DefaultDocumentServiceConfig.OverlapSize
	}
	return &TextChunker{
		chunkSize:   config.ChunkSize,
		overlapSize: config.OverlapSize,
	}
}

// Split chunks the text into the ordered overlapping sequence. Empty text
// yields an empty sequence. Concatenating the chunks with the shared overlap
// region removed reconstructs the original text exactly.
func (c *TextChunker) Split(text string) ([]string, error) {
	if c.overlapSize >= c.chunkSize {
		return nil, fmt.Errorf("%w: overlap size %d must be smaller than chunk size %d",
			types.ErrInvalidInput, c.overlapSize, c.chunkSize)
	}
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	if len(runes) <= c.chunkSize {
		return []string{text}, nil
	}

	var chunks []string
	start := 0
	for {
		end := start + c.chunkSize
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		chunks = append(chunks, string(runes[start:end]))
		start = end - c.overlapSize
	}
	return chunks, nil
}
