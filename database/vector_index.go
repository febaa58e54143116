package database

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/docmind-ai/docmind-be/types"
)

// Embedder converts text into a fixed-dimension numeric vector. Implementations
// may require a preparation phase over the chunk corpus before embedding.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(ctx context.Context, text string) ([]float64, error)
}

// VectorIndex is an in-memory nearest-neighbor index over document chunks.
// It is built once per upload and replaced wholesale on the next upload;
// after Build it is never mutated, so concurrent searches need no locking.
type VectorIndex struct {
	embedder Embedder
	chunks   []string
	vectors  [][]float64
}

// NewVectorIndex creates an empty index backed by the given embedder.
func NewVectorIndex(embedder Embedder) *VectorIndex {
	return &VectorIndex{embedder: embedder}
}

// Build prepares the embedder on the chunk corpus and embeds every chunk.
// Vectors are L2-normalized so similarity search reduces to a dot product.
func (idx *VectorIndex) Build(ctx context.Context, chunks []string) error {
	if len(chunks) == 0 {
		return fmt.Errorf("%w: no chunks to index", types.ErrInvalidInput)
	}
	if err := idx.embedder.Prepare(chunks); err != nil {
		return fmt.Errorf("%w: preparing embedder: %v", types.ErrModelFailure, err)
	}
	vectors := make([][]float64, 0, len(chunks))
	for i, chunk := range chunks {
		vec, err := idx.embedder.Embed(ctx, chunk)
		if err != nil {
			return fmt.Errorf("%w: embedding chunk %d: %v", types.ErrModelFailure, i, err)
		}
		vectors = append(vectors, normalize(vec))
	}
	idx.chunks = append([]string(nil), chunks...)
	idx.vectors = vectors
	return nil
}

// Len returns the number of indexed chunks.
func (idx *VectorIndex) Len() int {
	return len(idx.chunks)
}

// Search embeds the query with the index's embedder and returns the texts of
// the topK most similar chunks by cosine similarity. Ties are broken by the
// original chunk order.
func (idx *VectorIndex) Search(ctx context.Context, query string, topK int) ([]string, error) {
	if len(idx.chunks) == 0 {
		return nil, fmt.Errorf("%w: vector index is empty", types.ErrNotReady)
	}
	if topK <= 0 {
		topK = 3
	}
	queryVec, err := idx.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding query: %v", types.ErrModelFailure, err)
	}
	queryVec = normalize(queryVec)

	type scored struct {
		pos   int
		score float64
	}
	scores := make([]scored, len(idx.vectors))
	for i, vec := range idx.vectors {
		scores[i] = scored{pos: i, score: dot(vec, queryVec)}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].pos < scores[j].pos
	})

	if topK > len(scores) {
		topK = len(scores)
	}
	results := make([]string, 0, topK)
	for _, s := range scores[:topK] {
		results = append(results, idx.chunks[s.pos])
	}
	return results, nil
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func normalize(vec []float64) []float64 {
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return vec
	}
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = v / norm
	}
	return out
}
