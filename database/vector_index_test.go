package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmind-ai/docmind-be/database"
	"github.com/docmind-ai/docmind-be/service"
	"github.com/docmind-ai/docmind-be/types"
)

var indexChunks = []string{
	"turbines convert steam pressure into rotational energy",
	"the hull is inspected for corrosion and weld defects",
	"crew training covers emergency procedures and drills",
}

func buildIndex(t *testing.T, chunks []string) *database.VectorIndex {
	t.Helper()
	index := database.NewVectorIndex(service.NewTFIDFEmbedder())
	require.NoError(t, index.Build(context.Background(), chunks))
	return index
}

func TestVectorIndex_SelfRetrieval(t *testing.T) {
	index := buildIndex(t, indexChunks)

	for _, chunk := range indexChunks {
		results, err := index.Search(context.Background(), chunk, 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, chunk, results[0], "query equal to an indexed chunk must return that chunk first")
	}
}

func TestVectorIndex_SearchEmptyIndex(t *testing.T) {
	index := database.NewVectorIndex(service.NewTFIDFEmbedder())

	_, err := index.Search(context.Background(), "anything", 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotReady)
}

func TestVectorIndex_BuildRequiresChunks(t *testing.T) {
	index := database.NewVectorIndex(service.NewTFIDFEmbedder())

	err := index.Build(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestVectorIndex_TopKBounded(t *testing.T) {
	index := buildIndex(t, indexChunks)

	results, err := index.Search(context.Background(), "steam turbines", 10)
	require.NoError(t, err)
	assert.Len(t, results, len(indexChunks))
	assert.Equal(t, indexChunks[0], results[0])
}

func TestVectorIndex_TiesKeepChunkOrder(t *testing.T) {
	// A query matching nothing scores every chunk equally; ties must come
	// back in original chunk order.
	index := buildIndex(t, indexChunks)

	results, err := index.Search(context.Background(), "zzzz qqqq", 3)
	require.NoError(t, err)
	assert.Equal(t, indexChunks, results)
}
