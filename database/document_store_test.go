package database_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmind-ai/docmind-be/database"
)

func TestDocumentStore_EmptyAtStart(t *testing.T) {
	store := database.NewDocumentStore()

	text, index, ok := store.Get()
	assert.False(t, ok)
	assert.Empty(t, text)
	assert.Nil(t, index)
	assert.Empty(t, store.DocumentID())
}

func TestDocumentStore_SetReplacesWholesale(t *testing.T) {
	store := database.NewDocumentStore()

	first := buildIndex(t, []string{"first document"})
	id1 := store.Set("first document", first)
	require.NotEmpty(t, id1)

	second := buildIndex(t, []string{"second document"})
	id2 := store.Set("second document", second)
	assert.NotEqual(t, id1, id2)

	text, index, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "second document", text)
	assert.Same(t, second, index)
}

func TestDocumentStore_ConcurrentReadersSeeMatchedPair(t *testing.T) {
	store := database.NewDocumentStore()

	// Each document's index holds exactly its own text, so a reader can
	// verify it never observes a document paired with another document's
	// index.
	const writers = 4
	const docsPerWriter = 25
	total := writers * docsPerWriter
	texts := make([]string, total)
	indexes := make([]*database.VectorIndex, total)
	for i := 0; i < total; i++ {
		texts[i] = fmt.Sprintf("document number %d content", i)
		indexes[i] = buildIndex(t, []string{texts[i]})
	}
	store.Set(texts[0], indexes[0])

	var writersWG sync.WaitGroup
	for w := 0; w < writers; w++ {
		writersWG.Add(1)
		go func(w int) {
			defer writersWG.Done()
			for i := 0; i < docsPerWriter; i++ {
				pos := w*docsPerWriter + i
				store.Set(texts[pos], indexes[pos])
			}
		}(w)
	}

	done := make(chan struct{})
	readErr := make(chan error, 1)
	var readerWG sync.WaitGroup
	readerWG.Add(1)
	go func() {
		defer readerWG.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			text, index, ok := store.Get()
			if !ok {
				continue
			}
			results, err := index.Search(context.Background(), text, 1)
			if err != nil || len(results) != 1 || results[0] != text {
				select {
				case readErr <- fmt.Errorf("torn read: text %q paired with foreign index", text):
				default:
				}
				return
			}
		}
	}()

	writersWG.Wait()
	close(done)
	readerWG.Wait()

	select {
	case err := <-readErr:
		t.Fatal(err)
	default:
	}
}
