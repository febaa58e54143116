package database

import (
	"sync"

	"github.com/google/uuid"
)

// DocumentStore holds the currently loaded document and its vector index.
// The process keeps a single document at a time: Set replaces both the text
// and the index in one step, so concurrent readers always observe a matched
// (text, index) pair, never a document with a stale index.
type DocumentStore struct {
	mu    sync.RWMutex
	id    string
	text  string
	index *VectorIndex
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Set atomically replaces the current document and index. The previous pair
// is discarded; in-flight readers holding the old snapshot keep using it.
func (s *DocumentStore) Set(text string, index *VectorIndex) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.id = id
	s.text = text
	s.index = index
	s.mu.Unlock()
	return id
}

// Get returns a consistent snapshot of the current document text and index.
// The boolean is false when no document has been loaded yet.
func (s *DocumentStore) Get() (string, *VectorIndex, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return "", nil, false
	}
	return s.text, s.index, true
}

// DocumentID returns the identifier assigned to the current document, or an
// empty string when the store is empty.
func (s *DocumentStore) DocumentID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}
