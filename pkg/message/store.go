// store.go — Store contract and the in-memory implementation.
package message

import (
	"context"
	"sync"
)

// Store is content-addressed record persistence.
//
// Put normalizes the record, derives its id and writes the document if
// it is not already present; it returns the same id either way
// (idempotent create). Get returns ErrNotFound for missing or malformed
// documents and *StorageError for backend faults.
type Store interface {
	Put(ctx context.Context, rec Record) (string, error)
	Get(ctx context.Context, id string) (Record, error)
}

// MemStore is a concurrency-safe in-memory Store, used in tests and as
// a fallback when no data directory is configured.
type MemStore struct {
	mu   sync.RWMutex
	recs map[string]Record
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{recs: make(map[string]Record)}
}

func (s *MemStore) Put(_ context.Context, rec Record) (string, error) {
	rec = Normalize(rec)
	if rec.Message == "" {
		return "", ErrEmptyMessage
	}

	id := DeriveID(rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recs[id]; !ok {
		s.recs[id] = rec
	}
	return id, nil
}

func (s *MemStore) Get(_ context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.recs[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Len reports the number of stored records.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs)
}
