package storage

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/snapshot"
)

// MemoryStorage keeps snapshots in process memory. Contents are lost on exit.
type MemoryStorage struct {
	mu   sync.Mutex
	docs map[snapshot.Collection]json.RawMessage
}

var _ snapshot.Store = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{docs: make(map[snapshot.Collection]json.RawMessage)}
}

func (s *MemoryStorage) Get(ctx context.Context, name snapshot.Collection) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, ok := s.docs[name]
	if !ok {
		return nil, snapshot.ErrNotFound
	}
	return slices.Clone(body), nil
}

func (s *MemoryStorage) Put(ctx context.Context, name snapshot.Collection, body json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[name] = slices.Clone(body)
	return nil
}

func (s *MemoryStorage) Update(ctx context.Context, name snapshot.Collection, fn func(json.RawMessage) (json.RawMessage, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(slices.Clone(s.docs[name]))
	if err != nil {
		return err
	}

	s.docs[name] = slices.Clone(next)
	return nil
}
