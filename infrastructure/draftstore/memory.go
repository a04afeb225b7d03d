package draftstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"wesion-bff/domain/model"
	"wesion-bff/domain/repository"
)

// ErrNotFound is returned when no draft is parked under the given token, or
// when the entry has already been taken or expired.
var ErrNotFound = errors.New("draft not found")

type memoryEntry struct {
	draft     model.Draft
	expiresAt time.Time
}

// MemoryStore is the in-memory fallback used when Redis is not available.
// Entries do not survive a process restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore() repository.IDraftStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Save(ctx context.Context, token string, draft model.Draft, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{draft: draft, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Take(ctx context.Context, token string) (*model.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return nil, ErrNotFound
	}
	delete(s.entries, token)
	if time.Now().After(e.expiresAt) {
		return nil, ErrNotFound
	}
	d := e.draft
	return &d, nil
}
