package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/spec-kit/employee-board/internal/domain"
)

// ErrNotFound means the session has no table loaded.
var ErrNotFound = errors.New("session: no dataset loaded")

// Store keeps the dataset owned by each session. A Put replaces whatever the
// session held before.
type Store interface {
	Get(ctx context.Context, sessionID string) (*domain.Dataset, error)
	Put(ctx context.Context, sessionID string, dataset *domain.Dataset) error
	Clear(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	dataset   *domain.Dataset
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryStore keeps datasets in process memory. A dataset expires ttl
// after it was last Put; ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) Store {
	return newMemoryStore(ttl, time.Now)
}

func newMemoryStore(ttl time.Duration, now func() time.Time) *memoryStore {
	return &memoryStore{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *memoryStore) Get(_ context.Context, sessionID string) (*domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if s.ttl > 0 && s.now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return nil, ErrNotFound
	}
	return entry.dataset, nil
}

func (s *memoryStore) Put(_ context.Context, sessionID string, dataset *domain.Dataset) error {
	if dataset == nil {
		return errors.New("session: nil dataset")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	s.entries[sessionID] = memoryEntry{dataset: dataset, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *memoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

func (s *memoryStore) evictExpiredLocked() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}
