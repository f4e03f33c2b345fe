package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/marmos91/posixshim/pkg/backend/volume"
)

var (
	_ volume.Store   = (*Store)(nil)
	_ volume.Counter = (*Store)(nil)
)

// Store implements volume.Store using an in-memory map.
//
// It is suitable for tests and for volumes seeded at startup that do not
// need to outlive the process. Entries are copied on the way in and out, so
// callers may keep and mutate what they pass or receive.
//
// Thread Safety:
// All operations are protected by a single read-write mutex.
type Store struct {
	mu      sync.RWMutex
	entries map[string]volume.Entry
	serial  uint32
}

// New creates an empty store with a random volume serial.
func New() *Store {
	return NewWithSerial(uuid.New().ID())
}

// NewWithSerial creates an empty store reporting the given volume serial.
func NewWithSerial(serial uint32) *Store {
	return &Store{
		entries: make(map[string]volume.Entry),
		serial:  serial,
	}
}

func (s *Store) GetEntry(ctx context.Context, key string) (*volume.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, volume.ErrNotFound
	}
	return &e, nil
}

func (s *Store) PutEntry(ctx context.Context, key string, e *volume.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = *e
	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *Store) Serial(ctx context.Context) (uint32, error) {
	return s.serial, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}
