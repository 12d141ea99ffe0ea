package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/cotiza/internal/core/domain"
)

var errDiskFull = errors.New("disk full")

// flakyStore is a KeyValueStore whose writes can be made to fail.
type flakyStore struct {
	mu        sync.Mutex
	values    map[string][]byte
	failSet   bool
	failGet   bool
	setCalls  int
	lastWrite []byte
}

func newFlakyStore() *flakyStore {
	return &flakyStore{values: make(map[string][]byte)}
}

func (s *flakyStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet {
		return nil, errDiskFull
	}
	v, ok := s.values[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (s *flakyStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCalls++
	if s.failSet {
		return errDiskFull
	}
	s.values[key] = value
	s.lastWrite = value
	return nil
}

func (s *flakyStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// stubSource is a SeedSource returning fixed bytes or an error.
type stubSource struct {
	body  []byte
	err   error
	calls int
}

func (s *stubSource) Fetch(context.Context) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.body, nil
}

func (s *stubSource) Location() string {
	return "stub://datos.json"
}
