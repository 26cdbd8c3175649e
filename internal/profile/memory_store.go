package profile

import (
	"context"
	"encoding/json"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore constructs an in-memory store for tests. Profiles are
// kept as serialized JSON so the round trip matches the durable backends.
func NewMemoryStore() Store {
	return &memoryStore{blobs: make(map[string][]byte)}
}

func (s *memoryStore) Load(_ context.Context, owner string) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[owner]
	if !ok {
		return Profile{}, ErrNotFound
	}
	var p Profile
	if err := json.Unmarshal(blob, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *memoryStore) Save(_ context.Context, owner string, p Profile) error {
	blob, err := json.Marshal(p)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[owner] = blob
	return nil
}
