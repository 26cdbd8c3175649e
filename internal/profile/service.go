package profile

import (
	"context"
	"errors"
	"sync"
)

// DefaultOwner identifies the single admin profile when no explicit
// owner is supplied.
const DefaultOwner = "default"

// Service is the only sanctioned access path to stored profiles. Every
// mutation is a whole-object read-modify-write: the profile is loaded,
// mutated, and saved in full while the service mutex is held, so one
// mutation always completes before the next begins.
type Service struct {
	mu    sync.Mutex
	store Store
}

// NewService wraps a store with serialized read-modify-write semantics.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get returns the owner's profile, seeding the default profile on
// first run.
func (s *Service) Get(ctx context.Context, owner string) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, owner)
}

// Update applies fn to the owner's profile and persists the result. If
// fn returns an error nothing is saved and the stored profile is
// untouched.
func (s *Service) Update(ctx context.Context, owner string, fn func(*Profile) error) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if owner == "" {
		owner = DefaultOwner
	}
	p, err := s.load(ctx, owner)
	if err != nil {
		return Profile{}, err
	}
	if err := fn(&p); err != nil {
		return Profile{}, err
	}
	if err := s.store.Save(ctx, owner, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) load(ctx context.Context, owner string) (Profile, error) {
	if owner == "" {
		owner = DefaultOwner
	}
	p, err := s.store.Load(ctx, owner)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}
	p = Defaults()
	if err := s.store.Save(ctx, owner, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
