package profile

import (
	"context"
	"errors"
)

// ErrNotFound indicates no profile has been stored yet for the owner.
// Callers treat it as first-run and seed a default profile.
var ErrNotFound = errors.New("profile not found")

// Store persists one JSON-serialized profile blob per owner. The blob
// is always loaded and saved whole.
type Store interface {
	Load(ctx context.Context, owner string) (Profile, error)
	Save(ctx context.Context, owner string, p Profile) error
}
