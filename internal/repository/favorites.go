package repository

import (
	"context"
	"errors"
)

// ErrCorrupt marks persisted state that exists but cannot be decoded.
var ErrCorrupt = errors.New("persisted state is corrupt")

// FavoritesRepository is a namespaced key-value store whose values are string sets.
// The namespace is fixed when the repository is constructed.
type FavoritesRepository interface {
	// Load returns the members stored under key. A missing key yields an empty result
	// and no error.
	Load(ctx context.Context, key string) ([]string, error)
	// Save replaces the value under key in a single write.
	Save(ctx context.Context, key string, members []string) error
	Delete(ctx context.Context, key string) error
}
