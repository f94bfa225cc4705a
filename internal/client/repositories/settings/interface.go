// Package settings persists string preferences in the local key-value table.
package settings

import (
	"context"
)

// Repository is a small key-value store for preference strings.
type Repository interface {
	// Get returns the stored value and whether the key is set.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
}
