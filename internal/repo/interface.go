package repo

import (
	"context"
	"errors"
)

var ErrorNotFound = errors.New("not found")

// Backend is an opaque key-value store holding serialized task collections.
type Backend interface {
	// Get returns ErrorNotFound when nothing is stored under key.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
