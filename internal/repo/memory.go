package repo

import (
	"context"
	"sync"
)

type MemoryBackend struct {
	mtx    sync.RWMutex
	values map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

func (b *MemoryBackend) Get(ctx context.Context, key string) (string, error) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	v, ok := b.values[key]
	if !ok {
		return "", ErrorNotFound
	}
	return v, nil
}

func (b *MemoryBackend) Set(ctx context.Context, key, value string) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	b.values[key] = value
	return nil
}
