package store

import (
	"context"
	"sync"
)

// MemoryRepository keeps the snapshot in process memory. Used for tests and
// for ephemeral runs where nothing should survive a restart.
type MemoryRepository struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(_ context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		return nil, nil
	}
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out, nil
}

func (r *MemoryRepository) Save(_ context.Context, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make([]byte, len(data))
	copy(r.data, data)
	return nil
}
