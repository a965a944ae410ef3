package store

import "context"

// Repository is the durable side of the store: a single opaque slot holding
// the whole serialized state. It is read once on initialize and overwritten
// wholesale on every mutation.
type Repository interface {
	// Load returns the raw snapshot, or nil when the slot is empty.
	Load(ctx context.Context) ([]byte, error)
	// Save overwrites the slot with the given snapshot.
	Save(ctx context.Context, data []byte) error
}
