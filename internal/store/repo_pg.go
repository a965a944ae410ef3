package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGRepository keeps the snapshot in a single Postgres row, one per slot name.
// The whole serialized state lives in a jsonb column; read on initialize,
// overwritten wholesale on every save.
type PGRepository struct {
	pool *pgxpool.Pool
	slot string
}

// NewPGRepository creates the backing table when missing and returns a
// repository bound to the given slot name.
func NewPGRepository(ctx context.Context, pool *pgxpool.Pool, slot string) (*PGRepository, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS app_state (
			slot       TEXT PRIMARY KEY,
			state      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("ensure app_state table: %w", err)
	}
	return &PGRepository{pool: pool, slot: slot}, nil
}

func (r *PGRepository) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := r.pool.QueryRow(ctx,
		`SELECT state FROM app_state WHERE slot = $1`, r.slot).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot row: %w", err)
	}
	return data, nil
}

func (r *PGRepository) Save(ctx context.Context, data []byte) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO app_state (slot, state) VALUES ($1, $2)
		ON CONFLICT (slot) DO UPDATE SET state = EXCLUDED.state, updated_at = now()`,
		r.slot, data)
	if err != nil {
		return fmt.Errorf("save snapshot row: %w", err)
	}
	return nil
}
