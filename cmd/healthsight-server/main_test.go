package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/healthsight/healthsight/internal/config"
	"github.com/healthsight/healthsight/internal/store"
)

func TestNewRepository_Memory(t *testing.T) {
	cfg := &config.Config{StorageBackend: config.BackendMemory}

	repo, cleanup, err := newRepository(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newRepository(memory) error: %v", err)
	}
	defer cleanup()

	if _, ok := repo.(*store.MemoryRepository); !ok {
		t.Errorf("newRepository(memory) = %T, want *store.MemoryRepository", repo)
	}
}

func TestNewRepository_File(t *testing.T) {
	cfg := &config.Config{
		StorageBackend: config.BackendFile,
		StoragePath:    filepath.Join(t.TempDir(), "db.json"),
	}

	repo, cleanup, err := newRepository(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newRepository(file) error: %v", err)
	}
	defer cleanup()

	if _, ok := repo.(*store.FileRepository); !ok {
		t.Errorf("newRepository(file) = %T, want *store.FileRepository", repo)
	}

	// The file backend must behave as an empty slot until something is saved.
	raw, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load on fresh file repo error: %v", err)
	}
	if raw != nil {
		t.Errorf("Load on fresh file repo = %q, want nil", raw)
	}
}

func TestNewRepository_UnknownBackend(t *testing.T) {
	cfg := &config.Config{StorageBackend: "redis"}

	_, _, err := newRepository(context.Background(), cfg)
	if err == nil {
		t.Fatal("newRepository(redis) expected error, got nil")
	}
}
