package storage

import (
	"errors"
	"fmt"
)

const (
	// ReportsDir is the table under which evaluation reports are stored.
	ReportsDir = "reports"
)

var (
	// DefaultDir is the root directory of the file-backed stores.
	DefaultDir = "file-storage"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key for a general implementation.
type Key struct {
	Hash  int64  `json:"hash"`
	Model string `json:"model"`
	Label string `json:"label"`
}

func (k Key) Path() string {
	return fmt.Sprintf("%s_%v_%s", k.Model, k.Hash, k.Label)
}

// Persistence stores and retrieves values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}

// VoidStorage ignores all writes and never finds anything.
type VoidStorage struct {
}

func (d VoidStorage) Store(k Key, value interface{}) error {
	return nil
}

func (d VoidStorage) Load(k Key, value interface{}) error {
	return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
}

func NewVoidStorage() *VoidStorage {
	return &VoidStorage{}
}
