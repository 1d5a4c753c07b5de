// Package storage defines where composed characteristics snapshots are
// persisted between sessions.
package storage

import (
	"errors"

	"github.com/trackforge/kartchar/internal/characteristics"
)

// ErrNotFound is returned by Load and Delete for unknown names.
var ErrNotFound = errors.New("snapshot not found")

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Save stores s under name, replacing any earlier snapshot of that name.
	Save(name string, s characteristics.Snapshot) error
	Load(name string) (characteristics.Snapshot, error)
	List() ([]string, error)
	Delete(name string) error
}
