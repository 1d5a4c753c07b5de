// Package memory keeps snapshots in a map for the lifetime of the process,
// optionally exporting them as JSON when closed.
package memory

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/trackforge/kartchar/internal/characteristics"
	"github.com/trackforge/kartchar/internal/config"
	"github.com/trackforge/kartchar/internal/storage"
)

// Backend stores snapshots in memory
type Backend struct {
	cfg       config.MemoryConfig
	snapshots map[string]characteristics.Snapshot
	mu        sync.RWMutex

	lastExportPath string
}

// New creates a new memory backend
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{
		cfg:       cfg,
		snapshots: make(map[string]characteristics.Snapshot),
	}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close exports the stored snapshots when an output directory is configured.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cfg.OutputDir == "" {
		return nil
	}
	return b.exportJSON()
}

// Save stores a snapshot, replacing an earlier one with the same name
func (b *Backend) Save(name string, s characteristics.Snapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.snapshots[name] = s
	return nil
}

// Load returns the snapshot stored under name
func (b *Backend) Load(name string) (characteristics.Snapshot, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s, ok := b.snapshots[name]
	if !ok {
		return characteristics.Snapshot{}, fmt.Errorf("%s: %w", name, storage.ErrNotFound)
	}
	return s, nil
}

// List returns the stored names, sorted
func (b *Backend) List() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return slices.Sorted(maps.Keys(b.snapshots)), nil
}

// Delete removes the snapshot stored under name
func (b *Backend) Delete(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.snapshots[name]; !ok {
		return fmt.Errorf("%s: %w", name, storage.ErrNotFound)
	}
	delete(b.snapshots, name)
	return nil
}

// GetExportedFilePath returns the path written by the last export, if any.
func (b *Backend) GetExportedFilePath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastExportPath
}
