// Package registry keeps the published characteristics records of a running
// session, one per kart archetype or race context.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/trackforge/kartchar/internal/characteristics"
)

// ErrNotFound is returned by Remove for names that are not registered.
var ErrNotFound = errors.New("characteristics not registered")

// Registry maps context names to records. The registry owns every record it
// holds and closes it when the entry is replaced or removed.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*characteristics.Characteristics
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		records: make(map[string]*characteristics.Characteristics),
	}
}

// Get returns the record published under name
func (r *Registry) Get(name string) (*characteristics.Characteristics, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.records[name]
	return c, ok
}

// Put publishes c under name, closing the record it replaces.
func (r *Registry) Put(name string, c *characteristics.Characteristics) error {
	r.mu.Lock()
	old := r.records[name]
	r.records[name] = c
	r.mu.Unlock()

	if old != nil && old != c {
		if err := old.Close(); err != nil {
			return fmt.Errorf("close replaced %s: %w", name, err)
		}
	}
	return nil
}

// Remove unpublishes and closes the record under name.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	c, ok := r.records[name]
	delete(r.records, name)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return c.Close()
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.records))
}

// Len returns the number of registered records
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Reset closes and drops every record.
func (r *Registry) Reset() error {
	r.mu.Lock()
	old := r.records
	r.records = make(map[string]*characteristics.Characteristics)
	r.mu.Unlock()

	var errs []error
	for name, c := range old {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
