package tenant

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyRegistry = errors.New("registry needs at least one tenant")
	ErrEmptyID       = errors.New("tenant id must not be empty")
	ErrDuplicateID   = errors.New("duplicate tenant id")
)

// Registry is an immutable, ordered set of tenant records.
type Registry struct {
	records []Record
	index   map[string]int
}

// NewRegistry validates the records and builds a registry from copies of them.
func NewRegistry(records ...Record) (*Registry, error) {
	if len(records) == 0 {
		return nil, ErrEmptyRegistry
	}

	reg := &Registry{
		records: make([]Record, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for i, r := range records {
		rec := r.withDefaults()
		if rec.ID == "" {
			return nil, fmt.Errorf("tenant at position %d: %w", i, ErrEmptyID)
		}
		if _, exists := reg.index[rec.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, rec.ID)
		}
		reg.index[rec.ID] = len(reg.records)
		reg.records = append(reg.records, rec)
	}
	return reg, nil
}

// Resolve returns the record for id, or the first record when id is unknown.
func (r *Registry) Resolve(id string) Record {
	if i, ok := r.index[id]; ok {
		return r.records[i].clone()
	}
	return r.First()
}

// Lookup returns the record for id and whether it exists.
func (r *Registry) Lookup(id string) (Record, bool) {
	i, ok := r.index[id]
	if !ok {
		return Record{}, false
	}
	return r.records[i].clone(), true
}

// Index returns the position of id in the registry, or -1.
func (r *Registry) Index(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// First returns the first record of the registry.
func (r *Registry) First() Record {
	return r.records[0].clone()
}

// At returns the record at position i, wrapping around in both directions.
func (r *Registry) At(i int) Record {
	n := len(r.records)
	return r.records[((i%n)+n)%n].clone()
}

// Len returns the number of tenants.
func (r *Registry) Len() int {
	return len(r.records)
}

// IDs returns tenant ids in registry order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.records))
	for i, rec := range r.records {
		ids[i] = rec.ID
	}
	return ids
}

// Records returns a copy of all records in registry order.
func (r *Registry) Records() []Record {
	out := make([]Record, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.clone()
	}
	return out
}
