package records

import (
	"context"
	"sync"

	"github.com/KirkDiggler/arm5e-effects/internal/effects"
	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

type storedRecord struct {
	ownerID string
	record  *effects.Record
}

// InMemoryRepository is an in-memory implementation of the record repository
// Useful for testing and for the CLI when no redis is configured
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*storedRecord
	byOwner map[string][]string // creation order
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		records: make(map[string]*storedRecord),
		byOwner: make(map[string][]string),
	}
}

// Create stores a new record
func (r *InMemoryRepository) Create(ctx context.Context, ownerID string, rec *effects.Record) error {
	if err := validateRecord(rec); err != nil {
		return err
	}
	if ownerID == "" {
		return errors.InvalidArgument("owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[rec.ID]; exists {
		return errors.AlreadyExistsf("record with ID '%s' already exists", rec.ID).
			WithMeta("record_id", rec.ID)
	}

	r.records[rec.ID] = &storedRecord{ownerID: ownerID, record: rec.Clone()}
	r.byOwner[ownerID] = append(r.byOwner[ownerID], rec.ID)
	return nil
}

// Get retrieves a record by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*effects.Record, error) {
	if id == "" {
		return nil, errors.InvalidArgument("record ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.records[id]
	if !exists {
		return nil, notFound(id)
	}
	return stored.record.Clone(), nil
}

// Update replaces an existing record
func (r *InMemoryRepository) Update(ctx context.Context, rec *effects.Record) error {
	if err := validateRecord(rec); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.records[rec.ID]
	if !exists {
		return notFound(rec.ID)
	}
	stored.record = rec.Clone()
	return nil
}

// Delete removes a record
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("record ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.records[id]
	if !exists {
		return notFound(id)
	}

	ids := r.byOwner[stored.ownerID]
	for i, other := range ids {
		if other == id {
			r.byOwner[stored.ownerID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	delete(r.records, id)
	return nil
}

// ListByOwner returns the owner's records in creation order
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*effects.Record, error) {
	if ownerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byOwner[ownerID]
	result := make([]*effects.Record, 0, len(ids))
	for _, id := range ids {
		result = append(result, r.records[id].record.Clone())
	}
	return result, nil
}

func validateRecord(rec *effects.Record) error {
	if rec == nil {
		return errors.InvalidArgument("record cannot be nil")
	}
	if rec.ID == "" {
		return errors.InvalidArgument("record ID is required")
	}
	return nil
}

func notFound(id string) error {
	return errors.NotFoundf("record with ID '%s' not found", id).
		WithMeta("record_id", id)
}
