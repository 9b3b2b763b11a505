package actors

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/arm5e-effects/internal/entities"
	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the actor repository
type InMemoryRepository struct {
	mu       sync.RWMutex
	entities map[string]*entities.Entity
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		entities: make(map[string]*entities.Entity),
	}
}

// Create stores a new actor
func (r *InMemoryRepository) Create(ctx context.Context, entity *entities.Entity) error {
	if err := validateEntity(entity); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entities[entity.ID]; exists {
		return errors.AlreadyExistsf("actor with ID '%s' already exists", entity.ID).
			WithMeta("actor_id", entity.ID)
	}

	r.entities[entity.ID] = entity.Clone()
	return nil
}

// Get retrieves an actor by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Entity, error) {
	if id == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, exists := r.entities[id]
	if !exists {
		return nil, notFound(id)
	}
	return entity.Clone(), nil
}

// Update replaces an existing actor
func (r *InMemoryRepository) Update(ctx context.Context, entity *entities.Entity) error {
	if err := validateEntity(entity); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entities[entity.ID]; !exists {
		return notFound(entity.ID)
	}
	r.entities[entity.ID] = entity.Clone()
	return nil
}

// Delete removes an actor
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entities[id]; !exists {
		return notFound(id)
	}
	delete(r.entities, id)
	return nil
}

// ListByOwner returns the owner's actors sorted by ID
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Entity, error) {
	if ownerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.Entity{}
	for _, entity := range r.entities {
		if entity.OwnerID == ownerID {
			result = append(result, entity.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Resolve loads the actor a document reference points at
func (r *InMemoryRepository) Resolve(ctx context.Context, ref string) (*entities.Entity, error) {
	return resolve(ctx, r, ref)
}

func validateEntity(entity *entities.Entity) error {
	if entity == nil {
		return errors.InvalidArgument("actor cannot be nil")
	}
	if entity.ID == "" {
		return errors.InvalidArgument("actor ID is required")
	}
	return nil
}

func notFound(id string) error {
	return errors.NotFoundf("actor with ID '%s' not found", id).
		WithMeta("actor_id", id)
}
