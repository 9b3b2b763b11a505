// Package actors stores the host entities modifier records are attached to
package actors

import (
	"context"

	"github.com/KirkDiggler/arm5e-effects/internal/entities"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/KirkDiggler/arm5e-effects/internal/repositories/actors Repository

// Repository defines the interface for actor storage operations
type Repository interface {
	Create(ctx context.Context, entity *entities.Entity) error
	Get(ctx context.Context, id string) (*entities.Entity, error)
	Update(ctx context.Context, entity *entities.Entity) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Entity, error)

	// Resolve loads the actor a document reference points at. References to
	// owned items resolve to the owning actor once the item is confirmed.
	Resolve(ctx context.Context, ref string) (*entities.Entity, error)
}
