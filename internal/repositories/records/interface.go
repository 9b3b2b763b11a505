// Package records stores modifier records by the entity they are attached to
package records

import (
	"context"

	"github.com/KirkDiggler/arm5e-effects/internal/effects"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/KirkDiggler/arm5e-effects/internal/repositories/records Repository

// Repository defines the interface for modifier record storage
type Repository interface {
	// Create attaches a new record to the owning entity
	Create(ctx context.Context, ownerID string, rec *effects.Record) error
	Get(ctx context.Context, id string) (*effects.Record, error)
	// Update replaces a stored record; the owner is kept
	Update(ctx context.Context, rec *effects.Record) error
	Delete(ctx context.Context, id string) error
	// ListByOwner returns the owner's records in creation order
	ListByOwner(ctx context.Context, ownerID string) ([]*effects.Record, error)
}
