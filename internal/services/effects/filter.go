package effects

import (
	"context"

	ae "github.com/KirkDiggler/arm5e-effects/internal/effects"
	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

// FilterInput selects records by semantic tags
type FilterInput struct {
	OwnerID string
	Type    string
	Subtype string
	// Narrow projects each record down to its matching changes
	Narrow bool
}

// CreateRecordInput describes a new record
type CreateRecordInput struct {
	OwnerID  string
	Name     string // empty uses the localized default name
	Category ae.CategoryType
	Locale   string
}

func (s *service) Filter(ctx context.Context, input *FilterInput) ([]*ae.Record, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	recs, err := s.records.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list records for %s", input.OwnerID)
	}
	return Select(recs, input.Type, input.Subtype, input.Narrow)
}

// Select applies the filter matching the given type, subtype and narrowing.
// A type with a subtype always narrows.
func Select(recs []*ae.Record, effectType, subtype string, narrow bool) ([]*ae.Record, error) {
	switch {
	case effectType != "" && subtype != "":
		return ae.ByTypeAndSubtypeFiltered(recs, effectType, subtype), nil
	case effectType != "" && narrow:
		return ae.ByTypeFiltered(recs, effectType), nil
	case effectType != "":
		return ae.ByType(recs, effectType), nil
	case subtype != "" && narrow:
		return ae.BySubtypeFiltered(recs, subtype), nil
	case subtype != "":
		return ae.BySubtype(recs, subtype), nil
	default:
		return nil, errors.InvalidArgument("a type or subtype is required")
	}
}
