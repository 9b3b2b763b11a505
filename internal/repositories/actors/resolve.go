package actors

import (
	"context"

	"github.com/KirkDiggler/arm5e-effects/internal/entities"
	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

type getter interface {
	Get(ctx context.Context, id string) (*entities.Entity, error)
}

func resolve(ctx context.Context, repo getter, ref string) (*entities.Entity, error) {
	parsed, err := entities.ParseReference(ref)
	if err != nil {
		return nil, err
	}

	entity, err := repo.Get(ctx, parsed.EntityID)
	if err != nil {
		return nil, err
	}

	if parsed.IsItem() {
		if _, ok := entity.Item(parsed.ItemID); !ok {
			return nil, errors.NotFoundf("item '%s' not found on actor '%s'", parsed.ItemID, parsed.EntityID).
				WithMeta("reference", ref)
		}
	}
	return entity, nil
}
