package actors

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/arm5e-effects/internal/entities"
	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedis creates a new Redis-backed actor repository
func NewRedis(client redis.UniversalClient, timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &redisRepo{
		client:       client,
		timeProvider: timeProvider,
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("actor:%s", id)
}

func (r *redisRepo) ownerKey(ownerID string) string {
	return fmt.Sprintf("user:%s:actors", ownerID)
}

func (r *redisRepo) set(ctx context.Context, entity *entities.Entity) error {
	jsonData, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal actor data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(entity.ID), string(jsonData), 0)
	if entity.OwnerID != "" {
		pipe.SAdd(ctx, r.ownerKey(entity.OwnerID), entity.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set actor in Redis: %w", err)
	}
	return nil
}

// Create stamps and stores a new actor
func (r *redisRepo) Create(ctx context.Context, entity *entities.Entity) error {
	if err := validateEntity(entity); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(entity.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check actor existence: %w", err)
	}
	if exists > 0 {
		return errors.AlreadyExistsf("actor with ID '%s' already exists", entity.ID).
			WithMeta("actor_id", entity.ID)
	}

	now := r.timeProvider.Now()
	entity.CreatedAt = now
	entity.UpdatedAt = now

	return r.set(ctx, entity)
}

// Get retrieves an actor by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Entity, error) {
	if id == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("failed to get actor from Redis: %w", err)
	}

	var entity entities.Entity
	if err := json.Unmarshal(jsonData, &entity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal actor data: %w", err)
	}
	return &entity, nil
}

// Update stamps and replaces an actor
func (r *redisRepo) Update(ctx context.Context, entity *entities.Entity) error {
	if err := validateEntity(entity); err != nil {
		return err
	}

	entity.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, entity)
}

// Delete removes an actor and its owner index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	entity, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	if entity.OwnerID != "" {
		pipe.SRem(ctx, r.ownerKey(entity.OwnerID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete actor from Redis: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's actors sorted by ID
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Entity, error) {
	if ownerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get owner actors from Redis: %w", err)
	}
	if len(ids) == 0 {
		return []*entities.Entity{}, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get actors from Redis: %w", err)
	}

	result := make([]*entities.Entity, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var entity entities.Entity
		if err := json.Unmarshal([]byte(raw), &entity); err != nil {
			return nil, fmt.Errorf("failed to unmarshal actor %s: %w", ids[i], err)
		}
		result = append(result, &entity)
	}
	return result, nil
}

// Resolve loads the actor a document reference points at
func (r *redisRepo) Resolve(ctx context.Context, ref string) (*entities.Entity, error) {
	return resolve(ctx, r, ref)
}
