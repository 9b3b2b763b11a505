package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/arm5e-effects/internal/effects"
	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

// Data is the stored form of a record. The record keeps its host document layout.
type Data struct {
	OwnerID string          `json:"owner_id"`
	Record  *effects.Record `json:"record"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a new Redis-backed record repository
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// NewRedisRepository creates a new Redis-backed record repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{client: cfg.Client}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("effect:%s", id)
}

// ownerKey is a list of record IDs in creation order
func (r *redisRepo) ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:effects", ownerID)
}

// Create stores a new record
func (r *redisRepo) Create(ctx context.Context, ownerID string, rec *effects.Record) error {
	if err := validateRecord(rec); err != nil {
		return err
	}
	if ownerID == "" {
		return errors.InvalidArgument("owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(rec.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check record existence: %w", err)
	}
	if exists > 0 {
		return errors.AlreadyExistsf("record with ID '%s' already exists", rec.ID).
			WithMeta("record_id", rec.ID)
	}

	jsonData, err := json.Marshal(Data{OwnerID: ownerID, Record: rec})
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(rec.ID), string(jsonData), 0)
	pipe.RPush(ctx, r.ownerKey(ownerID), rec.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}

	return nil
}

// Get retrieves a record by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*effects.Record, error) {
	data, err := r.getData(ctx, id)
	if err != nil {
		return nil, err
	}
	return data.Record, nil
}

// Update replaces an existing record
func (r *redisRepo) Update(ctx context.Context, rec *effects.Record) error {
	if err := validateRecord(rec); err != nil {
		return err
	}

	existing, err := r.getData(ctx, rec.ID)
	if err != nil {
		return err
	}

	jsonData, err := json.Marshal(Data{OwnerID: existing.OwnerID, Record: rec})
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := r.client.Set(ctx, r.key(rec.ID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

// Delete removes a record and its owner index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	data, err := r.getData(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.LRem(ctx, r.ownerKey(data.OwnerID), 0, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}

// ListByOwner returns the owner's records in creation order
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*effects.Record, error) {
	if ownerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.LRange(ctx, r.ownerKey(ownerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list record IDs: %w", err)
	}
	if len(ids) == 0 {
		return []*effects.Record{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}

	result := make([]*effects.Record, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry left behind by a partial delete
			continue
		}
		var data Data
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record %s: %w", ids[i], err)
		}
		result = append(result, data.Record)
	}
	return result, nil
}

func (r *redisRepo) getData(ctx context.Context, id string) (*Data, error) {
	if id == "" {
		return nil, errors.InvalidArgument("record ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		// alignment violations surface here with their code intact
		return nil, errors.Wrapf(err, "failed to unmarshal record %s", id)
	}
	return &data, nil
}
