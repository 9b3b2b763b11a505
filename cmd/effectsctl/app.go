package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/arm5e-effects/internal/config"
	ae "github.com/KirkDiggler/arm5e-effects/internal/effects"
	"github.com/KirkDiggler/arm5e-effects/internal/entities"
	"github.com/KirkDiggler/arm5e-effects/internal/errors"
	"github.com/KirkDiggler/arm5e-effects/internal/magic"
	"github.com/KirkDiggler/arm5e-effects/internal/repositories/actors"
	"github.com/KirkDiggler/arm5e-effects/internal/repositories/records"
	"github.com/KirkDiggler/arm5e-effects/internal/services"
)

const redisPingTimeout = 5 * time.Second

// app carries the state shared by every command of one invocation
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	provider *services.Provider
	redis    *redis.Client

	// global flags
	verbose bool
	locale  string
	owner   string
}

// setup loads configuration and builds the logger and service provider.
// Fields already set are kept.
func (a *app) setup(ctx context.Context) error {
	if a.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		a.cfg = cfg
	}

	if a.logger == nil {
		zapCfg := zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(a.cfg.Log.ZapLevel())
		if a.verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	providerCfg := &services.ProviderConfig{
		Config: &a.cfg.Effects,
		Logger: a.logger,
	}
	if client := a.connectRedis(ctx); client != nil {
		a.redis = client
		providerCfg.RecordRepository = records.NewRedis(client)
		providerCfg.ActorRepository = actors.NewRedis(client, &actors.RealTimeProvider{})
	}

	provider, err := services.NewProvider(providerCfg)
	if err != nil {
		return fmt.Errorf("failed to create services: %w", err)
	}
	a.provider = provider
	return nil
}

// connectRedis returns a live client for the configured URL, or nil to fall
// back to the in-memory repositories.
func (a *app) connectRedis(ctx context.Context) *redis.Client {
	if a.cfg.Redis.URL == "" {
		a.logger.Debug("No REDIS_URL found, using in-memory repositories")
		return nil
	}

	opts, err := redis.ParseURL(a.cfg.Redis.URL)
	if err != nil {
		a.logger.Warn("Failed to parse Redis URL, falling back to in-memory repositories", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		a.logger.Warn("Failed to connect to Redis, falling back to in-memory repositories", zap.Error(err))
		_ = client.Close()
		return nil
	}

	a.logger.Info("Using Redis for persistence", zap.String("addr", opts.Addr))
	return client
}

func (a *app) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("Failed to close Redis connection", zap.Error(err))
		}
		a.redis = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// loadRecords stores the records of a JSON file under the current owner,
// replacing records that already exist.
func (a *app) loadRecords(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}
	recs, err := decodeRecords(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	repo := a.provider.RecordRepository
	for _, rec := range recs {
		err := repo.Create(ctx, a.owner, rec)
		if errors.IsAlreadyExists(err) {
			err = repo.Update(ctx, rec)
		}
		if err != nil {
			return fmt.Errorf("store record %s: %w", rec.ID, err)
		}
	}

	a.logger.Debug("Loaded records",
		zap.String("file", path),
		zap.String("owner_id", a.owner),
		zap.Int("count", len(recs)),
	)
	return nil
}

// loadActors stores the entities of a YAML file, one document per entity
func (a *app) loadActors(ctx context.Context, path string) ([]*entities.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open actors: %w", err)
	}
	defer f.Close()

	var out []*entities.Entity
	dec := yaml.NewDecoder(f)
	for {
		var entity entities.Entity
		if err := dec.Decode(&entity); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("decode actor in %s: %w", path, err)
		}
		if entity.OwnerID == "" {
			entity.OwnerID = a.owner
		}

		repo := a.provider.ActorRepository
		err := repo.Create(ctx, &entity)
		if errors.IsAlreadyExists(err) {
			err = repo.Update(ctx, &entity)
		}
		if err != nil {
			return nil, fmt.Errorf("store actor %s: %w", entity.ID, err)
		}
		out = append(out, &entity)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no actors in %s", path)
	}
	return out, nil
}

func loadEffect(path string) (magic.Effect, error) {
	var effect magic.Effect
	data, err := os.ReadFile(path)
	if err != nil {
		return effect, fmt.Errorf("read effect: %w", err)
	}
	if err := yaml.Unmarshal(data, &effect); err != nil {
		return effect, fmt.Errorf("decode effect %s: %w", path, err)
	}
	return effect, nil
}

func decodeRecords(data []byte) ([]*ae.Record, error) {
	var recs []*ae.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
