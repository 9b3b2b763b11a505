package services

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/arm5e-effects/internal/config"
	"github.com/KirkDiggler/arm5e-effects/internal/events"
	"github.com/KirkDiggler/arm5e-effects/internal/i18n"
	"github.com/KirkDiggler/arm5e-effects/internal/repositories/actors"
	"github.com/KirkDiggler/arm5e-effects/internal/repositories/records"
	effectsService "github.com/KirkDiggler/arm5e-effects/internal/services/effects"
)

// Provider holds all service instances
type Provider struct {
	EffectsService effectsService.Service
	EventBus       *events.Bus

	// Repositories are exposed so callers can seed or inspect the stores
	RecordRepository records.Repository
	ActorRepository  actors.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Config           *config.EffectsConfig
	RecordRepository records.Repository
	ActorRepository  actors.Repository
	EventBus         *events.Bus
	Bundle           *i18n.Bundle
	Logger           *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repositories if none provided
	recordRepo := cfg.RecordRepository
	if recordRepo == nil {
		recordRepo = records.NewInMemoryRepository()
	}

	actorRepo := cfg.ActorRepository
	if actorRepo == nil {
		actorRepo = actors.NewInMemoryRepository()
	}

	eventBus := cfg.EventBus
	if eventBus == nil {
		eventBus = events.NewBus(cfg.Logger)
	}

	effectsCfg := cfg.Config
	if effectsCfg == nil {
		effectsCfg = &config.EffectsConfig{}
	}

	table, err := effectsCfg.Table()
	if err != nil {
		return nil, err
	}
	params, err := effectsCfg.Parameters()
	if err != nil {
		return nil, err
	}

	svc, err := effectsService.NewService(&effectsService.ServiceConfig{
		Records:       recordRepo,
		Resolver:      actorRepo,
		Bundle:        cfg.Bundle,
		Table:         table,
		Parameters:    params,
		HiddenMode:    effectsCfg.Hidden(),
		DefaultLocale: effectsCfg.Locale,
		EventBus:      eventBus,
		Logger:        cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		EffectsService:   svc,
		EventBus:         eventBus,
		RecordRepository: recordRepo,
		ActorRepository:  actorRepo,
	}, nil
}
