// Package effects is the service facade over modifier records: sheet views,
// filtering, record lifecycle and the magical effect calculators.
package effects

import (
	"context"

	"go.uber.org/zap"

	ae "github.com/KirkDiggler/arm5e-effects/internal/effects"
	"github.com/KirkDiggler/arm5e-effects/internal/entities"
	"github.com/KirkDiggler/arm5e-effects/internal/errors"
	"github.com/KirkDiggler/arm5e-effects/internal/events"
	"github.com/KirkDiggler/arm5e-effects/internal/i18n"
	"github.com/KirkDiggler/arm5e-effects/internal/magic"
	"github.com/KirkDiggler/arm5e-effects/internal/repositories/records"
	"github.com/KirkDiggler/arm5e-effects/internal/uuid"
)

//go:generate mockgen -destination=mocks/mock_resolver.go -package=mocks github.com/KirkDiggler/arm5e-effects/internal/services/effects Resolver

// Resolver loads the entity a document reference points at
type Resolver interface {
	Resolve(ctx context.Context, ref string) (*entities.Entity, error)
}

// Viewer is the user a view is built for
type Viewer struct {
	Privileged bool
}

// Service defines the modifier record service interface
type Service interface {
	// Sheet returns the owner's visible records classified for display
	Sheet(ctx context.Context, input *SheetInput) (*SheetOutput, error)

	// Filter returns the owner's enabled records matching a type and/or subtype
	Filter(ctx context.Context, input *FilterInput) ([]*ae.Record, error)

	// Describe renders a record in the given locale
	Describe(rec *ae.Record, locale string) string

	// CreateRecord attaches a new empty record in a category to the owner
	CreateRecord(ctx context.Context, input *CreateRecordInput) (*ae.Record, error)

	// ToggleRecord flips a record between enabled and disabled
	ToggleRecord(ctx context.Context, viewer Viewer, id string) (*ae.Record, error)

	// DeleteRecord removes a record unless it is owned by an item
	DeleteRecord(ctx context.Context, viewer Viewer, id string) error

	// EffectLevel computes the level and ritual flag of an effect
	EffectLevel(effect magic.Effect) (magic.Level, error)

	// CastingTotal computes the casting total of an effect for the referenced caster
	CastingTotal(ctx context.Context, casterRef string, effect magic.Effect) (int, error)
}

// ServiceConfig holds the dependencies of the service
type ServiceConfig struct {
	Records       records.Repository
	Resolver      Resolver
	Bundle        *i18n.Bundle
	Table         *ae.Table
	Parameters    *magic.Parameters
	HiddenMode    ae.HiddenMode
	DefaultLocale string
	UUIDGenerator uuid.Generator
	EventBus      *events.Bus
	Logger        *zap.Logger
}

type service struct {
	records       records.Repository
	resolver      Resolver
	bundle        *i18n.Bundle
	table         *ae.Table
	parameters    *magic.Parameters
	hiddenMode    ae.HiddenMode
	defaultLocale string
	uuidGenerator uuid.Generator
	eventBus      *events.Bus
	logger        *zap.Logger
}

// NewService creates a new modifier record service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("service config is required")
	}
	if cfg.Records == nil {
		return nil, errors.InvalidArgument("record repository is required")
	}
	if cfg.Resolver == nil {
		return nil, errors.InvalidArgument("resolver is required")
	}

	svc := &service{
		records:       cfg.Records,
		resolver:      cfg.Resolver,
		bundle:        cfg.Bundle,
		table:         cfg.Table,
		parameters:    cfg.Parameters,
		hiddenMode:    cfg.HiddenMode,
		defaultLocale: cfg.DefaultLocale,
		uuidGenerator: cfg.UUIDGenerator,
		eventBus:      cfg.EventBus,
		logger:        cfg.Logger,
	}
	if svc.bundle == nil {
		svc.bundle = i18n.Default()
	}
	if svc.table == nil {
		svc.table = ae.DefaultTable()
	}
	if svc.parameters == nil {
		svc.parameters = magic.DefaultParameters()
	}
	if svc.hiddenMode == "" {
		svc.hiddenMode = ae.HiddenMark
	}
	if svc.defaultLocale == "" {
		svc.defaultLocale = i18n.BaseLocale
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.eventBus == nil {
		svc.eventBus = events.NewBus(svc.logger)
	}
	return svc, nil
}

func (s *service) localizer(locale string) *i18n.Localizer {
	if locale == "" {
		locale = s.defaultLocale
	}
	return s.bundle.Localizer(locale)
}

func (s *service) renderer(loc *i18n.Localizer) *ae.Renderer {
	r, err := ae.NewRenderer(&ae.RendererConfig{
		Table:     s.table,
		Localizer: loc,
		Logger:    s.logger,
	})
	if err != nil {
		// a non-nil localizer is the only requirement
		panic(err)
	}
	return r
}

func (s *service) Describe(rec *ae.Record, locale string) string {
	return s.renderer(s.localizer(locale)).Describe(rec)
}

func (s *service) CreateRecord(ctx context.Context, input *CreateRecordInput) (*ae.Record, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	category := ae.CategoryPassive
	if input.Category != "" {
		parsed, err := ae.ParseCategory(string(input.Category))
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid category")
		}
		category = parsed
	}

	name := input.Name
	if name == "" {
		name = s.localizer(input.Locale).Localize(ae.KeyNewEffect)
	}
	origin := entities.Reference{EntityID: input.OwnerID}.String()

	rec := ae.NewForCategory(s.uuidGenerator.New(), name, origin, category)
	if err := s.records.Create(ctx, input.OwnerID, rec); err != nil {
		return nil, errors.Wrap(err, "failed to create record")
	}

	s.notify(&events.RecordCreatedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeAfterRecordCreate, Record: rec},
		OwnerID:   input.OwnerID,
	})

	s.logger.Info("Created modifier record",
		zap.String("record_id", rec.ID),
		zap.String("owner_id", input.OwnerID),
		zap.String("category", string(category)),
	)
	return rec, nil
}

func (s *service) ToggleRecord(ctx context.Context, viewer Viewer, id string) (*ae.Record, error) {
	rec, err := s.records.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get record %s", id)
	}
	if rec.NoEdit && !viewer.Privileged {
		return nil, errors.PermissionDeniedf("record '%s' is locked", id).
			WithMeta("record_id", id)
	}

	if err := s.veto(events.EventTypeBeforeRecordToggle, rec, viewer); err != nil {
		return nil, err
	}

	rec.Toggle()
	if err := s.records.Update(ctx, rec); err != nil {
		return nil, errors.Wrapf(err, "failed to update record %s", id)
	}
	s.notify(events.NewRecordEvent(events.EventTypeAfterRecordToggle, rec, viewer.Privileged))

	s.logger.Debug("Toggled modifier record",
		zap.String("record_id", id),
		zap.Bool("disabled", rec.Disabled),
	)
	return rec, nil
}

func (s *service) DeleteRecord(ctx context.Context, viewer Viewer, id string) error {
	rec, err := s.records.Get(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "failed to get record %s", id)
	}
	if entities.OwnedByItem(rec.Origin) {
		return errors.PermissionDeniedf("record '%s' belongs to an item and is removed with it", id).
			WithMeta("record_id", id).
			WithMeta("origin", rec.Origin)
	}
	if rec.NoEdit && !viewer.Privileged {
		return errors.PermissionDeniedf("record '%s' is locked", id).
			WithMeta("record_id", id)
	}

	if err := s.veto(events.EventTypeBeforeRecordDelete, rec, viewer); err != nil {
		return err
	}

	if err := s.records.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "failed to delete record %s", id)
	}
	s.notify(events.NewRecordEvent(events.EventTypeAfterRecordDelete, rec, viewer.Privileged))

	s.logger.Info("Deleted modifier record", zap.String("record_id", id))
	return nil
}

func (s *service) EffectLevel(effect magic.Effect) (magic.Level, error) {
	return s.parameters.EffectLevel(effect)
}

func (s *service) CastingTotal(ctx context.Context, casterRef string, effect magic.Effect) (int, error) {
	caster, err := s.resolver.Resolve(ctx, casterRef)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to resolve caster %s", casterRef)
	}
	return magic.CastingTotal(caster, effect)
}

// veto emits a before event and fails when a listener errors or cancels it
func (s *service) veto(eventType events.EventType, rec *ae.Record, viewer Viewer) error {
	event := events.NewRecordEvent(eventType, rec, viewer.Privileged)
	if err := s.eventBus.Emit(event); err != nil {
		return errors.Wrapf(err, "failed to emit %s", eventType)
	}
	if event.IsCancelled() {
		return errors.PermissionDeniedf("change to record '%s' was refused", rec.ID).
			WithMeta("record_id", rec.ID).
			WithMeta("event", string(eventType))
	}
	return nil
}

// notify emits an after event; the change is already stored so failures are only logged
func (s *service) notify(event events.Event) {
	if err := s.eventBus.Emit(event); err != nil {
		s.logger.Warn("Record event listener failed",
			zap.String("event", string(event.GetType())),
			zap.String("record_id", event.GetRecord().ID),
			zap.Error(err),
		)
	}
}
