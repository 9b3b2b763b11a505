package effects

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	ae "github.com/KirkDiggler/arm5e-effects/internal/effects"
	"github.com/KirkDiggler/arm5e-effects/internal/entities"
	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

// SheetInput selects whose records to show and to whom
type SheetInput struct {
	OwnerID string
	Viewer  Viewer
	Locale  string
}

// SheetEntry is one record as shown on a sheet
type SheetEntry struct {
	Record      *ae.Record
	DisplayName string
	Description string
	Source      string // name of the entity or item the record comes from
	NoEdit      bool
	NoDelete    bool
	Issues      []ae.Issue
}

// SheetCategory is one section of a sheet
type SheetCategory struct {
	Type    ae.CategoryType
	Label   string
	Entries []*SheetEntry
}

// SheetOutput holds the three sections in display order
type SheetOutput struct {
	Categories []*SheetCategory
}

func (s *service) Sheet(ctx context.Context, input *SheetInput) (*SheetOutput, error) {
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

	loc := s.localizer(input.Locale)
	renderer := s.renderer(loc)
	visible := ae.Visible(recs, input.Viewer.Privileged, s.hiddenMode)
	sources := s.resolveSources(ctx, visible)

	cats := ae.Classify(visible, loc.Localize(ae.KeyHiddenMarker))
	out := &SheetOutput{Categories: make([]*SheetCategory, 0, 3)}
	for _, cat := range cats.All() {
		section := &SheetCategory{
			Type:    cat.Type,
			Label:   loc.Localize(cat.Label),
			Entries: make([]*SheetEntry, 0, len(cat.Entries)),
		}
		for _, c := range cat.Entries {
			section.Entries = append(section.Entries, &SheetEntry{
				Record:      c.Record,
				DisplayName: c.DisplayName,
				Description: renderer.Describe(c.Record),
				Source:      sources[c.Record.Origin],
				NoEdit:      c.Record.NoEdit && !input.Viewer.Privileged,
				NoDelete:    entities.OwnedByItem(c.Record.Origin),
				Issues:      ae.Validate(c.Record, s.table),
			})
		}
		out.Categories = append(out.Categories, section)
	}

	s.logger.Debug("Built sheet",
		zap.String("owner_id", input.OwnerID),
		zap.Int("records", len(recs)),
		zap.Int("visible", len(visible)),
	)
	return out, nil
}

// resolveSources looks up the display name of every distinct origin.
// Unresolvable origins are logged and left blank.
func (s *service) resolveSources(ctx context.Context, recs []*ae.Record) map[string]string {
	origins := make(map[string]struct{})
	for _, r := range recs {
		if r.Origin != "" {
			origins[r.Origin] = struct{}{}
		}
	}

	var mu sync.Mutex
	names := make(map[string]string, len(origins))

	g, ctx := errgroup.WithContext(ctx)
	for origin := range origins {
		g.Go(func() error {
			name, err := s.sourceName(ctx, origin)
			if err != nil {
				s.logger.Warn("Failed to resolve record origin",
					zap.String("origin", origin),
					zap.Error(err),
				)
				return nil
			}
			mu.Lock()
			names[origin] = name
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return names
}

func (s *service) sourceName(ctx context.Context, origin string) (string, error) {
	ref, err := entities.ParseReference(origin)
	if err != nil {
		return "", err
	}
	entity, err := s.resolver.Resolve(ctx, origin)
	if err != nil {
		return "", err
	}
	if ref.IsItem() {
		if item, ok := entity.Item(ref.ItemID); ok {
			return item.Name, nil
		}
	}
	return entity.Name, nil
}
