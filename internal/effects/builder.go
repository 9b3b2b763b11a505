package effects

import (
	"github.com/KirkDiggler/arm5e-effects/internal/uuid"
)

// Builder helps create modifier records
type Builder struct {
	record *Record
}

// NewBuilder creates a new record builder with a generated ID
func NewBuilder(name string) *Builder {
	return NewBuilderWithGenerator(name, uuid.NewGoogleUUIDGenerator())
}

// NewBuilderWithGenerator creates a builder that takes its ID from gen
func NewBuilderWithGenerator(name string, gen uuid.Generator) *Builder {
	return &Builder{
		record: NewRecord(gen.New(), name),
	}
}

// WithID overrides the generated ID
func (b *Builder) WithID(id string) *Builder {
	b.record.ID = id
	return b
}

// WithOrigin sets the owning entity or defining source
func (b *Builder) WithOrigin(origin string) *Builder {
	b.record.Origin = origin
	return b
}

// InCategory sets the lifecycle flags that place the record in a category
func (b *Builder) InCategory(category CategoryType) *Builder {
	b.record.Temporary = category == CategoryTemporary
	b.record.Disabled = category == CategoryInactive
	return b
}

// Temporary marks the record as time-limited
func (b *Builder) Temporary() *Builder {
	b.record.Temporary = true
	return b
}

// Disabled marks the record as inactive
func (b *Builder) Disabled() *Builder {
	b.record.Disabled = true
	return b
}

// Hidden marks the record as visible to privileged viewers only
func (b *Builder) Hidden() *Builder {
	b.record.Hidden = true
	return b
}

// Locked marks the record as not editable
func (b *Builder) Locked() *Builder {
	b.record.NoEdit = true
	return b
}

// AddChange adds a tagged change
func (b *Builder) AddChange(effectType, subtype string, mode Mode, value float64) *Builder {
	return b.AddChangeWithOption(effectType, subtype, "", mode, value)
}

// AddChangeWithOption adds a tagged change whose subtype takes an option
func (b *Builder) AddChangeWithOption(effectType, subtype, option string, mode Mode, value float64) *Builder {
	b.record.Append(Change{
		Key:   changeKey(effectType, subtype, option),
		Mode:  mode,
		Value: value,
	}, effectType, subtype, option)
	return b
}

// AddRawChange adds a change with an explicit target path
func (b *Builder) AddRawChange(change Change, effectType, subtype, option string) *Builder {
	b.record.Append(change, effectType, subtype, option)
	return b
}

// Build returns the constructed record
func (b *Builder) Build() *Record {
	return b.record
}

// changeKey derives the target path the host uses for a tagged change
func changeKey(effectType, subtype, option string) string {
	key := "system.bonuses." + effectType + "." + subtype
	if option != "" {
		key += "." + option
	}
	return key
}
