package entities

import (
	"time"

	"github.com/KirkDiggler/arm5e-effects/internal/magic"
)

// Item is an owned item that can carry its own modifier records
type Item struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Entity is a host actor: a character, beast, laboratory or codex
type Entity struct {
	ID              string          `json:"id" yaml:"id"`
	OwnerID         string          `json:"owner_id,omitempty" yaml:"ownerId,omitempty"`
	Type            magic.ActorKind `json:"type" yaml:"type"`
	Name            string          `json:"name" yaml:"name"`
	Characteristics map[string]int  `json:"characteristics,omitempty" yaml:"characteristics,omitempty"`
	Arts            map[string]int  `json:"arts,omitempty" yaml:"arts,omitempty"`
	Items           []Item          `json:"items,omitempty" yaml:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at" yaml:"-"`
	UpdatedAt       time.Time       `json:"updated_at" yaml:"-"`
}

// Kind implements magic.Caster
func (e *Entity) Kind() magic.ActorKind {
	return e.Type
}

// Characteristic implements magic.Caster
func (e *Entity) Characteristic(key string) (int, bool) {
	score, ok := e.Characteristics[key]
	return score, ok
}

// Art implements magic.Caster
func (e *Entity) Art(key string) (int, bool) {
	score, ok := e.Arts[key]
	return score, ok
}

// Item returns the owned item with the given ID
func (e *Entity) Item(id string) (Item, bool) {
	for _, it := range e.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Ref returns the reference other documents use to point at the entity
func (e *Entity) Ref() Reference {
	return Reference{EntityID: e.ID}
}

// Clone returns a deep copy of the entity
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	out := *e
	out.Characteristics = cloneScores(e.Characteristics)
	out.Arts = cloneScores(e.Arts)
	if e.Items != nil {
		out.Items = append([]Item(nil), e.Items...)
	}
	return &out
}

func cloneScores(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

var _ magic.Caster = (*Entity)(nil)
