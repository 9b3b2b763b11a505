// Package testutils holds fixtures and redis helpers shared by package tests
package testutils

import (
	"github.com/KirkDiggler/arm5e-effects/internal/effects"
	"github.com/KirkDiggler/arm5e-effects/internal/entities"
	"github.com/KirkDiggler/arm5e-effects/internal/magic"
)

// CreateTestMagus creates a fully formed spellcasting character
func CreateTestMagus(id, ownerID, name string) *entities.Entity {
	return &entities.Entity{
		ID:      id,
		OwnerID: ownerID,
		Type:    magic.KindPlayer,
		Name:    name,
		Characteristics: map[string]int{
			"int": 3, "per": 0, "str": -1, "sta": 2,
			"pre": 1, "com": 1, "dex": 0, "qik": -1,
		},
		Arts: map[string]int{
			"cr": 10, "in": 5, "mu": 3, "pe": 6, "re": 8,
			"an": 6, "aq": 0, "au": 2, "co": 7, "he": 4,
			"ig": 8, "im": 3, "me": 5, "te": 4, "vi": 9,
		},
		Items: []entities.Item{
			{ID: "talisman", Name: "Staff of the Magus", Type: "item"},
		},
	}
}

// CreateTestCodex creates a reference codex
func CreateTestCodex(id, name string) *entities.Entity {
	return &entities.Entity{
		ID:   id,
		Type: magic.KindCodex,
		Name: name,
	}
}

// CreateTestRecord creates a passive record with one change per kind of rendering
func CreateTestRecord(id, name string) *effects.Record {
	return effects.NewBuilder(name).
		WithID(id).
		AddChange("characteristic", "str", effects.ModeAdd, 2).
		AddChange("vitals", "soak", effects.ModeOverride, 5).
		AddChangeWithOption("ability", "craft", "Blacksmith", effects.ModeAdd, 3).
		Build()
}

// CreateTestSheet creates one record per category plus a hidden one, in that order
func CreateTestSheet(ownerRef string) []*effects.Record {
	return []*effects.Record{
		effects.NewBuilder("Aura of Rightful Authority").WithID("ae-temp").
			WithOrigin(ownerRef).Temporary().
			AddChange("spellcasting", "aura", effects.ModeAdd, 3).
			Build(),
		effects.NewBuilder("Puissant Craft").WithID("ae-passive").
			WithOrigin(ownerRef).
			AddChangeWithOption("ability", "craft", "Blacksmith", effects.ModeAdd, 3).
			Build(),
		effects.NewBuilder("Wound").WithID("ae-inactive").
			WithOrigin(ownerRef).Disabled().
			AddChange("vitals", "woundPenalty", effects.ModeAdd, -1).
			Build(),
		effects.NewBuilder("Warping").WithID("ae-hidden").
			WithOrigin(ownerRef).Hidden().
			AddChange("characteristic", "com", effects.ModeAdd, -1).
			Build(),
	}
}
