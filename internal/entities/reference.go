// Package entities holds the host actors modifier records are attached to
package entities

import (
	"strings"

	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

const (
	actorSegment = "Actor"
	itemSegment  = "Item"
)

// Reference points at an actor or at an item owned by an actor,
// written "Actor.<id>" or "Actor.<id>.Item.<id>"
type Reference struct {
	EntityID string
	ItemID   string
}

// ParseReference parses a document reference
func ParseReference(ref string) (Reference, error) {
	parts := strings.Split(strings.TrimSpace(ref), ".")
	switch {
	case len(parts) == 2 && parts[0] == actorSegment && parts[1] != "":
		return Reference{EntityID: parts[1]}, nil
	case len(parts) == 4 && parts[0] == actorSegment && parts[2] == itemSegment &&
		parts[1] != "" && parts[3] != "":
		return Reference{EntityID: parts[1], ItemID: parts[3]}, nil
	default:
		return Reference{}, errors.InvalidArgumentf("malformed reference %q", ref).
			WithMeta("reference", ref)
	}
}

// IsItem reports whether the reference points at an owned item
func (r Reference) IsItem() bool {
	return r.ItemID != ""
}

// Item returns a reference to an item owned by the referenced entity
func (r Reference) Item(itemID string) Reference {
	return Reference{EntityID: r.EntityID, ItemID: itemID}
}

func (r Reference) String() string {
	if r.EntityID == "" {
		return ""
	}
	s := actorSegment + "." + r.EntityID
	if r.ItemID != "" {
		s += "." + itemSegment + "." + r.ItemID
	}
	return s
}

// OwnedByItem reports whether an origin string refers to an owned item
func OwnedByItem(origin string) bool {
	ref, err := ParseReference(origin)
	return err == nil && ref.IsItem()
}
