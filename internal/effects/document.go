package effects

import (
	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

// Lifecycle holds the flags a host document carries for a modifier
type Lifecycle struct {
	Disabled  bool
	Temporary bool
	Hidden    bool
	NoEdit    bool
}

// Document is a host entity that bears modifier data in the host's
// parallel-array layout. Adapters around host objects implement it.
type Document interface {
	DocumentID() string
	DocumentName() string
	OriginRef() string
	Lifecycle() Lifecycle
	RawChanges() []Change
	RawTags() Tags
}

// Import converts a host document into a Record, rejecting misaligned tags
func Import(doc Document) (*Record, error) {
	r, err := FromParallel(doc.DocumentID(), doc.DocumentName(), doc.RawChanges(), doc.RawTags())
	if err != nil {
		return nil, err
	}

	lc := doc.Lifecycle()
	r.Origin = doc.OriginRef()
	r.Disabled = lc.Disabled
	r.Temporary = lc.Temporary
	r.Hidden = lc.Hidden
	r.NoEdit = lc.NoEdit
	return r, nil
}

// FromParallel builds a record from a change list and its three tag arrays.
// An absent array leaves that axis untagged on every change; a present
// array must be exactly as long as the change list.
func FromParallel(id, name string, changes []Change, tags Tags) (*Record, error) {
	for _, axis := range []struct {
		name string
		tags []string
	}{
		{"type", tags.Type},
		{"subtype", tags.Subtype},
		{"option", tags.Option},
	} {
		if axis.tags != nil && len(axis.tags) != len(changes) {
			return nil, errors.AlignmentViolationf(
				"record %s: %d changes but %d %s tags",
				id, len(changes), len(axis.tags), axis.name,
			).WithMeta("record_id", id).WithMeta("axis", axis.name)
		}
	}

	r := NewRecord(id, name)
	for i, ch := range changes {
		r.Append(ch, tagAt(tags.Type, i), tagAt(tags.Subtype, i), tagAt(tags.Option, i))
	}
	return r, nil
}

func tagAt(tags []string, i int) string {
	if tags == nil {
		return ""
	}
	return tags[i]
}
