package effects

import (
	"fmt"

	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

// Mode is how a change combines with the value it targets.
// Numeric values follow the host's change mode numbering.
type Mode int

const (
	ModeCustom Mode = iota
	ModeMultiply
	ModeAdd
	ModeDowngrade
	ModeUpgrade
	ModeOverride
)

// Known reports whether the mode is part of the enumeration
func (m Mode) Known() bool {
	return m >= ModeCustom && m <= ModeOverride
}

func (m Mode) String() string {
	switch m {
	case ModeCustom:
		return "custom"
	case ModeMultiply:
		return "multiply"
	case ModeAdd:
		return "add"
	case ModeDowngrade:
		return "downgrade"
	case ModeUpgrade:
		return "upgrade"
	case ModeOverride:
		return "override"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Change is a single numeric adjustment applied to a target path
type Change struct {
	Key   string
	Mode  Mode
	Value float64
}

// Entry is a change together with the semantic tags describing it.
// Keeping the tags on the entry is what keeps them aligned with the change list.
type Entry struct {
	Change
	Type    string
	Subtype string
	Option  string
}

// Tags is the parallel-array view of a record's tags, one element per change
type Tags struct {
	Type    []string
	Subtype []string
	Option  []string
}

// Record is a modifier attached to an entity (an "active effect").
// Records are not safe for concurrent mutation; callers serialize writes.
type Record struct {
	ID        string
	Name      string
	Origin    string // empty when the record has no origin
	Disabled  bool
	Temporary bool
	Hidden    bool
	NoEdit    bool

	entries []Entry
}

// NewRecord creates a record with no changes
func NewRecord(id, name string) *Record {
	return &Record{
		ID:      id,
		Name:    name,
		entries: []Entry{},
	}
}

// NewForCategory creates an empty record set up to land in the given category
func NewForCategory(id, name, origin string, category CategoryType) *Record {
	r := NewRecord(id, name)
	r.Origin = origin
	switch category {
	case CategoryTemporary:
		r.Temporary = true
	case CategoryInactive:
		r.Disabled = true
	}
	return r
}

// Append adds a change and its tags as one entry
func (r *Record) Append(change Change, effectType, subtype, option string) {
	r.entries = append(r.entries, Entry{
		Change:  change,
		Type:    effectType,
		Subtype: subtype,
		Option:  option,
	})
}

// RemoveAt removes the change at index i along with its tags
func (r *Record) RemoveAt(i int) error {
	if i < 0 || i >= len(r.entries) {
		return errors.InvalidArgumentf("record %s: change index %d out of range [0,%d)", r.ID, i, len(r.entries))
	}
	r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
	return nil
}

// Toggle flips the disabled flag
func (r *Record) Toggle() {
	r.Disabled = !r.Disabled
}

// Len returns the number of changes
func (r *Record) Len() int {
	return len(r.entries)
}

// Entry returns the entry at index i
func (r *Record) Entry(i int) Entry {
	return r.entries[i]
}

// Entries returns a copy of the record's entries in order
func (r *Record) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Changes returns the change list in order
func (r *Record) Changes() []Change {
	out := make([]Change, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Change
	}
	return out
}

// Tags returns the tags as three arrays aligned with Changes
func (r *Record) Tags() Tags {
	tags := Tags{
		Type:    make([]string, len(r.entries)),
		Subtype: make([]string, len(r.entries)),
		Option:  make([]string, len(r.entries)),
	}
	for i, e := range r.entries {
		tags.Type[i] = e.Type
		tags.Subtype[i] = e.Subtype
		tags.Option[i] = e.Option
	}
	return tags
}

// HasType reports whether any change is tagged with the type
func (r *Record) HasType(effectType string) bool {
	if effectType == "" {
		return false
	}
	for _, e := range r.entries {
		if e.Type == effectType {
			return true
		}
	}
	return false
}

// HasSubtype reports whether any change is tagged with the subtype
func (r *Record) HasSubtype(subtype string) bool {
	if subtype == "" {
		return false
	}
	for _, e := range r.entries {
		if e.Subtype == subtype {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the record
func (r *Record) Clone() *Record {
	return r.project(func(Entry) bool { return true })
}

// project copies the record keeping only the entries accepted by keep
func (r *Record) project(keep func(Entry) bool) *Record {
	out := *r
	out.entries = make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if keep(e) {
			out.entries = append(out.entries, e)
		}
	}
	return &out
}
