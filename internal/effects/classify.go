package effects

import (
	"fmt"
	"strings"
)

// CategoryType is the presentation bucket of a record
type CategoryType string

const (
	CategoryTemporary CategoryType = "temporary"
	CategoryPassive   CategoryType = "passive"
	CategoryInactive  CategoryType = "inactive"
)

// Localization keys used for classification
const (
	KeyHiddenMarker = "arm5e.generic.hidden"
	KeyNewEffect    = "arm5e.sheet.activeEffect.new"
)

// Label returns the localization key of the category's section header
func (c CategoryType) Label() string {
	return "arm5e.sheet.activeEffect.section." + string(c)
}

// ParseCategory validates a category name
func ParseCategory(s string) (CategoryType, error) {
	switch c := CategoryType(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryTemporary, CategoryPassive, CategoryInactive:
		return c, nil
	default:
		return "", fmt.Errorf("unknown effect category %q", s)
	}
}

// Classified is a record placed in a category with the name to display
type Classified struct {
	Record      *Record
	DisplayName string
}

// Category is one section of classified records
type Category struct {
	Type    CategoryType
	Label   string
	Entries []Classified
}

// Categories partitions records into the three sections
type Categories struct {
	Temporary Category
	Passive   Category
	Inactive  Category
}

// All returns the sections in display order
func (c *Categories) All() []*Category {
	return []*Category{&c.Temporary, &c.Passive, &c.Inactive}
}

// CategoryOf returns the bucket a record belongs in
func CategoryOf(r *Record) CategoryType {
	if r.Disabled {
		return CategoryInactive
	}
	if r.Temporary {
		return CategoryTemporary
	}
	return CategoryPassive
}

// DisplayName returns the record name, suffixed with the marker when hidden
func DisplayName(r *Record, hiddenMarker string) string {
	if !r.Hidden {
		return r.Name
	}
	return fmt.Sprintf("%s (%s)", r.Name, hiddenMarker)
}

// Classify buckets records by lifecycle state, keeping input order within each bucket
func Classify(records []*Record, hiddenMarker string) Categories {
	cats := Categories{
		Temporary: newCategory(CategoryTemporary),
		Passive:   newCategory(CategoryPassive),
		Inactive:  newCategory(CategoryInactive),
	}

	for _, r := range records {
		entry := Classified{Record: r, DisplayName: DisplayName(r, hiddenMarker)}
		switch CategoryOf(r) {
		case CategoryInactive:
			cats.Inactive.Entries = append(cats.Inactive.Entries, entry)
		case CategoryTemporary:
			cats.Temporary.Entries = append(cats.Temporary.Entries, entry)
		default:
			cats.Passive.Entries = append(cats.Passive.Entries, entry)
		}
	}
	return cats
}

func newCategory(t CategoryType) Category {
	return Category{Type: t, Label: t.Label(), Entries: []Classified{}}
}

// HiddenMode selects what unprivileged viewers see of hidden records
type HiddenMode string

const (
	// HiddenMark shows hidden records to everyone with a marker on the name
	HiddenMark HiddenMode = "mark"
	// HiddenSuppress removes hidden records for unprivileged viewers
	HiddenSuppress HiddenMode = "suppress"
)

// ParseHiddenMode validates a hidden mode name
func ParseHiddenMode(s string) (HiddenMode, error) {
	switch m := HiddenMode(strings.ToLower(strings.TrimSpace(s))); m {
	case HiddenMark, HiddenSuppress:
		return m, nil
	case "":
		return HiddenMark, nil
	default:
		return "", fmt.Errorf("unknown hidden mode %q", s)
	}
}

// Visible returns the records a viewer may see under the mode
func Visible(records []*Record, privileged bool, mode HiddenMode) []*Record {
	if privileged || mode != HiddenSuppress {
		return records
	}
	out := make([]*Record, 0, len(records))
	for _, r := range records {
		if !r.Hidden {
			out = append(out, r)
		}
	}
	return out
}
