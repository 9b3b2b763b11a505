package effects

// ByType returns the enabled records tagged with the type on any change.
// Records are returned as-is, without narrowing their changes.
func ByType(records []*Record, effectType string) []*Record {
	out := []*Record{}
	for _, r := range records {
		if !r.Disabled && r.HasType(effectType) {
			out = append(out, r)
		}
	}
	return out
}

// ByTypeFiltered returns projections of the enabled records tagged with the
// type, each holding only the changes whose type tag matches.
func ByTypeFiltered(records []*Record, effectType string) []*Record {
	out := []*Record{}
	for _, r := range ByType(records, effectType) {
		out = append(out, r.project(func(e Entry) bool {
			return e.Type == effectType
		}))
	}
	return out
}

// ByTypeAndSubtypeFiltered returns projections holding only the changes tagged
// with both the type and the subtype at the same position. Records with no
// such change are left out.
func ByTypeAndSubtypeFiltered(records []*Record, effectType, subtype string) []*Record {
	out := []*Record{}
	for _, r := range records {
		if r.Disabled || !r.HasType(effectType) || !r.HasSubtype(subtype) {
			continue
		}
		p := r.project(func(e Entry) bool {
			return e.Type == effectType && e.Subtype == subtype
		})
		if p.Len() > 0 {
			out = append(out, p)
		}
	}
	return out
}

// BySubtype returns the enabled records tagged with the subtype on any change
func BySubtype(records []*Record, subtype string) []*Record {
	out := []*Record{}
	for _, r := range records {
		if !r.Disabled && r.HasSubtype(subtype) {
			out = append(out, r)
		}
	}
	return out
}

// BySubtypeFiltered is ByTypeFiltered keyed on the subtype tag
func BySubtypeFiltered(records []*Record, subtype string) []*Record {
	out := []*Record{}
	for _, r := range BySubtype(records, subtype) {
		out = append(out, r.project(func(e Entry) bool {
			return e.Subtype == subtype
		}))
	}
	return out
}
