package effects

import (
	"fmt"

	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

// Issue is a data-quality warning about one change of a record
type Issue struct {
	Index   int
	Code    errors.Code
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("change %d: %s (%s)", i.Index, i.Message, i.Code)
}

// Validate reports data-quality problems in a record against a table.
// It never fails; an empty result means the record is clean.
func Validate(rec *Record, table *Table) []Issue {
	if table == nil {
		table = DefaultTable()
	}

	issues := []Issue{}
	for i, e := range rec.entries {
		if !e.Mode.Known() {
			issues = append(issues, Issue{
				Index:   i,
				Code:    errors.CodeUnsupportedMode,
				Message: fmt.Sprintf("unsupported mode %s", e.Mode),
			})
		}

		sub, err := table.Subtype(e.Type, e.Subtype)
		if err != nil {
			issues = append(issues, Issue{
				Index:   i,
				Code:    errors.GetCode(err),
				Message: err.Error(),
			})
			continue
		}
		if sub.Option && e.Option == "" {
			issues = append(issues, Issue{
				Index:   i,
				Code:    errors.CodeMissingOption,
				Message: fmt.Sprintf("subtype %s.%s requires an option", e.Type, e.Subtype),
			})
		}
	}
	return issues
}
