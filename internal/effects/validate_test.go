package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

func TestValidate(t *testing.T) {
	t.Run("clean record", func(t *testing.T) {
		rec := NewBuilder("ok").
			AddChange("characteristic", "sta", ModeAdd, 1).
			AddChangeWithOption("ability", "craft", "Smith", ModeAdd, 1).
			Build()

		assert.Empty(t, Validate(rec, nil))
	})

	t.Run("reports every problem", func(t *testing.T) {
		rec := NewBuilder("bad").
			AddChange("characteristic", "sta", Mode(7), 1).
			AddChange("nonsense", "x", ModeAdd, 1).
			AddChange("ability", "craft", ModeAdd, 1).
			Build()

		issues := Validate(rec, DefaultTable())
		require.Len(t, issues, 3)

		assert.Equal(t, 0, issues[0].Index)
		assert.Equal(t, errors.CodeUnsupportedMode, issues[0].Code)
		assert.Equal(t, 1, issues[1].Index)
		assert.Equal(t, errors.CodeUnknownTagKey, issues[1].Code)
		assert.Equal(t, 2, issues[2].Index)
		assert.Equal(t, errors.CodeMissingOption, issues[2].Code)
		assert.Contains(t, issues[0].String(), "change 0")
	})
}
