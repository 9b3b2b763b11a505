package effects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	assert.Contains(t, table.Types(), "characteristic")
	assert.Contains(t, table.Types(), "technique")

	sub, err := table.Subtype("ability", "craft")
	require.NoError(t, err)
	assert.True(t, sub.Option)
	assert.Equal(t, "arm5e.skill.general.craft", sub.Mnemonic)
}

func TestTable_UnknownKeys(t *testing.T) {
	table := DefaultTable()

	_, err := table.Type("nope")
	assert.True(t, errors.IsUnknownTagKey(err))

	_, err = table.Subtype("characteristic", "luck")
	assert.True(t, errors.IsUnknownTagKey(err))

	_, err = table.Subtype("nope", "sta")
	assert.True(t, errors.IsUnknownTagKey(err))
}

func TestLoadTable(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		table, err := LoadTable(strings.NewReader(`
types:
  aura:
    mnemonic: aura.label
    subtypes:
      magic: {mnemonic: aura.magic}
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"aura"}, table.Types())
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadTable(strings.NewReader("types:\n  aura:\n    label: x\n"))
		assert.Error(t, err)
	})

	t.Run("missing subtype mnemonic", func(t *testing.T) {
		_, err := LoadTable(strings.NewReader("types:\n  aura:\n    mnemonic: a\n    subtypes:\n      magic: {}\n"))
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := LoadTable(strings.NewReader("types: {}\n"))
		assert.Error(t, err)
	})
}
