package magic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/arm5e-effects/internal/errors"
)

func TestDefaultParameters(t *testing.T) {
	params := DefaultParameters()
	require.NotNil(t, params)

	assert.Equal(t, []string{"arc", "eye", "personal", "sight", "touch", "voice"}, params.Keys("ranges"))
	assert.Contains(t, params.Keys("targets"), "bound")
	assert.Empty(t, params.Keys("nope"))

	year, err := params.Duration("year")
	require.NoError(t, err)
	assert.Equal(t, 4, year.Impact)
}

func TestParameters_Spec(t *testing.T) {
	params := DefaultParameters()

	spec, err := params.Spec(Effect{
		BaseLevel: 5,
		Range:     "voice",
		Duration:  "sun",
		Target:    "ind",
		Technique: "cr",
		Form:      "ig",
	})
	require.NoError(t, err)

	assert.Equal(t, MagnitudeSpec{
		BaseLevel:      5,
		Contributions:  []int{2, 2, 0, 0, 0, 0},
		DurationImpact: 2,
		Target:         "ind",
	}, spec)
}

func TestParameters_EffectLevel(t *testing.T) {
	params := DefaultParameters()

	tests := []struct {
		name   string
		effect Effect
		want   Level
	}{
		{
			name:   "voice sun individual",
			effect: Effect{BaseLevel: 5, Range: "voice", Duration: "sun", Target: "ind"},
			want:   Level{Level: 25},
		},
		{
			name:   "complexity adds a magnitude",
			effect: Effect{BaseLevel: 4, Range: "touch", Duration: "moment", Target: "ind", Complexity: 1},
			want:   Level{Level: 10},
		},
		{
			name:   "year duration is a ritual",
			effect: Effect{BaseLevel: 3, Range: "personal", Duration: "year", Target: "ind"},
			want:   Level{Level: 20, Ritual: true},
		},
		{
			name:   "boundary target is a ritual",
			effect: Effect{BaseLevel: 1, Range: "personal", Duration: "moment", Target: "bound"},
			want:   Level{Level: 20, Ritual: true},
		},
		{
			name:   "unset parameters contribute nothing",
			effect: Effect{BaseLevel: 2},
			want:   Level{Level: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := params.EffectLevel(tt.effect)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParameters_UnknownKey(t *testing.T) {
	params := DefaultParameters()

	_, err := params.EffectLevel(Effect{BaseLevel: 5, Range: "telepathy"})
	require.Error(t, err)
	assert.True(t, errors.IsUnknownTagKey(err))
	assert.Equal(t, "telepathy", errors.GetMeta(err)["range"])

	_, err = params.Spec(Effect{Target: "everyone"})
	assert.True(t, errors.IsUnknownTagKey(err))
}

func TestLoadParameters(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		params, err := LoadParameters(strings.NewReader(`
ranges: {per: {impact: 0}}
durations: {mom: {impact: 0}, forever: {impact: 5}}
targets: {ind: {impact: 0}}
`))
		require.NoError(t, err)

		lvl, err := params.EffectLevel(Effect{BaseLevel: 5, Range: "per", Duration: "forever", Target: "ind"})
		require.NoError(t, err)
		assert.True(t, lvl.Ritual)
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := LoadParameters(strings.NewReader("ranges: {per: {impact: 0}}\ntargets: {ind: {impact: 0}}\n"))
		assert.Error(t, err)
	})

	t.Run("negative impact", func(t *testing.T) {
		_, err := LoadParameters(strings.NewReader(`
ranges: {per: {impact: -1}}
durations: {mom: {impact: 0}}
targets: {ind: {impact: 0}}
`))
		assert.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadParameters(strings.NewReader("ranges: {per: {impact: 0, bonus: 2}}\n"))
		assert.Error(t, err)
	})
}
