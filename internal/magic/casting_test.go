package magic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCastingTotal(t *testing.T) {
	tests := []struct {
		name string
		in   CastingInputs
		want int
	}{
		{
			name: "focus adds the lower art",
			in: CastingInputs{
				Kind:       KindPlayer,
				BaseStat:   10,
				Technique:  ArtInput{Score: 5},
				Form:       ArtInput{Score: 7},
				ApplyFocus: true,
			},
			want: 27,
		},
		{
			name: "no focus",
			in: CastingInputs{
				Kind:      KindPlayer,
				BaseStat:  2,
				Technique: ArtInput{Score: 5},
				Form:      ArtInput{Score: 7},
			},
			want: 14,
		},
		{
			name: "requisite caps the art",
			in: CastingInputs{
				Kind:       KindNPC,
				BaseStat:   2,
				Technique:  ArtInput{Score: 10},
				Form:       ArtInput{Score: 8, Requisite: Requisite(6)},
				ApplyFocus: true,
			},
			want: 24,
		},
		{
			name: "higher requisite does not raise the art",
			in: CastingInputs{
				Kind:      KindPlayer,
				Technique: ArtInput{Score: 3, Requisite: Requisite(12)},
				Form:      ArtInput{Score: 4},
			},
			want: 7,
		},
		{
			name: "negative stamina lowers the total",
			in: CastingInputs{
				Kind:      KindBeast,
				BaseStat:  -2,
				Technique: ArtInput{Score: 3},
				Form:      ArtInput{Score: 4},
			},
			want: 5,
		},
		{
			name: "codex has no casting total",
			in: CastingInputs{
				Kind:       KindCodex,
				BaseStat:   10,
				Technique:  ArtInput{Score: 5},
				Form:       ArtInput{Score: 7},
				ApplyFocus: true,
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeCastingTotal(tt.in))
		})
	}
}

func TestArtKeys(t *testing.T) {
	assert.True(t, IsTechnique("cr"))
	assert.False(t, IsTechnique("an"))
	assert.True(t, IsForm("vi"))
	assert.False(t, IsForm("re"))
}
