package magic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddMagnitude(t *testing.T) {
	tests := []struct {
		name         string
		base         int
		contribution int
		want         int
	}{
		{name: "linear region", base: 0, contribution: 4, want: 4},
		{name: "reaches five exactly", base: 0, contribution: 5, want: 5},
		{name: "steps past five", base: 0, contribution: 6, want: 10},
		{name: "both steps linear", base: 3, contribution: 2, want: 5},
		{name: "crosses into magnitudes", base: 3, contribution: 3, want: 10},
		{name: "starts at five", base: 5, contribution: 1, want: 10},
		{name: "above five", base: 10, contribution: 2, want: 20},
		{name: "zero is a no-op", base: 7, contribution: 0, want: 7},
		{name: "negative treated as zero", base: 4, contribution: -2, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMagnitude(tt.base, tt.contribution))
		})
	}
}

func TestAddMagnitude_Monotonic(t *testing.T) {
	for base := 0; base <= 30; base++ {
		prev := AddMagnitude(base, 0)
		for c := 1; c <= 10; c++ {
			got := AddMagnitude(base, c)
			assert.GreaterOrEqual(t, got, prev, "base %d contribution %d", base, c)
			prev = got
		}
	}
}

func TestFoldMagnitudes(t *testing.T) {
	assert.Equal(t, 2, FoldMagnitudes(2))
	// 5 +2 → 15, +2 → 25
	assert.Equal(t, 25, FoldMagnitudes(5, 2, 2, 0, 0, 0, 0))
	assert.Equal(t, 10, FoldMagnitudes(4, 1, 0, 0, 1))
}
