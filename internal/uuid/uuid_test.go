package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := NewGoogleUUIDGenerator()

	first := gen.New()
	second := gen.New()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSequence(t *testing.T) {
	seq := NewSequence("ae-1", "ae-2")

	assert.Equal(t, "ae-1", seq.New())
	assert.Equal(t, "ae-2", seq.New())

	_, err := uuid.Parse(seq.New())
	assert.NoError(t, err)
}
