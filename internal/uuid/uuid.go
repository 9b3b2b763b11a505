// Package uuid generates record identifiers behind an interface so tests can fix them
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces identifiers for new records
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random v4 UUIDs
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// Sequence returns identifiers from a fixed list, then falls back to random ones
type Sequence struct {
	ids  []string
	next int
}

// NewSequence creates a generator that yields ids in order
func NewSequence(ids ...string) *Sequence {
	return &Sequence{ids: ids}
}

// New returns the next fixed id
func (s *Sequence) New() string {
	if s.next >= len(s.ids) {
		return uuid.New().String()
	}
	id := s.ids[s.next]
	s.next++
	return id
}
