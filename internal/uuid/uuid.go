// Package uuid wraps google/uuid behind an interface so ids can be fixed in tests
package uuid

import (
	"sync"

	"github.com/google/uuid"
)

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator hands out a fixed list of ids, then repeats the last one
type SequenceGenerator struct {
	mu   sync.Mutex
	ids  []string
	next int
}

// NewSequenceGenerator creates a generator returning ids in order
func NewSequenceGenerator(ids ...string) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

// New returns the next id
func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.ids) == 0 {
		return ""
	}
	if g.next >= len(g.ids) {
		return g.ids[len(g.ids)-1]
	}
	id := g.ids[g.next]
	g.next++
	return id
}
