// Package idgen hands out identifiers for offers, challenges and gateway
// sessions.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// SequentialGenerator numbers trade offers and duel challenges the way
// players type them back: 1, 2, 3. Numbering restarts with the process.
type SequentialGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequential creates a counter starting at 1. A non-empty prefix is
// joined with an underscore.
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next number
func (g *SequentialGenerator) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}

// UUIDGenerator identifies gateway sessions
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a random id generator
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a fresh random id
func (g *UUIDGenerator) Generate() string {
	return join(g.prefix, uuid.NewString())
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
