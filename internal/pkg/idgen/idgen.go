// Package idgen generates evaluation identifiers
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/dungeon-tracker/internal/pkg/idgen Generator

// Generator hands out identifiers. Implementations must be safe for
// concurrent use.
type Generator interface {
	Generate() string
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

// Sequential counts up from 1. Deterministic, so tests use it.
type Sequential struct {
	prefix  string
	counter atomic.Uint64
}

func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

func (g *Sequential) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.counter.Add(1), 10))
}

// UUID issues version 7 UUIDs, which sort by creation time
type UUID struct {
	prefix string
}

func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

// Generate falls back to a random v4 UUID if the v7 clock read fails
func (g *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return withPrefix(g.prefix, id.String())
}
