package gamedata

import (
	"errors"
	"math/rand"
)

// Def is a spawnable definition with a relative spawn weight.
type Def interface {
	DefID() string
	SpawnOdds() int
}

// Table holds loaded definitions and provides weighted spawning.
type Table[T Def] struct {
	defs        []T
	totalWeight int
}

// NewTable creates a table from loaded definitions.
func NewTable[T Def](defs []T) *Table[T] {
	totalWeight := 0
	for _, d := range defs {
		if w := d.SpawnOdds(); w > 0 {
			totalWeight += w
		}
	}
	return &Table[T]{
		defs:        defs,
		totalWeight: totalWeight,
	}
}

// ErrEmptyTable is returned when a table has nothing to spawn.
var ErrEmptyTable = errors.New("gamedata: table has no spawnable entries")

// SpawnRandom selects a definition using weighted probability.
// Entries with higher weight are more likely to be selected.
func (t *Table[T]) SpawnRandom(rng *rand.Rand) (*T, error) {
	if t.totalWeight <= 0 || len(t.defs) == 0 {
		return nil, ErrEmptyTable
	}

	roll := rng.Intn(t.totalWeight)

	cumulative := 0
	for i := range t.defs {
		w := t.defs[i].SpawnOdds()
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return &t.defs[i], nil
		}
	}
	return nil, ErrEmptyTable
}

// GetByID returns the definition with the given ID, or nil if not found.
func (t *Table[T]) GetByID(id string) *T {
	for i := range t.defs {
		if t.defs[i].DefID() == id {
			return &t.defs[i]
		}
	}
	return nil
}

// All returns all definitions.
func (t *Table[T]) All() []T {
	return t.defs
}

// Count returns the number of definitions in the table.
func (t *Table[T]) Count() int {
	return len(t.defs)
}
