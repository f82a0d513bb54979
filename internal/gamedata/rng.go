package gamedata

import (
	"encoding/json"
	"fmt"
	"math/rand"
)

// Range is an inclusive integer range rolled when an object is spawned.
// In JSON it is either a number or a [min, max] pair.
type Range struct {
	Min, Max int
}

// Fixed returns a range that always rolls n.
func Fixed(n int) Range {
	return Range{Min: n, Max: n}
}

// Roll returns a value in [Min, Max].
func (r Range) Roll(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// MarshalJSON writes fixed ranges as a number and others as a pair.
func (r Range) MarshalJSON() ([]byte, error) {
	if r.Min == r.Max {
		return json.Marshal(r.Min)
	}
	return json.Marshal([2]int{r.Min, r.Max})
}

// UnmarshalJSON accepts a number or a [min, max] pair.
func (r *Range) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Fixed(n)
		return nil
	}
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("range must be a number or [min, max]: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("range must have 2 elements, got %d", len(pair))
	}
	if pair[0] > pair[1] {
		return fmt.Errorf("range min %d exceeds max %d", pair[0], pair[1])
	}
	*r = Range{Min: pair[0], Max: pair[1]}
	return nil
}
