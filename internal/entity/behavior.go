package entity

// BehaviorKind selects the per-turn AI routine for an actor.
type BehaviorKind int

const (
	BehaviorWander   BehaviorKind = iota // Idle
	BehaviorChase                        // Approach and attack the player when visible
	BehaviorFlee                         // Step away from the player when visible
	BehaviorConfused                     // Stumble randomly, then revert
)

var behaviorKindNames = map[BehaviorKind]string{
	BehaviorWander:   "wander",
	BehaviorChase:    "chase",
	BehaviorFlee:     "flee",
	BehaviorConfused: "confused",
}

// String returns the behavior name.
func (k BehaviorKind) String() string { return enumString(k, behaviorKindNames) }

// MarshalText implements encoding.TextMarshaler.
func (k BehaviorKind) MarshalText() ([]byte, error) { return marshalEnum(k, behaviorKindNames) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *BehaviorKind) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(text, behaviorKindNames)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Behavior is an actor's AI state. A confused behavior remembers the
// behavior it replaced and how many turns remain.
type Behavior struct {
	Owner          Handle       `json:"owner"`
	Kind           BehaviorKind `json:"kind"`
	Previous       *Behavior    `json:"previous,omitempty"`
	TurnsRemaining int          `json:"turns_remaining,omitempty"`
}

// NewBehavior creates a plain behavior of the given kind.
func NewBehavior(kind BehaviorKind) *Behavior {
	return &Behavior{Kind: kind}
}

// Confuse wraps previous in a confused behavior lasting turns turns.
func Confuse(previous *Behavior, turns int) *Behavior {
	b := &Behavior{
		Kind:           BehaviorConfused,
		Previous:       previous,
		TurnsRemaining: turns,
	}
	if previous != nil {
		b.Owner = previous.Owner
	}
	return b
}

// Tick consumes one confused turn. While turns remain it counts one down
// and the actor stumbles; once none remain it reports expired instead.
func (b *Behavior) Tick() (expired bool) {
	if b.TurnsRemaining > 0 {
		b.TurnsRemaining--
		return false
	}
	return true
}
