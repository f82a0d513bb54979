package entity

// UseEffect selects what happens when an item is used.
type UseEffect int

const (
	UseNone      UseEffect = iota // Not usable
	UseHeal                       // Restore HP to the user
	UseLightning                  // Damage every creature on a line
	UseFireball                   // Damage every creature in a square
	UseConfuse                    // Confuse a target creature
)

var useEffectNames = map[UseEffect]string{
	UseNone:      "none",
	UseHeal:      "heal",
	UseLightning: "lightning",
	UseFireball:  "fireball",
	UseConfuse:   "confuse",
}

// String returns the effect name.
func (u UseEffect) String() string { return enumString(u, useEffectNames) }

// MarshalText implements encoding.TextMarshaler.
func (u UseEffect) MarshalText() ([]byte, error) { return marshalEnum(u, useEffectNames) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UseEffect) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(text, useEffectNames)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Targeted reports whether the effect needs a tile selection.
func (u UseEffect) Targeted() bool {
	return u == UseLightning || u == UseFireball || u == UseConfuse
}

// Payload holds the rolled parameters of a use effect. Unused fields are
// zero.
type Payload struct {
	Amount int `json:"amount,omitempty"` // Damage or healing
	Range  int `json:"range,omitempty"`  // Max targeting distance
	Radius int `json:"radius,omitempty"` // Blast radius
	Turns  int `json:"turns,omitempty"`  // Confusion duration
}

// Item makes an actor carryable.
type Item struct {
	Owner   Handle    `json:"owner"`
	Weight  float64   `json:"weight"`
	Volume  float64   `json:"volume"`
	Effect  UseEffect `json:"effect"`
	Payload Payload   `json:"payload"`
	Key     bool      `json:"key,omitempty"`
	Holder  Handle    `json:"holder,omitempty"` // Container owner, NoHandle when on the floor
}

// Held reports whether the item is inside a container.
func (i *Item) Held() bool {
	return i.Holder != NoHandle
}
