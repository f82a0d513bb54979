package entity

// DeathEffect selects what happens when a creature dies.
type DeathEffect int

const (
	DeathCorpse       DeathEffect = iota // Leaves an inert corpse
	DeathEdibleCorpse                    // Leaves a corpse that heals when eaten
	DeathPlayer                          // Ends the game
)

var deathEffectNames = map[DeathEffect]string{
	DeathCorpse:       "corpse",
	DeathEdibleCorpse: "edible_corpse",
	DeathPlayer:       "player",
}

// String returns the effect name.
func (d DeathEffect) String() string { return enumString(d, deathEffectNames) }

// MarshalText implements encoding.TextMarshaler.
func (d DeathEffect) MarshalText() ([]byte, error) { return marshalEnum(d, deathEffectNames) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DeathEffect) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(text, deathEffectNames)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Creature gives an actor hit points and combat stats.
type Creature struct {
	Owner       Handle      `json:"owner"`
	Name        string      `json:"name"` // Personal name, e.g. "Bob"
	BaseAttack  int         `json:"base_attack"`
	BaseDefense int         `json:"base_defense"`
	HP          int         `json:"hp"`
	MaxHP       int         `json:"max_hp"`
	Death       DeathEffect `json:"death"`
	Dead        bool        `json:"dead"`
}

// NewCreature creates a creature at full health.
func NewCreature(name string, attack, defense, maxHP int, death DeathEffect) *Creature {
	return &Creature{
		Name:        name,
		BaseAttack:  attack,
		BaseDefense: defense,
		HP:          maxHP,
		MaxHP:       maxHP,
		Death:       death,
	}
}

// IsAlive returns true if the creature has not died.
func (c *Creature) IsAlive() bool {
	return !c.Dead && c.HP > 0
}

// TakeDamage subtracts amount from HP. It returns true only on the call
// that first brings HP to zero or below; later calls never report death
// again.
func (c *Creature) TakeDamage(amount int) bool {
	c.HP -= amount
	if c.HP <= 0 && !c.Dead {
		c.Dead = true
		return true
	}
	return false
}

// Heal restores up to amount HP, never above MaxHP, and returns the
// amount actually restored.
func (c *Creature) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.HP
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	return c.HP - before
}

// AtFullHealth reports whether HP is at its maximum.
func (c *Creature) AtFullHealth() bool {
	return c.HP >= c.MaxHP
}
