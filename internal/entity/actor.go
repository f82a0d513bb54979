// Package entity provides actors and the optional capabilities they are
// composed of.
package entity

import (
	"math"
)

// Handle is a stable, non-owning reference to an Actor in a Registry.
type Handle uint32

// NoHandle is the zero handle; it never refers to an actor.
const NoHandle Handle = 0

// Draw depths. Lower values are drawn last, on top.
const (
	DepthPlayer   = -100
	DepthCreature = 1
	DepthItem     = 2
	DepthCorpse   = 100
	DepthFixture  = 200
)

// Actor is any positioned entity: the player, monsters, items, stairs and
// portals. Capabilities are optional; a nil slot means the actor lacks it.
type Actor struct {
	ID    Handle `json:"id"`
	Name  string `json:"name"`  // Object name, e.g. "anaconda" or "sword"
	Kind  string `json:"kind"`  // Data table ID the actor was spawned from, if any
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Depth int    `json:"depth"` // Draw order only
	Glyph string `json:"glyph"` // Display hint for renderers
	Color string `json:"color"` // Hex display hint for renderers

	Creature  *Creature  `json:"creature,omitempty"`
	Behavior  *Behavior  `json:"behavior,omitempty"`
	Container *Container `json:"container,omitempty"`
	Item      *Item      `json:"item,omitempty"`
	Equipment *Equipment `json:"equipment,omitempty"`
	Stairs    *Stairs    `json:"stairs,omitempty"`
	Portal    *Portal    `json:"portal,omitempty"`
}

// Position returns the actor's current x, y coordinates.
func (a *Actor) Position() (int, int) {
	return a.X, a.Y
}

// SetPosition moves the actor without any passability checks.
func (a *Actor) SetPosition(x, y int) {
	a.X = x
	a.Y = y
}

// At reports whether the actor stands on (x, y).
func (a *Actor) At(x, y int) bool {
	return a.X == x && a.Y == y
}

// DistanceTo returns the Euclidean distance to another actor.
func (a *Actor) DistanceTo(other *Actor) float64 {
	dx := float64(other.X - a.X)
	dy := float64(other.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DisplayName returns the name shown in messages and menus.
func (a *Actor) DisplayName() string {
	if a.Creature != nil {
		return a.Creature.Name + " the " + a.Name
	}
	if a.Equipment != nil && a.Equipment.Equipped {
		return a.Name + " (e)"
	}
	return a.Name
}

// SetBehavior replaces the actor's behavior and binds it to the actor.
// A nil behavior removes it.
func (a *Actor) SetBehavior(b *Behavior) {
	a.Behavior = b
	if b != nil {
		b.Owner = a.ID
	}
}

// AttachEquipment adds an Equipment capability. Equipment is always
// carryable, so an actor without an Item gains an empty one.
func (a *Actor) AttachEquipment(e *Equipment) {
	a.Equipment = e
	if a.Item == nil {
		a.Item = &Item{}
	}
	a.bind()
}

// bind points every present capability back at this actor.
func (a *Actor) bind() {
	if a.Creature != nil {
		a.Creature.Owner = a.ID
	}
	if a.Behavior != nil {
		a.Behavior.Owner = a.ID
	}
	if a.Container != nil {
		a.Container.Owner = a.ID
	}
	if a.Item != nil {
		a.Item.Owner = a.ID
	}
	if a.Equipment != nil {
		a.Equipment.Owner = a.ID
	}
	if a.Stairs != nil {
		a.Stairs.Owner = a.ID
	}
	if a.Portal != nil {
		a.Portal.Owner = a.ID
	}
}
