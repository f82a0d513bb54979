// Package combat provides attack and damage resolution between creatures.
package combat

import (
	"fmt"

	"github.com/samdwyer/lampdelve/internal/entity"
)

// Combatant is the interface for anything that can attack or be attacked.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetAttack() int  // Base attack plus equipment bonuses
	GetDefense() int // Base defense plus equipment bonuses
}

// AttackResult contains the outcome of resolving one attack. Damage has not
// been applied to the defender yet.
type AttackResult struct {
	Power   int
	Defense int
	Damage  int
	Message string // Human-readable description
}

// CalculateDamage returns power minus defense, never below zero.
func CalculateDamage(power, defense int) int {
	damage := power - defense
	if damage < 0 {
		return 0
	}
	return damage
}

// ResolveAttack computes the damage attacker deals to defender.
func ResolveAttack(attacker, defender Combatant) AttackResult {
	power := attacker.GetAttack()
	defense := defender.GetDefense()
	damage := CalculateDamage(power, defense)
	return AttackResult{
		Power:   power,
		Defense: defense,
		Damage:  damage,
		Message: fmt.Sprintf("%s attacks %s for %d damage!", attacker.GetName(), defender.GetName(), damage),
	}
}

// HealthMessage describes a creature's health after it changes.
func HealthMessage(name string, hp, maxHP int) string {
	return fmt.Sprintf("%s's health is %d/%d", name, hp, maxHP)
}

// Fighter adapts an actor with a Creature capability to Combatant. Equipment
// bonuses are read from the actor's Container.
type Fighter struct {
	Actor  *entity.Actor
	Lookup entity.Lookup
}

// NewFighter wraps an actor for combat.
func NewFighter(a *entity.Actor, l entity.Lookup) Fighter {
	return Fighter{Actor: a, Lookup: l}
}

// GetName returns the creature's own name, falling back to the object name.
func (f Fighter) GetName() string {
	if f.Actor.Creature != nil {
		return f.Actor.Creature.Name
	}
	return f.Actor.Name
}

// IsAlive returns true if the actor still has a living Creature.
func (f Fighter) IsAlive() bool {
	return f.Actor.Creature != nil && f.Actor.Creature.IsAlive()
}

// GetAttack returns base attack plus the attack bonus of equipped items.
func (f Fighter) GetAttack() int {
	if f.Actor.Creature == nil {
		return 0
	}
	power := f.Actor.Creature.BaseAttack
	for _, e := range f.equipped() {
		power += e.AttackBonus
	}
	return power
}

// GetDefense returns base defense plus the defense bonus of equipped items.
func (f Fighter) GetDefense() int {
	if f.Actor.Creature == nil {
		return 0
	}
	defense := f.Actor.Creature.BaseDefense
	for _, e := range f.equipped() {
		defense += e.DefenseBonus
	}
	return defense
}

func (f Fighter) equipped() []*entity.Equipment {
	if f.Actor.Container == nil || f.Lookup == nil {
		return nil
	}
	var out []*entity.Equipment
	for _, a := range f.Actor.Container.EquippedItems(f.Lookup) {
		out = append(out, a.Equipment)
	}
	return out
}
