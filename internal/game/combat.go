package game

import (
	"github.com/samdwyer/lampdelve/internal/combat"
	"github.com/samdwyer/lampdelve/internal/entity"
	"github.com/samdwyer/lampdelve/internal/gamedata"
	"github.com/samdwyer/lampdelve/internal/message"
)

// fighter wraps an actor for the combat package.
func (s *Session) fighter(a *entity.Actor) combat.Fighter {
	return combat.NewFighter(a, s.reg)
}

// Power returns an actor's attack including equipped bonuses.
func (s *Session) Power(a *entity.Actor) int { return s.fighter(a).GetAttack() }

// Defense returns an actor's defense including equipped bonuses.
func (s *Session) Defense(a *entity.Actor) int { return s.fighter(a).GetDefense() }

// Move steps a creature by (dx, dy). A creature other than the mover on
// the destination is attacked instead and the mover stays put. Blocked or
// out-of-bounds destinations are ignored. It returns true if the actor
// changed tile.
func (s *Session) Move(a *entity.Actor, dx, dy int) bool {
	if a.Creature == nil {
		return false
	}
	x, y := a.X+dx, a.Y+dy
	if !s.level.Grid.InBounds(x, y) {
		return false
	}

	if target := s.CreatureAt(x, y, a); target != nil {
		s.Attack(a, target)
		return false
	}
	if !s.level.Grid.IsPassable(x, y) {
		return false
	}
	a.SetPosition(x, y)
	return true
}

// Attack resolves one attack from attacker against defender.
func (s *Session) Attack(attacker, defender *entity.Actor) {
	if attacker.Creature == nil || defender.Creature == nil {
		return
	}
	result := combat.ResolveAttack(s.fighter(attacker), s.fighter(defender))
	s.messages.Add(result.Message, message.SeverityCombat)
	s.TakeDamage(defender, result.Damage)

	if result.Damage > 0 && attacker.ID == s.player {
		s.sounder.Play(CueHit)
	}
}

// TakeDamage subtracts amount from the actor's HP, reports its health and
// runs its death effect the first time HP drops to zero or below.
func (s *Session) TakeDamage(a *entity.Actor, amount int) {
	c := a.Creature
	if c == nil {
		return
	}
	killed := c.TakeDamage(amount)
	s.messages.Add(combat.HealthMessage(c.Name, c.HP, c.MaxHP), message.SeverityDanger)
	if killed {
		s.die(a)
	}
}

// Heal restores HP, clamped at the maximum, and returns the amount gained.
func (s *Session) Heal(a *entity.Actor, amount int) int {
	if a.Creature == nil {
		return 0
	}
	return a.Creature.Heal(amount)
}

// die dispatches the creature's death effect.
func (s *Session) die(a *entity.Actor) {
	c := a.Creature
	s.log.Debug("creature died", "name", c.Name, "object", a.Name, "effect", c.Death.String(), "turn", s.turn)

	switch c.Death {
	case entity.DeathPlayer:
		s.status = StatusDead
		s.messages.Add("You died!", message.SeverityDanger)
		s.sounder.Play(CueDeath)
		s.log.Info("player died", "depth", s.Depth(), "turn", s.turn)
	case entity.DeathEdibleCorpse:
		s.messages.Add(c.Name+" is dead!  Eat him for more health!", message.SeverityGood)
		s.leaveCorpse(a)
	default:
		s.messages.Add(c.Name+" is dead!", message.SeverityInfo)
		s.leaveCorpse(a)
	}
}

// leaveCorpse strips a dead monster down to an inert actor. An edible
// corpse keeps its Item and can be picked up and eaten.
func (s *Session) leaveCorpse(a *entity.Actor) {
	glyph, color := "%", gamedata.ColorCorpse
	if def := s.data.Monsters.GetByID(a.Kind); def != nil && def.Corpse.Glyph != "" {
		glyph, color = def.Corpse.Glyph, def.Corpse.Color
	}
	a.Glyph = glyph
	a.Color = color
	a.Depth = entity.DepthCorpse
	a.Name = a.Name + " corpse"
	a.Creature = nil
	a.SetBehavior(nil)
}
