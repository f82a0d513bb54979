package game

import (
	"context"
	"fmt"

	"github.com/samdwyer/lampdelve/internal/combat"
	"github.com/samdwyer/lampdelve/internal/entity"
	"github.com/samdwyer/lampdelve/internal/message"
	"github.com/samdwyer/lampdelve/internal/world"
)

type useEffectFunc func(s *Session, ctx context.Context, user *entity.Actor, p entity.Payload) UseResult

// useEffects maps each use-effect tag to its implementation.
var useEffects = map[entity.UseEffect]useEffectFunc{
	entity.UseHeal:      (*Session).castHeal,
	entity.UseLightning: (*Session).castLightning,
	entity.UseFireball:  (*Session).castFireball,
	entity.UseConfuse:   (*Session).castConfuse,
}

func (s *Session) applyUseEffect(ctx context.Context, user *entity.Actor, item *entity.Item) UseResult {
	fn, ok := useEffects[item.Effect]
	if !ok {
		return UseNoEffect
	}
	return fn(s, ctx, user, item.Payload)
}

// castHeal restores Amount HP to the user. Canceled at full health.
func (s *Session) castHeal(_ context.Context, user *entity.Actor, p entity.Payload) UseResult {
	c := user.Creature
	if c == nil {
		return UseCanceled
	}
	if c.AtFullHealth() {
		s.messages.Add(user.DisplayName()+" is already at full health!", message.SeverityInfo)
		return UseCanceled
	}
	s.messages.Add(fmt.Sprintf("%s healed for %d health!", user.DisplayName(), p.Amount), message.SeverityGood)
	s.Heal(user, p.Amount)
	s.messages.Add(combat.HealthMessage(c.Name, c.HP, c.MaxHP), message.SeverityGood)
	return UseConsumed
}

// castLightning damages every creature on the line from the user to the
// selected tile. The line stops at walls.
func (s *Session) castLightning(ctx context.Context, user *entity.Actor, p entity.Payload) UseResult {
	origin := world.Pt(user.X, user.Y)
	target, ok := s.selectTarget(ctx, TargetRequest{
		Origin:          &origin,
		MaxRange:        p.Range,
		PierceCreatures: true,
	})
	if !ok {
		return UseCanceled
	}

	s.messages.Add("A bolt of lightning strikes!", message.SeverityCombat)
	for _, pt := range world.Line(origin, target) {
		if victim := s.CreatureAt(pt.X, pt.Y, user); victim != nil {
			s.TakeDamage(victim, p.Amount)
		}
	}
	return UseConsumed
}

// castFireball damages every creature, the user included, in a square
// around the selected tile. The path stops at walls and creatures.
func (s *Session) castFireball(ctx context.Context, user *entity.Actor, p entity.Payload) UseResult {
	origin := world.Pt(user.X, user.Y)
	req := TargetRequest{
		Origin:   &origin,
		MaxRange: p.Range,
		Radius:   p.Radius,
	}
	target, ok := s.selectTarget(ctx, req)
	if !ok {
		return UseCanceled
	}

	monsterHit := false
	for _, pt := range s.TargetArea(req, target) {
		victim := s.CreatureAt(pt.X, pt.Y, nil)
		if victim == nil {
			continue
		}
		s.TakeDamage(victim, p.Amount)
		if victim.ID != s.player {
			monsterHit = true
		}
	}
	if monsterHit {
		s.messages.Add("The monster howls out in pain.", message.SeverityDanger)
	}
	return UseConsumed
}

// castConfuse wraps the behavior of the creature on the selected tile for
// Turns turns. Canceled when no creature with a behavior is there.
func (s *Session) castConfuse(ctx context.Context, _ *entity.Actor, p entity.Payload) UseResult {
	target, ok := s.selectTarget(ctx, TargetRequest{})
	if !ok {
		return UseCanceled
	}
	victim := s.CreatureAt(target.X, target.Y, nil)
	if victim == nil || victim.Behavior == nil {
		s.messages.Add("There is nothing there to confuse.", message.SeverityInfo)
		return UseCanceled
	}

	victim.SetBehavior(entity.Confuse(victim.Behavior, p.Turns))
	s.messages.Add("The creature's eyes glaze over", message.SeverityGood)
	return UseConsumed
}
