package game

import (
	"math"

	"github.com/samdwyer/lampdelve/internal/entity"
	"github.com/samdwyer/lampdelve/internal/message"
)

// runBehaviors gives every monster on the level one action, in list order.
// The list is iterated on a copy; additions and removals made during the
// pass take effect after it.
func (s *Session) runBehaviors() {
	actors := s.reg.Resolve(s.level.Actors)

	s.dispatching = true
	for _, a := range actors {
		// A monster killed earlier in the pass has lost its behavior.
		if a.Behavior == nil || a.Creature == nil {
			continue
		}
		s.takeTurn(a)
	}
	s.dispatching = false
	s.flushPending()
}

// routines maps each behavior kind to its per-turn action.
var routines = map[entity.BehaviorKind]func(*Session, *entity.Actor){
	entity.BehaviorWander:   (*Session).wander,
	entity.BehaviorChase:    (*Session).chase,
	entity.BehaviorFlee:     (*Session).flee,
	entity.BehaviorConfused: (*Session).confused,
}

func (s *Session) takeTurn(a *entity.Actor) {
	if act, ok := routines[a.Behavior.Kind]; ok {
		act(s, a)
	}
}

// wander steps by a random delta in {-1,0,1} on each axis.
func (s *Session) wander(a *entity.Actor) {
	s.Move(a, s.rng.Intn(3)-1, s.rng.Intn(3)-1)
}

// chase closes in on the player while it can be seen, attacking once
// adjacent.
func (s *Session) chase(a *entity.Actor) {
	if !s.fov.IsVisible(a.X, a.Y) {
		return
	}
	player := s.Player()
	if a.DistanceTo(player) >= 2 {
		dx, dy := stepToward(a.X, a.Y, player.X, player.Y)
		s.Move(a, dx, dy)
		return
	}
	if player.Creature != nil && player.Creature.IsAlive() {
		s.Attack(a, player)
	}
}

// flee steps directly away from the player while it can be seen.
func (s *Session) flee(a *entity.Actor) {
	if !s.fov.IsVisible(a.X, a.Y) {
		return
	}
	player := s.Player()
	dx, dy := stepToward(player.X, player.Y, a.X, a.Y)
	s.Move(a, dx, dy)
}

// confused stumbles while turns remain. The turn it finds none left it
// restores the wrapped behavior without moving.
func (s *Session) confused(a *entity.Actor) {
	b := a.Behavior
	if !b.Tick() {
		s.wander(a)
		return
	}
	a.SetBehavior(b.Previous)
	s.messages.Add(a.DisplayName()+" has broken free!", message.SeverityDanger)
}

// stepToward returns the unit step from (x1, y1) toward (x2, y2): the
// direction vector normalized and rounded per axis.
func stepToward(x1, y1, x2, y2 int) (int, int) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}
	return int(math.Round(dx / dist)), int(math.Round(dy / dist))
}
