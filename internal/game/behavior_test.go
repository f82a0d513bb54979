package game

import (
	"slices"
	"testing"

	"github.com/samdwyer/lampdelve/internal/entity"
	"github.com/samdwyer/lampdelve/internal/world"
)

func TestStepToward(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2 int
		dx, dy         int
	}{
		{0, 0, 5, 0, 1, 0},
		{5, 0, 0, 0, -1, 0},
		{0, 0, 3, 3, 1, 1},
		{0, 0, 5, 1, 1, 0},
		{0, 0, 1, 5, 0, 1},
		{0, 0, -4, 3, -1, 1},
		{2, 2, 2, 2, 0, 0},
	}
	for _, tt := range tests {
		dx, dy := stepToward(tt.x1, tt.y1, tt.x2, tt.y2)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("stepToward(%d,%d -> %d,%d) = (%d,%d), want (%d,%d)",
				tt.x1, tt.y1, tt.x2, tt.y2, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestChaseApproachesThenAttacks(t *testing.T) {
	s, _ := newArena(t, 12, 5)
	player := s.Player()
	snake := addMonster(s, "Lir", 5, 1, 4, 0, 10, entity.BehaviorChase)

	s.runBehaviors()
	if snake.X != 4 || snake.Y != 1 {
		t.Fatalf("snake at (%d,%d), want (4,1)", snake.X, snake.Y)
	}
	s.runBehaviors()
	s.runBehaviors()
	if snake.X != 2 {
		t.Fatalf("snake X = %d, want 2", snake.X)
	}
	if player.Creature.HP != 50 {
		t.Fatal("snake should not attack before it is adjacent")
	}

	s.runBehaviors()
	if snake.X != 2 {
		t.Error("adjacent chaser should attack, not move")
	}
	if player.Creature.HP != 46 {
		t.Errorf("player HP = %d, want 46", player.Creature.HP)
	}
}

func TestChaseIgnoresUnseenPlayer(t *testing.T) {
	grid := world.NewGrid(20, 5)
	for x := 1; x < 19; x++ {
		grid.SetPassable(x, 2, true)
	}
	grid.SetPassable(10, 2, false)
	s, _ := newSessionOn(t, grid, 2, 2)
	snake := addMonster(s, "Mor", 15, 2, 4, 0, 10, entity.BehaviorChase)

	if s.IsVisible(15, 2) {
		t.Fatal("snake should be out of sight behind the wall")
	}
	s.runBehaviors()
	if snake.X != 15 {
		t.Errorf("unseen chaser moved to X = %d", snake.X)
	}
}

func TestFleeStepsAway(t *testing.T) {
	s, _ := newArena(t, 12, 5)
	mouse := addMonster(s, "Nessa", 3, 1, 0, 0, 1, entity.BehaviorFlee)

	s.runBehaviors()
	if mouse.X != 4 || mouse.Y != 1 {
		t.Errorf("mouse at (%d,%d), want (4,1)", mouse.X, mouse.Y)
	}
}

// pocket returns a grid where only the given tiles are floor.
func pocket(w, h int, floors ...world.Point) *world.Grid {
	g := world.NewGrid(w, h)
	for _, p := range floors {
		g.SetPassable(p.X, p.Y, true)
	}
	return g
}

func TestConfusionRevertsAfterLastTurn(t *testing.T) {
	grid := pocket(10, 10, world.Pt(1, 1), world.Pt(7, 7))
	s, _ := newSessionOn(t, grid, 1, 1)
	snake := addMonster(s, "Orla", 7, 7, 1, 0, 10, entity.BehaviorWander)
	snake.SetBehavior(entity.Confuse(snake.Behavior, 3))

	for turn := 1; turn <= 4; turn++ {
		s.runBehaviors()
		broke := countMessages(s, "Orla the anaconda has broken free!")
		if turn < 4 {
			if snake.Behavior.Kind != entity.BehaviorConfused {
				t.Errorf("turn %d: behavior = %v, want confused", turn, snake.Behavior.Kind)
			}
			if broke != 0 {
				t.Errorf("turn %d: broke free too early", turn)
			}
			continue
		}
		if snake.Behavior.Kind != entity.BehaviorWander {
			t.Errorf("turn %d: behavior = %v, want wander", turn, snake.Behavior.Kind)
		}
		if broke != 1 {
			t.Errorf("turn %d: broken free messages = %d, want 1", turn, broke)
		}
	}

	s.runBehaviors()
	if got := countMessages(s, "has broken free!"); got != 1 {
		t.Errorf("broken free messages after expiry = %d, want 1", got)
	}
	if snake.X != 7 || snake.Y != 7 {
		t.Error("walled-in snake should not have moved")
	}
}

func TestConfusionZeroTurnsRestoresImmediately(t *testing.T) {
	grid := pocket(10, 10, world.Pt(1, 1), world.Pt(7, 7))
	s, _ := newSessionOn(t, grid, 1, 1)
	snake := addMonster(s, "Roisin", 7, 7, 1, 0, 10, entity.BehaviorChase)
	snake.SetBehavior(entity.Confuse(snake.Behavior, 0))

	s.runBehaviors()
	if snake.Behavior.Kind != entity.BehaviorChase {
		t.Errorf("behavior = %v, want chase", snake.Behavior.Kind)
	}
}

func TestBehaviorPassDefersLevelEdits(t *testing.T) {
	s, _ := newArena(t, 12, 5)
	addMonster(s, "Ailbhe", 8, 3, 1, 0, 10, entity.BehaviorWander)
	pebble := addItem(s, "pebble", 1, 1, 1)
	coin := give(s, &entity.Actor{Name: "coin", Item: &entity.Item{Volume: 1}})

	wander := routines[entity.BehaviorWander]
	t.Cleanup(func() { routines[entity.BehaviorWander] = wander })

	acted := 0
	var during []entity.Handle
	var newcomer *entity.Actor
	routines[entity.BehaviorWander] = func(s *Session, a *entity.Actor) {
		acted++
		if newcomer != nil {
			return
		}
		s.PickUp(pebble, s.Player())
		s.Drop(coin, 2, 1)
		newcomer = addMonster(s, "Bairbre", 9, 3, 1, 0, 10, entity.BehaviorWander)
		during = slices.Clone(s.level.Actors)
	}

	before := slices.Clone(s.level.Actors)
	s.runBehaviors()

	if !slices.Equal(during, before) {
		t.Errorf("level edited mid-pass: %v, want %v", during, before)
	}
	if acted != 1 {
		t.Errorf("routines run = %d, want 1: an actor added mid-pass waits for the next pass", acted)
	}
	if slices.Contains(s.level.Actors, pebble.ID) {
		t.Error("picked up pebble still on the level after the pass")
	}
	if !slices.Contains(s.level.Actors, coin.ID) || !slices.Contains(s.level.Actors, newcomer.ID) {
		t.Errorf("dropped coin and new monster missing after the pass: %v", s.level.Actors)
	}

	acted = 0
	s.runBehaviors()
	if acted != 2 {
		t.Errorf("second pass routines run = %d, want 2", acted)
	}
}

func TestBehaviorPassSkipsCorpses(t *testing.T) {
	s, _ := newArena(t, 12, 5)
	cobra := addMonster(s, "Seamus", 2, 1, 9, 0, 20, entity.BehaviorWander)
	mouse := addMonster(s, "Tadhg", 3, 1, 0, 0, 1, entity.BehaviorFlee)

	s.Attack(cobra, mouse)
	if mouse.Creature != nil || mouse.Behavior != nil {
		t.Fatal("dead mouse should lose its creature and behavior")
	}
	before := len(s.level.Actors)
	s.runBehaviors()
	if len(s.level.Actors) != before {
		t.Error("corpses stay on the level")
	}
	if mouse.X != 3 || mouse.Y != 1 {
		t.Error("corpse must not act")
	}
}
