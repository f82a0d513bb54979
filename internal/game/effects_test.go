package game

import (
	"context"
	"testing"

	"github.com/samdwyer/lampdelve/internal/entity"
	"github.com/samdwyer/lampdelve/internal/world"
)

func scroll(effect entity.UseEffect, p entity.Payload) *entity.Actor {
	return &entity.Actor{Name: effect.String() + " scroll", Item: &entity.Item{Effect: effect, Payload: p}}
}

func TestLightningHitsEveryCreatureOnLine(t *testing.T) {
	s, _ := newArena(t, 12, 5)
	sel := &stubSelector{point: world.Pt(9, 1)}
	s.SetSelector(sel)

	a := addMonster(s, "Aine", 3, 1, 0, 0, 20, entity.BehaviorWander)
	b := addMonster(s, "Bran", 5, 1, 0, 0, 20, entity.BehaviorWander)
	off := addMonster(s, "Cian", 5, 2, 0, 0, 20, entity.BehaviorWander)
	bolt := give(s, scroll(entity.UseLightning, entity.Payload{Amount: 6, Range: 8}))

	if got := s.Use(context.Background(), bolt); got != UseConsumed {
		t.Fatalf("Use() = %v, want consumed", got)
	}
	if a.Creature.HP != 14 || b.Creature.HP != 14 {
		t.Errorf("HP on line = %d, %d; want 14, 14", a.Creature.HP, b.Creature.HP)
	}
	if off.Creature.HP != 20 {
		t.Errorf("HP off line = %d, want 20", off.Creature.HP)
	}
	if s.Player().Creature.HP != 50 {
		t.Error("caster should not be hit")
	}

	req := sel.requests[0]
	if req.Origin == nil || *req.Origin != world.Pt(1, 1) || req.MaxRange != 8 || req.PenetrateWalls || !req.PierceCreatures {
		t.Errorf("lightning request = %+v", req)
	}
}

func TestLightningStopsAtWalls(t *testing.T) {
	s, _ := newArena(t, 12, 5)
	s.level.Grid.SetPassable(4, 1, false)
	s.SetSelector(&stubSelector{point: world.Pt(8, 1)})
	behind := addMonster(s, "Dara", 6, 1, 0, 0, 20, entity.BehaviorWander)

	bolt := give(s, scroll(entity.UseLightning, entity.Payload{Amount: 6, Range: 8}))
	if got := s.Use(context.Background(), bolt); got != UseConsumed {
		t.Fatalf("Use() = %v, want consumed even without a hit", got)
	}
	if behind.Creature.HP != 20 {
		t.Errorf("creature behind wall HP = %d, want 20", behind.Creature.HP)
	}
}

func TestFireballHitsArea(t *testing.T) {
	s, _ := newArena(t, 12, 8)
	player := s.Player()
	player.SetPosition(2, 3)
	s.SetSelector(&stubSelector{point: world.Pt(4, 3)})

	center := addMonster(s, "Emer", 4, 3, 0, 0, 20, entity.BehaviorWander)
	corner := addMonster(s, "Finn", 5, 4, 0, 0, 20, entity.BehaviorWander)
	far := addMonster(s, "Gael", 7, 3, 0, 0, 20, entity.BehaviorWander)
	fire := give(s, scroll(entity.UseFireball, entity.Payload{Amount: 3, Radius: 1, Range: 10}))

	if got := s.Use(context.Background(), fire); got != UseConsumed {
		t.Fatalf("Use() = %v, want consumed", got)
	}
	if center.Creature.HP != 17 || corner.Creature.HP != 17 {
		t.Errorf("HP in blast = %d, %d; want 17, 17", center.Creature.HP, corner.Creature.HP)
	}
	if far.Creature.HP != 20 {
		t.Errorf("HP outside blast = %d, want 20", far.Creature.HP)
	}
	if player.Creature.HP != 50 {
		t.Errorf("player outside blast HP = %d", player.Creature.HP)
	}
	if countMessages(s, "The monster howls out in pain.") != 1 {
		t.Error("expected howl message")
	}
}

func TestFireballStopsAtFirstCreature(t *testing.T) {
	s, _ := newArena(t, 14, 5)
	s.SetSelector(&stubSelector{point: world.Pt(9, 1)})
	blocker := addMonster(s, "Hugh", 2, 1, 0, 0, 20, entity.BehaviorWander)
	target := addMonster(s, "Ivor", 9, 1, 0, 0, 20, entity.BehaviorWander)

	fire := give(s, scroll(entity.UseFireball, entity.Payload{Amount: 3, Radius: 1, Range: 12}))
	s.Use(context.Background(), fire)

	// The blast centers on the blocker, catching the adjacent player.
	if blocker.Creature.HP != 17 {
		t.Errorf("blocker HP = %d, want 17", blocker.Creature.HP)
	}
	if target.Creature.HP != 20 {
		t.Errorf("target past blocker HP = %d, want 20", target.Creature.HP)
	}
	if s.Player().Creature.HP != 47 {
		t.Errorf("player HP = %d, want 47", s.Player().Creature.HP)
	}
}

func TestConfuseScroll(t *testing.T) {
	s, _ := newArena(t, 10, 10)
	snake := addMonster(s, "Jana", 6, 6, 1, 0, 10, entity.BehaviorChase)
	s.SetSelector(&stubSelector{point: world.Pt(6, 6)})

	conf := give(s, scroll(entity.UseConfuse, entity.Payload{Turns: 5}))
	if got := s.Use(context.Background(), conf); got != UseConsumed {
		t.Fatalf("Use() = %v, want consumed", got)
	}
	b := snake.Behavior
	if b.Kind != entity.BehaviorConfused || b.TurnsRemaining != 5 {
		t.Fatalf("behavior = %+v, want confused for 5", b)
	}
	if b.Previous == nil || b.Previous.Kind != entity.BehaviorChase {
		t.Error("confusion should wrap the chase behavior")
	}
	if b.Owner != snake.ID {
		t.Error("confused behavior should be bound to the snake")
	}
}

func TestTargetedEffectsCancel(t *testing.T) {
	tests := []struct {
		name     string
		selector TileSelector
		effect   entity.UseEffect
	}{
		{"no selector", nil, entity.UseLightning},
		{"declined", &stubSelector{decline: true}, entity.UseFireball},
		{"confuse empty tile", &stubSelector{point: world.Pt(4, 4)}, entity.UseConfuse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newArena(t, 10, 10)
			s.SetSelector(tt.selector)
			item := give(s, scroll(tt.effect, entity.Payload{Amount: 3, Range: 5, Radius: 1, Turns: 3}))

			if got := s.Use(context.Background(), item); got != UseCanceled {
				t.Errorf("Use() = %v, want canceled", got)
			}
			if !s.Player().Container.Contains(item.ID) {
				t.Error("canceled item should stay in inventory")
			}
		})
	}
}

func TestTargetPath(t *testing.T) {
	s, _ := newArena(t, 12, 6)
	s.level.Grid.SetPassable(6, 1, false)
	addMonster(s, "Kai", 4, 2, 0, 0, 5, entity.BehaviorWander)
	origin := world.Pt(1, 1)

	tests := []struct {
		name   string
		req    TargetRequest
		cursor world.Point
		want   world.Point
	}{
		{"no origin", TargetRequest{}, world.Pt(7, 4), world.Pt(7, 4)},
		{"clamped to map", TargetRequest{}, world.Pt(40, -3), world.Pt(11, 0)},
		{"range cap", TargetRequest{Origin: &origin, MaxRange: 3, PierceCreatures: true}, world.Pt(9, 1), world.Pt(4, 1)},
		{"stops at wall", TargetRequest{Origin: &origin, PierceCreatures: true}, world.Pt(9, 1), world.Pt(6, 1)},
		{"walls penetrated", TargetRequest{Origin: &origin, PenetrateWalls: true, PierceCreatures: true}, world.Pt(9, 1), world.Pt(9, 1)},
		{"stops at creature", TargetRequest{Origin: &origin, PenetrateWalls: true}, world.Pt(7, 3), world.Pt(4, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := s.TargetPath(tt.req, tt.cursor)
			if got := path[len(path)-1]; got != tt.want {
				t.Errorf("path end = %v, want %v (path %v)", got, tt.want, path)
			}
		})
	}
}
