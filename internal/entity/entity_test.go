package entity

import (
	"encoding/json"
	"testing"
)

func TestTakeDamageReportsDeathOnce(t *testing.T) {
	c := NewCreature("Bob", 3, 2, 10, DeathCorpse)

	want := []struct {
		hp     int
		killed bool
	}{
		{7, false},
		{4, false},
		{1, false},
		{-2, true},
		{-5, false},
	}
	for i, w := range want {
		killed := c.TakeDamage(3)
		if c.HP != w.hp {
			t.Errorf("hit %d: HP = %d, want %d", i+1, c.HP, w.hp)
		}
		if killed != w.killed {
			t.Errorf("hit %d: killed = %v, want %v", i+1, killed, w.killed)
		}
	}
	if c.IsAlive() {
		t.Error("creature should be dead")
	}
}

func TestHealClampsAtMax(t *testing.T) {
	tests := []struct {
		name   string
		hp     int
		amount int
		wantHP int
		healed int
	}{
		{"partial", 5, 3, 8, 3},
		{"clamped", 8, 5, 10, 2},
		{"full", 10, 4, 10, 0},
		{"from negative", -3, 5, 2, 5},
		{"zero amount", 5, 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCreature("Ann", 1, 1, 10, DeathCorpse)
			c.HP = tt.hp
			got := c.Heal(tt.amount)
			if c.HP != tt.wantHP {
				t.Errorf("HP = %d, want %d", c.HP, tt.wantHP)
			}
			if got != tt.healed {
				t.Errorf("Heal() = %d, want %d", got, tt.healed)
			}
		})
	}
}

func TestRegistrySpawnBindsOwners(t *testing.T) {
	r := NewRegistry()
	a := &Actor{
		Name:      "player",
		Creature:  NewCreature("Bob", 5, 0, 50, DeathPlayer),
		Container: NewContainer(10),
	}
	h := r.Spawn(a)
	if h == NoHandle {
		t.Fatal("Spawn returned NoHandle")
	}
	if a.Creature.Owner != h || a.Container.Owner != h {
		t.Errorf("owners = %d, %d; want %d", a.Creature.Owner, a.Container.Owner, h)
	}

	a.SetBehavior(NewBehavior(BehaviorChase))
	if a.Behavior.Owner != h {
		t.Errorf("behavior owner = %d, want %d", a.Behavior.Owner, h)
	}

	r.Remove(h)
	if _, ok := r.Get(h); ok {
		t.Error("removed handle still resolves")
	}
	// Capabilities keep their handle after the actor is gone.
	if a.Creature.Owner != h {
		t.Error("owner handle changed on removal")
	}
}

func TestRegistryHandlesAreNotReused(t *testing.T) {
	r := NewRegistry()
	h1 := r.Spawn(&Actor{Name: "a"})
	r.Remove(h1)
	h2 := r.Spawn(&Actor{Name: "b"})
	if h1 == h2 {
		t.Errorf("handle %d reused", h1)
	}
}

func TestRestoreRegistry(t *testing.T) {
	r := NewRegistry()
	r.Spawn(&Actor{Name: "a"})
	r.Spawn(&Actor{Name: "b", Item: &Item{Volume: 1}})

	data, err := json.Marshal(r.All())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var actors []*Actor
	if err := json.Unmarshal(data, &actors); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored, err := RestoreRegistry(actors)
	if err != nil {
		t.Fatalf("RestoreRegistry() error = %v", err)
	}
	if restored.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", restored.Len())
	}
	b, ok := restored.Get(2)
	if !ok || b.Item == nil || b.Item.Owner != 2 {
		t.Errorf("actor 2 not restored with bound item: %+v", b)
	}
	if h := restored.Spawn(&Actor{Name: "c"}); h != 3 {
		t.Errorf("next handle = %d, want 3", h)
	}

	if _, err := RestoreRegistry([]*Actor{{ID: 1}, {ID: 1}}); err == nil {
		t.Error("expected error for duplicate handles")
	}
	if _, err := RestoreRegistry([]*Actor{{Name: "x"}}); err == nil {
		t.Error("expected error for missing handle")
	}
}

func TestContainerVolume(t *testing.T) {
	r := NewRegistry()
	owner := &Actor{Name: "player", Container: NewContainer(10)}
	r.Spawn(owner)

	for _, v := range []float64{4, 5} {
		h := r.Spawn(&Actor{Name: "rock", Item: &Item{Volume: v}})
		owner.Container.Add(h)
	}
	if got := owner.Container.Volume(r); got != 9 {
		t.Errorf("Volume() = %v, want 9", got)
	}
	if !owner.Container.Fits(r, 1) {
		t.Error("volume 1 should fit exactly")
	}
	if owner.Container.Fits(r, 2) {
		t.Error("volume 2 should not fit")
	}
}

func TestContainerRemovePreservesOrder(t *testing.T) {
	c := NewContainer(10)
	c.Add(3)
	c.Add(5)
	c.Add(7)
	if !c.Remove(5) {
		t.Fatal("Remove(5) = false")
	}
	if len(c.Inventory) != 2 || c.Inventory[0] != 3 || c.Inventory[1] != 7 {
		t.Errorf("Inventory = %v, want [3 7]", c.Inventory)
	}
	if c.Remove(5) {
		t.Error("second Remove(5) = true")
	}
}

func TestEquipmentConflicts(t *testing.T) {
	sword := &Actor{Name: "sword"}
	sword.AttachEquipment(&Equipment{AttackBonus: 2, Slot: "right_hand", Equipped: true})
	axe := &Actor{Name: "axe"}
	axe.AttachEquipment(&Equipment{AttackBonus: 3, Slot: "right_hand"})
	shield := &Actor{Name: "shield"}
	shield.AttachEquipment(&Equipment{DefenseBonus: 2, Slot: "left_hand"})
	ring := &Actor{Name: "ring"}
	ring.AttachEquipment(&Equipment{})

	equipped := []*Actor{sword}
	tests := []struct {
		item *Actor
		want bool
	}{
		{axe, true},
		{shield, false},
		{sword, false},
		{ring, false},
	}
	for _, tt := range tests {
		if got := tt.item.Equipment.Conflicts(equipped); got != tt.want {
			t.Errorf("%s Conflicts() = %v, want %v", tt.item.Name, got, tt.want)
		}
	}
	if axe.Item == nil {
		t.Error("AttachEquipment should add an Item")
	}
}

func TestDisplayName(t *testing.T) {
	snake := &Actor{Name: "cobra", Creature: NewCreature("Eve", 3, 0, 15, DeathCorpse)}
	sword := &Actor{Name: "sword"}
	sword.AttachEquipment(&Equipment{Slot: "right_hand"})

	if got := snake.DisplayName(); got != "Eve the cobra" {
		t.Errorf("creature DisplayName() = %q", got)
	}
	if got := sword.DisplayName(); got != "sword" {
		t.Errorf("unequipped DisplayName() = %q", got)
	}
	sword.Equipment.Equipped = true
	if got := sword.DisplayName(); got != "sword (e)" {
		t.Errorf("equipped DisplayName() = %q", got)
	}
}

func TestConfuseTick(t *testing.T) {
	prev := NewBehavior(BehaviorWander)
	b := Confuse(prev, 3)

	for turn := 1; turn <= 4; turn++ {
		if expired := b.Tick(); expired != (turn == 4) {
			t.Errorf("turn %d: expired = %v", turn, expired)
		}
	}
	if b.TurnsRemaining != 0 {
		t.Errorf("TurnsRemaining = %d, want 0", b.TurnsRemaining)
	}
	if b.Previous != prev {
		t.Error("Previous behavior lost")
	}

	zero := Confuse(prev, 0)
	if !zero.Tick() {
		t.Error("zero turns should expire on the first tick")
	}
}

func TestEnumText(t *testing.T) {
	type payload struct {
		Effect UseEffect    `json:"effect"`
		Death  DeathEffect  `json:"death"`
		Kind   BehaviorKind `json:"kind"`
		Portal PortalState  `json:"portal"`
	}
	in := payload{UseFireball, DeathEdibleCorpse, BehaviorFlee, PortalOpen}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"effect":"fireball","death":"edible_corpse","kind":"flee","portal":"open"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
	var out payload
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("unmarshal = %+v, want %+v", out, in)
	}

	var u UseEffect
	if err := u.UnmarshalText([]byte("teleport")); err == nil {
		t.Error("expected error for unknown effect")
	}
}
