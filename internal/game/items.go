package game

import (
	"context"

	"github.com/samdwyer/lampdelve/internal/entity"
	"github.com/samdwyer/lampdelve/internal/message"
)

// UseResult is the outcome of using an item.
type UseResult int

const (
	// UseConsumed means the effect happened and the item is gone.
	UseConsumed UseResult = iota
	// UseCanceled means there was no valid target; the item is kept.
	UseCanceled
	// UseToggled means the item was equipped or unequipped.
	UseToggled
	// UseNoEffect means the item has nothing to do when used.
	UseNoEffect
)

// String returns the result name.
func (r UseResult) String() string {
	switch r {
	case UseConsumed:
		return "consumed"
	case UseCanceled:
		return "canceled"
	case UseToggled:
		return "toggled"
	case UseNoEffect:
		return "no_effect"
	default:
		return "unknown"
	}
}

// holder returns the actor whose container holds the item.
func (s *Session) holder(item *entity.Actor) *entity.Actor {
	if item.Item == nil || !item.Item.Held() {
		return nil
	}
	a, ok := s.reg.Get(item.Item.Holder)
	if !ok || a.Container == nil {
		return nil
	}
	return a
}

// PickUp moves an item from the level into the actor's container. It is
// rejected with a message when the container lacks the volume.
func (s *Session) PickUp(item, actor *entity.Actor) bool {
	if item.Item == nil || actor.Container == nil || item.Item.Held() {
		return false
	}
	if !actor.Container.Fits(s.reg, item.Item.Volume) {
		s.messages.Add("Not enough room to pick up", message.SeverityDanger)
		return false
	}

	actor.Container.Add(item.ID)
	item.Item.Holder = actor.ID
	s.removeFromLevel(item.ID)
	s.messages.Add("Picking up "+item.DisplayName(), message.SeverityGood)
	if actor.ID == s.player {
		s.sounder.Play(CuePickup)
	}
	return true
}

// PickUpHere picks up every item on the player's tile. It returns true if
// anything was picked up.
func (s *Session) PickUpHere() bool {
	player := s.Player()
	picked := false
	for _, a := range s.ActorsAt(player.X, player.Y) {
		if a == player || a.Item == nil || a.Creature != nil {
			continue
		}
		if s.PickUp(a, player) {
			picked = true
		}
	}
	return picked
}

// Drop takes a held item out of its container and puts it back on the
// level at (x, y). Equipped items are unequipped first.
func (s *Session) Drop(item *entity.Actor, x, y int) bool {
	holder := s.holder(item)
	if holder == nil {
		return false
	}
	if item.Equipment != nil && item.Equipment.Equipped {
		s.Unequip(item)
	}
	holder.Container.Remove(item.ID)
	item.Item.Holder = entity.NoHandle
	item.SetPosition(x, y)
	s.addToLevel(item.ID)
	s.messages.Add("Item Dropped!", message.SeverityInfo)
	return true
}

// DropTopmost drops the most recently picked up item at the player's feet.
func (s *Session) DropTopmost() bool {
	player := s.Player()
	inv := player.Container.Inventory
	if len(inv) == 0 {
		return false
	}
	item, ok := s.reg.Get(inv[len(inv)-1])
	if !ok {
		return false
	}
	return s.Drop(item, player.X, player.Y)
}

// Use applies a held item. Equipment toggles; anything else runs its use
// effect. A consumed item is destroyed; a canceled one stays held.
func (s *Session) Use(ctx context.Context, item *entity.Actor) UseResult {
	holder := s.holder(item)
	if holder == nil {
		return UseNoEffect
	}
	if item.Equipment != nil {
		s.ToggleEquip(item)
		return UseToggled
	}
	if item.Item.Effect == entity.UseNone {
		s.messages.Add("Nothing happens.", message.SeverityInfo)
		return UseNoEffect
	}

	result := s.applyUseEffect(ctx, holder, item.Item)
	if result == UseConsumed {
		holder.Container.Remove(item.ID)
		s.reg.Remove(item.ID)
	}
	s.log.Debug("item used", "item", item.Name, "effect", item.Item.Effect.String(), "result", result.String())
	return result
}

// ToggleEquip equips an unequipped item or unequips an equipped one.
func (s *Session) ToggleEquip(item *entity.Actor) bool {
	if item.Equipment == nil {
		return false
	}
	if item.Equipment.Equipped {
		s.Unequip(item)
		return true
	}
	return s.Equip(item)
}

// Equip marks a held item equipped unless another equipped item in the
// same container already uses its slot.
func (s *Session) Equip(item *entity.Actor) bool {
	holder := s.holder(item)
	if item.Equipment == nil || holder == nil {
		return false
	}
	if item.Equipment.Conflicts(holder.Container.EquippedItems(s.reg)) {
		s.messages.Add("Equipment slot is occupied", message.SeverityDanger)
		return false
	}
	item.Equipment.Equipped = true
	s.messages.Add("Item equipped", message.SeverityGood)
	return true
}

// Unequip clears the equipped flag.
func (s *Session) Unequip(item *entity.Actor) {
	if item.Equipment == nil {
		return
	}
	item.Equipment.Equipped = false
	s.messages.Add("Item unequipped", message.SeverityInfo)
}

// InventoryItem returns the player's i-th held item.
func (s *Session) InventoryItem(i int) (*entity.Actor, bool) {
	inv := s.Player().Container.Inventory
	if i < 0 || i >= len(inv) {
		return nil, false
	}
	return s.reg.Get(inv[i])
}
