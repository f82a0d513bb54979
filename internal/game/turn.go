package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/lampdelve/internal/message"
)

// CommandKind identifies a player command.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdMove
	CmdPickUp
	CmdDropTopmost
	CmdUseItem
	CmdToggleEquip
	CmdInteract
	CmdPause
	CmdOpenInventory
	CmdStatus
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "move"
	case CmdPickUp:
		return "pick_up"
	case CmdDropTopmost:
		return "drop_topmost"
	case CmdUseItem:
		return "use_item"
	case CmdToggleEquip:
		return "toggle_equip"
	case CmdInteract:
		return "interact"
	case CmdPause:
		return "pause"
	case CmdOpenInventory:
		return "open_inventory"
	case CmdStatus:
		return "status"
	default:
		return "none"
	}
}

// Command is one discrete player input.
type Command struct {
	Kind   CommandKind
	DX, DY int // CmdMove
	Index  int // CmdUseItem, CmdToggleEquip: inventory position
}

// Move returns a move command.
func Move(dx, dy int) Command { return Command{Kind: CmdMove, DX: dx, DY: dy} }

// UseItem returns a use command for the i-th inventory item.
func UseItem(i int) Command { return Command{Kind: CmdUseItem, Index: i} }

// ToggleEquip returns an equip toggle command for the i-th inventory item.
func ToggleEquip(i int) Command { return Command{Kind: CmdToggleEquip, Index: i} }

// Menu names a screen the caller should open.
type Menu int

const (
	MenuNone Menu = iota
	MenuPause
	MenuInventory
)

// Outcome reports what a command did.
type Outcome struct {
	Turn bool // A turn was taken and the world advanced
	Menu Menu // A menu the caller should present
}

// Handle runs one player command. Commands that take a turn are followed
// by the visibility update, the monsters' behaviors and the portal
// watcher. Nothing happens once the game is over.
func (s *Session) Handle(ctx context.Context, cmd Command) Outcome {
	if s.status.Over() {
		return Outcome{}
	}

	switch cmd.Kind {
	case CmdPause:
		return Outcome{Menu: MenuPause}
	case CmdOpenInventory:
		return Outcome{Menu: MenuInventory}
	case CmdStatus:
		s.reportStatus()
		return Outcome{}
	}

	ctx, span := s.tracer.Start(ctx, "game.turn")
	defer span.End()

	took := s.playerAction(ctx, cmd)
	span.SetAttributes(
		attribute.String("command", cmd.Kind.String()),
		attribute.Bool("turn.taken", took),
		attribute.Int("turn", s.turn),
	)
	if !took {
		return Outcome{}
	}

	s.advance()
	return Outcome{Turn: true}
}

// playerAction performs the player's half of a turn and reports whether a
// turn was taken.
func (s *Session) playerAction(ctx context.Context, cmd Command) bool {
	player := s.Player()
	switch cmd.Kind {
	case CmdMove:
		if s.Move(player, cmd.DX, cmd.DY) {
			s.fov.MarkDirty()
		}
		return true
	case CmdPickUp:
		return s.PickUpHere()
	case CmdDropTopmost:
		return s.DropTopmost()
	case CmdUseItem:
		item, ok := s.InventoryItem(cmd.Index)
		if !ok {
			return false
		}
		switch s.Use(ctx, item) {
		case UseCanceled, UseNoEffect:
			return false
		}
		return true
	case CmdToggleEquip:
		item, ok := s.InventoryItem(cmd.Index)
		if !ok || item.Equipment == nil {
			return false
		}
		return s.ToggleEquip(item)
	case CmdInteract:
		return s.Interact(ctx)
	}
	return false
}

// advance runs the world's half of an accepted turn.
func (s *Session) advance() {
	s.turn++
	if s.status.Over() {
		return
	}
	s.refreshFOV()
	s.runBehaviors()
	s.updatePortals()
}

func (s *Session) reportStatus() {
	p := s.Player()
	c := p.Creature
	s.messages.Add(fmt.Sprintf("%s's Health %d/%d   Attack is %d Defense is %d",
		p.DisplayName(), c.HP, c.MaxHP, s.Power(p), s.Defense(p)), message.SeverityGood)
}
