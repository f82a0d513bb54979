package game

import (
	"context"

	"github.com/samdwyer/lampdelve/internal/entity"
	"github.com/samdwyer/lampdelve/internal/gamedata"
	"github.com/samdwyer/lampdelve/internal/message"
)

// updatePortals opens every portal on the level while the player carries a
// key item and closes it otherwise.
func (s *Session) updatePortals() {
	hasKey := s.Player().Container.HasKey(s.reg)
	for _, a := range s.reg.Resolve(s.level.Actors) {
		if a.Portal == nil {
			continue
		}
		switch {
		case hasKey && !a.Portal.IsOpen():
			a.Portal.State = entity.PortalOpen
			a.Color = gamedata.ColorPortalOpen
			s.messages.Add("The exit portal hums open.", message.SeverityGood)
		case !hasKey && a.Portal.IsOpen():
			a.Portal.State = entity.PortalClosed
			a.Color = gamedata.ColorPortalClosed
			s.messages.Add("The exit portal closes.", message.SeverityInfo)
		}
	}
}

// usePortal ends the game in a win if the portal is open.
func (s *Session) usePortal(p *entity.Portal) bool {
	if !p.IsOpen() {
		s.messages.Add("The portal is closed. Bring back the lamp.", message.SeverityInfo)
		return false
	}
	s.status = StatusWon
	s.messages.Add("You escape through the portal with the lamp!", message.SeverityGood)
	s.sounder.Play(CueWin)
	s.log.Info("player won", "turn", s.turn)
	return true
}

// useStairs moves to the next or previous level.
func (s *Session) useStairs(ctx context.Context, st *entity.Stairs) bool {
	if st.Down {
		s.TransitionNext(ctx)
		return true
	}
	if !s.TransitionPrevious(ctx) {
		s.messages.Add("There is no way up from here.", message.SeverityInfo)
		return false
	}
	return true
}

// Interact uses the stairs or portal on the player's tile. It returns true
// if something was used.
func (s *Session) Interact(ctx context.Context) bool {
	player := s.Player()
	for _, a := range s.ActorsAt(player.X, player.Y) {
		switch {
		case a.Stairs != nil:
			return s.useStairs(ctx, a.Stairs)
		case a.Portal != nil:
			return s.usePortal(a.Portal)
		}
	}
	return false
}
