package ui

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lampdelve/internal/entity"
	"github.com/samdwyer/lampdelve/internal/game"
	"github.com/samdwyer/lampdelve/internal/gamedata"
	"github.com/samdwyer/lampdelve/internal/message"
	"github.com/samdwyer/lampdelve/internal/world"
)

// logLines is how many recent messages are shown under the map.
const logLines = 5

var (
	styleWallVisible  = fg(gamedata.ColorWallVisible)
	styleWallExplored = fg(gamedata.ColorWallExplored)
	styleFloorVisible = fg(gamedata.ColorFloorVisible)
	styleFloorHidden  = fg(gamedata.ColorFloorHidden)
	stylePath         = tcell.StyleDefault.Background(gamedata.MustParseHexColor(gamedata.ColorTargetPath)).Foreground(tcell.ColorBlack)
	styleArea         = tcell.StyleDefault.Background(gamedata.MustParseHexColor(gamedata.ColorTargetArea)).Foreground(tcell.ColorBlack)
	styleStatus       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleMenu         = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

func fg(hex string) tcell.Style {
	return tcell.StyleDefault.Foreground(gamedata.MustParseHexColor(hex))
}

var severityColors = map[message.Severity]tcell.Color{
	message.SeverityInfo:   tcell.ColorSilver,
	message.SeverityCombat: tcell.ColorWhite,
	message.SeverityDanger: tcell.ColorRed,
	message.SeverityGood:   tcell.ColorGreen,
}

// Overlay highlights tiles while a target is being chosen.
type Overlay struct {
	Path []world.Point
	Area []world.Point
}

// Renderer draws a session onto a screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, the visible actors, the status bar and the most
// recent messages. overlay may be nil.
func (r *Renderer) Render(s *game.Session, overlay *Overlay) {
	r.screen.Clear()
	r.drawMap(s)
	r.drawActors(s)
	if overlay != nil {
		r.drawOverlay(s, overlay)
	}
	r.drawStatus(s)
	r.drawMessages(s)
	r.screen.Show()
}

// drawMap draws visible tiles bright and remembered tiles dim.
func (r *Renderer) drawMap(s *game.Session) {
	grid := s.Level().Grid
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			tile := grid.GetTile(x, y)
			visible := s.IsVisible(x, y)
			switch {
			case visible && tile.BlocksPath:
				r.screen.SetContent(x, y, '#', styleWallVisible)
			case visible:
				r.screen.SetContent(x, y, '.', styleFloorVisible)
			case tile.Explored && tile.BlocksPath:
				r.screen.SetContent(x, y, '#', styleWallExplored)
			case tile.Explored:
				r.screen.SetContent(x, y, '.', styleFloorHidden)
			}
		}
	}
}

// drawActors draws visible actors from the deepest draw depth up, so the
// player ends on top.
func (r *Renderer) drawActors(s *game.Session) {
	actors := s.Active()
	sort.SliceStable(actors, func(i, j int) bool { return actors[i].Depth > actors[j].Depth })
	for _, a := range actors {
		if !s.IsVisible(a.X, a.Y) {
			continue
		}
		r.screen.SetContent(a.X, a.Y, glyph(a), actorStyle(a))
	}
}

func glyph(a *entity.Actor) rune {
	for _, r := range a.Glyph {
		return r
	}
	return '?'
}

func actorStyle(a *entity.Actor) tcell.Style {
	style := tcell.StyleDefault.Foreground(gamedata.ColorOr(a.Color, tcell.ColorWhite))
	if a.Depth == entity.DepthPlayer {
		style = style.Bold(true)
	}
	return style
}

func (r *Renderer) drawOverlay(s *game.Session, o *Overlay) {
	paint := func(points []world.Point, style tcell.Style) {
		grid := s.Level().Grid
		for _, p := range points {
			if !grid.InBounds(p.X, p.Y) {
				continue
			}
			ch := grid.GetTile(p.X, p.Y).Rune()
			if a := topActorAt(s, p.X, p.Y); a != nil {
				ch = glyph(a)
			}
			r.screen.SetContent(p.X, p.Y, ch, style)
		}
	}
	paint(o.Area, styleArea)
	paint(o.Path, stylePath)
}

func topActorAt(s *game.Session, x, y int) *entity.Actor {
	var top *entity.Actor
	for _, a := range s.ActorsAt(x, y) {
		if top == nil || a.Depth < top.Depth {
			top = a
		}
	}
	return top
}

func (r *Renderer) drawStatus(s *game.Session) {
	p := s.Player()
	y := s.Level().Grid.Height
	hp, maxHP := 0, 0
	if p.Creature != nil {
		hp, maxHP = p.Creature.HP, p.Creature.MaxHP
	}
	line := fmt.Sprintf("%s  HP %d/%d  ATK %d  DEF %d  Depth %d  Turn %d",
		p.DisplayName(), hp, maxHP, s.Power(p), s.Defense(p), s.Depth(), s.Turn())
	r.screen.DrawText(0, y, line, styleStatus)
}

func (r *Renderer) drawMessages(s *game.Session) {
	y := s.Level().Grid.Height + 1
	for i, e := range s.Messages().Recent(logLines) {
		style := tcell.StyleDefault.Foreground(severityColors[e.Severity])
		r.screen.DrawText(0, y+i, e.Text, style)
	}
}

// DrawMenu draws a boxed list of lines over the map and shows it.
func (r *Renderer) DrawMenu(title string, lines []string) {
	width := len(title)
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4
	sw, _ := r.screen.Size()
	x := max(0, (sw-width)/2)
	y := 2

	blank := fmt.Sprintf("%*s", width, "")
	r.screen.DrawText(x, y, blank, styleMenu)
	r.screen.DrawText(x+2, y, title, styleMenu.Bold(true))
	for i, l := range lines {
		r.screen.DrawText(x, y+1+i, blank, styleMenu)
		r.screen.DrawText(x+2, y+1+i, l, styleMenu)
	}
	r.screen.DrawText(x, y+1+len(lines), blank, styleMenu)
	r.screen.Show()
}
