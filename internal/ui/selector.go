package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lampdelve/internal/game"
	"github.com/samdwyer/lampdelve/internal/world"
)

// Selector lets the player pick a tile with the keyboard or mouse while
// the allowed path and blast area are highlighted.
type Selector struct {
	screen   *Screen
	renderer *Renderer
	session  *game.Session
}

var _ game.TileSelector = (*Selector)(nil)

// NewSelector creates a selector drawing on screen.
func NewSelector(screen *Screen, renderer *Renderer, session *game.Session) *Selector {
	return &Selector{screen: screen, renderer: renderer, session: session}
}

// SelectTile implements game.TileSelector. Enter, 'f' or a left click
// confirms; Escape or 'q' declines.
func (sel *Selector) SelectTile(ctx context.Context, req game.TargetRequest) (world.Point, bool) {
	p := sel.session.Player()
	cursor := world.Pt(p.X, p.Y)
	if req.Origin != nil {
		cursor = *req.Origin
	}

	for {
		if ctx.Err() != nil {
			return world.Point{}, false
		}
		path := sel.session.TargetPath(req, cursor)
		end := path[len(path)-1]
		sel.renderer.Render(sel.session, &Overlay{
			Path: path,
			Area: sel.session.TargetArea(req, end),
		})

		switch ev := sel.screen.PollEvent().(type) {
		case nil:
			return world.Point{}, false
		case *tcell.EventResize:
			sel.screen.Sync()
		case *tcell.EventMouse:
			x, y := ev.Position()
			cursor = world.Pt(x, y)
			if ev.Buttons()&tcell.Button1 != 0 {
				return cursor, true
			}
		case *tcell.EventKey:
			if dx, dy, ok := arrowDelta(ev.Key()); ok {
				cursor = world.Pt(cursor.X+dx, cursor.Y+dy)
				break
			}
			switch ev.Key() {
			case tcell.KeyEnter:
				return cursor, true
			case tcell.KeyEscape:
				return world.Point{}, false
			case tcell.KeyRune:
				if d, ok := moveKeys[ev.Rune()]; ok {
					cursor = world.Pt(cursor.X+d[0], cursor.Y+d[1])
					break
				}
				switch ev.Rune() {
				case 'f':
					return cursor, true
				case 'q':
					return world.Point{}, false
				}
			}
		}
		// Keep the cursor on the map so the path stays drawable.
		cursor = sel.session.TargetPath(game.TargetRequest{}, cursor)[0]
	}
}
