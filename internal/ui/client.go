package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lampdelve/internal/game"
	"github.com/samdwyer/lampdelve/internal/persistence"
)

// Client runs the interactive loop for one session.
type Client struct {
	screen   *Screen
	renderer *Renderer
	session  *game.Session
	store    persistence.Store
	slot     string
	log      *slog.Logger
	now      func() time.Time
}

// NewClient binds a session to a screen and installs the tile selector.
// store may be nil, in which case nothing is saved.
func NewClient(screen *Screen, session *game.Session, store persistence.Store, slot string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := NewRenderer(screen)
	session.SetSelector(NewSelector(screen, r, session))
	return &Client{
		screen:   screen,
		renderer: r,
		session:  session,
		store:    store,
		slot:     slot,
		log:      logger.With("component", "ui"),
		now:      time.Now,
	}
}

// Run draws and reads input until the player quits or the game ends. A
// game left running is saved; a finished one is recorded and its save
// deleted.
func (c *Client) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return c.save(ctx)
		}
		c.renderer.Render(c.session, nil)

		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return c.save(ctx)
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			action, cmd := KeyCommand(ev)
			switch action {
			case ActionQuit:
				return c.save(ctx)
			case ActionCommand:
				if quit := c.dispatch(ctx, cmd); quit {
					return c.save(ctx)
				}
			}
			if c.session.Status().Over() {
				return c.finish(ctx)
			}
		}
	}
}

// dispatch sends a command and opens any menu it asks for. It returns
// true if the player chose to quit from a menu.
func (c *Client) dispatch(ctx context.Context, cmd game.Command) bool {
	out := c.session.Handle(ctx, cmd)
	switch out.Menu {
	case game.MenuPause:
		return c.pauseMenu()
	case game.MenuInventory:
		c.inventoryMenu(ctx)
	}
	return false
}

func (c *Client) pauseMenu() bool {
	c.renderer.Render(c.session, nil)
	c.renderer.DrawMenu("Paused", []string{
		"q) save and quit",
		"any other key to resume",
	})
	ev := c.waitKey()
	return ev == nil || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'))
}

// inventoryMenu lists held items. A lowercase letter uses an item, an
// uppercase letter equips or unequips it.
func (c *Client) inventoryMenu(ctx context.Context) {
	p := c.session.Player()
	items := p.Container.Items(c.session.Registry())
	lines := make([]string, 0, len(items)+2)
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%c) %s", 'a'+i, it.DisplayName()))
	}
	if len(items) == 0 {
		lines = append(lines, "(empty)")
	}
	lines = append(lines, "", "letter: use   SHIFT+letter: equip   Esc: close")

	c.renderer.Render(c.session, nil)
	c.renderer.DrawMenu(fmt.Sprintf("Inventory %.0f/%.0f", p.Container.Volume(c.session.Registry()), p.Container.MaxVolume), lines)
	ev := c.waitKey()
	if ev == nil || ev.Key() != tcell.KeyRune {
		return
	}
	i, equip, ok := inventoryIndex(ev.Rune())
	if !ok || i >= len(items) {
		return
	}
	if equip {
		c.session.Handle(ctx, game.ToggleEquip(i))
		return
	}
	c.session.Handle(ctx, game.UseItem(i))
}

// waitKey blocks until a key is pressed. It returns nil if the screen was
// closed.
func (c *Client) waitKey() *tcell.EventKey {
	for {
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			return ev
		}
	}
}

// save writes the session to its slot. It still runs after ctx is
// canceled, so an interrupted game is kept.
func (c *Client) save(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	ctx = context.WithoutCancel(ctx)
	if err := c.store.SaveGame(ctx, c.slot, c.session.Snapshot()); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	c.log.Info("game saved", "slot", c.slot, "turn", c.session.Turn(), "depth", c.session.Depth())
	return nil
}

// finish records the ended run, removes its save and shows the outcome.
func (c *Client) finish(ctx context.Context) error {
	var err error
	if c.store != nil {
		ctx = context.WithoutCancel(ctx)
		rec := persistence.NewLegacy(c.slot, c.session, c.now())
		err = errors.Join(
			c.store.RecordLegacy(ctx, rec),
			c.store.DeleteGame(ctx, c.slot),
		)
	}
	c.log.Info("game over", "status", c.session.Status().String(), "turn", c.session.Turn())

	title := "You died!"
	if c.session.Status() == game.StatusWon {
		title = "You escaped with the lamp!"
	}
	c.renderer.Render(c.session, nil)
	c.renderer.DrawMenu(title, []string{fmt.Sprintf("Turns taken: %d", c.session.Turn()), "press any key"})
	c.waitKey()
	return err
}
