package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lampdelve/internal/game"
	"github.com/samdwyer/lampdelve/internal/gamedata"
	"github.com/samdwyer/lampdelve/internal/persistence"
	"github.com/samdwyer/lampdelve/internal/world"
)

var testData = gamedata.MustLoadAll()

func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := newScreen(sim)
	if err != nil {
		t.Fatalf("newScreen() error = %v", err)
	}
	sim.SetSize(80, 40)
	t.Cleanup(s.Close)
	return s, sim
}

func newTestSession(t *testing.T) *game.Session {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Seed = 42
	s, err := game.NewSession(context.Background(), game.Options{Config: cfg, Data: testData})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

// row returns the text on screen row y.
func row(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Bytes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.Write(c.Bytes)
	}
	return b.String()
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		action Action
		cmd    game.Command
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionCommand, game.Move(0, -1)},
		{"vi diagonal", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), ActionCommand, game.Move(1, 1)},
		{"numpad", tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone), ActionCommand, game.Move(-1, 0)},
		{"wait", tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone), ActionCommand, game.Move(0, 0)},
		{"pick up", tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), ActionCommand, game.Command{Kind: game.CmdPickUp}},
		{"drop", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), ActionCommand, game.Command{Kind: game.CmdDropTopmost}},
		{"inventory", tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone), ActionCommand, game.Command{Kind: game.CmdOpenInventory}},
		{"status", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionCommand, game.Command{Kind: game.CmdStatus}},
		{"stairs", tcell.NewEventKey(tcell.KeyRune, '>', tcell.ModNone), ActionCommand, game.Command{Kind: game.CmdInteract}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionCommand, game.Command{Kind: game.CmdInteract}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionCommand, game.Command{Kind: game.CmdPause}},
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit, game.Command{}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit, game.Command{}},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone, game.Command{}},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionNone, game.Command{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, cmd := KeyCommand(tt.ev)
			if action != tt.action || cmd != tt.cmd {
				t.Errorf("KeyCommand() = %v, %+v, want %v, %+v", action, cmd, tt.action, tt.cmd)
			}
		})
	}
}

func TestInventoryIndex(t *testing.T) {
	tests := []struct {
		r     rune
		index int
		equip bool
		ok    bool
	}{
		{'a', 0, false, true},
		{'c', 2, false, true},
		{'B', 1, true, true},
		{'1', 0, false, false},
	}
	for _, tt := range tests {
		i, equip, ok := inventoryIndex(tt.r)
		if i != tt.index || equip != tt.equip || ok != tt.ok {
			t.Errorf("inventoryIndex(%q) = %d, %v, %v", tt.r, i, equip, ok)
		}
	}
}

func TestRenderDrawsPlayerAndStatus(t *testing.T) {
	screen, sim := newTestScreen(t)
	s := newTestSession(t)
	NewRenderer(screen).Render(s, nil)

	p := s.Player()
	r, _, _, _ := sim.GetContent(p.X, p.Y)
	if r != '@' {
		t.Errorf("player cell = %q, want '@'", r)
	}
	status := row(sim, s.Level().Grid.Height)
	if !strings.Contains(status, "HP 50/50") || !strings.Contains(status, "Depth 1") {
		t.Errorf("status line = %q", status)
	}
	if msg := row(sim, s.Level().Grid.Height+1); !strings.Contains(msg, "Welcome") {
		t.Errorf("first message line = %q", msg)
	}
}

func TestSelectorConfirm(t *testing.T) {
	screen, sim := newTestScreen(t)
	s := newTestSession(t)
	sel := NewSelector(screen, NewRenderer(screen), s)
	p := s.Player()
	origin := world.Pt(p.X, p.Y)

	sim.InjectKey(tcell.KeyRune, 'l', tcell.ModNone)
	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	got, ok := sel.SelectTile(context.Background(), game.TargetRequest{Origin: &origin, MaxRange: 5})
	if !ok {
		t.Fatal("SelectTile() declined")
	}
	if got != world.Pt(p.X+1, p.Y+1) {
		t.Errorf("SelectTile() = %v, want %v", got, world.Pt(p.X+1, p.Y+1))
	}
}

func TestSelectorCancel(t *testing.T) {
	screen, sim := newTestScreen(t)
	s := newTestSession(t)
	sel := NewSelector(screen, NewRenderer(screen), s)

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if _, ok := sel.SelectTile(context.Background(), game.TargetRequest{}); ok {
		t.Error("Escape should decline the selection")
	}
}

type memStore struct {
	saved   map[string]*game.SaveState
	legacy  []persistence.Legacy
	deleted []string
}

func newMemStore() *memStore { return &memStore{saved: map[string]*game.SaveState{}} }

func (m *memStore) SaveGame(_ context.Context, slot string, st *game.SaveState) error {
	m.saved[slot] = st
	return nil
}

func (m *memStore) LoadGame(_ context.Context, slot string) (*game.SaveState, error) {
	st, ok := m.saved[slot]
	if !ok {
		return nil, persistence.ErrNotFound
	}
	return st, nil
}

func (m *memStore) DeleteGame(_ context.Context, slot string) error {
	delete(m.saved, slot)
	m.deleted = append(m.deleted, slot)
	return nil
}

func (m *memStore) RecordLegacy(_ context.Context, rec persistence.Legacy) error {
	m.legacy = append(m.legacy, rec)
	return nil
}

func (m *memStore) Close() error { return nil }

func TestClientQuitSaves(t *testing.T) {
	screen, sim := newTestScreen(t)
	s := newTestSession(t)
	store := newMemStore()
	c := NewClient(screen, s, store, "main", nil)

	sim.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, ok := store.saved["main"]; !ok {
		t.Error("quitting should save the game")
	}
	if len(store.legacy) != 0 {
		t.Error("a running game leaves no legacy")
	}
}

func TestClientSavesWhenInterrupted(t *testing.T) {
	screen, _ := newTestScreen(t)
	s := newTestSession(t)
	store, err := persistence.OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFileStore() error = %v", err)
	}
	c := NewClient(screen, s, store, "main", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	st, err := store.LoadGame(context.Background(), "main")
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if st.Turn != s.Turn() {
		t.Errorf("saved turn = %d, want %d", st.Turn, s.Turn())
	}
}

func TestClientPauseMenuQuit(t *testing.T) {
	screen, sim := newTestScreen(t)
	s := newTestSession(t)
	store := newMemStore()
	c := NewClient(screen, s, store, "main", nil)

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, ok := store.saved["main"]; !ok {
		t.Error("quitting from the pause menu should save")
	}
	if s.Turn() != 0 {
		t.Errorf("Turn() = %d, pausing takes no turn", s.Turn())
	}
}

func TestClientFinishRecordsLegacy(t *testing.T) {
	screen, sim := newTestScreen(t)
	s := newTestSession(t)
	store := newMemStore()
	store.saved["main"] = s.Snapshot()
	c := NewClient(screen, s, store, "main", nil)

	s.TakeDamage(s.Player(), 1000)
	sim.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(store.legacy) != 1 || store.legacy[0].Outcome != game.StatusDead {
		t.Fatalf("legacy = %+v", store.legacy)
	}
	if _, ok := store.saved["main"]; ok {
		t.Error("a finished game's save should be deleted")
	}
}
