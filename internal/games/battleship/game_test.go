package battleship

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/config"
	platformcore "github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

func useConfig(t *testing.T, cfg config.BattleshipConfig) {
	t.Helper()
	SetConfig(&cfg)
	t.Cleanup(func() { SetConfig(nil) })
}

func runtimeConfig(seed int64) platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed}
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDRandom, IDFixed} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("%s not registered: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}

	if New().Title() != "Battleship" || NewFixed().Title() != "Battleship (Fixed)" {
		t.Error("unexpected titles")
	}
}

func TestFixedGameUsesReferenceLayout(t *testing.T) {
	useConfig(t, config.DefaultBattleshipConfig())

	g := NewFixed()
	g.Reset(runtimeConfig(1))

	grid := g.Grid()
	if grid == nil {
		t.Fatalf("expected a board, got error %v", g.Err())
	}
	if g.Mode() != core.ModeFixed {
		t.Errorf("mode = %s, want fixed", g.Mode())
	}
	if grid.OccupiedCount() != 17 {
		t.Errorf("occupied = %d, want 17", grid.OccupiedCount())
	}
	for _, entry := range core.DefaultFixedLayout() {
		for _, c := range entry.Cells {
			if got := grid.Get(c).Ship; got != entry.Ship {
				t.Errorf("%s holds %s, want %s", c, got, entry.Ship)
			}
		}
	}
	if len(g.BoardID()) != 8 {
		t.Errorf("board id should be 8 chars, got %q", g.BoardID())
	}
}

func TestCursorClamping(t *testing.T) {
	useConfig(t, config.DefaultBattleshipConfig())

	g := NewFixed()
	g.Reset(runtimeConfig(1))

	g.Step(frame(platformcore.ActionUp, platformcore.ActionLeft))
	if g.Cursor() != core.C(0, 0) {
		t.Errorf("cursor should stay at origin, got %s", g.Cursor())
	}

	for i := 0; i < 15; i++ {
		g.Step(frame(platformcore.ActionRight))
		g.Step(frame(platformcore.ActionDown))
	}
	if g.Cursor() != core.C(9, 9) {
		t.Errorf("cursor should clamp to (9,9), got %s", g.Cursor())
	}

	g.Step(frame(platformcore.ActionUp))
	if g.Cursor() != core.C(8, 9) {
		t.Errorf("cursor = %s, want (8,9)", g.Cursor())
	}
}

func TestFireUntilWin(t *testing.T) {
	useConfig(t, config.DefaultBattleshipConfig())

	g := NewFixed()
	g.Reset(runtimeConfig(1))

	// Miss first, then repeat it: only one shot counts.
	g.cursor = core.C(9, 9)
	g.Step(frame(platformcore.ActionFire))
	g.Step(frame(platformcore.ActionFire))
	if g.State().Score != 1 {
		t.Fatalf("repeat shot should be free, score = %d", g.State().Score)
	}
	if !g.Grid().Get(core.C(9, 9)).IsMissed {
		t.Error("(9,9) should be a miss")
	}

	layout := core.DefaultFixedLayout()
	for i, entry := range layout {
		for _, c := range entry.Cells {
			if g.State().GameOver {
				t.Fatalf("game over before the last ship (ship %d)", i)
			}
			g.cursor = c
			g.Step(frame(platformcore.ActionFire))
		}
		if !g.Grid().IsSunk(entry.Ship) {
			t.Errorf("%s should be sunk", entry.Ship)
		}
	}

	st := g.State()
	if !st.GameOver {
		t.Fatal("expected game over after sinking every ship")
	}
	if st.Score != 18 {
		t.Errorf("score = %d, want 18 shots", st.Score)
	}

	// Firing after the win changes nothing.
	g.cursor = core.C(9, 8)
	g.Step(frame(platformcore.ActionFire))
	if g.State().Score != 18 || g.Grid().Get(core.C(9, 8)).Revealed() {
		t.Error("shots after game over should be ignored")
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "All ships sunk in 18 shots") {
		t.Errorf("missing win banner:\n%s", screen.String())
	}
}

func TestRestartAndToggleMode(t *testing.T) {
	useConfig(t, config.DefaultBattleshipConfig())

	g := New()
	g.Reset(runtimeConfig(99))
	if g.Mode() != core.ModeRandom || g.Grid() == nil {
		t.Fatalf("expected random board, err = %v", g.Err())
	}
	firstID := g.BoardID()

	g.cursor = core.C(4, 4)
	g.Step(frame(platformcore.ActionFire))
	if g.State().Score != 1 {
		t.Fatalf("score = %d, want 1", g.State().Score)
	}

	g.Step(frame(platformcore.ActionRestart))
	if g.State().Score != 0 || g.Grid().ShotCount() != 0 {
		t.Error("restart should clear shots")
	}
	if g.BoardID() == firstID {
		t.Error("restart should issue a new board id")
	}
	if g.Cursor() != core.C(0, 0) {
		t.Errorf("restart should reset cursor, got %s", g.Cursor())
	}

	g.Step(frame(platformcore.ActionToggleMode))
	if g.Mode() != core.ModeFixed {
		t.Fatalf("toggle should switch to fixed, got %s", g.Mode())
	}
	if got := g.Grid().Get(core.C(5, 2)).Ship; got != core.ShipBattleship {
		t.Errorf("fixed board should hold the battleship at (5,2), got %s", got)
	}
	if g.ID() != IDRandom {
		t.Error("toggling mode should not change the game id")
	}

	g.Step(frame(platformcore.ActionToggleMode))
	if g.Mode() != core.ModeRandom {
		t.Errorf("second toggle should return to random, got %s", g.Mode())
	}

	// Reset returns to the mode the game was created with.
	g.Step(frame(platformcore.ActionToggleMode))
	g.Reset(runtimeConfig(5))
	if g.Mode() != core.ModeRandom {
		t.Errorf("reset should restore the start mode, got %s", g.Mode())
	}
}

func TestSeededGamesMatch(t *testing.T) {
	useConfig(t, config.DefaultBattleshipConfig())

	a, b := New(), New()
	a.Reset(runtimeConfig(42))
	b.Reset(runtimeConfig(42))

	if !a.Grid().Equal(b.Grid()) {
		t.Error("same seed should give the same board")
	}
	if a.BoardID() == b.BoardID() {
		t.Error("board ids should be unique per generation")
	}
}

func TestGenerationFailureState(t *testing.T) {
	cfg := config.DefaultBattleshipConfig()
	cfg.Board = config.BoardConfig{Rows: 2, Cols: 2}
	cfg.Placement.MaxAttempts = 10
	cfg.Game.GenerationRetries = 2
	useConfig(t, cfg)

	g := New()
	g.Reset(runtimeConfig(3))

	if g.Grid() != nil {
		t.Fatal("a failed generation must not expose a grid")
	}
	var pf *core.PlacementFailure
	if !errors.As(g.Err(), &pf) {
		t.Fatalf("expected *PlacementFailure, got %v", g.Err())
	}
	if pf.Ship != core.ShipCarrier || pf.Attempts != 10 {
		t.Errorf("failure = %+v, want carrier after 10 attempts", pf)
	}
	if !g.State().Failed {
		t.Error("state should report failure")
	}

	// Input other than restart and toggle is ignored in the error state.
	g.Step(frame(platformcore.ActionFire, platformcore.ActionDown))
	if g.State().Score != 0 || g.Cursor() != core.C(0, 0) {
		t.Error("error state should ignore play input")
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Could not build a board") {
		t.Errorf("missing error message:\n%s", out)
	}
	if strings.Contains(out, "Fleet") {
		t.Error("error state should not draw a board")
	}

	// Toggling to fixed mode recovers with the built-in layout.
	g.Step(frame(platformcore.ActionToggleMode))
	if g.Grid() == nil || g.State().Failed {
		t.Fatalf("fixed mode should recover, err = %v", g.Err())
	}
}

func TestInvalidConfigFails(t *testing.T) {
	cfg := config.DefaultBattleshipConfig()
	cfg.Placement.Mode = "random"
	cfg.Ships = []config.ShipConfig{{ID: "rowboat", Length: 2}}
	useConfig(t, cfg)

	g := New()
	g.Reset(runtimeConfig(1))
	if !errors.Is(g.Err(), core.ErrInvalidShip) {
		t.Errorf("expected ErrInvalidShip, got %v", g.Err())
	}
}

// boardRow returns the board cells of grid row r as drawn on screen,
// without the legend to the right.
func boardRow(g *Game, screen *platformcore.Screen, r int) string {
	w, _ := boardSize(g.Grid())
	x := (screen.Width() - w) / 2
	end := x + rowLabelWidth(g.Grid()) + 1 + g.Grid().Cols*cellWidth
	return screen.Row(hudHeight + 1 + r)[x:end]
}

func TestRenderBoard(t *testing.T) {
	useConfig(t, config.DefaultBattleshipConfig())

	g := NewFixed()
	g.Reset(runtimeConfig(1))
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Mode: Fixed", "Shots: 0", "Board: " + g.BoardID(), "Fleet", "Aircraft Carrier", "afloat"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	// Carrier starts at (2,9) but is hidden until revealed.
	if strings.Contains(boardRow(g, screen, 2), "A") {
		t.Errorf("ships should be hidden: %q", boardRow(g, screen, 2))
	}
	if !strings.Contains(boardRow(g, screen, 0), "[~]") {
		t.Errorf("cursor should bracket the first cell: %q", boardRow(g, screen, 0))
	}

	// Hit the destroyer at (0,0) and reveal the fleet.
	g.Step(frame(platformcore.ActionFire, platformcore.ActionReveal))
	g.Render(screen)
	if !strings.Contains(boardRow(g, screen, 0), "[X]") {
		t.Errorf("hit should show under the cursor: %q", boardRow(g, screen, 0))
	}
	if !strings.Contains(boardRow(g, screen, 2), "A") {
		t.Errorf("revealed carrier missing from row 3: %q", boardRow(g, screen, 2))
	}
	if !strings.Contains(screen.String(), "damaged") {
		t.Error("legend should show the destroyer as damaged")
	}
	if !strings.Contains(screen.String(), "A1: hit!") {
		t.Errorf("last shot message missing:\n%s", screen.String())
	}
}

func TestTooSmallScreen(t *testing.T) {
	useConfig(t, config.DefaultBattleshipConfig())

	g := NewFixed()
	rc := runtimeConfig(1)
	rc.ScreenW, rc.ScreenH = 30, 10
	g.Reset(rc)

	screen := platformcore.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message:\n%s", screen.String())
	}

	g.Step(frame(platformcore.ActionFire))
	if g.State().Score != 0 {
		t.Error("input should be ignored while the window is too small")
	}

	g.Resize(80, 24)
	g.Step(frame(platformcore.ActionFire))
	if g.State().Score != 1 {
		t.Error("play should resume after resize")
	}
}

func TestConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battleship.yaml")
	data := []byte(`
board: {rows: 6, cols: 7}
ships:
  - {id: cruiser, name: Cruiser, length: 3}
  - {id: destroyer, name: Destroyer, length: 2}
game:
  reveal: true
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(runtimeConfig(8))
	if g.Grid() == nil {
		t.Fatalf("expected a board, got %v", g.Err())
	}
	if g.Grid().Rows != 6 || g.Grid().Cols != 7 {
		t.Errorf("board = %dx%d, want 6x7", g.Grid().Rows, g.Grid().Cols)
	}
	if g.Grid().OccupiedCount() != 5 {
		t.Errorf("occupied = %d, want 5", g.Grid().OccupiedCount())
	}
	if !g.reveal {
		t.Error("game.reveal should start with the fleet shown")
	}

	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Reset(runtimeConfig(8))
	if g.Err() == nil || g.Grid() != nil {
		t.Error("missing config should put the game in the error state")
	}
}
