package main

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/layouts"
)

func TestCollectStats(t *testing.T) {
	p := core.DefaultGenParams()
	p.Rand = rand.New(rand.NewSource(11))

	sum, err := collectStats(p, 200)
	if err != nil {
		t.Fatalf("collectStats failed: %v", err)
	}
	if sum.Succeeded != 200 || sum.Failed != 0 {
		t.Errorf("standard board should always succeed: %+v", sum)
	}
	for _, s := range sum.Ships {
		if s.Tried != 200 || s.Placed != 200 {
			t.Errorf("%s tried %d placed %d, want 200", s.Ship.ID, s.Tried, s.Placed)
		}
		if s.Mean() < 1 || s.Max < 1 {
			t.Errorf("%s mean %.2f max %d, want >= 1", s.Ship.ID, s.Mean(), s.Max)
		}
	}

	out := statsTable(sum).String()
	for _, want := range []string{"SHIP", "MEAN ATTEMPTS", "Aircraft Carrier", "Destroyer"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestCollectStatsFailures(t *testing.T) {
	p := core.DefaultGenParams()
	p.Rows, p.Cols = 3, 3
	p.MaxAttempts = 5
	p.Rand = rand.New(rand.NewSource(1))

	sum, err := collectStats(p, 20)
	if err != nil {
		t.Fatalf("collectStats failed: %v", err)
	}
	if sum.Failed != 20 || sum.Failures[core.ShipCarrier] != 20 {
		t.Errorf("carrier can never fit on 3x3: %+v", sum)
	}
	carrier := sum.Ships[0]
	if carrier.Attempts != 100 || carrier.Max != 5 || carrier.Placed != 0 {
		t.Errorf("unexpected carrier stats: %+v", carrier)
	}
	if sum.Ships[1].Tried != 0 || sum.Ships[1].Mean() != 0 {
		t.Errorf("ships after a failure are never tried: %+v", sum.Ships[1])
	}

	p.Rows = 0
	if _, err := collectStats(p, 1); err == nil {
		t.Error("expected error for invalid dimensions")
	}
}

func TestGenerateBoards(t *testing.T) {
	p := core.DefaultGenParams()
	p.Mode = core.ModeFixed

	out, err := generateBoards(p, 2, true)
	if err != nil {
		t.Fatalf("generateBoards failed: %v", err)
	}
	if strings.Count(out, "Board ") != 2 || !strings.Contains(out, "Board 2/2  10x10  fixed") {
		t.Errorf("unexpected headers:\n%s", out)
	}
	// Destroyer at (0,0) on the fixed layout.
	if !strings.Contains(out, " 1 D ~ ~") {
		t.Errorf("fixed board not rendered:\n%s", out)
	}

	p.Mode = core.ModeRandom
	p.Rand = rand.New(rand.NewSource(3))
	out, err = generateBoards(p, 1, false)
	if err != nil {
		t.Fatalf("generateBoards failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 12 || !strings.Contains(lines[0], "attempts") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	for _, line := range lines[2:] {
		cells := strings.TrimLeft(line, " 0123456789")
		if strings.Trim(cells, " ~") != "" {
			t.Errorf("hidden board should show only water: %q", line)
		}
	}

	if _, err := generateBoards(p, 0, true); err == nil {
		t.Error("expected error for count 0")
	}
}

func TestCheckLayout(t *testing.T) {
	cfg := config.DefaultBattleshipConfig()

	out, err := checkLayout(cfg, filepath.Join("..", "..", "layouts", "corners.yaml"))
	if err != nil {
		t.Fatalf("checkLayout failed: %v", err)
	}
	if !strings.Contains(out, "ok (corners, 10x10, 5 ships)") {
		t.Errorf("unexpected summary:\n%s", out)
	}

	// A layout without a size is checked on the configured board.
	dir := t.TempDir()
	unsized := filepath.Join(dir, "unsized.yaml")
	data := []byte(`
ships:
  - ship: destroyer
    cells: [[0, 0], [0, 1]]
`)
	if err := os.WriteFile(unsized, data, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg.Board = config.BoardConfig{Rows: 3, Cols: 4}
	cfg.Ships = []config.ShipConfig{{ID: "destroyer", Length: 2}}
	out, err = checkLayout(cfg, unsized)
	if err != nil {
		t.Fatalf("unsized layout should pass: %v", err)
	}
	if !strings.Contains(out, "3x4, 1 ships") {
		t.Errorf("unsized layout should take the board size:\n%s", out)
	}

	bent := filepath.Join(dir, "bent.yaml")
	data = []byte(`
ships:
  - ship: destroyer
    cells: [[0, 0], [1, 1]]
`)
	if err := os.WriteFile(bent, data, 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = checkLayout(cfg, bent)
	var ve layouts.ValidationError
	if !errors.As(err, &ve) || ve.Code != layouts.CodeNotStraight {
		t.Errorf("error = %v, want %s", err, layouts.CodeNotStraight)
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := config.DefaultBattleshipConfig()
	cfg.Board.Rows = 7

	out, err := dumpConfig(cfg)
	if err != nil {
		t.Fatalf("dumpConfig failed: %v", err)
	}

	var back config.BattleshipConfig
	if err := yaml.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("dump is not valid YAML: %v\n%s", err, out)
	}
	if back.Board.Rows != 7 || len(back.Ships) != 5 || back.Placement.MaxAttempts != 1000 {
		t.Errorf("unexpected round trip: %+v", back)
	}
	if !strings.Contains(out, "max_attempts: 1000") {
		t.Errorf("dump should use the config file keys:\n%s", out)
	}
}
