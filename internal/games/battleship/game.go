// Package battleship provides the Battleship game for the terminal front end.
// Board generation lives in the core subpackage; this package adds the
// cursor, firing, HUD and mode switching on top of it.
package battleship

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-battleship/internal/config"
	platformcore "github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

// Game mode identifiers.
const (
	IDRandom = "battleship"
	IDFixed  = "battleship_fixed"
)

// Game implements Battleship against a generated board.
type Game struct {
	startMode core.Mode // Mode the game was created with; decides ID
	mode      core.Mode // Current mode, toggled in play
	cfg       config.BattleshipConfig
	rng       *rand.Rand

	grid    *core.Grid
	ships   []core.ShipDefinition
	boardID string
	report  core.Report
	genErr  error

	cursor  core.Coord
	shots   int
	reveal  bool
	message string

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	gameOver bool
}

// Package-level variables for configuration
var (
	configPath     string
	configOverride *config.BattleshipConfig
	logger         = log.New(io.Discard)
)

// SetConfigPath sets the config file used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetConfig makes every following Reset use cfg instead of loading from disk.
// nil restores file loading.
func SetConfig(cfg *config.BattleshipConfig) {
	configOverride = cfg
}

// SetLogger sets the logger used for generation events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a Battleship game with random placement.
func New() *Game {
	return &Game{startMode: core.ModeRandom, mode: core.ModeRandom}
}

// NewFixed creates a Battleship game on the fixed layout.
func NewFixed() *Game {
	return &Game{startMode: core.ModeFixed, mode: core.ModeFixed}
}

func init() {
	registry.Register(IDRandom, func() registry.Game {
		return New()
	})
	registry.Register(IDFixed, func() registry.Game {
		return NewFixed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.startMode == core.ModeFixed {
		return IDFixed
	}
	return IDRandom
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.startMode == core.ModeFixed {
		return "Battleship (Fixed)"
	}
	return "Battleship"
}

// Reset loads configuration and generates a fresh board.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.mode = g.startMode
	g.genErr = nil

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("config load failed", "path", configPath, "error", err)
		g.fail(err)
		return
	}
	g.cfg = cfg
	g.reveal = cfg.Game.Reveal

	g.regenerate()
}

func loadConfig() (config.BattleshipConfig, error) {
	if configOverride != nil {
		return *configOverride, nil
	}
	cfg, err := config.LoadBattleship(configPath)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, ""); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// regenerate builds a new board in the current mode and resets play state.
// A failed generation leaves the game in the error state with no grid.
func (g *Game) regenerate() {
	g.grid = nil
	g.boardID = ""
	g.shots = 0
	g.gameOver = false
	g.cursor = core.C(0, 0)
	g.message = ""

	grid, report, err := g.generate()
	g.report = report
	if err != nil {
		g.fail(err)
		return
	}

	g.genErr = nil
	g.grid = grid
	g.boardID = uuid.NewString()[:8]
	g.checkScreenSize()

	logger.Info("board generated",
		"board_id", g.boardID,
		"mode", g.mode,
		"rows", grid.Rows,
		"cols", grid.Cols,
		"attempts", report.TotalAttempts())
}

// generate runs whole-board generation, retrying random placement up to
// generation_retries more times. Fixed layouts are deterministic and get a
// single try.
func (g *Game) generate() (*core.Grid, core.Report, error) {
	params, err := g.cfg.GenParamsFor(g.mode, g.rng)
	if err != nil {
		return nil, core.Report{Mode: g.mode}, err
	}
	g.ships = params.Ships

	tries := 1
	if g.mode == core.ModeRandom {
		tries += platformcore.Max(g.cfg.Game.GenerationRetries, 0)
	}

	var (
		grid   *core.Grid
		report core.Report
	)
	for try := 1; try <= tries; try++ {
		grid, report, err = core.GenerateBoardWithReport(params)
		if err == nil {
			return grid, report, nil
		}

		var pf *core.PlacementFailure
		if !errors.As(err, &pf) {
			break
		}
		logger.Warn("placement failed",
			"mode", g.mode,
			"ship", pf.Ship,
			"attempts", pf.Attempts,
			"try", try,
			"of", tries)
	}
	return nil, report, err
}

func (g *Game) fail(err error) {
	g.genErr = err
	g.grid = nil
	g.boardID = ""
	logger.Error("could not build a board", "mode", g.mode, "error", err)
}

// Resize adapts to a new screen size and keeps the board in play.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the board, HUD and legend fit.
func (g *Game) checkScreenSize() {
	if g.grid == nil {
		g.tooSmall = false
		return
	}
	w, h := boardSize(g.grid)
	g.tooSmall = g.screenW < w || g.screenH < h+hudHeight+footerHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionReveal) {
		g.reveal = !g.reveal
	}

	// Toggle strategy: switch placement mode and build a new board
	if in.Has(platformcore.ActionToggleMode) {
		g.mode = otherMode(g.mode)
		g.regenerate()
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) {
		g.regenerate()
		return platformcore.StepResult{State: g.State()}
	}

	if g.grid == nil || g.tooSmall || g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	// Cursor movement, clamped to the board
	if in.Has(platformcore.ActionUp) {
		g.moveCursor(-1, 0)
	}
	if in.Has(platformcore.ActionDown) {
		g.moveCursor(1, 0)
	}
	if in.Has(platformcore.ActionLeft) {
		g.moveCursor(0, -1)
	}
	if in.Has(platformcore.ActionRight) {
		g.moveCursor(0, 1)
	}

	if in.Has(platformcore.ActionFire) {
		g.fire()
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) moveCursor(dr, dc int) {
	next := g.cursor.Add(dr, dc)
	g.cursor = core.C(
		platformcore.Clamp(next.Row, 0, g.grid.Rows-1),
		platformcore.Clamp(next.Col, 0, g.grid.Cols-1),
	)
}

// fire shoots at the cursor. Repeat shots are free and leave the board as is.
func (g *Game) fire() {
	target := g.cursor
	res, err := g.grid.Fire(target)
	if err != nil {
		g.message = err.Error()
		return
	}

	switch res {
	case core.ShotRepeat:
		g.message = fmt.Sprintf("%s already shot", target.Label())
		return
	case core.ShotMiss:
		g.message = fmt.Sprintf("%s: miss", target.Label())
	case core.ShotHit:
		g.message = fmt.Sprintf("%s: hit!", target.Label())
	case core.ShotSunk:
		g.message = fmt.Sprintf("%s: %s sunk!", target.Label(), g.shipName(g.grid.Get(target).Ship))
	}
	g.shots++

	if g.grid.AllSunk() {
		g.gameOver = true
		logger.Info("fleet sunk", "board_id", g.boardID, "mode", g.mode, "shots", g.shots)
	}
}

// shipName returns the configured display name of a ship.
func (g *Game) shipName(id core.ShipID) string {
	for _, s := range g.ships {
		if s.ID == id {
			return s.Name
		}
	}
	return id.String()
}

func otherMode(m core.Mode) core.Mode {
	if m == core.ModeFixed {
		return core.ModeRandom
	}
	return core.ModeFixed
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.shots,
		GameOver: g.gameOver,
		Failed:   g.genErr != nil,
	}
}

// Grid returns the current board, or nil in the error state.
func (g *Game) Grid() *core.Grid {
	return g.grid
}

// Mode returns the current placement mode.
func (g *Game) Mode() core.Mode {
	return g.mode
}

// Cursor returns the cell the next shot will target.
func (g *Game) Cursor() core.Coord {
	return g.cursor
}

// BoardID returns the short id of the current board.
func (g *Game) BoardID() string {
	return g.boardID
}

// Err returns the generation error, if the game is in the error state.
func (g *Game) Err() error {
	return g.genErr
}

// Report returns the report of the last generation.
func (g *Game) Report() core.Report {
	return g.report
}

func modeLabel(m core.Mode) string {
	switch m {
	case core.ModeFixed:
		return "Fixed"
	case core.ModeRandom:
		return "Random"
	default:
		return fmt.Sprint(m)
	}
}
