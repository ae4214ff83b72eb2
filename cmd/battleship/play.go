package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship"
	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Battleship",
	Long: `Start a game in the terminal. The mode defaults to "battleship"
(random placement); "battleship_fixed" starts on the fixed layout.

Controls:
  Arrows/HJKL  - Move the cursor
  Space/Enter  - Fire
  R            - New board
  M            - Switch between fixed and random placement
  V            - Reveal or hide the fleet
  ?            - More keys
  Q/Ctrl+C     - Quit

Examples:
  battleship play
  battleship play battleship_fixed
  battleship play --seed 42
  battleship play --config ./my-battleship.yaml --log-file play.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := battleship.IDRandom
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'battleship list' to see available modes.")
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger := newLogger(logOut)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	battleship.SetConfig(&cfg)
	battleship.SetLogger(logger.WithPrefix("battleship/game"))

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "mode", gameID, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(game, rc, logger); err != nil {
		logger.Error("game stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	st := game.State()
	logger.Info("finished", "mode", gameID, "shots", st.Score, "won", st.GameOver)
	if st.GameOver {
		fmt.Printf("Fleet sunk in %d shots.\n", st.Score)
	}
}
