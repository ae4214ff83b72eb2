// battleship is a terminal Battleship game and board generator.
//
// Usage:
//
//	battleship list                 - List game modes
//	battleship play [mode]          - Play in the terminal (battleship, battleship_fixed)
//	battleship generate             - Print generated boards as text
//	battleship stats                - Measure random placement over many runs
//	battleship layout check <file>  - Validate a fixed layout file
//	battleship layout list [dir]    - List layout files in a directory
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--config <path>       - Path to a battleship.yaml config
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file (the TUI logs nowhere otherwise)
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"

	// Import games to register them
	_ "github.com/vovakirdan/tui-battleship/internal/games/battleship"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Battleship - generate boards and play in your terminal",
	Long: `Battleship places a fleet on a grid, either from a fixed layout or at
random, and lets you play against the result in your terminal.

Available commands:
  list     - Show game modes
  play     - Play a game
  generate - Print generated boards
  stats    - Placement statistics for random boards
  layout   - Check and list fixed layout files

Examples:
  battleship play
  battleship play battleship_fixed
  battleship generate --count 3 --seed 42
  battleship stats --runs 5000
  battleship layout check ./layouts/classic.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (input polls per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom battleship config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleship",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// cliLogger returns the logger for non-interactive commands: --log-file when
// set, stderr otherwise. The returned func closes the file.
func cliLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(os.Stderr), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(os.Stderr), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// loadConfig reads the config file chain and applies environment overrides.
func loadConfig() (config.BattleshipConfig, error) {
	cfg, err := config.LoadBattleship(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, ""); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newRand returns a seeded source for --seed, or nil to let each generation
// seed itself from the clock.
func newRand() core.Rand {
	if flagSeed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(flagSeed))
}
