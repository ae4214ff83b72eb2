package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

var (
	flagGenMode   string
	flagGenCount  int
	flagGenReveal bool
	flagGenCopy   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print generated boards",
	Long: `Generate one or more boards and print them as text.

Markers:
  ~      - Water
  A..D   - Ship initials (with --reveal)

Examples:
  battleship generate
  battleship generate --mode fixed
  battleship generate --count 5 --seed 7
  battleship generate --reveal=false --copy`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagGenMode, "mode", "", "Placement mode: random or fixed (default from config)")
	generateCmd.Flags().IntVar(&flagGenCount, "count", 1, "Number of boards to generate")
	generateCmd.Flags().BoolVar(&flagGenReveal, "reveal", true, "Show ship positions")
	generateCmd.Flags().BoolVar(&flagGenCopy, "copy", false, "Copy the output to the clipboard")
}

func runGenerate(cmd *cobra.Command, args []string) {
	logger, closeLog := cliLogger()
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagGenMode != "" {
		cfg.Placement.Mode = flagGenMode
	}

	params, err := cfg.GenParams(newRand())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := generateBoards(params, flagGenCount, flagGenReveal)
	if err != nil {
		var pf *core.PlacementFailure
		if errors.As(err, &pf) {
			logger.Error("placement failed", "ship", pf.Ship, "attempts", pf.Attempts)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)

	if flagGenCopy {
		if err := clipboard.WriteAll(out); err != nil {
			logger.Warn("could not copy to clipboard", "error", err)
			return
		}
		logger.Info("copied to clipboard", "boards", flagGenCount)
	}
}

// generateBoards renders count boards one after another. Boards share
// params.Rand, so a seeded run is reproducible as a whole.
func generateBoards(params core.GenParams, count int, reveal bool) (string, error) {
	if count < 1 {
		return "", fmt.Errorf("count must be at least 1, got %d", count)
	}

	var sb strings.Builder
	for i := 1; i <= count; i++ {
		g, report, err := core.GenerateBoardWithReport(params)
		if err != nil {
			return "", fmt.Errorf("board %d: %w", i, err)
		}

		header := fmt.Sprintf("Board %d/%d  %dx%d  %s", i, count, g.Rows, g.Cols, params.Mode)
		if params.Mode == core.ModeRandom {
			header += fmt.Sprintf("  %d attempts", report.TotalAttempts())
		}
		sb.WriteString(header)
		sb.WriteByte('\n')
		sb.WriteString(core.RenderASCII(g, reveal))
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}
