package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/layouts"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Check and list fixed layout files",
	Long: `Fixed layouts are YAML files listing each ship's cells:

  id: classic
  name: Classic
  size: {rows: 10, cols: 10}
  ships:
    - ship: destroyer
      cells: [[0, 0], [1, 0]]

Point placement.layout_file at one to use it in fixed mode.`,
}

var layoutCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a layout file against the configured fleet",
	Args:  cobra.ExactArgs(1),
	Run:   runLayoutCheck,
}

var layoutListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List valid layout files in a directory",
	Args:  cobra.MaximumNArgs(1),
	Run:   runLayoutList,
}

func init() {
	layoutCmd.AddCommand(layoutCheckCmd)
	layoutCmd.AddCommand(layoutListCmd)
}

func runLayoutCheck(cmd *cobra.Command, args []string) {
	logger, closeLog := cliLogger()
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	out, err := checkLayout(cfg, args[0])
	if err != nil {
		logger.Error("layout invalid", "file", args[0], "error", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		os.Exit(1)
	}
	fmt.Println(out)
}

// checkLayout validates the layout file at path against the configured
// fleet and returns a summary with the revealed board. A layout without a
// size is checked on the configured board.
func checkLayout(cfg config.BattleshipConfig, path string) (string, error) {
	l, err := layouts.LoadFile(path)
	if err != nil {
		return "", err
	}
	ships, err := cfg.ShipDefinitions()
	if err != nil {
		return "", err
	}
	l, err = cfg.CheckLayout(l, ships)
	if err != nil {
		return "", err
	}

	g := core.BuildEmptyGrid(l.Rows, l.Cols)
	if err := core.PlaceFixed(g, l.Ships); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s: ok (%s, %dx%d, %d ships)\n%s",
		path, l.ID, l.Rows, l.Cols, len(l.Ships), core.RenderASCII(g, true)), nil
}

func runLayoutList(cmd *cobra.Command, args []string) {
	dir := "layouts"
	if len(args) == 1 {
		dir = args[0]
	}

	all, err := layouts.LoadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Printf("No layouts in %s.\n", dir)
		return
	}

	for _, l := range all {
		name := l.Name
		if name == "" {
			name = l.ID
		}
		fmt.Printf("  %-16s %-24s %dx%d  %s\n", l.ID, name, l.Rows, l.Cols, l.FilePath)
	}
}
