package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

var flagStatsRuns int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Measure random placement",
	Long: `Run many random generations with the configured board and fleet and
report how often they succeed and how many attempts each ship needed.

Examples:
  battleship stats
  battleship stats --runs 10000 --seed 1
  BATTLESHIP_ROWS=6 BATTLESHIP_COLS=6 battleship stats`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsRuns, "runs", 1000, "Number of boards to generate")
}

// shipStats aggregates placement attempts for one ship.
type shipStats struct {
	Ship     core.ShipDefinition
	Tried    int // Runs that reached this ship
	Placed   int
	Attempts int
	Max      int
}

// Mean returns the mean attempts per run that reached the ship.
func (s shipStats) Mean() float64 {
	if s.Tried == 0 {
		return 0
	}
	return float64(s.Attempts) / float64(s.Tried)
}

// statsSummary is the result of a stats run.
type statsSummary struct {
	Runs      int
	Succeeded int
	Failed    int
	Ships     []shipStats
	Failures  map[core.ShipID]int // Failed runs by the ship that ran out of attempts
	Elapsed   time.Duration
}

// collectStats runs random generation runs times, sequentially.
func collectStats(p core.GenParams, runs int) (statsSummary, error) {
	p.Mode = core.ModeRandom
	sum := statsSummary{
		Runs:     runs,
		Ships:    make([]shipStats, len(p.Ships)),
		Failures: make(map[core.ShipID]int),
	}
	index := make(map[core.ShipID]int, len(p.Ships))
	for i, s := range p.Ships {
		sum.Ships[i].Ship = s
		index[s.ID] = i
	}

	start := time.Now()
	for i := 0; i < runs; i++ {
		_, report, err := core.GenerateBoardWithReport(p)

		for _, a := range report.Attempts {
			s := &sum.Ships[index[a.Ship]]
			s.Tried++
			s.Attempts += a.Attempts
			s.Max = max(s.Max, a.Attempts)
			if a.Placed {
				s.Placed++
			}
		}

		if err == nil {
			sum.Succeeded++
			continue
		}
		var pf *core.PlacementFailure
		if !errors.As(err, &pf) {
			return sum, err
		}
		sum.Failed++
		sum.Failures[pf.Ship]++
	}
	sum.Elapsed = time.Since(start)

	return sum, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	failStyle   = cellStyle.Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// statsTable renders per-ship results.
func statsTable(sum statsSummary) *table.Table {
	rows := make([][]string, 0, len(sum.Ships))
	for _, s := range sum.Ships {
		rows = append(rows, []string{
			s.Ship.Name,
			strconv.Itoa(s.Ship.Length),
			strconv.Itoa(s.Tried),
			strconv.Itoa(s.Placed),
			strconv.Itoa(sum.Failures[s.Ship.ID]),
			strconv.FormatFloat(s.Mean(), 'f', 2, 64),
			strconv.Itoa(s.Max),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("SHIP", "LEN", "TRIED", "PLACED", "FAILED", "MEAN ATTEMPTS", "MAX").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 4 && row >= 0 && row < len(rows) && rows[row][4] != "0":
				return failStyle
			default:
				return cellStyle
			}
		})
}

func runStats(cmd *cobra.Command, args []string) {
	logger, closeLog := cliLogger()
	defer closeLog()

	if flagStatsRuns < 1 {
		fmt.Fprintln(os.Stderr, "Error: --runs must be at least 1")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	params, err := cfg.GenParamsFor(core.ModeRandom, newRand())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("collecting stats",
		"runs", flagStatsRuns,
		"rows", params.Rows,
		"cols", params.Cols,
		"max_attempts", params.MaxAttempts)

	sum, err := collectStats(params, flagStatsRuns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Board %dx%d, %d ships, max %d attempts per ship\n",
		params.Rows, params.Cols, len(params.Ships), params.MaxAttempts)
	fmt.Println(statsTable(sum))
	fmt.Printf("Runs: %d  Succeeded: %d  Failed: %d  (%.1f%%)  in %s\n",
		sum.Runs, sum.Succeeded, sum.Failed,
		100*float64(sum.Failed)/float64(sum.Runs),
		sum.Elapsed.Round(time.Millisecond))

	if sum.Failed > 0 {
		logger.Warn("some boards could not be built", "failed", sum.Failed, "runs", sum.Runs)
	}
}
