package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ringboard/internal/platform/tui"
	"github.com/vovakirdan/ringboard/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
	flagRunsTUI   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the best finished runs",
	Long: `Display the best runs for the active layout: throne runs first,
fewest turns first, followed by summary statistics.

Examples:
  ringboard runs
  ringboard runs --limit 5
  ringboard runs --layout classic --tui
  ringboard runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the layout's run history")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse runs for every layout interactively")
}

func runRuns(_ *cobra.Command, _ []string) {
	layout := resolveLayout()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("Error opening run database", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(layout.ID); err != nil {
			store.Close()
			fatal("Error clearing runs", err)
		}
		fmt.Printf("Cleared run history for %s.\n", layout.ID)
		return
	}

	if flagRunsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRuns(store, layout.ID, width, height); err != nil {
			store.Close()
			fatal("Error running runs screen", err)
		}
		return
	}

	runs, err := store.BestRuns(layout.ID, flagRunsLimit)
	if err != nil {
		store.Close()
		fatal("Error retrieving runs", err)
	}

	fmt.Printf("Best Runs - %s\n", layout.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'ringboard play' and reach the throne to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-5s  %-5s  %-16s  %-20s  %s\n", "Rank", "Turns", "Steps", "Result", "Seed", "Date")
	fmt.Printf("  %-4s  %-5s  %-5s  %-16s  %-20s  %s\n", "----", "-----", "-----", "------", "----", "----")
	for i, r := range runs {
		result := "throne"
		if !r.Throne {
			result = fmt.Sprintf("%s tile %d", r.FinalRing, r.FinalTile)
		}
		fmt.Printf("  %-4d  %-5d  %-5d  %-16s  %-20d  %s\n",
			i+1, r.Turns, r.Steps, result, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(layout.ID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Throne: %d  Fewest turns: %d  Avg turns: %.1f  Total steps: %d\n",
		stats.Runs, stats.ThroneRuns, stats.FewestTurns, stats.AvgTurns, stats.TotalSteps)
}
