package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List journaled runs",
	Long: `Display the most recent runs recorded in the journal, newest first.
Scores are not stored; use 'flappy replay <id>' to recompute one.

Examples:
  flappy runs
  flappy runs --limit 25`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := openJournal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.Runs(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Play a game first!")
		return
	}

	fmt.Println()
	fmt.Printf("  %-6s %-20s %-10s %-8s %-8s %s\n", "ID", "Seed", "Distance", "Ticks", "Length", "Ended")
	fmt.Println("  ──────────────────────────────────────────────────────────────────────")

	for _, run := range runs {
		fmt.Printf("  %-6d %-20d %-10d %-8d %-8s %s\n",
			run.ID,
			run.Seed,
			run.Distance,
			run.TickCount,
			run.Duration().Round(time.Second),
			run.EndedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println()
}
