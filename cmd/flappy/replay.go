package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a journaled run",
	Long: `Replay a journaled run headlessly from its seed and recorded input,
print the recomputed score and check that the run ends exactly where it
ended when it was played.

Examples:
  flappy runs
  flappy replay 3`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("flappy-replay", false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}

	store, err := openJournal()
	if err != nil {
		logger.Fatal("cannot open journal", "err", err)
	}
	defer store.Close()

	run, err := store.Run(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'flappy runs' to see recorded runs.")
		os.Exit(1)
	}

	ticks, err := store.RunTicks(id)
	if err != nil {
		logger.Fatal("cannot read run input", "id", id, "err", err)
	}

	res, ok := replay.Verify(cfg.Runtime(0), run, ticks)
	logger.Debug("replayed run", "id", id, "ticks", res.Ticks, "ended", res.Ended)

	fmt.Println()
	fmt.Printf("  Run #%d (seed %d, %dx%d)\n", run.ID, run.Seed, run.Cols, run.Rows)
	fmt.Println("  ─────────────────────────────")
	fmt.Printf("  Score:    %d\n", res.Score)
	fmt.Printf("  Distance: %d (journal: %d)\n", res.Distance, run.Distance)
	fmt.Printf("  Ticks:    %d (journal: %d)\n", res.Ticks, run.TickCount)
	fmt.Println()

	if !ok {
		fmt.Println("  Replay DIVERGED from the journal.")
		os.Exit(2)
	}
	fmt.Println("  Replay matches the journal.")
}
