// flappy is Flappy Dragon: guide a dragon through an endless cave of walls
// in your terminal.
//
// Usage:
//
//	flappy                   - Play (same as flappy play)
//	flappy play              - Play in the local terminal
//	flappy serve             - Start SSH server for remote play
//	flappy runs              - List journaled runs
//	flappy replay <id>       - Re-simulate a journaled run and check it
//	flappy backends          - List available frontends
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--config <path>     - Use a custom config YAML
//	--db <path>         - Set journal path (default: ~/.flappy-dragon/runs.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/flappy-dragon/internal/platform/tcellui"
	_ "github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
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
	Use:   "flappy",
	Short: "Flappy Dragon - flap through an endless cave in your terminal",
	Long: `Flappy Dragon is a terminal arcade game. Flap to stay in the air,
fly through the gaps in the walls and see how far you get.

Available commands:
  play      - Play in the local terminal (default)
  serve     - Start SSH server for remote play
  runs      - List journaled runs
  replay    - Re-simulate a journaled run
  backends  - List available frontends

Examples:
  flappy
  flappy play --backend tcell
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy runs --limit 5
  flappy replay 3`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy-dragon/runs.db", "Path to the run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(backendsCmd)
}
