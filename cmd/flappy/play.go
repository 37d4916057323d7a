package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/registry"
)

var (
	flagBackend     string
	flagNoSizeCheck bool
	flagNoJournal   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start Flappy Dragon in the local terminal.

Controls (default bindings, see config keys):
  Space      - Flap
  P          - Play (menu and end screen)
  Q          - Quit (menu and end screen)
  Ctrl+C     - Exit immediately

The terminal must be at least as large as the configured grid (80x50 by
default). Every finished run is journaled so it can be replayed later.

Examples:
  flappy play
  flappy play --backend tcell
  flappy play --seed 42 --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", "tui", "Frontend to play with (see 'flappy backends')")
	cmd.Flags().BoolVar(&flagNoSizeCheck, "no-size-check", false, "Start even if the terminal looks too small")
	cmd.Flags().BoolVar(&flagNoJournal, "no-journal", false, "Do not record runs")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("flappy", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if !registry.Exists(flagBackend) {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", flagBackend)
		fmt.Fprintln(os.Stderr, "Run 'flappy backends' to see available frontends.")
		os.Exit(1)
	}

	frontend, err := registry.Create(flagBackend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, store, err := newSession(logger, !flagNoJournal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if store != nil {
		defer store.Close()
	}

	if !flagNoSizeCheck {
		if err := checkTerminalSize(session.Config); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Resize the terminal or pass --no-size-check.")
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	logger.Info("starting game", "backend", frontend.ID(), "seed", flagSeed, "fps", session.Config.TickRate)
	if err := frontend.Run(ctx, session); err != nil {
		logger.Error("game failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// checkTerminalSize fails when stdout is a terminal smaller than the grid.
// Non-terminal output is not checked.
func checkTerminalSize(cfg config.Config) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return nil
	}
	if w < cfg.Window.Cols || h < cfg.Window.Rows {
		return fmt.Errorf("terminal is %dx%d, %s needs at least %dx%d",
			w, h, cfg.Window.Title, cfg.Window.Cols, cfg.Window.Rows)
	}
	return nil
}
