package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Left/A, Right/D   - Move
  Space             - Fire
  Enter             - Start / continue
  Ctrl+S            - Save a screenshot to ~/.invaders/screenshots
  Q/Ctrl+C          - Quit

Configuration is read from the first of:
  --config <path>, ~/.invaders/config.yaml, ./configs/invaders.yaml
falling back to the built-in defaults.

Examples:
  invaders play
  invaders play --fps 30
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one game with the global flags. It returns instead of exiting
// so the log file is closed on every path.
func play() error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.LoadInvaders(flagConfig)
	if err != nil {
		logger.Error("config load failed", "error", err)
		return err
	}
	logger.Info("config loaded", "source", source, "fps_limit", cfg.Timing.FPSLimit)

	// Get terminal size, the program adjusts on the first resize message
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}

	if err := tui.Run(cfg, rt, logger); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
