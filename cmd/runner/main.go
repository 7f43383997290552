// runner is a terminal auto-running platformer: hold SPACE to charge a
// higher jump, clear the obstacles, survive as long as you can.
//
// Usage:
//
//	runner                  - Play (no arguments required)
//
// Flags:
//
//	--seed <value>   - RNG seed for obstacle placement (0 = time-based)
//	--config <path>  - Custom game config YAML
//	--mode <policy>  - Obstacle policy: random or pattern
//	--debug          - Write a debug log to ~/.runner/debug.log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	flagSeed   int64
	flagConfig string
	flagMode   string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Sky Runner - an auto-running platformer in your terminal",
	Long: `Sky Runner is a terminal auto-runner: you run at a fixed position
while the level scrolls toward you. Tap SPACE for a short hop, hold it for a
taller jump. Spikes, blocks, floaters, and platform gaps are all lethal.

Controls:
  Space/Up/W - Jump (hold for height)
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  runner
  runner --seed 12345
  runner --mode pattern
  runner --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagMode, "mode", "", "Obstacle policy: random or pattern")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.runner/debug.log")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Initial terminal size; Bubble Tea sends resize events after startup.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game.SetConfigPath(flagConfig)
	game.SetMode(flagMode)

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height - 1, // One line reserved for the help bar
		Seed:    flagSeed,
	}

	g := game.New()
	if err := tui.Run(g, cfg, logger); err != nil {
		return err
	}
	return nil
}

// newLogger builds the logger: a structured file logger when --debug is set,
// a discarding one otherwise. The TUI owns the terminal, so logs never go
// to stdout or stderr while the program runs.
func newLogger() (*log.Logger, func(), error) {
	if !flagDebug {
		return log.New(io.Discard), func() {}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".runner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open debug log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "runner",
	})
	return logger, func() { f.Close() }, nil
}
