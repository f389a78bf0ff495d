// jumper is a terminal platformer with an always-reachable generated level,
// plus a small sound toy.
//
// Usage:
//
//	jumper list              - List available games
//	jumper play <game>       - Play a game
//	jumper menu              - Start menu to pick games interactively
//	jumper scores <game>     - Show high scores and best times for a game
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible levels
//	--db <path>        - Set database path (default: ~/.jumper/scores.db)
//	--log-file <path>  - Set log file (default: ~/.jumper/jumper.log)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tui-jumper/internal/games/beepy"
	_ "github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - a platformer in your terminal",
	Long: `Jumper is a terminal platformer. Every level is generated so that each
platform and coin can be reached with the jump you have.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores and best times

Examples:
  jumper list
  jumper play jumper
  jumper play jumper --difficulty hard --watch
  jumper play beepy
  jumper menu
  jumper scores jumper`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumper/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.jumper/jumper.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	// main reports errors itself.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger opens the log file. The terminal belongs to the TUI, so
// stderr is only used when the file cannot be opened. The returned
// function closes the file.
func newLogger(path string) (*log.Logger, func()) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "jumper",
	}
	if flagDebug {
		opts.Level = log.DebugLevel
	}

	f, err := openLogFile(path)
	if err != nil {
		logger := log.NewWithOptions(os.Stderr, opts)
		logger.Warn("logging to stderr", "path", path, "err", err)
		return logger, func() {}
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }
}

func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// terminalConfig sizes the runtime to the current terminal, falling back to
// 80x24 when stdout is not a terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without one, so a
// failure is only logged.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
