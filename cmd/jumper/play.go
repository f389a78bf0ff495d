package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/beepy"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagMusic      string
	flagWinSound   string
	flagLoseSound  string
	flagMute       bool
	flagNoAudio    bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (jumper):
  Left/Right, A/D   - Walk
  Space/W/Up        - Jump
  R                 - Regenerate the level
  Enter             - New run after a win or game over
  P                 - Pause
  M                 - Toggle music
  +/-               - Volume
  Q/Esc             - Quit

Controls (beepy):
  1..7              - Play a note

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  jumper play jumper
  jumper play jumper --difficulty hard
  jumper play jumper --config ./my-jumper.yaml --watch
  jumper play jumper --music ./loop.wav --lose-sound ./lose.ogg
  jumper play beepy`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().StringVar(&flagMusic, "music", "~/.jumper/sounds/music.wav", "Background music loop (WAV)")
	playCmd.Flags().StringVar(&flagWinSound, "win-sound", "~/.jumper/sounds/win.wav", "Level clear cue (WAV)")
	playCmd.Flags().StringVar(&flagLoseSound, "lose-sound", "~/.jumper/sounds/lose.ogg", "Game over cue (OGG Vorbis)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Do not open the audio device")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'jumper list' to see available games.")
		os.Exit(1)
	}

	if err := prepareGame(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(flagLogFile)
	defer closeLog()

	store := openStore(logger)
	defer closeStore(store)

	if err := runGame(gameID, terminalConfig(), logger, store); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeStore(store)
		closeLog()
		os.Exit(1)
	}
}

// prepareGame validates the config and difficulty flags and hands them to
// the game package. A config that fails validation stops here, before
// the terminal is taken over.
func prepareGame(gameID string) error {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	switch gameID {
	case "jumper":
		if _, err := config.LoadJumper(flagConfig); err != nil {
			return fmt.Errorf("jumper config: %w", err)
		}
		jumper.SetConfigPath(flagConfig)
		jumper.SetDifficultyPreset(flagDifficulty)
	case "beepy":
		if _, err := config.LoadBeepy(flagConfig); err != nil {
			return fmt.Errorf("beepy config: %w", err)
		}
		beepy.SetConfigPath(flagConfig)
	}
	return nil
}

// runGame wires audio and the config watcher around one game session.
func runGame(gameID string, cfg core.RuntimeConfig, logger *log.Logger, store *storage.Store) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	sink := newAudio(gameID, logger)
	defer sink.Close()

	var watcher *config.Watcher
	if flagWatch {
		watcher = newWatcher(gameID, logger)
		if watcher != nil {
			defer watcher.Close()
		}
	}

	logger.Info("session start", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)
	return tui.Run(game, cfg, tui.Options{
		Store:   store,
		Sink:    sink,
		Logger:  logger,
		Watcher: watcher,
	})
}

// newAudio opens the speaker. Note pitches come from the sound toy's
// config, which --config only names when the toy is the game being played.
func newAudio(gameID string, logger *log.Logger) *audio.Manager {
	beepyPath := ""
	if gameID == "beepy" {
		beepyPath = flagConfig
	}
	notes := config.DefaultBeepyConfig()
	if loaded, err := config.LoadBeepy(beepyPath); err == nil {
		notes = loaded
	}

	return audio.New(audio.Options{
		MusicPath: existingPath(flagMusic, logger),
		WinPath:   existingPath(flagWinSound, logger),
		LosePath:  existingPath(flagLoseSound, logger),
		Notes:     notes.Notes,
		NoteMs:    notes.NoteMs,
		Muted:     flagMute,
		Disabled:  flagNoAudio,
	}, logger)
}

// existingPath expands ~ and drops cue files that are not there, so the
// default locations stay quiet when unused.
func existingPath(path string, logger *log.Logger) string {
	expanded, err := expandHome(path)
	if err != nil || expanded == "" {
		return ""
	}
	if _, err := os.Stat(expanded); err != nil {
		logger.Debug("sound cue not found", "path", expanded)
		return ""
	}
	return expanded
}

func newWatcher(gameID string, logger *log.Logger) *config.Watcher {
	var files []string
	switch {
	case flagConfig != "":
		files = []string{flagConfig}
	case gameID == "beepy":
		files = config.SearchPaths(config.BeepyFile)
	default:
		files = config.SearchPaths(config.JumperFile)
	}

	w, err := config.NewWatcher(files...)
	if err != nil {
		logger.Warn("config watch disabled", "err", err)
		return nil
	}
	logger.Info("watching config", "files", files)
	return w
}
