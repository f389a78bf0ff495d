package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game from an interactive menu",
	Long: `Open the game picker. Finishing or quitting a game returns to it.

Keys:
  up/down, j/k   move
  enter          play
  tab            scoreboard (t switches scores and times)
  q              quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	f := menuCmd.Flags()
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for jumper: easy, normal, hard, fixed")
	f.BoolVar(&flagMute, "mute", false, "Start with sound muted")
	f.BoolVar(&flagNoAudio, "no-audio", false, "Do not open the audio device")
	f.StringVar(&flagMusic, "music", "~/.jumper/sounds/music.wav", "Background music loop (WAV)")
	f.StringVar(&flagWinSound, "win-sound", "~/.jumper/sounds/win.wav", "Level clear cue (WAV)")
	f.StringVar(&flagLoseSound, "lose-sound", "~/.jumper/sounds/lose.ogg", "Game over cue (OGG Vorbis)")
}

// runMenu alternates between the picker, the scoreboard and games until
// the player quits. A game that fails to start is logged and the menu
// comes back.
func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := newLogger(flagLogFile)
	defer closeLog()

	store := openStore(logger)
	defer closeStore(store)

	cfg := terminalConfig()
	for {
		choice, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = choice.Config

		switch {
		case choice.Quit, choice.GameID == "" && !choice.WantsScoreboard:
			return nil

		case choice.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			if err := prepareGame(choice.GameID); err != nil {
				logger.Error("game config rejected", "game", choice.GameID, "err", err)
				return err
			}
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := runGame(choice.GameID, cfg, logger, store); err != nil {
				logger.Error("game ended with error", "game", choice.GameID, "err", err)
			}
		}
	}
}
