package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagByTime bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Print the leaderboard for a game",
	Long: `Print the best runs for a game. By default runs are ranked by score;
--times ranks cleared levels by completion time instead.

Examples:
  jumper scores jumper
  jumper scores jumper --times --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagByTime, "times", false, "Rank cleared levels by completion time")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	game, err := registry.Create(args[0])
	if err != nil {
		return fmt.Errorf("%w (see 'jumper list')", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	load, heading := store.TopScores, "High scores"
	if flagByTime {
		load, heading = store.BestTimes, "Best times"
	}
	entries, err := load(game.ID(), flagLimit)
	if err != nil {
		return err
	}

	cmd.Printf("%s: %s\n\n", heading, game.Title())
	if len(entries) == 0 {
		cmd.Printf("Nothing recorded yet. Run 'jumper play %s' to set the first one.\n", game.ID())
		return nil
	}

	cmd.Println(leaderboard(entries).Render())
	if stats, err := store.GetGameStats(game.ID()); err == nil {
		cmd.Println(statsSummary(stats))
	}
	return nil
}

func leaderboard(entries []storage.ScoreEntry) *table.Table {
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "SCORE", "TIME", "DATE").
		StyleFunc(func(_, _ int) lipgloss.Style { return cell })

	for i, e := range entries {
		took := "-"
		if e.Won {
			took = jumper.FormatDuration(e.FinishMs)
		}
		t.Row(strconv.Itoa(i+1), strconv.Itoa(e.Score), took, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return t
}

func statsSummary(s *storage.GameStats) string {
	line := fmt.Sprintf("Runs %d  Cleared %d  High %d", s.GamesCount, s.Wins, s.HighScore)
	if s.Wins > 0 {
		line += "  Fastest " + jumper.FormatDuration(s.BestTimeMs)
	}
	return line
}
