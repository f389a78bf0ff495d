package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

const scoreboardRows = 100

// ranking selects which leaderboard the scoreboard shows.
type ranking int

const (
	byScore ranking = iota
	byTime
)

func (r ranking) String() string {
	if r == byTime {
		return "BEST TIMES"
	}
	return "HIGH SCORES"
}

func (r ranking) empty() string {
	if r == byTime {
		return "No cleared levels yet.\nCollect every coin to set a time."
	}
	return "No runs recorded yet.\nPlay a round to set a score."
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = boardTabStyle.Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Ranking key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Ranking, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Prev}}
}

// DefaultScoreboardKeyMap returns the default bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll:  key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Ranking: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "scores/times")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows stored runs for one game at a time.
type ScoreboardModel struct {
	games   []registry.GameInfo
	current int
	rank    ranking
	store   *storage.Store
	entries []storage.ScoreEntry
	stats   *storage.GameStats
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int
	back    bool
	done    bool
}

// NewScoreboardModel opens on the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = newBoardTable(width, height)
	m.reload()
	return m
}

func newBoardTable(width, height int) table.Model {
	dateW := min(max(width-40, 12), 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Time", Width: 8},
			{Title: "When", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].ID
}

// reload refreshes the rows and stats for the current game and ranking.
// A failing store shows as an empty board.
func (m *ScoreboardModel) reload() {
	m.entries, m.stats = nil, nil
	if id := m.gameID(); m.store != nil && id != "" {
		load := m.store.TopScores
		if m.rank == byTime {
			load = m.store.BestTimes
		}
		if entries, err := load(id, scoreboardRows); err == nil {
			m.entries = entries
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.entries))
	for i, e := range m.entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			runTime(e),
			e.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycle(d int) {
	if n := len(m.games); n > 0 {
		m.current = ((m.current+d)%n + n) % n
		m.reload()
	}
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

// Update handles navigation between games, rankings and rows.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newBoardTable(m.width, m.height)
		m.reload()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.done, m.back = true, true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Ranking):
			m.rank = 1 - m.rank
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the tabs, the table and a summary of the game's history.
func (m ScoreboardModel) View() string {
	if m.done {
		return ""
	}

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		style := boardTabStyle
		if i == m.current {
			style = boardActiveTab
		}
		tabs[i] = style.Render(g.Title)
	}

	body := boardDimStyle.Italic(true).Padding(1, 2).Render(m.rank.empty())
	if len(m.entries) > 0 {
		body = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		boardTitleStyle.Render(m.rank.String()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		boardFrameStyle.Render(body),
		boardDimStyle.Render(statsLine(m.stats)),
		"",
		m.help.View(m.keys),
	)
}

// statsLine summarises a game's history under the table.
func statsLine(s *storage.GameStats) string {
	if s == nil || s.GamesCount == 0 {
		return ""
	}
	parts := []string{
		fmt.Sprintf("%d runs", s.GamesCount),
		fmt.Sprintf("%d cleared", s.Wins),
		fmt.Sprintf("avg %.0f", s.AvgScore),
	}
	if s.BestTimeMs > 0 {
		parts = append(parts, "best "+formatMs(s.BestTimeMs))
	}
	return strings.Join(parts, " · ")
}

// runTime is the Time column: completion time for won runs.
func runTime(e storage.ScoreEntry) string {
	if !e.Won {
		return "-"
	}
	return formatMs(e.FinishMs)
}

// formatMs renders a duration as m:ss.t.
func formatMs(ms int64) string {
	tenths := max(ms, 0) / 100
	return fmt.Sprintf("%d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}

// RunScoreboard shows the scoreboard. goBack is true when the player asked
// to return to the menu rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.back, nil
}
