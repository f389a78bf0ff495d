package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// MenuItem is one entry in the game picker.
type MenuItem struct {
	GameID  string
	Title   string
	Summary string
	Best    string // empty when the game has no recorded runs
}

// menuChoice is how the picker was left.
type menuChoice int

const (
	menuOpen menuChoice = iota
	menuPlay
	menuScores
	menuQuit
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)
	menuItemStyle   = lipgloss.NewStyle().PaddingLeft(2)
	menuActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			SetString("▸ ")
	menuDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the game picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    menuChoice
}

// NewMenuModel lists every registered game with its stored record.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		items = append(items, MenuItem{
			GameID:  g.ID,
			Title:   g.Title,
			Summary: g.Summary,
			Best:    bestLabel(store, g.ID),
		})
	}
	return MenuModel{items: items, config: cfg, keyMapper: NewKeyMapper()}
}

func (m MenuModel) Init() tea.Cmd { return nil }

// Update moves the cursor and leaves the program once a choice is made.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.move(-1)
		case MenuActionDown:
			m.move(1)
		case MenuActionSelect:
			if len(m.items) > 0 {
				m.choice = menuPlay
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.choice = menuScores
			return m, tea.Quit
		case MenuActionQuit, MenuActionBack:
			m.choice = menuQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

// move shifts the cursor by d, wrapping at both ends.
func (m *MenuModel) move(d int) {
	if n := len(m.items); n > 0 {
		m.cursor = ((m.cursor+d)%n + n) % n
	}
}

// View draws the picker centred in the terminal.
func (m MenuModel) View() string {
	if m.choice == menuQuit {
		return ""
	}

	lines := []string{menuTitleStyle.Render("J U M P E R"), ""}
	for i, it := range m.items {
		label := it.Title
		if it.Best != "" {
			label += menuDimStyle.Render(fmt.Sprintf("  %s", it.Best))
		}
		if i == m.cursor {
			lines = append(lines, menuActiveStyle.Render(label))
			if it.Summary != "" {
				lines = append(lines, menuDimStyle.PaddingLeft(4).Render(it.Summary))
			}
			continue
		}
		lines = append(lines, menuItemStyle.Render(label))
	}
	if len(m.items) == 0 {
		lines = append(lines, menuDimStyle.Render("no games registered"))
	}
	lines = append(lines, "", menuDimStyle.Render("↑/↓ move · enter play · tab scores · q quit"))

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// bestLabel summarises the stored record for a game: the fastest clear
// when there is one, otherwise the high score.
func bestLabel(store *storage.Store, gameID string) string {
	if store == nil {
		return ""
	}
	if ms, ok, err := store.BestTime(gameID); err == nil && ok {
		return "best " + formatMs(ms)
	}
	if high, err := store.HighScore(gameID); err == nil && high > 0 {
		return fmt.Sprintf("high %d", high)
	}
	return ""
}

// MenuResult is what the picker hands back to the command loop.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.config}
	switch m.choice {
	case menuPlay:
		res.GameID = m.items[m.cursor].GameID
	case menuScores:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res
}

// RunMenu shows the picker until the player chooses something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
