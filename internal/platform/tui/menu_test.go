package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

func testMenu(items ...MenuItem) MenuModel {
	return MenuModel{
		items:     items,
		config:    core.RuntimeConfig{ScreenW: 60, ScreenH: 20},
		keyMapper: NewKeyMapper(),
	}
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestMenuCursorWraps(t *testing.T) {
	m := testMenu(MenuItem{GameID: "beepy"}, MenuItem{GameID: "jumper"})

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 1 {
		t.Errorf("up from top: cursor = %d, want 1", m.cursor)
	}
	m, _ = menuUpdate(t, m, runeKey('j'))
	if m.cursor != 0 {
		t.Errorf("down from bottom: cursor = %d, want 0", m.cursor)
	}
}

func TestMenuResults(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuResult
	}{
		{"select", tea.KeyMsg{Type: tea.KeyEnter}, MenuResult{GameID: "jumper"}},
		{"scores", tea.KeyMsg{Type: tea.KeyTab}, MenuResult{WantsScoreboard: true}},
		{"quit", runeKey('q'), MenuResult{Quit: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMenu(MenuItem{GameID: "beepy"}, MenuItem{GameID: "jumper"})
			m.cursor = 1
			m, cmd := menuUpdate(t, m, tt.msg)
			if cmd == nil {
				t.Fatal("choice should end the program")
			}
			got := m.result()
			tt.want.Config = m.config
			if got != tt.want {
				t.Errorf("result = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMenuSelectWithoutGames(t *testing.T) {
	m, cmd := menuUpdate(t, testMenu(), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.choice != menuOpen {
		t.Error("enter on an empty menu should do nothing")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m, _ := menuUpdate(t, testMenu(), tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.result().Config.ScreenW != 120 || m.result().Config.ScreenH != 40 {
		t.Errorf("config = %+v", m.config)
	}
}

func TestMenuViewShowsRecord(t *testing.T) {
	m := testMenu(MenuItem{GameID: "jumper", Title: "Jumper", Summary: "coins", Best: "best 0:42.1"})
	view := m.View()
	for _, want := range []string{"Jumper", "best 0:42.1", "coins"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBestLabel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if got := bestLabel(store, "jumper"); got != "" {
		t.Errorf("no runs: %q", got)
	}
	if _, err := store.SaveRun(storage.Run{GameID: "jumper", Score: 90}); err != nil {
		t.Fatal(err)
	}
	if got := bestLabel(store, "jumper"); got != "high 90" {
		t.Errorf("lost runs only: %q", got)
	}
	if _, err := store.SaveRun(storage.Run{GameID: "jumper", Score: 40, Won: true, FinishMs: 42100}); err != nil {
		t.Fatal(err)
	}
	if got := bestLabel(store, "jumper"); got != "best 0:42.1" {
		t.Errorf("with a clear: %q", got)
	}
	if got := bestLabel(nil, "jumper"); got != "" {
		t.Errorf("nil store: %q", got)
	}
}

func TestStatsLine(t *testing.T) {
	if statsLine(nil) != "" || statsLine(&storage.GameStats{}) != "" {
		t.Error("empty stats should render nothing")
	}
	got := statsLine(&storage.GameStats{GamesCount: 3, Wins: 2, AvgScore: 200, BestTimeMs: 40000})
	want := "3 runs · 2 cleared · avg 200 · best 0:40.0"
	if got != want {
		t.Errorf("statsLine = %q, want %q", got, want)
	}
}
