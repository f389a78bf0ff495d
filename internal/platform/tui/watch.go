package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// ConfigChangedMsg reports a rewritten config file.
type ConfigChangedMsg struct {
	Path string
}

// WatchErrorMsg carries a watcher failure. Watching continues.
type WatchErrorMsg struct {
	Err error
}

// waitForConfigChange blocks on the watcher until the next event. It
// returns nil once the watcher is closed, which ends the chain.
func waitForConfigChange(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return WatchErrorMsg{Err: err}
		}
	}
}
