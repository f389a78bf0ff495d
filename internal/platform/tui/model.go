package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

const (
	volumeStep     = 0.5
	statusDuration = 2 * time.Second
)

// Options carries the optional services a game session uses. Every field
// may be left zero.
type Options struct {
	Store   *storage.Store
	Sink    audio.Sink
	Logger  *log.Logger
	Watcher *config.Watcher
}

// statusReporter is implemented by sinks that can describe their state.
type statusReporter interface {
	Volume() (float64, bool)
	MusicOn() bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	sink        audio.Sink
	logger      *log.Logger
	watcher     *config.Watcher
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	keyMapper   *KeyMapper
	holds       *HoldTracker
	clock       func() time.Time
	gameState   core.GameState
	status      string
	statusUntil time.Time
	quitting    bool
	runSaved    bool // Whether the current finished run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	sink := opts.Sink
	if sink == nil {
		sink = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		sink:       sink,
		logger:     logger,
		watcher:    opts.Watcher,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(),
		clock:      time.Now,
	}
}

// Init starts the game, the tick loop and, when watching, the config
// listener.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfigChange(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigChangedMsg:
		m.reload(msg.Path)
		return m, waitForConfigChange(m.watcher)

	case WatchErrorMsg:
		m.logger.Warn("config watcher", "err", msg.Err)
		return m, waitForConfigChange(m.watcher)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapPlatformKey(msg) {
	case PlatformKeyMusic:
		m.sink.ToggleMusic()
		m.showAudioStatus()
		return m, nil
	case PlatformKeyVolumeUp:
		m.sink.AdjustVolume(volumeStep)
		m.showAudioStatus()
		return m, nil
	case PlatformKeyVolumeDown:
		m.sink.AdjustVolume(-volumeStep)
		m.showAudioStatus()
		return m, nil
	case PlatformKeyScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	if m.holds.Tracks(action) {
		m.holds.Press(action, m.clock())
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize only resizes the buffer. Games scale to whatever screen
// they are given, so the running level survives.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.holds.Apply(&m.inputFrame, m.clock())

	result := m.game.Step(m.inputFrame)
	for _, s := range result.Sounds {
		m.sink.Play(s)
	}
	m.gameState = result.State

	if m.gameState.GameOver {
		if !m.runSaved {
			m.saveRun()
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) saveRun() {
	if m.store == nil || !m.gameState.Finished() {
		return
	}
	run := storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Won:      m.gameState.Won,
		FinishMs: m.gameState.FinishMs,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("save run", "game", run.GameID, "err", err)
		return
	}
	m.logger.Info("run recorded", "game", run.GameID, "score", run.Score, "won", run.Won, "finish_ms", run.FinishMs)
}

func (m *Model) reload(path string) {
	r, ok := m.game.(registry.Reloader)
	if !ok {
		return
	}
	if err := r.Reload(); err != nil {
		m.logger.Warn("config reload rejected", "path", path, "err", err)
		return
	}
	m.logger.Info("config reloaded", "path", path)
}

func (m *Model) showAudioStatus() {
	rep, ok := m.sink.(statusReporter)
	if !ok {
		return
	}
	volume, silent := rep.Volume()
	m.status = audioStatus(rep.MusicOn(), volume, silent)
	m.statusUntil = m.clock().Add(statusDuration)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".jumper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && m.clock().Before(m.statusUntil) {
		m.screen.DrawTextColored(0, m.screen.Height()-1, m.status, core.ColorBrightYellow)
	}
	return RenderScreen(m.screen)
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for one game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
