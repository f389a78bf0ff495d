// Package audio plays game sound cues through the system speaker.
// Failures never stop a game: a cue that cannot load or a speaker that
// cannot open is logged and becomes silent.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	minVolume = -6.0 // Below this the master is silenced
	maxVolume = 1.0

	toneAmp       = 0.25
	warningFreq   = 880.0
	warningLength = 180 * time.Millisecond
)

// Sink receives sound cues from the game loop.
type Sink interface {
	Play(s core.Sound)
	ToggleMusic()
	AdjustVolume(delta float64)
	Close()
}

// Nop is a Sink that discards everything.
type Nop struct{}

func (Nop) Play(core.Sound) {}

func (Nop) ToggleMusic() {}

func (Nop) AdjustVolume(float64) {}

func (Nop) Close() {}

// Options configures a Manager. Empty paths leave that cue silent.
type Options struct {
	MusicPath string // WAV, looped
	WinPath   string // WAV
	LosePath  string // OGG Vorbis
	Notes     []float64
	NoteMs    int64
	Muted     bool
	Disabled  bool // Skip the speaker entirely
}

// Manager is the beep-backed Sink.
type Manager struct {
	mu      sync.Mutex
	logger  *log.Logger
	enabled bool
	opts    Options

	mixer  *beep.Mixer
	master *effects.Volume

	music     *beep.Buffer
	musicCtrl *beep.Ctrl
	musicOff  bool // Toggled off by the player
	win       *beep.Buffer
	lose      *beep.Buffer
}

// New opens the speaker and loads the cue files. It always returns a
// usable Manager; errors are logged and leave the affected cue silent.
func New(opts Options, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	m := &Manager{
		logger: logger,
		opts:   opts,
		mixer:  &beep.Mixer{},
	}
	m.master = &effects.Volume{Streamer: m.mixer, Base: 2, Silent: opts.Muted}

	if opts.Disabled {
		return m
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio disabled", "err", err)
		return m
	}
	speaker.Play(m.master)
	m.enabled = true

	m.music = m.loadCue("music", opts.MusicPath)
	m.win = m.loadCue("win", opts.WinPath)
	m.lose = m.loadCue("lose", opts.LosePath)
	return m
}

func (m *Manager) loadCue(name, path string) *beep.Buffer {
	if path == "" {
		return nil
	}
	buf, err := LoadBuffer(path)
	if err != nil {
		m.logger.Warn("sound cue unavailable", "cue", name, "path", path, "err", err)
		return nil
	}
	m.logger.Debug("sound cue loaded", "cue", name, "path", path, "samples", buf.Len())
	return buf
}

// LoadBuffer decodes a WAV or OGG Vorbis file into memory at the speaker
// sample rate. The format is picked from the file extension.
func LoadBuffer(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("audio: %s: unsupported format", path)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	return buf, nil
}

// Play handles one cue. It never blocks on playback.
func (m *Manager) Play(s core.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled {
		return
	}

	switch s.Kind {
	case core.SoundMusic:
		m.startMusic()
	case core.SoundWin:
		m.stopMusic()
		m.playBuffer(m.win)
	case core.SoundLose:
		m.stopMusic()
		m.playBuffer(m.lose)
	case core.SoundWarning:
		m.add(NewTone(warningFreq, warningLength, WaveSquare, toneAmp/2, sampleRate))
		if sine, err := generators.SineTone(sampleRate, warningFreq/2); err == nil {
			m.add(beep.Take(sampleRate.N(warningLength), sine))
		}
	case core.SoundNote:
		if s.Note < 0 || s.Note >= len(m.opts.Notes) {
			return
		}
		d := time.Duration(m.opts.NoteMs) * time.Millisecond
		m.add(NewTone(m.opts.Notes[s.Note], d, WaveTriangle, toneAmp, sampleRate))
	}
}

func (m *Manager) add(s beep.Streamer) {
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

func (m *Manager) playBuffer(buf *beep.Buffer) {
	if buf == nil {
		return
	}
	m.add(buf.Streamer(0, buf.Len()))
}

// startMusic starts the loop from the top, unless the player muted it.
func (m *Manager) startMusic() {
	if m.music == nil || m.musicOff {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	if m.musicCtrl != nil {
		m.musicCtrl.Paused = true
	}
	m.musicCtrl = &beep.Ctrl{Streamer: beep.Loop(-1, m.music.Streamer(0, m.music.Len()))}
	m.mixer.Add(m.musicCtrl)
}

func (m *Manager) stopMusic() {
	if m.musicCtrl == nil {
		return
	}
	speaker.Lock()
	m.musicCtrl.Paused = true
	speaker.Unlock()
}

// ToggleMusic pauses or resumes the background loop.
func (m *Manager) ToggleMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.musicOff = !m.musicOff
	if !m.enabled || m.musicCtrl == nil {
		return
	}
	speaker.Lock()
	m.musicCtrl.Paused = m.musicOff
	speaker.Unlock()
}

// AdjustVolume moves the master volume by delta, in powers of two.
func (m *Manager) AdjustVolume(delta float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.enabled {
		speaker.Lock()
		defer speaker.Unlock()
	}
	v := m.master.Volume + delta
	if v > maxVolume {
		v = maxVolume
	}
	if v < minVolume {
		v = minVolume
	}
	m.master.Volume = v
	m.master.Silent = m.opts.Muted || v <= minVolume
}

// Volume returns the master volume and whether output is silenced.
func (m *Manager) Volume() (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.master.Volume, m.master.Silent
}

// MusicOn reports whether the player wants background music.
func (m *Manager) MusicOn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.musicOff
}

// Close stops all sounds.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled {
		return
	}
	speaker.Lock()
	if m.musicCtrl != nil {
		m.musicCtrl.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.enabled = false
}
