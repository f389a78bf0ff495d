package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Hold timings. Terminals only report key presses, so a held key is
// inferred from the auto-repeat stream.
const (
	holdFirstPress = 500 * time.Millisecond
	holdRepeat     = 150 * time.Millisecond
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "r":
		return core.ActionRegenerate, false
	case "enter":
		return core.ActionConfirm, false
	case "p":
		return core.ActionPause, false
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '7' {
		return core.NoteAction(int(key[0] - '1')), false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// PlatformKey is a key the runtime handles itself instead of passing it
// to the game.
type PlatformKey int

const (
	PlatformKeyNone PlatformKey = iota
	PlatformKeyMusic
	PlatformKeyVolumeUp
	PlatformKeyVolumeDown
	PlatformKeyScreenshot
)

// MapPlatformKey recognises the audio and screenshot keys.
func (km *KeyMapper) MapPlatformKey(msg tea.KeyMsg) PlatformKey {
	switch msg.String() {
	case "m":
		return PlatformKeyMusic
	case "+", "=":
		return PlatformKeyVolumeUp
	case "-", "_":
		return PlatformKeyVolumeDown
	case "ctrl+s":
		return PlatformKeyScreenshot
	}
	return PlatformKeyNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// HoldTracker turns key presses into held state. A first press holds for
// holdFirstPress; each repeat while held extends it to at least
// holdRepeat from now. Pressing a direction releases its opposite.
type HoldTracker struct {
	until    map[core.Action]time.Time
	opposite map[core.Action]core.Action
}

// NewHoldTracker tracks the walking directions.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{
		until: make(map[core.Action]time.Time),
		opposite: map[core.Action]core.Action{
			core.ActionLeft:  core.ActionRight,
			core.ActionRight: core.ActionLeft,
		},
	}
}

// Tracks reports whether a is a holdable action.
func (h *HoldTracker) Tracks(a core.Action) bool {
	_, ok := h.opposite[a]
	return ok
}

// Press records a key press at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !h.Tracks(a) {
		return
	}
	delete(h.until, h.opposite[a])

	if until, held := h.until[a]; held && now.Before(until) {
		if next := now.Add(holdRepeat); next.After(until) {
			h.until[a] = next
		}
		return
	}
	h.until[a] = now.Add(holdFirstPress)
}

// Held reports whether a counts as held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Apply marks every action still held at now on the frame and forgets
// expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.until {
		if !now.Before(until) {
			delete(h.until, a)
			continue
		}
		frame.Hold(a)
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	for a := range h.until {
		delete(h.until, a)
	}
}
