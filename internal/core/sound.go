package core

// SoundKind identifies an audio cue raised by a game.
// Games only name cues; the platform decides how (and whether) to play them.
type SoundKind int

const (
	SoundMusic   SoundKind = iota // Start or restart the background loop
	SoundWin                      // Run completed
	SoundLose                     // Run lost
	SoundWarning                  // Time is running out
	SoundNote                     // A note from the sound toy, see Sound.Note
)

// String returns the name of the sound kind.
func (k SoundKind) String() string {
	switch k {
	case SoundMusic:
		return "music"
	case SoundWin:
		return "win"
	case SoundLose:
		return "lose"
	case SoundWarning:
		return "warning"
	case SoundNote:
		return "note"
	default:
		return "unknown"
	}
}

// Sound is a single audio cue.
type Sound struct {
	Kind SoundKind
	Note int // Zero-based note index for SoundNote
}
