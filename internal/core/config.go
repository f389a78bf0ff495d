package core

// RuntimeConfig is what the platform tells a game when a session starts.
type RuntimeConfig struct {
	ScreenW, ScreenH int   // terminal size in cells
	TickRate         int   // fixed simulation steps per second
	Seed             int64 // zero asks the platform to pick one from the clock
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the part of a game's state the platform acts on: it saves
// finished runs and shows the score.
type GameState struct {
	Score    int
	GameOver bool  // the run has ended, won or lost
	Won      bool  // the level was cleared
	Paused   bool
	FinishMs int64 // clear time of a won run
}

// Finished reports whether the run ended with something worth recording.
func (s GameState) Finished() bool {
	return s.GameOver && (s.Won || s.Score > 0)
}

// StepResult is what one tick of a game produces.
type StepResult struct {
	State  GameState
	Sounds []Sound // cues raised this tick, in order
}
