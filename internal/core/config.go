package core

// RuntimeConfig contains configuration passed to a game when it starts.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}

// GameState is the summary a game reports to the platform after each input.
type GameState struct {
	Score    int
	Moves    int
	GameOver bool
}
