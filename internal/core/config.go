package core

// RuntimeConfig carries the per-run parameters every game receives on Reset.
type RuntimeConfig struct {
	// ScreenW and ScreenH are the playfield dimensions in cells.
	ScreenW int
	ScreenH int

	// TickRate is the simulation rate in ticks per second.
	TickRate int

	// Seed drives all in-game randomness. Two runs with the same seed and
	// the same input sequence produce identical simulations.
	Seed int64
}

// GameState is the platform-visible portion of a game's state.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned from each simulation tick.
type StepResult struct {
	State GameState
}
