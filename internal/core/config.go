package core

// RuntimeConfig holds the terminal and timing settings a board view starts with.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	HopRate int   // Path replay hops per second
	Seed    int64 // Dice seed; 0 means pick one at startup
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		HopRate: 8,
	}
}
