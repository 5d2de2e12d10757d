package core

// RuntimeConfig contains what a host tells a game session at creation.
// Window sizes are page pixels, the unit touch coordinates are reported in.
type RuntimeConfig struct {
	WindowW   float64 // Host window inner width
	WindowH   float64 // Host window inner height
	FrameRate int     // Frames per second the host schedules (default 60)
	Seed      int64   // RNG seed for deterministic apple placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WindowW:   375,
		WindowH:   667,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}
