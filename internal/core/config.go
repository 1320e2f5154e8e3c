package core

// RuntimeConfig contains host parameters passed to a frontend at startup.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal) or pixels (window)
	ScreenH  int // Screen height in characters (terminal) or pixels (window)
	HostRate int // How often the host fires its per-frame callback, per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		HostRate: 120,
	}
}
