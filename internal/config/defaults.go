package config

import (
	_ "embed"
)

//go:embed defaults/balloons.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
		},
		Car: CarConfig{
			StartX:    0,
			MoveSpeed: 5,
		},
		Balloons: []BalloonConfig{
			{X: 150, Y: 600, Color: "red", Speed: 0.7},
			{X: 350, Y: 600, Color: "blue", Speed: 0.9},
			{X: 550, Y: 600, Color: "green", Speed: 0.6},
			{X: 750, Y: 600, Color: "yellow", Speed: 0.8},
		},
		Loop: LoopConfig{
			TickRate:   60,
			FrameCap:   60,
			MaxCatchUp: 0,
		},
		Terminal: TerminalConfig{
			HostRate:  120,
			KeyHoldMS: 600,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
