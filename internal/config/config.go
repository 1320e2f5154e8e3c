// Package config provides YAML-based game configuration loading and
// validation for Balloon Drive.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/balloon-drive/internal/core"
)

// Config contains all tunable parameters of the game and its hosts.
type Config struct {
	Viewport ViewportConfig  `yaml:"viewport"`
	Car      CarConfig       `yaml:"car"`
	Balloons []BalloonConfig `yaml:"balloons"`
	Loop     LoopConfig      `yaml:"loop"`
	Terminal TerminalConfig  `yaml:"terminal"`
}

// ViewportConfig is the logical play field size in game units.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CarConfig defines the player's car.
type CarConfig struct {
	StartX    float64 `yaml:"start_x"`
	MoveSpeed float64 `yaml:"move_speed"` // Units per tick while a key is held
}

// BalloonConfig defines one balloon present from game start.
type BalloonConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color"`
	Speed float64 `yaml:"speed"` // Units per tick, upward
}

// LoopConfig defines the fixed-timestep driver.
type LoopConfig struct {
	TickRate   int `yaml:"tick_rate"`    // Simulation ticks per second
	FrameCap   int `yaml:"frame_cap"`    // Max processed frames per second
	MaxCatchUp int `yaml:"max_catch_up"` // Step ceiling per frame, 0 = unbounded
}

// TerminalConfig defines the terminal and SSH hosts.
type TerminalConfig struct {
	HostRate  int `yaml:"host_rate"`   // Host callback rate per second
	KeyHoldMS int `yaml:"key_hold_ms"` // Silence after which a key counts as released
}

// Timestep returns the fixed simulation step in milliseconds.
func (c Config) Timestep() float64 {
	return 1000.0 / float64(c.Loop.TickRate)
}

// FrameGate returns the minimum time between processed frames in milliseconds.
func (c Config) FrameGate() float64 {
	return 1000.0 / float64(c.Loop.FrameCap)
}

// KeyHold returns how long a terminal key stays held without a repeat.
func (c Config) KeyHold() time.Duration {
	return time.Duration(c.Terminal.KeyHoldMS) * time.Millisecond
}

// Validate reports the first setting that would leave the game unplayable.
func (c Config) Validate() error {
	if err := c.checkFinite(); err != nil {
		return err
	}

	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("config: viewport must be positive, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	case c.Car.MoveSpeed < 0:
		return fmt.Errorf("config: car.move_speed must not be negative, got %g", c.Car.MoveSpeed)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("config: loop.tick_rate must be positive, got %d", c.Loop.TickRate)
	case c.Loop.FrameCap <= 0:
		return fmt.Errorf("config: loop.frame_cap must be positive, got %d", c.Loop.FrameCap)
	case c.Loop.MaxCatchUp < 0:
		return fmt.Errorf("config: loop.max_catch_up must not be negative, got %d", c.Loop.MaxCatchUp)
	case c.Terminal.HostRate <= 0:
		return fmt.Errorf("config: terminal.host_rate must be positive, got %d", c.Terminal.HostRate)
	case c.Terminal.KeyHoldMS < 0:
		return fmt.Errorf("config: terminal.key_hold_ms must not be negative, got %d", c.Terminal.KeyHoldMS)
	case len(c.Balloons) == 0:
		return fmt.Errorf("config: at least one balloon is required")
	}

	for i, b := range c.Balloons {
		if b.Speed <= 0 {
			return fmt.Errorf("config: balloons[%d].speed must be positive, got %g", i, b.Speed)
		}
		if _, err := core.ParseColor(b.Color); err != nil {
			return fmt.Errorf("config: balloons[%d]: %w", i, err)
		}
	}
	return nil
}

// numericField names a float setting for error messages.
type numericField struct {
	name  string
	value float64
}

// checkFinite rejects NaN and infinite positions, sizes and speeds. YAML
// accepts .nan and .inf, and either one stalls the simulation silently.
func (c Config) checkFinite() error {
	fields := []numericField{
		{"viewport.width", c.Viewport.Width},
		{"viewport.height", c.Viewport.Height},
		{"car.start_x", c.Car.StartX},
		{"car.move_speed", c.Car.MoveSpeed},
	}
	for i, b := range c.Balloons {
		fields = append(fields,
			numericField{fmt.Sprintf("balloons[%d].x", i), b.X},
			numericField{fmt.Sprintf("balloons[%d].y", i), b.Y},
			numericField{fmt.Sprintf("balloons[%d].speed", i), b.Speed},
		)
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("config: %s must be a finite number, got %g", f.name, f.value)
		}
	}
	return nil
}
