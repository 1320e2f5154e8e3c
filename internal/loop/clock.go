// Package loop drives a fixed-timestep simulation from a variable-rate host
// callback and hands the renderer an interpolation fraction.
package loop

import "math"

// DefaultTimestep is one simulation tick at 60 ticks per second, in ms.
const DefaultTimestep = 1000.0 / 60.0

// Simulation advances game state by exactly one fixed tick.
type Simulation interface {
	Step()
}

// Renderer draws a frame. alpha is the fraction in [0, 1) of a tick that
// has elapsed since the last simulated state.
type Renderer interface {
	Render(alpha float64)
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func(alpha float64)

// Render calls f(alpha).
func (f RenderFunc) Render(alpha float64) {
	f(alpha)
}

// FrameStats describes what a single Frame call did.
type FrameStats struct {
	Ran     bool    // False when the frame gate skipped this callback
	Steps   int     // Simulation steps executed
	Dropped int     // Steps discarded by the catch-up ceiling
	Alpha   float64 // Interpolation fraction handed to the renderer
}

// Clock is the fixed-timestep loop driver.
//
// Timestamps are milliseconds on a monotonic clock. The first processed
// frame measures elapsed time from timestamp 0, so hosts pass time since
// their own start.
type Clock struct {
	Timestep   float64 // Fixed simulation step, ms
	FrameGate  float64 // Minimum wall time between processed frames, ms
	MaxCatchUp int     // Step ceiling per frame; 0 means unbounded

	delta     float64 // Leftover time not yet simulated, ms
	lastFrame float64 // Timestamp of the last processed frame, ms
}

// NewClock creates a clock with the given step and gate, both in ms.
func NewClock(timestep, frameGate float64, maxCatchUp int) *Clock {
	return &Clock{
		Timestep:   timestep,
		FrameGate:  frameGate,
		MaxCatchUp: maxCatchUp,
	}
}

// Frame handles one host callback at the given timestamp.
//
// Frames arriving sooner than FrameGate after the last processed frame are
// skipped entirely. Otherwise elapsed time is accumulated and sim is stepped
// until less than one Timestep remains; r is then rendered with the
// remaining fraction. All steps of a frame happen before its render.
func (c *Clock) Frame(timestamp float64, sim Simulation, r Renderer) FrameStats {
	if c.Timestep <= 0 || timestamp < c.lastFrame+c.FrameGate {
		return FrameStats{}
	}

	c.delta += timestamp - c.lastFrame
	c.lastFrame = timestamp

	stats := FrameStats{Ran: true}
	for c.delta >= c.Timestep {
		if c.MaxCatchUp > 0 && stats.Steps >= c.MaxCatchUp {
			stats.Dropped = int(c.delta / c.Timestep)
			c.delta = math.Mod(c.delta, c.Timestep)
			break
		}
		sim.Step()
		c.delta -= c.Timestep
		stats.Steps++
	}

	stats.Alpha = c.Alpha()
	if r != nil {
		r.Render(stats.Alpha)
	}
	return stats
}

// Alpha returns the current interpolation fraction, delta / Timestep.
func (c *Clock) Alpha() float64 {
	if c.Timestep <= 0 {
		return 0
	}
	return c.delta / c.Timestep
}

// Reset forgets accumulated time and the last frame timestamp.
func (c *Clock) Reset() {
	c.delta = 0
	c.lastFrame = 0
}
