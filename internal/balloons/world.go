// Package balloons implements Balloon Drive: a car steered left and right
// scores by touching balloons that rise from the bottom of the viewport.
package balloons

import (
	"github.com/vovakirdan/balloon-drive/internal/config"
	"github.com/vovakirdan/balloon-drive/internal/core"
)

// Geometry constants, in logical viewport units.
const (
	CarWidth      = 100.0
	CarHeight     = 40.0
	CarY          = 300.0 // Fixed vertical center of the car
	BalloonRadius = 30.0
	WheelSpeed    = 0.1 // Wheel rotation per tick, radians
)

// Car is the player's vehicle. It only moves horizontally.
type Car struct {
	X          float64 // Horizontal center
	Velocity   float64 // Units per tick, signed
	WheelAngle float64 // Cosmetic wheel rotation, radians
}

// Balloon rises at a constant speed and is recycled at the bottom.
type Balloon struct {
	X     float64
	Y     float64
	Color core.Color
	Speed float64 // Units per tick, upward
}

// Box returns the balloon's square collision box.
func (b Balloon) Box() core.Box {
	return core.BoxAround(b.X, b.Y, BalloonRadius, BalloonRadius)
}

// Viewport is the logical play field.
type Viewport struct {
	Width  float64
	Height float64
}

// World holds all mutable game state. A single goroutine owns it.
type World struct {
	Car      Car
	Balloons []Balloon
	Score    int
	Viewport Viewport
}

// NewWorld creates the starting state described by cfg.
// cfg is expected to have passed Validate; unknown colors fall back to the default.
func NewWorld(cfg config.Config) *World {
	w := &World{
		Car:      Car{X: cfg.Car.StartX},
		Balloons: make([]Balloon, 0, len(cfg.Balloons)),
		Viewport: Viewport{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height},
	}
	for _, b := range cfg.Balloons {
		color, _ := core.ParseColor(b.Color)
		w.Balloons = append(w.Balloons, Balloon{
			X:     b.X,
			Y:     b.Y,
			Color: color,
			Speed: b.Speed,
		})
	}
	return w
}

// RecycleY is where a balloon re-enters: just below the bottom edge.
func (w *World) RecycleY() float64 {
	return w.Viewport.Height + BalloonRadius
}

// CarRenderX returns the car position blended toward the next tick.
// Only the car is interpolated; balloons and score are drawn as simulated.
func (w *World) CarRenderX(alpha float64) float64 {
	return w.Car.X + w.Car.Velocity*alpha
}

// Clone returns a deep copy of the world.
func (w *World) Clone() *World {
	c := *w
	c.Balloons = append([]Balloon(nil), w.Balloons...)
	return &c
}
