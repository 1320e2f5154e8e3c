package balloons

import "github.com/vovakirdan/balloon-drive/internal/core"

// DefaultMoveSpeed is the car speed while a direction key is held, per tick.
const DefaultMoveSpeed = 5.0

// Controls maps direction keys onto the car's velocity.
//
// There is no per-key state: the last event wins, and releasing either
// direction stops the car even if the other one is still held.
type Controls struct {
	car       *Car
	moveSpeed float64
}

// NewControls binds controls to a car.
func NewControls(car *Car, moveSpeed float64) Controls {
	return Controls{car: car, moveSpeed: moveSpeed}
}

// KeyDown engages a direction.
func (c Controls) KeyDown(dir core.Direction) {
	if dir != core.DirLeft && dir != core.DirRight {
		return
	}
	c.car.Velocity = dir.Sign() * c.moveSpeed
}

// KeyUp releases a direction.
func (c Controls) KeyUp(dir core.Direction) {
	if dir != core.DirLeft && dir != core.DirRight {
		return
	}
	c.car.Velocity = 0
}

// Handle applies a key event.
func (c Controls) Handle(ev core.KeyEvent) {
	switch ev.Edge {
	case core.KeyPressed:
		c.KeyDown(ev.Dir)
	case core.KeyReleased:
		c.KeyUp(ev.Dir)
	}
}
