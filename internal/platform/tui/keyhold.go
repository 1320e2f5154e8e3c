package tui

import (
	"time"

	"github.com/vovakirdan/balloon-drive/internal/core"
)

// KeyHold turns terminal key presses into press/release pairs.
//
// Terminals report only presses, repeated while a key is held. A direction
// counts as held until no repeat has arrived for the hold duration. Only one
// direction is held at a time: pressing the other one releases it first.
type KeyHold struct {
	hold  time.Duration
	held  core.Direction
	until time.Time
}

// NewKeyHold creates a tracker with the given hold duration.
func NewKeyHold(hold time.Duration) *KeyHold {
	return &KeyHold{hold: hold}
}

// Press records a press or auto-repeat of dir at now and returns the
// events to apply, in order.
func (k *KeyHold) Press(dir core.Direction, now time.Time) []core.KeyEvent {
	if dir != core.DirLeft && dir != core.DirRight {
		return nil
	}

	var events []core.KeyEvent
	if k.held == dir.Opposite() {
		events = append(events, core.Release(k.held))
	}
	k.held = dir
	k.until = now.Add(k.hold)
	return append(events, core.Press(dir))
}

// Expire releases the held direction once its hold has run out.
func (k *KeyHold) Expire(now time.Time) []core.KeyEvent {
	if k.held == core.DirNone || now.Before(k.until) {
		return nil
	}
	dir := k.held
	k.held = core.DirNone
	return []core.KeyEvent{core.Release(dir)}
}

// Held returns the direction currently considered held.
func (k *KeyHold) Held() core.Direction {
	return k.held
}
