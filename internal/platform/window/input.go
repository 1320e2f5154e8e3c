package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/balloon-drive/internal/core"
)

// keyBinding ties a physical key to a car direction.
type keyBinding struct {
	key ebiten.Key
	dir core.Direction
}

var directionKeys = []keyBinding{
	{ebiten.KeyArrowLeft, core.DirLeft},
	{ebiten.KeyA, core.DirLeft},
	{ebiten.KeyArrowRight, core.DirRight},
	{ebiten.KeyD, core.DirRight},
}

// keyEvents collects this tick's direction key edges. Releases come first,
// so letting go of one arrow and pressing the other in the same tick ends
// with the car moving.
func keyEvents(justPressed, justReleased func(ebiten.Key) bool) []core.KeyEvent {
	var events []core.KeyEvent
	for _, b := range directionKeys {
		if justReleased(b.key) {
			events = append(events, core.Release(b.dir))
		}
	}
	for _, b := range directionKeys {
		if justPressed(b.key) {
			events = append(events, core.Press(b.dir))
		}
	}
	return events
}

var quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

func quitRequested(justPressed func(ebiten.Key) bool) bool {
	for _, k := range quitKeys {
		if justPressed(k) {
			return true
		}
	}
	return false
}
