package core

// Direction is a logical steering direction, abstracted from physical keys.
// Platforms map arrows, A/D and similar keys onto it.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the other steering direction, or DirNone.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Sign returns -1 for left, +1 for right and 0 otherwise.
func (d Direction) Sign() float64 {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		return 0
	}
}

// KeyEdge tells whether a direction key was engaged or released.
type KeyEdge int

const (
	KeyPressed KeyEdge = iota
	KeyReleased
)

// KeyEvent is one direction-key-down or direction-key-up signal.
type KeyEvent struct {
	Dir  Direction
	Edge KeyEdge
}

// Press returns a key-down event for d.
func Press(d Direction) KeyEvent {
	return KeyEvent{Dir: d, Edge: KeyPressed}
}

// Release returns a key-up event for d.
func Release(d Direction) KeyEvent {
	return KeyEvent{Dir: d, Edge: KeyReleased}
}
