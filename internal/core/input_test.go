package core

import "testing"

func TestDirection(t *testing.T) {
	tests := []struct {
		dir      Direction
		name     string
		opposite Direction
		sign     float64
	}{
		{DirLeft, "Left", DirRight, -1},
		{DirRight, "Right", DirLeft, 1},
		{DirNone, "None", DirNone, 0},
		{Direction(42), "Unknown", DirNone, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.dir.String(); got != tc.name {
				t.Errorf("String() = %q, expected %q", got, tc.name)
			}
			if got := tc.dir.Opposite(); got != tc.opposite {
				t.Errorf("Opposite() = %v, expected %v", got, tc.opposite)
			}
			if got := tc.dir.Sign(); got != tc.sign {
				t.Errorf("Sign() = %v, expected %v", got, tc.sign)
			}
		})
	}
}

func TestKeyEventConstructors(t *testing.T) {
	if ev := Press(DirLeft); ev.Dir != DirLeft || ev.Edge != KeyPressed {
		t.Errorf("Press(DirLeft) = %+v", ev)
	}
	if ev := Release(DirRight); ev.Dir != DirRight || ev.Edge != KeyReleased {
		t.Errorf("Release(DirRight) = %+v", ev)
	}
}
