package balloons

import "testing"

func TestCollides(t *testing.T) {
	tests := []struct {
		name     string
		carX     float64
		bx, by   float64
		expected bool
	}{
		{"overlap on the right side", 0, 30, 300, true},
		{"far to the right", 0, 200, 300, false},
		{"centered on the car", 0, 0, 300, true},
		{"touching right edge", 0, 80, 300, false},
		{"just inside right edge", 0, 79.9, 300, true},
		{"touching left edge", 0, -80, 300, false},
		{"touching top edge", 0, 0, 250, false},
		{"just inside top edge", 0, 0, 250.1, true},
		{"touching bottom edge", 0, 0, 350, false},
		{"just inside bottom edge", 0, 0, 349.9, true},
		{"corner overlap", 100, 170, 340, true},
		{"corner touching", 100, 180, 350, false},
		{"disjoint by a pixel horizontally", 0, 81, 300, false},
		{"disjoint by a pixel vertically", 0, 0, 249, false},
		{"balloon below viewport", 150, 150, 630, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Collides(tc.carX, tc.bx, tc.by)
			if got != tc.expected {
				t.Errorf("Collides(%v, %v, %v) = %v, expected %v", tc.carX, tc.bx, tc.by, got, tc.expected)
			}
		})
	}
}

func TestCollisionBoxesSymmetric(t *testing.T) {
	positions := []struct{ carX, bx, by float64 }{
		{0, 30, 300},
		{0, 200, 300},
		{-40, -100, 290},
		{500, 560, 330},
		{500, 580, 330},
		{10, 10, 260},
	}

	for _, p := range positions {
		car := carBoxAt(p.carX)
		balloon := Balloon{X: p.bx, Y: p.by}.Box()
		if car.Intersects(balloon) != balloon.Intersects(car) {
			t.Errorf("overlap not symmetric for %+v", p)
		}
		if car.Intersects(balloon) != Collides(p.carX, p.bx, p.by) {
			t.Errorf("Collides disagrees with box overlap for %+v", p)
		}
	}
}
