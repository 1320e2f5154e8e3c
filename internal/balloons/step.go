package balloons

// Step advances the world by one fixed tick.
//
// The car moves by its velocity, every balloon rises by its speed and wraps
// to the bottom once fully above the top edge, then each balloon touching
// the car is recycled and scores one point.
func (w *World) Step() {
	w.Car.X += w.Car.Velocity
	w.Car.WheelAngle += WheelSpeed

	recycleY := w.RecycleY()

	for i := range w.Balloons {
		b := &w.Balloons[i]
		b.Y -= b.Speed
		if b.Y+BalloonRadius < 0 {
			b.Y = recycleY
		}
	}

	for i := range w.Balloons {
		b := &w.Balloons[i]
		if Collides(w.Car.X, b.X, b.Y) {
			b.Y = recycleY
			w.Score++
		}
	}
}
