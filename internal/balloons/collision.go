package balloons

import "github.com/vovakirdan/balloon-drive/internal/core"

// carBoxAt returns the car's bounding box for a given horizontal center.
func carBoxAt(x float64) core.Box {
	return core.BoxAround(x, CarY, CarWidth/2, CarHeight/2)
}

// Collides reports whether the car centered at carX overlaps the balloon
// centered at (balloonX, balloonY). Balloons are tested as squares of side
// 2*BalloonRadius and touching edges do not count.
func Collides(carX, balloonX, balloonY float64) bool {
	balloon := Balloon{X: balloonX, Y: balloonY}
	return carBoxAt(carX).Intersects(balloon.Box())
}
