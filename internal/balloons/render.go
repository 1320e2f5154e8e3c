package balloons

import (
	"fmt"
	"math"

	"github.com/vovakirdan/balloon-drive/internal/core"
)

// Visual characters for terminal rendering
const (
	CarBodyChar   = '█'
	CarWindowChar = '▒'
	BalloonChar   = '●'
	StringChar    = '│'
	TrunkChar     = '█'
	LeafChar      = '▓'
)

// wheelFrames are drawn in turn as the wheel angle advances by 45 degrees.
var wheelFrames = []rune{'|', '/', '-', '\\'}

// Decoration layout, in logical units.
var treeXs = []float64{100, 300, 500, 700}

const (
	treeBaseY    = 250.0
	stringLength = 50.0
	wheelOffsetX = 30.0
	wheelOffsetY = 20.0
)

// ScreenRenderer draws a world into a terminal screen buffer.
type ScreenRenderer struct {
	World  *World
	Screen *core.Screen
}

// Render draws the world with the car blended alpha of a tick ahead.
func (r ScreenRenderer) Render(alpha float64) {
	r.World.Draw(r.Screen, alpha)
}

// cellMapper converts logical viewport coordinates to screen cells.
type cellMapper struct {
	sx, sy float64
}

func newCellMapper(vp Viewport, dst *core.Screen) cellMapper {
	return cellMapper{
		sx: float64(dst.Width()) / vp.Width,
		sy: float64(dst.Height()) / vp.Height,
	}
}

func (m cellMapper) col(x float64) int {
	return int(math.Floor(x * m.sx))
}

func (m cellMapper) row(y float64) int {
	return int(math.Floor(y * m.sy))
}

// fill paints the logical rectangle [x0, x1) x [y0, y1), at least one cell.
func (m cellMapper) fill(dst *core.Screen, x0, y0, x1, y1 float64, r rune, c core.Color) {
	cx0, cy0 := m.col(x0), m.row(y0)
	cx1, cy1 := core.Max(m.col(x1), cx0+1), core.Max(m.row(y1), cy0+1)
	dst.FillBox(cx0, cy0, cx1, cy1, r, c)
}

// Draw renders the world into dst. The screen is cleared first.
func (w *World) Draw(dst *core.Screen, alpha float64) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	m := newCellMapper(w.Viewport, dst)

	for _, x := range treeXs {
		drawTree(dst, m, x, treeBaseY)
	}

	w.drawCar(dst, m, w.CarRenderX(alpha))

	for _, b := range w.Balloons {
		drawBalloon(dst, m, b)
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", w.Score))
}

// drawTree draws a trunk with three leafy branches.
func drawTree(dst *core.Screen, m cellMapper, x, baseY float64) {
	m.fill(dst, x-10, baseY-150, x+10, baseY, TrunkChar, core.ColorBrown)

	m.fill(dst, x-50, baseY-200, x-20, baseY-100, LeafChar, core.ColorGreen)
	m.fill(dst, x-10, baseY-250, x+20, baseY-150, LeafChar, core.ColorGreen)
	m.fill(dst, x+30, baseY-200, x+60, baseY-100, LeafChar, core.ColorGreen)
}

func (w *World) drawCar(dst *core.Screen, m cellMapper, x float64) {
	body := carBoxAt(x)
	m.fill(dst, body.Left(), body.Top(), body.Right(), body.Bottom(), CarBodyChar, core.ColorBlue)
	m.fill(dst, x-30, CarY-15, x+10, CarY+5, CarWindowChar, core.ColorBrightBlue)

	frame := int(math.Floor(w.Car.WheelAngle/(math.Pi/4))) % len(wheelFrames)
	if frame < 0 {
		frame += len(wheelFrames)
	}
	wheel := wheelFrames[frame]
	wy := m.row(CarY + wheelOffsetY)
	dst.SetWithColor(m.col(x-wheelOffsetX), wy, wheel, core.ColorBrightWhite)
	dst.SetWithColor(m.col(x+wheelOffsetX), wy, wheel, core.ColorBrightWhite)
}

// drawBalloon draws the string first so the balloon body covers its top.
func drawBalloon(dst *core.Screen, m cellMapper, b Balloon) {
	sx := m.col(b.X)
	sy0, sy1 := m.row(b.Y), m.row(b.Y+stringLength)
	dst.DrawVLine(sx, sy0, core.Max(sy1-sy0+1, 1), StringChar, core.ColorGray)

	box := b.Box()
	drawn := false
	for cy := m.row(box.Top()); cy <= m.row(box.Bottom()); cy++ {
		for cx := m.col(box.Left()); cx <= m.col(box.Right()); cx++ {
			// Test the cell center against the circle in logical units.
			lx := (float64(cx) + 0.5) / m.sx
			ly := (float64(cy) + 0.5) / m.sy
			if math.Hypot(lx-b.X, ly-b.Y) <= BalloonRadius {
				dst.SetWithColor(cx, cy, BalloonChar, b.Color)
				drawn = true
			}
		}
	}
	if !drawn {
		dst.SetWithColor(sx, m.row(b.Y), BalloonChar, b.Color)
	}
}
