package window

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/balloon-drive/internal/balloons"
)

const (
	treeBaseY      = 250
	wheelOffsetX   = 30
	wheelOffsetY   = 20
	wheelRadius    = 10
	spokeHalf      = 5
	lineWidth      = 2
	stringLength   = 50
	scoreX, scoreY = 20, 30
	scoreFontSize  = 20
)

var treeXs = []float32{100, 300, 500, 700}

// newScoreFace loads the font used for the score line.
func newScoreFace() (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    scoreFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// canvas draws a world into an ebiten image in logical pixels.
type canvas struct {
	dst   *ebiten.Image
	world *balloons.World
	face  font.Face
}

// Render implements loop.Renderer.
func (c canvas) Render(alpha float64) {
	c.dst.Fill(backgroundColor)

	for _, x := range treeXs {
		c.drawTree(x, treeBaseY)
	}
	c.drawCar(float32(c.world.CarRenderX(alpha)))
	for _, b := range c.world.Balloons {
		c.drawBalloon(b)
	}

	text.Draw(c.dst, fmt.Sprintf("Score: %d", c.world.Score), c.face, scoreX, scoreY, textColor)
}

func (c canvas) drawTree(x, baseY float32) {
	vector.DrawFilledRect(c.dst, x-10, baseY-150, 20, 150, trunkColor, false)
	vector.DrawFilledRect(c.dst, x-50, baseY-200, 30, 100, leafColor, false)
	vector.DrawFilledRect(c.dst, x-10, baseY-250, 30, 100, leafColor, false)
	vector.DrawFilledRect(c.dst, x+30, baseY-200, 30, 100, leafColor, false)
}

func (c canvas) drawCar(x float32) {
	const y = balloons.CarY
	vector.DrawFilledRect(c.dst, x-balloons.CarWidth/2, y-balloons.CarHeight/2,
		balloons.CarWidth, balloons.CarHeight, carBodyColor, false)
	vector.DrawFilledRect(c.dst, x-30, y-15, 40, 20, carWindowColor, false)

	angle := c.world.Car.WheelAngle
	c.drawWheel(x+wheelOffsetX, y+wheelOffsetY, angle)
	c.drawWheel(x-wheelOffsetX, y+wheelOffsetY, angle)
}

// drawWheel draws a black disc with a white cross rotated by angle.
func (c canvas) drawWheel(cx, cy float32, angle float64) {
	vector.DrawFilledCircle(c.dst, cx, cy, wheelRadius, wheelColor, true)
	for _, s := range wheelSpokes(angle) {
		vector.StrokeLine(c.dst, cx+s[0], cy+s[1], cx+s[2], cy+s[3], lineWidth, spokeColor, true)
	}
}

// wheelSpokes returns the two spoke segments, as x0, y0, x1, y1 offsets
// from the wheel center.
func wheelSpokes(angle float64) [2][4]float32 {
	dx := float32(math.Cos(angle) * spokeHalf)
	dy := float32(math.Sin(angle) * spokeHalf)
	return [2][4]float32{
		{-dx, -dy, dx, dy},
		{dy, -dx, -dy, dx},
	}
}

func (c canvas) drawBalloon(b balloons.Balloon) {
	x, y := float32(b.X), float32(b.Y)
	vector.StrokeLine(c.dst, x, y, x, y+stringLength, lineWidth, stringColor, true)
	vector.DrawFilledCircle(c.dst, x, y, balloons.BalloonRadius, rgba(b.Color), true)
}
