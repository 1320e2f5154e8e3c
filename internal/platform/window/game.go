// Package window hosts Balloon Drive in a desktop window through Ebitengine.
// Key releases are real here, so input maps one to one onto game events.
package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"github.com/vovakirdan/balloon-drive/internal/balloons"
)

// Host adapts a balloons.Game to ebiten.Game.
// The game clock runs from Draw, which ebiten calls once per display frame.
type Host struct {
	game   *balloons.Game
	face   font.Face
	logger *log.Logger
	start  time.Time
}

// New creates a window host for game. A nil logger discards log output.
func New(game *balloons.Game, logger *log.Logger) (*Host, error) {
	face, err := newScoreFace()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		game:   game,
		face:   face,
		logger: logger,
		start:  time.Now(),
	}, nil
}

// Update polls the keyboard. It runs at ebiten's fixed TPS.
func (h *Host) Update() error {
	if quitRequested(inpututil.IsKeyJustPressed) {
		return ebiten.Termination
	}
	for _, ev := range keyEvents(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased) {
		h.game.HandleKey(ev)
	}
	return nil
}

// Draw is the host frame callback. When the clock skips a frame the
// previous picture stays on screen, since screen clearing is disabled.
func (h *Host) Draw(screen *ebiten.Image) {
	ms := float64(time.Since(h.start)) / float64(time.Millisecond)
	stats := h.game.Frame(ms, canvas{dst: screen, world: h.game.World(), face: h.face})
	if stats.Dropped > 0 {
		h.logger.Warn("simulation fell behind", "steps", stats.Steps, "dropped", stats.Dropped)
	}
}

// Layout keeps the logical viewport regardless of the window size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := h.game.World().Viewport
	return int(vp.Width), int(vp.Height)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *balloons.Game, logger *log.Logger) error {
	host, err := New(game, logger)
	if err != nil {
		return err
	}

	vp := game.World().Viewport
	ebiten.SetWindowSize(int(vp.Width), int(vp.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	host.logger.Info("window opened", "width", vp.Width, "height", vp.Height)
	return ebiten.RunGame(host)
}
