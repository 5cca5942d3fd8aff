//go:build ebiten

package app

import (
	"paint-canvas/internal/canvas"
	"paint-canvas/internal/render"
	"paint-canvas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

// Game adapts a paint canvas to the ebiten.Game interface.
type Game struct {
	canvas  *canvas.Canvas
	painter *render.FramePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     logrus.FieldLogger

	size int

	// Only one pointer paints at a time.
	touchID   ebiten.TouchID
	touching  bool
	mouseDown bool
}

// New constructs a Game for the session.
func New(s *Session, cfg *Config, log logrus.FieldLogger) *Game {
	return &Game{
		canvas:  s.Canvas,
		painter: render.NewFramePainter(s.Renderer),
		hud:     ui.NewHUD(s.Canvas, s.Score, cfg.HUDWidth),
		overlay: ui.NewOverlay(s.Canvas),
		log:     log,
		size:    cfg.Size,
	}
}

// Update applies finished image loads and routes input to the canvas.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.canvas.Pump()
	g.overlay.Update()
	g.hud.Update(g.size)

	if (g.touching || g.mouseDown) && !ebiten.IsFocused() {
		g.touching, g.mouseDown = false, false
		g.canvas.TouchCancel()
		return nil
	}
	if !g.mouseDown {
		g.handleTouch()
	}
	if !g.touching {
		g.handleMouse()
	}
	return nil
}

func (g *Game) handleTouch() {
	if g.touching {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.touching = false
			g.canvas.TouchEnd()
			return
		}
		x, y := ebiten.TouchPosition(g.touchID)
		g.canvas.TouchMove(float64(x), float64(y))
		return
	}
	ids := inpututil.AppendJustPressedTouchIDs(nil)
	if len(ids) == 0 {
		return
	}
	g.touchID = ids[0]
	g.touching = true
	x, y := ebiten.TouchPosition(g.touchID)
	g.canvas.TouchStart(float64(x), float64(y))
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if mx >= g.size {
			// Clicks on the panel belong to the HUD.
			return
		}
		g.mouseDown = true
		g.canvas.TouchStart(float64(mx), float64(my))
	case g.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.mouseDown = false
		g.canvas.TouchEnd()
	case g.mouseDown:
		g.canvas.TouchMove(float64(mx), float64(my))
	}
}

// Draw renders the canvas, the hover overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.painter.Blit(screen, g.canvas.Scene(), g.canvas.TakeRedraw()); err != nil {
		g.log.WithError(err).Warn("partial frame")
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.size, g.size)
}

// Layout fits the square canvas into the window beside the HUD and keeps
// the canvas viewport in sync with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := outsideWidth - g.hud.Width()
	if outsideHeight < size {
		size = outsideHeight
	}
	if size < 1 {
		size = 1
	}
	if size != g.size {
		g.size = size
		g.canvas.OnViewportResize(size, size)
	}
	return g.size + g.hud.Width(), g.size
}
