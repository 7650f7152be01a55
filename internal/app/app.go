//go:build ebiten

package app

import (
	"unfold/internal/audio"
	"unfold/internal/core"
	"unfold/internal/engine"
	"unfold/internal/render"
	"unfold/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an unfolding engine to the ebiten.Game interface.
type Game struct {
	eng     *engine.Engine
	painter *render.BufferPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	chime   *audio.Player
	swipe   swipe

	frame  engine.Frame
	width  int
	height int
}

var patternKeys = map[ebiten.Key]core.Pattern{
	ebiten.KeyA: core.PatternA,
	ebiten.KeyB: core.PatternB,
	ebiten.KeyC: core.PatternC,
	ebiten.KeyD: core.PatternD,
}

// New constructs a Game for the provided engine. chime may be nil.
func New(eng *engine.Engine, tps int, chime *audio.Player) *Game {
	buf := eng.Buffer()
	return &Game{
		eng:     eng,
		painter: render.NewBufferPainter(buf.W, buf.H),
		overlay: ui.NewOverlay(),
		hud:     ui.NewHUD(tps),
		chime:   chime,
	}
}

// Update handles input and advances the engine by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, p := range patternKeys {
		if inpututil.IsKeyJustPressed(key) && p != g.eng.Pattern() {
			if err := g.eng.SelectPattern(p); err != nil {
				return err
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.Toggle()
	}
	if dir, src := g.levelInput(); dir != 0 {
		if g.eng.RequestLevelChange(dir, src) && g.chime != nil {
			g.chime.Level(g.eng.State().Target)
		}
	}

	p := engine.Fit(g.width, g.height)
	g.frame = g.eng.RenderFrame(p.Transform(g.eng.Buffer().W))
	if g.frame.Regenerated {
		g.painter.Upload(g.frame.Buffer)
	}
	g.hud.Update(g.frame.Phase)
	return nil
}

// levelInput folds the wheel, arrow keys and touch swipes into a direction
// and the device it came from.
func (g *Game) levelInput() (int, engine.Input) {
	_, dy := ebiten.Wheel()
	switch {
	case dy > 0:
		return 1, engine.InputWheel
	case dy < 0:
		return -1, engine.InputWheel
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		return 1, engine.InputKey
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		return -1, engine.InputKey
	}
	return g.swipe.update(), engine.InputTouch
}

// Draw renders the buffer, the particles and the level label.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame.Buffer == nil {
		return
	}
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	g.painter.Blit(screen, engine.Fit(w, h))
	g.overlay.Draw(screen, g.frame.Draws)
	g.hud.Draw(screen, g.frame, w)
}

// Layout tracks the window size so the buffer can be refitted on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
