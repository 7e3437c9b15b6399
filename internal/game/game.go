package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/antenna-logo/internal/config"
	"github.com/iburimskiy/antenna-logo/internal/logo"
)

// debugEvery is how often, in frames, the animation state is logged at
// debug level.
const debugEvery = 360

// pulseSink receives the tip dot scale factor of every drawn frame.
type pulseSink interface {
	SetPulse(scale float64)
}

type game struct {
	scene   logo.Scene
	state   logo.AnimationState
	surface *ebitenSurface
	pulse   pulseSink
	frames  uint64
	log     zerolog.Logger
}

// NewGame prepares the figure for a canvas of cfg.CanvasSize. pulse may be
// nil.
func NewGame(cfg config.Config, pulse pulseSink, log zerolog.Logger) *game {
	scene, state := logo.NewScene(cfg.CanvasSize)
	return &game{
		scene:   scene,
		state:   state.WithStep(cfg.AngleStep),
		surface: newEbitenSurface(cfg.AntiAlias),
		pulse:   pulse,
		log:     log,
	}
}

// Update has nothing to do: the host drives the animation from Draw, one
// step per drawn frame.
func (g *game) Update() error {
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surface.target(screen)
	g.step(g.surface)
}

// step draws the current frame onto s and replaces the state with the next
// one. The pulse sees the scale factor of the frame being drawn.
func (g *game) step(s logo.Surface) {
	if g.pulse != nil {
		g.pulse.SetPulse(logo.ScaleFactor(g.state.AngleDegrees))
	}
	g.state = logo.RenderFrame(s, g.scene, g.state)

	g.frames++
	if g.frames%debugEvery == 0 {
		g.log.Debug().
			Uint64("frames", g.frames).
			Float64("angle", g.state.AngleDegrees).
			Float64("tps", ebiten.ActualTPS()).
			Float64("fps", ebiten.ActualFPS()).
			Msg("animation running")
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Size, g.scene.Size
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, pulse pulseSink, log zerolog.Logger) error {
	ebiten.SetWindowSize(cfg.CanvasSize*cfg.WindowScale, cfg.CanvasSize*cfg.WindowScale)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(cfg.TPS)

	g := NewGame(cfg, pulse, log)
	log.Info().
		Int("canvas", cfg.CanvasSize).
		Float64("step", g.state.AngleStepDegrees).
		Int("tps", cfg.TPS).
		Msg("starting animation")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info().Uint64("frames", g.frames).Msg("animation stopped")
	return nil
}
