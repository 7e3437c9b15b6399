package logo

import (
	"image/color"
)

const (
	logoOffsetY = 35
	logoWidth   = 200
	logoHeight  = 140

	defaultAngleStep = 5
)

var (
	backgroundColor = color.RGBA{R: 255, G: 69, B: 0, A: 255}
	logoColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// AnimationState is the only data carried between frames.
type AnimationState struct {
	AngleDegrees     float64
	AngleStepDegrees float64
}

// LogoGeometry is derived once from the canvas size.
type LogoGeometry struct {
	CenterX, CenterY int
	X, Y             int
	Width, Height    int
}

// Palette holds the two colors of the figure.
type Palette struct {
	Background color.RGBA
	Logo       color.RGBA
}

// Scene bundles the parts of the figure that never change after startup.
type Scene struct {
	Size     int
	Geometry LogoGeometry
	Palette  Palette
}

// Initialize derives the static scene for a square canvas and returns the
// starting animation state.
func Initialize(canvasSize int) (AnimationState, LogoGeometry, Palette) {
	cx, cy := canvasSize/2, canvasSize/2
	geom := LogoGeometry{
		CenterX: cx,
		CenterY: cy,
		X:       cx,
		Y:       cy + logoOffsetY,
		Width:   logoWidth,
		Height:  logoHeight,
	}
	pal := Palette{Background: backgroundColor, Logo: logoColor}
	state := AnimationState{AngleDegrees: 0, AngleStepDegrees: defaultAngleStep}
	return state, geom, pal
}

// NewScene is Initialize with the static parts bundled together.
func NewScene(canvasSize int) (Scene, AnimationState) {
	state, geom, pal := Initialize(canvasSize)
	return Scene{Size: canvasSize, Geometry: geom, Palette: pal}, state
}

// WithStep returns the state with a different angle step. Non-positive steps
// are ignored.
func (s AnimationState) WithStep(step float64) AnimationState {
	if step > 0 {
		s.AngleStepDegrees = step
	}
	return s
}
