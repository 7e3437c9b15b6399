package logo

import "image/color"

const (
	containerDiameter = 350
	earDiameter       = 55
	earRaise          = 30

	antennaWeight = 12
	antennaBaseY  = 70
	swayRange     = 55
	tipDiameter   = 27
	minTipScale   = 0.8
	maxTipScale   = 1.2

	eyeShift    = 40
	eyeRaise    = 12
	eyeDiameter = 37

	mouthWeight = 10
	mouthWidth  = 120
	mouthHeight = 85
	mouthStart  = 40
	mouthStop   = 140
)

var frameClearColor = color.RGBA{A: 255}

// RenderFrame draws one frame of the figure for state onto s and returns the
// state for the next frame. scene is read only.
func RenderFrame(s Surface, scene Scene, state AnimationState) AnimationState {
	g, pal := scene.Geometry, scene.Palette

	// container
	s.Background(frameClearColor)
	s.NoStroke()
	s.Fill(pal.Background)
	s.Ellipse(float64(g.CenterX), float64(g.CenterY), containerDiameter, containerDiameter)

	drawOutline(s, g, pal)
	drawAntenna(s, g, pal, state.AngleDegrees)
	drawInternals(s, g, pal)

	return Advance(state)
}

func drawOutline(s Surface, g LogoGeometry, pal Palette) {
	x, y := float64(g.X), float64(g.Y)
	s.NoStroke()
	s.Fill(pal.Logo)
	s.Ellipse(x, y, float64(g.Width), float64(g.Height))

	ear := float64(EarOffset(g.Width))
	s.Ellipse(x-ear, y-earRaise, earDiameter, earDiameter)
	s.Ellipse(x+ear, y-earRaise, earDiameter, earDiameter)
}

func drawAntenna(s Surface, g LogoGeometry, pal Palette, angle float64) {
	s.Stroke(pal.Logo)
	s.StrokeWeight(antennaWeight)

	pen := Pen{X: float64(g.X), Y: float64(g.Y - antennaBaseY)}
	pen = pen.LineTo(s, 15, -60)
	pen = pen.LineTo(s, Sway(angle), 10)

	d := tipDiameter * ScaleFactor(angle)
	s.Ellipse(pen.X, pen.Y, d, d)
}

func drawInternals(s Surface, g LogoGeometry, pal Palette) {
	x, y := float64(g.X), float64(g.Y)
	s.NoStroke()

	// eyes
	s.Fill(pal.Background)
	s.Ellipse(x-eyeShift, y-eyeRaise, eyeDiameter, eyeDiameter)
	s.Ellipse(x+eyeShift, y-eyeRaise, eyeDiameter, eyeDiameter)

	// mouth
	s.Stroke(pal.Background)
	s.StrokeWeight(mouthWeight)
	s.NoFill()
	s.Arc(x, y, mouthWidth, mouthHeight, Radians(mouthStart), Radians(mouthStop))
}
