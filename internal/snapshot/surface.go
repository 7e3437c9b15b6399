package snapshot

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Surface draws logo commands into an in-memory gg context.
type Surface struct {
	dc     *gg.Context
	fill   color.Color
	stroke color.Color
	weight float64
}

func NewSurface(size int) *Surface {
	dc := gg.NewContext(size, size)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Surface{dc: dc, weight: 1}
}

func (s *Surface) Context() *gg.Context { return s.dc }

func (s *Surface) Background(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *Surface) Fill(c color.Color)     { s.fill = c }
func (s *Surface) NoFill()                { s.fill = nil }
func (s *Surface) Stroke(c color.Color)   { s.stroke = c }
func (s *Surface) NoStroke()              { s.stroke = nil }
func (s *Surface) StrokeWeight(w float64) { s.weight = w }

func (s *Surface) Ellipse(cx, cy, w, h float64) {
	s.dc.DrawEllipse(cx, cy, w/2, h/2)
	s.paint(true)
}

func (s *Surface) Line(x1, y1, x2, y2 float64) {
	s.dc.NewSubPath()
	s.dc.DrawLine(x1, y1, x2, y2)
	s.paint(false)
}

// Arc fills as a pie slice and strokes only the curved edge.
func (s *Surface) Arc(cx, cy, w, h, start, stop float64) {
	if s.fill != nil {
		s.dc.NewSubPath()
		s.dc.DrawEllipticalArc(cx, cy, w/2, h/2, start, stop)
		s.dc.LineTo(cx, cy)
		s.dc.ClosePath()
		s.dc.SetColor(s.fill)
		s.dc.Fill()
	}
	s.dc.NewSubPath()
	s.dc.DrawEllipticalArc(cx, cy, w/2, h/2, start, stop)
	s.paint(false)
}

// paint fills and strokes the current path with the active settings, then
// drops it.
func (s *Surface) paint(fillable bool) {
	if fillable && s.fill != nil {
		s.dc.SetColor(s.fill)
		s.dc.FillPreserve()
	}
	if s.stroke != nil && s.weight > 0 {
		s.dc.SetColor(s.stroke)
		s.dc.SetLineWidth(s.weight)
		s.dc.StrokePreserve()
	}
	s.dc.ClearPath()
}
