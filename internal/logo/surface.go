package logo

import "image/color"

// Surface is the immediate-mode drawing target the renderer talks to.
// Fill and stroke settings stay in effect until changed.
type Surface interface {
	Background(c color.Color)
	Fill(c color.Color)
	NoFill()
	Stroke(c color.Color)
	NoStroke()
	StrokeWeight(w float64)
	// Ellipse is centered at (cx, cy) with full width and height.
	Ellipse(cx, cy, w, h float64)
	Line(x1, y1, x2, y2 float64)
	// Arc is an open arc on the ellipse bounded by w x h, angles in radians,
	// measured clockwise from the positive x axis.
	Arc(cx, cy, w, h, start, stop float64)
}

// Pen tracks the current position while drawing connected segments.
type Pen struct {
	X, Y float64
}

// LineTo draws from the pen to the relative offset (dx, dy) and returns the
// moved pen.
func (p Pen) LineTo(s Surface, dx, dy float64) Pen {
	next := Pen{X: p.X + dx, Y: p.Y + dy}
	s.Line(p.X, p.Y, next.X, next.Y)
	return next
}
