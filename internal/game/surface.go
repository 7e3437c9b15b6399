package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ellipseSegments is the number of line segments used to approximate a full
// ellipse outline.
const ellipseSegments = 64

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenSurface draws logo commands onto an ebiten image with vector paths.
// A nil fill or stroke color means that part is disabled.
type ebitenSurface struct {
	dst       *ebiten.Image
	fill      color.Color
	stroke    color.Color
	weight    float32
	antialias bool

	vs []ebiten.Vertex
	is []uint16
}

func newEbitenSurface(antialias bool) *ebitenSurface {
	return &ebitenSurface{weight: 1, antialias: antialias}
}

// target points the surface at this frame's screen image.
func (s *ebitenSurface) target(dst *ebiten.Image) { s.dst = dst }

func (s *ebitenSurface) Background(c color.Color) { s.dst.Fill(c) }
func (s *ebitenSurface) Fill(c color.Color)       { s.fill = c }
func (s *ebitenSurface) NoFill()                  { s.fill = nil }
func (s *ebitenSurface) Stroke(c color.Color)     { s.stroke = c }
func (s *ebitenSurface) NoStroke()                { s.stroke = nil }
func (s *ebitenSurface) StrokeWeight(w float64)   { s.weight = float32(w) }

func (s *ebitenSurface) Ellipse(cx, cy, w, h float64) {
	var path vector.Path
	appendArc(&path, cx, cy, w/2, h/2, 0, 2*math.Pi)
	path.Close()

	if s.fill != nil {
		s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
		s.draw(s.fill)
	}
	s.strokePath(&path)
}

func (s *ebitenSurface) Line(x1, y1, x2, y2 float64) {
	var path vector.Path
	path.MoveTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	s.strokePath(&path)
}

func (s *ebitenSurface) Arc(cx, cy, w, h, start, stop float64) {
	var path vector.Path
	appendArc(&path, cx, cy, w/2, h/2, start, stop)

	if s.fill != nil {
		var pie vector.Path
		appendArc(&pie, cx, cy, w/2, h/2, start, stop)
		pie.LineTo(float32(cx), float32(cy))
		pie.Close()
		s.vs, s.is = pie.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
		s.draw(s.fill)
	}
	s.strokePath(&path)
}

func (s *ebitenSurface) strokePath(path *vector.Path) {
	if s.stroke == nil || s.weight <= 0 {
		return
	}
	op := &vector.StrokeOptions{
		Width:    s.weight,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], op)
	s.draw(s.stroke)
}

func (s *ebitenSurface) draw(clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(r) / 0xffff
		s.vs[i].ColorG = float32(g) / 0xffff
		s.vs[i].ColorB = float32(b) / 0xffff
		s.vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = s.antialias
	s.dst.DrawTriangles(s.vs, s.is, whiteSubImage, op)
}

// appendArc adds the outline of an elliptical arc as a polyline.
func appendArc(path *vector.Path, cx, cy, rx, ry, start, stop float64) {
	for i, pt := range arcPoints(cx, cy, rx, ry, start, stop) {
		if i == 0 {
			path.MoveTo(pt[0], pt[1])
			continue
		}
		path.LineTo(pt[0], pt[1])
	}
}

// arcPoints samples an elliptical arc. Angles run clockwise on screen from
// the positive x axis; both end points are included.
func arcPoints(cx, cy, rx, ry, start, stop float64) [][2]float32 {
	n := int(math.Ceil(ellipseSegments * math.Abs(stop-start) / (2 * math.Pi)))
	if n < 1 {
		n = 1
	}
	pts := make([][2]float32, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + (stop-start)*float64(i)/float64(n)
		pts = append(pts, [2]float32{
			float32(cx + rx*math.Cos(a)),
			float32(cy + ry*math.Sin(a)),
		})
	}
	return pts
}
