package logo

import (
	"fmt"
	"image/color"
	"strings"
)

// Op names a Surface call.
type Op string

const (
	OpBackground   Op = "background"
	OpFill         Op = "fill"
	OpNoFill       Op = "noFill"
	OpStroke       Op = "stroke"
	OpNoStroke     Op = "noStroke"
	OpStrokeWeight Op = "strokeWeight"
	OpEllipse      Op = "ellipse"
	OpLine         Op = "line"
	OpArc          Op = "arc"
)

// Command is one captured Surface call.
type Command struct {
	Op    Op
	Args  []float64
	Color color.RGBA
}

func (c Command) String() string {
	var b strings.Builder
	b.WriteString(string(c.Op))
	switch c.Op {
	case OpBackground, OpFill, OpStroke:
		fmt.Fprintf(&b, "(%d,%d,%d)", c.Color.R, c.Color.G, c.Color.B)
	default:
		b.WriteByte('(')
		for i, a := range c.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%.2f", a)
		}
		b.WriteByte(')')
	}
	return b.String()
}

// Recorder is a Surface that keeps every call instead of drawing.
type Recorder struct {
	Commands []Command
}

// Reset drops the captured commands, keeping the buffer.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

// Filter returns the captured commands with the given op, in call order.
func (r *Recorder) Filter(op Op) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) add(op Op, args ...float64) {
	r.Commands = append(r.Commands, Command{Op: op, Args: args})
}

func (r *Recorder) addColor(op Op, c color.Color) {
	r.Commands = append(r.Commands, Command{Op: op, Color: toRGBA(c)})
}

func (r *Recorder) Background(c color.Color)     { r.addColor(OpBackground, c) }
func (r *Recorder) Fill(c color.Color)           { r.addColor(OpFill, c) }
func (r *Recorder) NoFill()                      { r.add(OpNoFill) }
func (r *Recorder) Stroke(c color.Color)         { r.addColor(OpStroke, c) }
func (r *Recorder) NoStroke()                    { r.add(OpNoStroke) }
func (r *Recorder) StrokeWeight(w float64)       { r.add(OpStrokeWeight, w) }
func (r *Recorder) Ellipse(cx, cy, w, h float64) { r.add(OpEllipse, cx, cy, w, h) }
func (r *Recorder) Line(x1, y1, x2, y2 float64)  { r.add(OpLine, x1, y1, x2, y2) }

func (r *Recorder) Arc(cx, cy, w, h, start, stop float64) {
	r.add(OpArc, cx, cy, w, h, start, stop)
}

func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
