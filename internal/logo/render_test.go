package logo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderFrameCommandOrder(t *testing.T) {
	scene, state := NewScene(400)
	rec := &Recorder{}

	RenderFrame(rec, scene, state)

	ops := make([]Op, 0, len(rec.Commands))
	for _, c := range rec.Commands {
		ops = append(ops, c.Op)
	}
	require.Equal(t, []Op{
		OpBackground, OpNoStroke, OpFill, OpEllipse,
		OpNoStroke, OpFill, OpEllipse, OpEllipse, OpEllipse,
		OpStroke, OpStrokeWeight, OpLine, OpLine, OpEllipse,
		OpNoStroke, OpFill, OpEllipse, OpEllipse,
		OpStroke, OpStrokeWeight, OpNoFill, OpArc,
	}, ops)
}

func TestRenderFrameGeometry(t *testing.T) {
	scene, state := NewScene(400)
	rec := &Recorder{}

	RenderFrame(rec, scene, state)

	ellipses := rec.Filter(OpEllipse)
	require.Len(t, ellipses, 7)
	require.Equal(t, []float64{200, 200, 350, 350}, ellipses[0].Args)
	require.Equal(t, []float64{200, 235, 200, 140}, ellipses[1].Args)
	require.Equal(t, []float64{110, 205, 55, 55}, ellipses[2].Args)
	require.Equal(t, []float64{290, 205, 55, 55}, ellipses[3].Args)
	require.Equal(t, []float64{160, 223, 37, 37}, ellipses[5].Args)
	require.Equal(t, []float64{240, 223, 37, 37}, ellipses[6].Args)

	tip := ellipses[4].Args
	require.InDelta(t, 215, tip[0], 1e-9)
	require.InDelta(t, 115, tip[1], 1e-9)
	require.InDelta(t, 21.6, tip[2], 1e-9)
	require.InDelta(t, 21.6, tip[3], 1e-9)

	lines := rec.Filter(OpLine)
	require.Equal(t, []float64{200, 165, 215, 105}, lines[0].Args)
	require.InDeltaSlice(t, []float64{215, 105, 215, 115}, lines[1].Args, 1e-9)

	arcs := rec.Filter(OpArc)
	require.Len(t, arcs, 1)
	require.InDeltaSlice(t, []float64{200, 235, 120, 85, Radians(40), Radians(140)}, arcs[0].Args, 1e-12)

	weights := rec.Filter(OpStrokeWeight)
	require.Equal(t, 12.0, weights[0].Args[0])
	require.Equal(t, 10.0, weights[1].Args[0])
}

func TestRenderFrameColors(t *testing.T) {
	scene, state := NewScene(400)
	rec := &Recorder{}

	RenderFrame(rec, scene, state)

	require.Equal(t, frameClearColor, rec.Commands[0].Color)
	fills := rec.Filter(OpFill)
	require.Equal(t, scene.Palette.Background, fills[0].Color)
	require.Equal(t, scene.Palette.Logo, fills[1].Color)
	require.Equal(t, scene.Palette.Background, fills[2].Color)

	strokes := rec.Filter(OpStroke)
	require.Equal(t, scene.Palette.Logo, strokes[0].Color)
	require.Equal(t, scene.Palette.Background, strokes[1].Color)
}

func TestRenderFrameSwayAtQuarterTurn(t *testing.T) {
	scene, state := NewScene(400)
	state.AngleDegrees = 90
	rec := &Recorder{}

	RenderFrame(rec, scene, state)

	lines := rec.Filter(OpLine)
	require.InDelta(t, 270, lines[1].Args[2], 1e-9)
	tip := rec.Filter(OpEllipse)[4].Args
	require.InDelta(t, 270, tip[0], 1e-9)
	require.InDelta(t, 27*ScaleFactor(90), tip[2], 1e-9)
}

func TestRenderFrameLeavesSceneAlone(t *testing.T) {
	scene, state := NewScene(400)
	before := scene
	rec := &Recorder{}

	for i := 0; i < 10; i++ {
		next := RenderFrame(rec, scene, state)
		require.Equal(t, state.AngleStepDegrees, next.AngleStepDegrees)
		state = next
	}
	require.Equal(t, before, scene)
}

func TestRenderFrameFullTurn(t *testing.T) {
	scene, state := NewScene(400)
	rec := &Recorder{}

	for i := 0; i < 72; i++ {
		rec.Reset()
		state = RenderFrame(rec, scene, state)
		if i < 71 {
			require.NotZero(t, state.AngleDegrees)
		}
	}
	require.Equal(t, 0.0, state.AngleDegrees)
}

func TestPenLineTo(t *testing.T) {
	rec := &Recorder{}
	pen := Pen{X: 10, Y: 20}.LineTo(rec, 5, -5)

	require.Equal(t, Pen{X: 15, Y: 15}, pen)
	require.Equal(t, []float64{10, 20, 15, 15}, rec.Commands[0].Args)
}

func TestCommandString(t *testing.T) {
	rec := &Recorder{}
	rec.Fill(logoColor)
	rec.Ellipse(1, 2, 3.5, 4)

	require.Equal(t, "fill(255,255,255)", rec.Commands[0].String())
	require.Equal(t, "ellipse(1.00,2.00,3.50,4.00)", rec.Commands[1].String())
}
