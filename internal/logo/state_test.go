package logo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	state, geom, pal := Initialize(400)

	require.Equal(t, AnimationState{AngleDegrees: 0, AngleStepDegrees: 5}, state)
	require.Equal(t, LogoGeometry{CenterX: 200, CenterY: 200, X: 200, Y: 235, Width: 200, Height: 140}, geom)
	require.Equal(t, backgroundColor, pal.Background)
	require.Equal(t, logoColor, pal.Logo)
}

func TestInitializeOddCanvasFloorsCenter(t *testing.T) {
	_, geom, _ := Initialize(401)
	require.Equal(t, 200, geom.CenterX)
	require.Equal(t, 200, geom.CenterY)
	require.Equal(t, 235, geom.Y)
}

func TestWithStep(t *testing.T) {
	_, state := NewScene(400)
	require.Equal(t, 2.5, state.WithStep(2.5).AngleStepDegrees)
	require.Equal(t, 5.0, state.WithStep(0).AngleStepDegrees)
	require.Equal(t, 5.0, state.WithStep(-1).AngleStepDegrees)
}
