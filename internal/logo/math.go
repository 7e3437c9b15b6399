package logo

import "math"

const fullTurnDegrees = 360

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Norm maps v from [lo, hi] onto [0, 1].
func Norm(v, lo, hi float64) float64 { return (v - lo) / (hi - lo) }

// Sway is the horizontal antenna tip offset for angle, in [-55, 55].
func Sway(angleDegrees float64) float64 {
	return Lerp(-swayRange, swayRange, Norm(math.Sin(Radians(angleDegrees)), -1, 1))
}

// ScaleFactor is the tip dot size multiplier for angle. Taking the sine of
// half the angle makes one pulse span a whole turn, out of phase with Sway.
func ScaleFactor(angleDegrees float64) float64 {
	return Lerp(minTipScale, maxTipScale, math.Sin(Radians(angleDegrees/2)))
}

// EarOffset is the horizontal distance of each ear from the logo anchor.
func EarOffset(width int) int {
	return int(float64(width) / 2.2)
}

// Advance moves the angle one step, wrapping into [0, 360).
func Advance(s AnimationState) AnimationState {
	next := math.Mod(s.AngleDegrees+s.AngleStepDegrees, fullTurnDegrees)
	if next < 0 {
		next += fullTurnDegrees
	}
	s.AngleDegrees = next
	return s
}
