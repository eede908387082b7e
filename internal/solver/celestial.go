package solver

import (
	"math"

	"github.com/thurmanmarka/realtick/internal/timeutil"
)

const (
	// TicksPerDay is the length of one game day.
	TicksPerDay = 24000

	// NoonTick is the tick at which the renderer's celestial angle wraps
	// from 1 back to 0, i.e. the Sun at its highest.
	NoonTick = 6000

	// newtonSeed and newtonSteps were tuned by hand against the renderer;
	// changing either changes every tick produced downstream.
	newtonSeed  = 16000
	newtonSteps = 4

	// Below this distance from the wrap point Newton's method is unstable.
	wrapEpsilon = 1e-5
)

// CelestialAngle is the renderer's celestial-plane rotation for tick t, as a
// fraction of a full turn:
//
//	α(t) = (t/6000 + 4(1-⌊x⌋) - cos(π(x-⌊x⌋))) / 6,  x = t/24000 + 0.75
//
// It is periodic in 24000 ticks, increasing on [6000, 30000), and jumps from
// 1 back to 0 at t = 6000.
func CelestialAngle(t float64) float64 {
	x := t/TicksPerDay + 0.75
	fl := math.Floor(x)
	return (t/6000 + 4*(1-fl) - math.Cos(math.Pi*(x-fl))) / 6
}

// celestialAngleSlope is dα/dt away from the discontinuity.
func celestialAngleSlope(t float64) float64 {
	x := t/TicksPerDay + 0.75
	return (math.Pi*math.Sin(math.Pi*timeutil.Frac(x)) + 4) / 144000
}

// InvertCelestialAngle returns the tick in [0, 24000) whose celestial angle
// is alpha, for alpha in [0, 1].
//
// α has no elementary inverse, so this runs a fixed number of Newton-Raphson
// steps from a fixed seed. The result is deterministic for a given alpha.
func InvertCelestialAngle(alpha float64) int64 {
	if alpha <= wrapEpsilon || alpha >= 1-wrapEpsilon {
		return NoonTick
	}

	t := float64(newtonSeed)
	for i := 0; i < newtonSteps; i++ {
		t -= (CelestialAngle(t) - alpha) / celestialAngleSlope(t)
	}

	tick := int64(math.Abs(math.Mod(t, TicksPerDay)) + 0.5)
	// 23999.5 and above rounds onto the next day's 0.
	return tick % TicksPerDay
}
