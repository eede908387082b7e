package sun

import (
	"math"

	"github.com/thurmanmarka/realtick/internal/timeutil"
)

// Equatorial holds the Sun's geocentric equatorial coordinates together with
// Greenwich mean sidereal time at the same instant. All angles in radians.
type Equatorial struct {
	RA   float64 // right ascension, [-π, π]
	Dec  float64 // declination
	GMST float64 // Greenwich mean sidereal time, [0, 2π)
}

// GeocentricEquatorialApprox returns the Sun's RA/Dec n days after J2000.0.
//
// Low-precision solar ephemeris, good to about 0.01° within a few centuries
// of J2000:
//
//	ε = mean obliquity of the ecliptic
//	L = mean longitude of the Sun
//	g = mean anomaly of the Sun
//	λ = ecliptic longitude (ecliptic latitude taken as 0)
func GeocentricEquatorialApprox(n float64) Equatorial {
	eps := 0.409087723 + 6.981317e-9*n

	L := timeutil.Normalize2Pi(4.89495042 + 0.0172027923937*n)
	g := timeutil.Normalize2Pi(6.240040768 + 0.0172019703436*n)

	// Equation of center
	lambda := L + 0.033423055*math.Sin(g) + 0.0003490659*math.Sin(2*g)

	ra := math.Atan2(math.Cos(eps)*math.Sin(lambda), math.Cos(lambda))
	dec := math.Asin(math.Sin(eps) * math.Sin(lambda))

	return Equatorial{
		RA:   ra,
		Dec:  dec,
		GMST: timeutil.Normalize2Pi(4.894961213 + 6.300388099*n),
	}
}
