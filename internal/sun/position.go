package sun

import (
	"math"
	"time"

	"github.com/thurmanmarka/realtick/internal/timeutil"
)

// ApparentHorizonAltitude is the altitude (radians) of the Sun's center when
// the apparent upper limb touches the horizon under standard refraction,
// -0.833°.
const ApparentHorizonAltitude = -0.833 * math.Pi / 180

// Horizontal is a position in the observer's sky, in radians.
type Horizontal struct {
	Altitude float64
	Azimuth  float64
}

// Position computes the Sun's horizontal coordinates at t for an observer at
// lat, lon (radians, north and east positive).
//
// The azimuth is -atan2(cosδ·sin h, -sinφ·cosδ·cos h + cosφ·sinδ), so it sits
// at ±π when the Sun transits on the equator side of the zenith and at 0 on
// the lower meridian.
func Position(t time.Time, lat, lon float64) Horizontal {
	eq := GeocentricEquatorialApprox(timeutil.DaysSinceJ2000(t))

	// Local hour angle
	h := eq.GMST + lon - eq.RA

	sinLat, cosLat := math.Sincos(lat)
	sinDec, cosDec := math.Sincos(eq.Dec)
	sinH, cosH := math.Sincos(h)

	return Horizontal{
		Altitude: math.Asin(sinLat*sinDec + cosLat*cosDec*cosH),
		Azimuth:  -math.Atan2(cosDec*sinH, -sinLat*cosDec*cosH+cosLat*sinDec),
	}
}

// Altitude returns only the Sun's altitude (radians) at t. It is the sampling
// function for the rise/set event search.
func Altitude(lat, lon float64) func(t time.Time) float64 {
	return func(t time.Time) float64 {
		return Position(t, lat, lon).Altitude
	}
}
