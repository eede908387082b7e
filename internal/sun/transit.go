package sun

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
)

// sinRiseAltitude is sin(-0.83°): refraction plus the solar semidiameter.
const sinRiseAltitude = -0.01448572613

// sinObliquity is sin(23.44°).
var sinObliquity = math.Sin(23.44 * math.Pi / 180)

// Transit evaluates the sunrise equation for the civil day containing the
// Julian day jd at lat, lon (radians, north and east positive).
//
// It returns the Julian day of local solar noon and the fraction of a day
// between noon and sunrise (equivalently sunset): sunrise is noon-halfDay and
// sunset noon+halfDay.
//
// When the Sun never crosses the horizon on that date (polar day or night)
// the hour angle is undefined and halfDay is NaN. Callers must check.
func Transit(jd, lat, lon float64) (noon, halfDay float64) {
	// Mean solar noon, days since J2000
	jStar := math.Floor(jd-(base.J2000-0.5)) - lon/(2*math.Pi)

	// Solar mean anomaly
	M := deg2Rad(357.5291 + 0.98560028*jStar)

	// Equation of the center
	C := deg2Rad(1.9148*math.Sin(M) + 0.0200*math.Sin(2*M) + 0.0003*math.Sin(3*M))

	// Ecliptic longitude: M + C + 180° + argument of perihelion
	lambda := M + C + math.Pi + deg2Rad(102.9372)

	noon = base.J2000 + jStar + 0.0053*math.Sin(M) - 0.0069*math.Sin(2*lambda)

	sinDec := math.Sin(lambda) * sinObliquity
	cosDec := math.Cos(math.Asin(sinDec))

	cosOmega := (sinRiseAltitude - math.Sin(lat)*sinDec) / (math.Cos(lat) * cosDec)
	omega := math.Acos(cosOmega)

	return noon, omega / (2 * math.Pi)
}

func deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}
