package moon

import (
	"math"
)

// synodicMillis is the mean synodic month in milliseconds.
const synodicMillis = 2551442844.0

// Phase returns the octant of the synodic month at utcMillis (milliseconds
// since the Unix epoch): 0 is new moon, 2 first quarter, 4 full, 6 last
// quarter.
//
// The mean lunation is corrected by the four largest periodic terms, which
// keeps the principal phases within about 20 minutes of the true instant
// (under an hour in the worst case).
func Phase(utcMillis int64) int {
	ms := float64(utcMillis)

	raw := (ms/synodicMillis - 0.228535) +
		0.00591997*math.Sin(ms/5023359217.0+3.1705094) +
		0.017672776*math.Sin(ms/378923968.0-1.5388144) -
		0.0038844429*math.Sin(ms/437435791.0+2.0017235) -
		0.00041488*math.Sin(ms/138539900.0-1.236334)

	lunation := raw - math.Floor(raw)
	octant := int(lunation / 0.125)
	if octant > 7 {
		// raw - ⌊raw⌋ rounds to exactly 1 for tiny negative raw
		octant = 7
	}
	return octant
}

// PhaseName names an octant returned by Phase.
func PhaseName(octant int) string {
	switch octant & 7 {
	case 0:
		return "New Moon"
	case 1:
		return "Waxing Crescent"
	case 2:
		return "First Quarter"
	case 3:
		return "Waxing Gibbous"
	case 4:
		return "Full Moon"
	case 5:
		return "Waning Gibbous"
	case 6:
		return "Last Quarter"
	default:
		return "Waning Crescent"
	}
}
