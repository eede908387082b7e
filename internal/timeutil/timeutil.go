package timeutil

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// -----------------------------
// Time relative to J2000
// -----------------------------

// unixJ2000Days is J2000.0 (2000-01-01 12:00 UTC) expressed in days since the
// Unix epoch.
const unixJ2000Days = 10957.5

// DaysSinceJ2000 returns the number of (UTC) days since the J2000.0 epoch,
// counted from the instant's Unix seconds.
//
// UTC stands in for TT here; the ~1 minute difference is well below the
// precision of the solar model that consumes it.
func DaysSinceJ2000(t time.Time) float64 {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return secs/86400.0 - unixJ2000Days
}

// JulianDay returns the Julian day of t.
func JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// -----------------------------
// Unix milliseconds
// -----------------------------

var (
	maxMilliTime = time.UnixMilli(math.MaxInt64)
	minMilliTime = time.UnixMilli(math.MinInt64)
)

// UnixMilli returns t as milliseconds since the Unix epoch. ok is false when
// t lies outside what an int64 millisecond count can represent, in which case
// ms is meaningless.
func UnixMilli(t time.Time) (ms int64, ok bool) {
	if t.After(maxMilliTime) || t.Before(minMilliTime) {
		return 0, false
	}
	return t.UnixMilli(), true
}

// -----------------------------
// Integer and angle helpers
// -----------------------------

// FloorDiv returns ⌊a/b⌋ for b > 0.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Normalize2Pi reduces an angle in radians to [0, 2π).
func Normalize2Pi(a float64) float64 {
	return unit.PMod(a, 2*math.Pi)
}

// Frac returns x - ⌊x⌋, always in [0, 1).
func Frac(x float64) float64 {
	return x - math.Floor(x)
}
