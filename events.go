package realtick

import (
	"time"

	"github.com/thurmanmarka/realtick/internal/solver"
	"github.com/thurmanmarka/realtick/internal/sun"
)

// SunEvents holds sunrise and sunset on one local calendar date.
type SunEvents struct {
	Rise time.Time
	Set  time.Time

	// HasRise / HasSet report whether each crossing happens on this date;
	// near the poles one of them may be missing.
	HasRise bool
	HasSet  bool
}

// DaylightHours returns Set-Rise in hours, or 0 unless both events exist.
func (e SunEvents) DaylightHours() float64 {
	if !e.HasRise || !e.HasSet {
		return 0
	}
	return e.Set.Sub(e.Rise).Hours()
}

// SunEventsFor searches the local calendar day of date (in date's Location)
// for the Sun's center crossing -0.833° upwards and downwards, using the same
// solar position as the arcs. Returned times are in date's Location.
func SunEventsFor(c Coordinates, date time.Time) (SunEvents, error) {
	if err := checkInstant(date); err != nil {
		return SunEvents{}, err
	}

	loc := date.Location()
	year, month, day := date.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)

	alt := solver.AltitudeFunc(sun.Altitude(c.Lat.Rad(), c.Lon.Rad()))

	const (
		steps = 48 // every 30 minutes
		tol   = 30 * time.Second
	)

	var ev SunEvents

	if res := solver.FindAltitudeEvent(alt, start, end, sun.ApparentHorizonAltitude, solver.CrossingUp, steps, tol); res.OK {
		ev.Rise = res.Time.In(loc)
		ev.HasRise = true
	}
	if res := solver.FindAltitudeEvent(alt, start, end, sun.ApparentHorizonAltitude, solver.CrossingDown, steps, tol); res.OK {
		ev.Set = res.Time.In(loc)
		ev.HasSet = true
	}

	if !ev.HasRise && !ev.HasSet {
		return SunEvents{}, ErrNoRiseNoSet
	}
	return ev, nil
}
