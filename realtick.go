// Package realtick drives a block-game world's day/night cycle and lunar
// phase from the real sky.
//
// Given a real instant and a place on Earth it computes the world tick the
// host should apply as "world time" (0-24000 per day, 0 at the host's 6 AM)
// and a player-relative tick that makes the client render the correct moon
// phase.
//
// The arithmetic is organised as a set of interchangeable diurnal arcs:
//   - SimpleArc follows the local wall clock and ignores geography.
//   - NativeArc leaves the host's own cycle alone.
//   - TerrestrialArc maps the Sun's azimuth onto the renderer's sky.
//   - SolarTerrestrialArc interpolates between sunrise, noon and sunset.
//
// Every function here is pure: no I/O, no caching, no shared state. Callers
// that recompute often may memoize by discretized location themselves.
package realtick

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/realtick/internal/moon"
	"github.com/thurmanmarka/realtick/internal/solver"
	"github.com/thurmanmarka/realtick/internal/sun"
	"github.com/thurmanmarka/realtick/internal/timeutil"
)

const (
	// TicksPerDay is the length of a game day.
	TicksPerDay = solver.TicksPerDay

	// NoTick is returned by arcs that do not simulate anything. It must never
	// be applied to a world or player.
	NoTick int64 = math.MinInt64

	// MaxTick is the largest tick the host accepts.
	MaxTick int64 = math.MaxInt64 - 1
)

// Coordinates represent an observer's location.
type Coordinates struct {
	Lat unit.Angle // north positive
	Lon unit.Angle // east positive (west negative)
}

// CoordinatesFromDeg builds Coordinates from degrees.
func CoordinatesFromDeg(lat, lon float64) Coordinates {
	return Coordinates{
		Lat: unit.AngleFromDeg(lat),
		Lon: unit.AngleFromDeg(lon),
	}
}

// Horizontal is a position in the observer's sky.
type Horizontal struct {
	Altitude unit.Angle // above the horizon, [-π/2, π/2]
	Azimuth  unit.Angle // ±π on the equator-side meridian, 0 on the opposite one
}

// World is the part of the host's world model the arcs read.
type World interface {
	// FullTime returns the ticks elapsed since the world's first day.
	FullTime() int64
}

// FullTime adapts a plain tick count to World.
type FullTime int64

// FullTime implements World.
func (f FullTime) FullTime() int64 { return int64(f) }

var (
	// ErrInvalidArgument is returned for a zero instant, a nil world or a nil arc.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPolarDomain is returned when the Sun neither rises nor sets on the
	// requested date, so the sunrise equation has no solution.
	ErrPolarDomain = errors.New("sun does not rise or set at this latitude on this date")

	// ErrUnknownArc is returned when no diurnal arc is registered under a name.
	ErrUnknownArc = errors.New("unknown diurnal arc")

	// ErrNoRiseNoSet is returned when the Sun does not cross the horizon on that date.
	ErrNoRiseNoSet = errors.New("sun does not rise or set on this date")
)

func checkInstant(t time.Time) error {
	if t.IsZero() {
		return fmt.Errorf("%w: zero instant", ErrInvalidArgument)
	}
	return nil
}

func checkWorld(w World) error {
	if w == nil {
		return fmt.Errorf("%w: nil world", ErrInvalidArgument)
	}
	return nil
}

// SolarPositionAt computes the Sun's altitude and azimuth at t for an
// observer at c.
func SolarPositionAt(t time.Time, c Coordinates) (Horizontal, error) {
	if err := checkInstant(t); err != nil {
		return Horizontal{}, err
	}
	pos := sun.Position(t, c.Lat.Rad(), c.Lon.Rad())
	return Horizontal{
		Altitude: unit.Angle(pos.Altitude),
		Azimuth:  unit.Angle(pos.Azimuth),
	}, nil
}

// LunarPhase returns the octant of the lunar cycle at t, 0 = new moon
// through 4 = full moon to 7 = waning crescent.
//
// Instants beyond the int64 millisecond range are evaluated at
// math.MaxInt64 milliseconds, which yields a fixed phase rather than an error.
func LunarPhase(t time.Time) (int, error) {
	if err := checkInstant(t); err != nil {
		return 0, err
	}
	ms, ok := timeutil.UnixMilli(t)
	if !ok {
		ms = saturatedMillis
	}
	return moon.Phase(ms), nil
}

// saturatedMillis stands in for instants whose Unix milliseconds overflow.
const saturatedMillis int64 = math.MaxInt64

// LunarPhaseMillis is LunarPhase for a Unix millisecond timestamp.
func LunarPhaseMillis(utcMillis int64) int {
	return moon.Phase(utcMillis)
}

// LunarPhaseName names an octant returned by LunarPhase.
func LunarPhaseName(phase int) string {
	return moon.PhaseName(phase)
}
