package realtick

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/realtick/internal/solver"
	"github.com/thurmanmarka/realtick/internal/sun"
	"github.com/thurmanmarka/realtick/internal/timeutil"
)

// SolarTerrestrialArc follows the real day's sunrise, noon and sunset.
//
// The instant is placed on a piecewise-linear scale: sunrise -1, noon 0,
// sunset 1, then across the night from the previous sunset (1) to the next
// sunrise (3). A quarter of that scale is one quarter turn of the renderer's
// sky. Unlike TerrestrialArc, day and night each get exactly half of the
// game's sky regardless of season.
type SolarTerrestrialArc struct{}

func (SolarTerrestrialArc) Name() string { return ArcSolarTerrestrial }

func (SolarTerrestrialArc) SimulatesPlanet() bool { return true }

// WorldTick implements DiurnalArc. It fails with ErrPolarDomain during polar
// day or night.
func (SolarTerrestrialArc) WorldTick(t time.Time, c Coordinates) (int64, error) {
	if err := checkInstant(t); err != nil {
		return 0, err
	}
	return solarTick(t, c)
}

// PlayerTick implements DiurnalArc with the same lunar offsets as
// TerrestrialArc.
func (SolarTerrestrialArc) PlayerTick(t time.Time, w World, c Coordinates) (int64, error) {
	if err := checkInstant(t); err != nil {
		return 0, err
	}
	if err := checkWorld(w); err != nil {
		return 0, err
	}
	tick, err := solarTick(t, c)
	if err != nil {
		return 0, err
	}
	return lunarPlayerTick(tick, t, w, c)
}

// solarDay is one evaluation of the sunrise equation, in Julian days.
type solarDay struct {
	noon, rise, set float64
}

func transitFor(jd float64, c Coordinates) (solarDay, error) {
	noon, half := sun.Transit(jd, c.Lat.Rad(), c.Lon.Rad())
	if math.IsNaN(half) {
		return solarDay{}, fmt.Errorf("%w: lat %.4f° JD %.1f", ErrPolarDomain, c.Lat.Deg(), jd)
	}
	return solarDay{noon: noon, rise: noon - half, set: noon + half}, nil
}

func solarTick(t time.Time, c Coordinates) (int64, error) {
	pos, err := solarPosition(timeutil.JulianDay(t), c)
	if err != nil {
		return 0, err
	}
	return solver.InvertCelestialAngle(unit.PMod(pos/4, 1)), nil
}

// solarPosition returns jd's place on the [-1, 3) sunrise/noon/sunset scale.
func solarPosition(jd float64, c Coordinates) (float64, error) {
	day, err := transitFor(jd, c)
	if err != nil {
		return 0, err
	}

	// Far from Greenwich the UTC date's noon can sit more than half a day
	// away; use the solar day whose noon is nearest.
	ref := jd
	switch {
	case day.noon-jd > 0.5:
		ref = jd - 1
	case jd-day.noon > 0.5:
		ref = jd + 1
	}
	if ref != jd {
		if day, err = transitFor(ref, c); err != nil {
			return 0, err
		}
	}

	switch {
	case jd < day.rise:
		prev, err := transitFor(ref-1, c)
		if err != nil {
			return 0, err
		}
		return 1 + 2*(jd-prev.set)/(day.rise-prev.set), nil
	case jd > day.set:
		next, err := transitFor(ref+1, c)
		if err != nil {
			return 0, err
		}
		return 1 + 2*(jd-day.set)/(next.rise-day.set), nil
	default:
		return (jd - day.noon) / (day.set - day.noon), nil
	}
}
