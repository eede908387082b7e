package realtick

import (
	"math"
	"time"

	"github.com/thurmanmarka/realtick/internal/solver"
	"github.com/thurmanmarka/realtick/internal/sun"
)

// TerrestrialArc places the game Sun where the real one stands in azimuth.
//
// The Sun's azimuth is rotated so that the meridian transit lands on the
// renderer's zero angle, taken as a fraction of a turn, and inverted through
// the renderer's celestial-angle curve.
type TerrestrialArc struct{}

func (TerrestrialArc) Name() string { return ArcTerrestrial }

func (TerrestrialArc) SimulatesPlanet() bool { return true }

// WorldTick implements DiurnalArc.
func (TerrestrialArc) WorldTick(t time.Time, c Coordinates) (int64, error) {
	if err := checkInstant(t); err != nil {
		return 0, err
	}
	return azimuthTick(t, c), nil
}

// PlayerTick implements DiurnalArc. The time of day matches WorldTick; whole
// days are added so the client shows the real moon phase.
func (TerrestrialArc) PlayerTick(t time.Time, w World, c Coordinates) (int64, error) {
	if err := checkInstant(t); err != nil {
		return 0, err
	}
	if err := checkWorld(w); err != nil {
		return 0, err
	}
	return lunarPlayerTick(azimuthTick(t, c), t, w, c)
}

func azimuthTick(t time.Time, c Coordinates) int64 {
	az := sun.Position(t, c.Lat.Rad(), c.Lon.Rad()).Azimuth

	// rotate so transit sits at 0 and the lower meridian at π
	az = math.Mod(math.Mod(az+2*math.Pi, 2*math.Pi)+math.Pi, 2*math.Pi)

	return solver.InvertCelestialAngle(az / (2 * math.Pi))
}
