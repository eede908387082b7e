package realtick

import (
	"math"

	"github.com/soniakeys/unit"
)

// Projection lays a block world over the globe around a spawn point.
//
// Radius is the number of blocks from Origin to either pole along the z
// axis; the same scale spans half the globe along x. North is -z, as in the
// game.
type Projection struct {
	Origin Coordinates
	Radius float64
}

// At returns the coordinates of block column (x, z). Latitude saturates at
// the poles and longitude wraps to [-π, π).
func (p Projection) At(x, z float64) Coordinates {
	if p.Radius <= 0 {
		return p.Origin
	}

	lat := p.Origin.Lat.Rad() - z/p.Radius*math.Pi/2
	lat = math.Max(-math.Pi/2, math.Min(math.Pi/2, lat))

	lon := p.Origin.Lon.Rad() + x/p.Radius*math.Pi
	lon = unit.PMod(lon+math.Pi, 2*math.Pi) - math.Pi

	return Coordinates{Lat: unit.Angle(lat), Lon: unit.Angle(lon)}
}
