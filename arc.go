package realtick

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/thurmanmarka/realtick/internal/timeutil"
)

// DiurnalArc turns a real instant into game ticks.
//
// Implementations are small comparable values with no mutable state and may
// be shared between goroutines.
type DiurnalArc interface {
	// Name is the identifier the arc is registered under.
	Name() string

	// WorldTick returns the tick to apply as the world's time of day, or
	// NoTick if the arc leaves world time alone.
	WorldTick(t time.Time, c Coordinates) (int64, error)

	// PlayerTick returns the tick to apply as a player's relative time, or
	// NoTick if the arc leaves player time alone.
	PlayerTick(t time.Time, w World, c Coordinates) (int64, error)

	// SimulatesPlanet reports whether the arc models a real sky.
	SimulatesPlanet() bool
}

// Arc names accepted by ArcByName.
const (
	ArcSimple           = "simple"
	ArcNative           = "minecraft"
	ArcTerrestrial      = "terrestrial"
	ArcSolarTerrestrial = "solar-terrestrial"
)

var arcs = map[string]func() DiurnalArc{
	ArcSimple:           func() DiurnalArc { return SimpleArc{} },
	ArcNative:           func() DiurnalArc { return NativeArc{} },
	ArcTerrestrial:      func() DiurnalArc { return TerrestrialArc{} },
	ArcSolarTerrestrial: func() DiurnalArc { return SolarTerrestrialArc{} },
}

// ArcByName returns the diurnal arc registered under name (case-insensitive).
func ArcByName(name string) (DiurnalArc, error) {
	newArc, ok := arcs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArc, name)
	}
	return newArc(), nil
}

// ArcNames lists the registered arc names in sorted order.
func ArcNames() []string {
	names := make([]string, 0, len(arcs))
	for name := range arcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WorldTick computes arc's world tick for t at c.
func WorldTick(arc DiurnalArc, t time.Time, c Coordinates) (int64, error) {
	if arc == nil {
		return 0, fmt.Errorf("%w: nil arc", ErrInvalidArgument)
	}
	return arc.WorldTick(t, c)
}

// PlayerTick computes arc's player-relative tick for t, w and c.
func PlayerTick(arc DiurnalArc, t time.Time, w World, c Coordinates) (int64, error) {
	if arc == nil {
		return 0, fmt.Errorf("%w: nil arc", ErrInvalidArgument)
	}
	return arc.PlayerTick(t, w, c)
}

// ticksPerElapsedDay is added to the player tick for each whole day the
// world has run.
const ticksPerElapsedDay = 192200

// lunarPlayerTick extends a time-of-day tick so the client also renders the
// real moon phase at t, then carries the world's elapsed days.
func lunarPlayerTick(dayTick int64, t time.Time, w World, c Coordinates) (int64, error) {
	phase, err := LunarPhase(t)
	if err != nil {
		return 0, err
	}

	tick := dayTick + phaseOffset(phase, math.Sin(c.Lat.Rad()) < 0)

	days := timeutil.FloorDiv(w.FullTime(), TicksPerDay)
	if add, ok := mulNoOverflow(ticksPerElapsedDay, days); ok {
		// skipped when the sum leaves the range the host accepts
		if sum, ok := addNoOverflow(tick, add); ok && sum >= 0 && sum <= MaxTick {
			tick = sum
		}
	}
	return tick, nil
}

// phaseOffset converts a real lunar octant (0 = new moon) into whole days of
// the host's phase cycle, which starts at full moon. The sky is mirrored
// south of the equator, so the cycle runs the other way there.
func phaseOffset(phase int, southern bool) int64 {
	if southern {
		return TicksPerDay * int64((phase+4)&7)
	}
	return TicksPerDay * int64((12-phase)&7)
}

func addNoOverflow(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func mulNoOverflow(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
