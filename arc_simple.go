package realtick

import (
	"time"
)

// SimpleArc follows the wall clock in Location: one real day is one game
// day and geography is ignored. A nil Location means time.Local.
type SimpleArc struct {
	Location *time.Location
}

func (SimpleArc) Name() string { return ArcSimple }

// SimulatesPlanet implements DiurnalArc.
func (SimpleArc) SimulatesPlanet() bool { return false }

// WorldTick maps hh:mm:ss linearly onto [0, 24000): 1000 ticks per hour,
// 50/3 per minute and 5/18 per second, truncated.
func (a SimpleArc) WorldTick(t time.Time, _ Coordinates) (int64, error) {
	if err := checkInstant(t); err != nil {
		return 0, err
	}
	loc := a.Location
	if loc == nil {
		loc = time.Local
	}
	h, m, s := t.In(loc).Clock()
	return int64(h*1000 + (m*50)/3 + (s*5)/18), nil
}

// PlayerTick leaves the player in step with the world.
func (SimpleArc) PlayerTick(t time.Time, w World, _ Coordinates) (int64, error) {
	if err := checkInstant(t); err != nil {
		return 0, err
	}
	if err := checkWorld(w); err != nil {
		return 0, err
	}
	return w.FullTime(), nil
}
