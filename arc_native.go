package realtick

import (
	"time"
)

// NativeArc keeps the host's own day/night cycle. Both tick functions return
// NoTick, which callers must treat as "leave the time alone".
type NativeArc struct{}

func (NativeArc) Name() string { return ArcNative }

func (NativeArc) SimulatesPlanet() bool { return false }

func (NativeArc) WorldTick(t time.Time, _ Coordinates) (int64, error) {
	if err := checkInstant(t); err != nil {
		return 0, err
	}
	return NoTick, nil
}

func (NativeArc) PlayerTick(t time.Time, w World, _ Coordinates) (int64, error) {
	if err := checkInstant(t); err != nil {
		return 0, err
	}
	if err := checkWorld(w); err != nil {
		return 0, err
	}
	return NoTick, nil
}
