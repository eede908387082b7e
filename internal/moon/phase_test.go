package moon

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestPhase_KnownInstants(t *testing.T) {
	tests := []struct {
		when time.Time
		want int
	}{
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2025, 5, 13, 16, 0, 0, 0, time.UTC), 4},
		{time.Date(2025, 5, 21, 20, 0, 0, 0, time.UTC), 6},
		{time.Date(2025, 5, 28, 3, 0, 0, 0, time.UTC), 0},
		{time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		if got := Phase(tt.when.UnixMilli()); got != tt.want {
			t.Errorf("Phase(%v) = %d (%s), want %d (%s)",
				tt.when, got, PhaseName(got), tt.want, PhaseName(tt.want))
		}
	}
}

func TestPhase_Extremes(t *testing.T) {
	if got := Phase(math.MaxInt64); got != 7 {
		t.Errorf("Phase(MaxInt64) = %d, want 7", got)
	}
	if got := Phase(math.MinInt64); got < 0 || got > 7 {
		t.Errorf("Phase(MinInt64) = %d, out of [0,7]", got)
	}
}

func TestPhase_AdvancesThroughTheMonth(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const day = 86400000

	for i := 0; i < 10000; i++ {
		ms := rng.Int63n(100*365*day) - 50*365*day
		p := Phase(ms)
		if p < 0 || p > 7 {
			t.Fatalf("Phase(%d) = %d, out of [0,7]", ms, p)
		}
		// a day later the octant is unchanged or the next one
		if q := Phase(ms + day); q != p && q != (p+1)&7 {
			t.Fatalf("Phase(%d) = %d, a day later %d", ms, p, q)
		}
	}
}

func TestPhaseName(t *testing.T) {
	want := []string{
		"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
		"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
	}
	for i, name := range want {
		if got := PhaseName(i); got != name {
			t.Errorf("PhaseName(%d) = %q, want %q", i, got, name)
		}
	}
}
