package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/powerman/structlog"
	"github.com/soniakeys/meeus/v3/julian"

	"github.com/thurmanmarka/realtick"
	"github.com/thurmanmarka/realtick/internal/sun"
	"github.com/thurmanmarka/realtick/internal/timeutil"
)

var log = structlog.New()

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *stats) mean() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

func (s *stats) print(title string) {
	fmt.Printf("\n%s:\n", title)
	if s.count == 0 {
		fmt.Println("  no samples")
		return
	}
	fmt.Printf("  count: %d\n", s.count)
	fmt.Printf("  min:   %.3f\n", s.min)
	fmt.Printf("  max:   %.3f\n", s.max)
	fmt.Printf("  mean:  %.3f\n", s.mean())
}

// tickDelta is b-a on the day circle, in [-12000, 12000).
func tickDelta(a, b int64) float64 {
	d := (b - a) % realtick.TicksPerDay
	if d < -realtick.TicksPerDay/2 {
		d += realtick.TicksPerDay
	} else if d >= realtick.TicksPerDay/2 {
		d -= realtick.TicksPerDay
	}
	return float64(d)
}

func diffMinutesSigned(a, b time.Time) float64 {
	if a.IsZero() || b.IsZero() {
		return math.NaN()
	}
	return a.Sub(b).Minutes()
}

// Sweeps [start, start+days) every -step and compares two diurnal arcs tick
// by tick. Once per day it also compares the sunrise equation against the
// sampled solar altitude search.
func main() {
	structlog.DefaultLogger.
		SetPrefixKeys(structlog.KeyApp, structlog.KeyLevel).
		SetDefaultKeyvals(structlog.KeyApp, filepath.Base(os.Args[0]))

	var (
		lat     = flag.Float64("lat", 0, "latitude in degrees (north positive)")
		lon     = flag.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
		startS  = flag.String("start", "", "first UTC date, YYYY-MM-DD (defaults to today)")
		days    = flag.Int("days", 365, "number of days to sweep")
		step    = flag.Duration("step", 30*time.Minute, "sampling interval")
		arcA    = flag.String("a", realtick.ArcTerrestrial, "reference arc")
		arcB    = flag.String("b", realtick.ArcSolarTerrestrial, "compared arc")
		outCSV  = flag.String("outcsv", "", "optional path to write per-sample CSV")
		verbose = flag.Bool("verbose", false, "print per-day rise/set comparison")
	)
	flag.Parse()

	if *step <= 0 || *days <= 0 {
		log.Fatal("-step and -days must be positive")
	}
	if *lat == 0 && *lon == 0 {
		log.Info("lat=0 lon=0 (Gulf of Guinea). Did you mean to set -lat/-lon?")
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	if *startS != "" {
		var err error
		start, err = time.ParseInLocation("2006-01-02", *startS, time.UTC)
		if err != nil {
			log.Fatal(err, "start", *startS)
		}
	}

	a, err := realtick.ArcByName(*arcA)
	if err != nil {
		log.Fatal(err)
	}
	b, err := realtick.ArcByName(*arcB)
	if err != nil {
		log.Fatal(err)
	}
	coords := realtick.CoordinatesFromDeg(*lat, *lon)

	var outWriter *csv.Writer
	if *outCSV != "" {
		outFile, err := os.Create(*outCSV)
		if err != nil {
			log.Fatal(err, "outcsv", *outCSV)
		}
		defer log.ErrIfFail(outFile.Close)

		outWriter = csv.NewWriter(outFile)
		defer outWriter.Flush()

		if err := outWriter.Write([]string{"time", "altitude", a.Name(), b.Name(), "delta"}); err != nil {
			log.Fatal(err)
		}
	}

	var (
		deltaStats stats
		absStats   stats
		riseStats  stats
		setStats   stats
		skipped    int
		samples    int
	)

	end := start.AddDate(0, 0, *days)
	for t := start; t.Before(end); t = t.Add(*step) {
		samples++

		ta, errA := a.WorldTick(t, coords)
		tb, errB := b.WorldTick(t, coords)
		if errA != nil || errB != nil || ta == realtick.NoTick || tb == realtick.NoTick {
			skipped++
			continue
		}

		d := tickDelta(ta, tb)
		deltaStats.add(d)
		absStats.add(math.Abs(d))

		if outWriter != nil {
			pos, _ := realtick.SolarPositionAt(t, coords)
			rec := []string{
				t.Format(time.RFC3339),
				strconv.FormatFloat(pos.Altitude.Deg(), 'f', 3, 64),
				strconv.FormatInt(ta, 10),
				strconv.FormatInt(tb, 10),
				strconv.FormatFloat(d, 'f', 0, 64),
			}
			if err := outWriter.Write(rec); err != nil {
				log.PrintErr(err, "time", t)
			}
		}
	}

	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		ev, err := realtick.SunEventsFor(coords, day)
		if err != nil {
			continue
		}
		noon, half := sun.Transit(timeutil.JulianDay(day.Add(12*time.Hour)), coords.Lat.Rad(), coords.Lon.Rad())
		if math.IsNaN(half) {
			continue
		}
		eqRise := julian.JDToTime(noon - half)
		eqSet := julian.JDToTime(noon + half)

		var riseErr, setErr float64 = math.NaN(), math.NaN()
		if ev.HasRise {
			riseErr = diffMinutesSigned(eqRise, ev.Rise)
			riseStats.add(riseErr)
		}
		if ev.HasSet {
			setErr = diffMinutesSigned(eqSet, ev.Set)
			setStats.add(setErr)
		}
		if *verbose {
			fmt.Printf("%s: rise %+.2f min, set %+.2f min (equation - search)\n",
				day.Format("2006-01-02"), riseErr, setErr)
		}
	}

	fmt.Println("=== realtick profiler summary ===")
	fmt.Printf("Arcs:    %s vs %s\n", a.Name(), b.Name())
	fmt.Printf("Lat/Lon: %.4f / %.4f\n", *lat, *lon)
	fmt.Printf("Range:   %s .. %s every %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"), *step)
	fmt.Printf("Samples: %d (processed), %d skipped\n", samples-skipped, skipped)

	deltaStats.print(fmt.Sprintf("Tick delta (%s - %s)", b.Name(), a.Name()))
	absStats.print("Absolute tick delta")
	riseStats.print("Sunrise, equation - search (minutes)")
	setStats.print("Sunset, equation - search (minutes)")
}
