package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/powerman/structlog"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/realtick"
	"github.com/thurmanmarka/realtick/internal/config"
	"github.com/thurmanmarka/realtick/internal/sun"
	"github.com/thurmanmarka/realtick/internal/timeutil"
)

var log = structlog.New()

func main() {
	structlog.DefaultLogger.
		SetPrefixKeys(structlog.KeyApp, structlog.KeyLevel, structlog.KeyTime).
		SetDefaultKeyvals(structlog.KeyApp, filepath.Base(os.Args[0])).
		SetKeysFormat(map[string]string{
			structlog.KeyTime: " %[2]s",
		})

	// No args or a leading flag: tick mode. Otherwise the first arg is a
	// subcommand.
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		runTick(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "phase":
		runPhase(os.Args[2:])
	case "sun":
		runSun(os.Args[2:])
	case "worlds":
		runWorlds(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `realtick – real sky for game worlds

Usage:
  realtick [flags]            # world/player ticks for one place (default mode)
  realtick phase [flags]      # lunar phase octant
  realtick sun [flags]        # sunrise/sunset and the sunrise equation
  realtick worlds [flags]     # ticks for every world in a config file

Default mode flags:
  -lat float        latitude in degrees (north positive)
  -lon float        longitude in degrees (east positive, west negative)
  -time string      instant in RFC3339 (defaults to now)
  -arc string       diurnal arc: %s (default "terrestrial")
  -full-time int    the world's elapsed ticks
  -json             output result as JSON
`, strings.Join(realtick.ArcNames(), ", "))
}

// ---------------------
// Tick (default) mode
// ---------------------

type tickOutput struct {
	Arc        string    `json:"arc"`
	Time       time.Time `json:"time"`
	JulianDay  float64   `json:"julian_day"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Altitude   float64   `json:"altitude"`
	Azimuth    float64   `json:"azimuth"`
	WorldTick  *int64    `json:"world_tick,omitempty"`
	PlayerTick *int64    `json:"player_tick,omitempty"`
	LunarPhase int       `json:"lunar_phase"`
	PhaseName  string    `json:"phase_name"`
}

func runTick(args []string) {
	fs := flag.NewFlagSet("realtick", flag.ExitOnError)

	lat := fs.Float64("lat", 0, "latitude in degrees (north positive)")
	lon := fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
	timeS := fs.String("time", "", "instant in RFC3339 (defaults to now)")
	arcName := fs.String("arc", realtick.ArcTerrestrial, "diurnal arc: "+strings.Join(realtick.ArcNames(), ", "))
	fullTime := fs.Int64("full-time", 0, "the world's elapsed ticks")
	jsonOut := fs.Bool("json", false, "output result as JSON")
	fs.Usage = usage

	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}
	if *lat == 0 && *lon == 0 {
		log.Info("lat=0 lon=0 is the Gulf of Guinea; use -lat and -lon to set a real location")
	}

	t := parseInstant(*timeS)
	arc, err := realtick.ArcByName(*arcName)
	if err != nil {
		log.Fatal(err)
	}
	c := realtick.CoordinatesFromDeg(*lat, *lon)

	out, err := evaluate(arc, t, realtick.FullTime(*fullTime), c)
	if err != nil {
		log.Fatal(err, "arc", arc.Name())
	}

	if *jsonOut {
		printJSON(out)
		return
	}
	printTick(out)
}

func evaluate(arc realtick.DiurnalArc, t time.Time, w realtick.World, c realtick.Coordinates) (tickOutput, error) {
	pos, err := realtick.SolarPositionAt(t, c)
	if err != nil {
		return tickOutput{}, err
	}
	phase, err := realtick.LunarPhase(t)
	if err != nil {
		return tickOutput{}, err
	}
	out := tickOutput{
		Arc:        arc.Name(),
		Time:       t,
		JulianDay:  timeutil.JulianDay(t),
		Latitude:   c.Lat.Deg(),
		Longitude:  c.Lon.Deg(),
		Altitude:   pos.Altitude.Deg(),
		Azimuth:    pos.Azimuth.Deg(),
		LunarPhase: phase,
		PhaseName:  realtick.LunarPhaseName(phase),
	}

	wt, err := realtick.WorldTick(arc, t, c)
	if err != nil {
		return tickOutput{}, err
	}
	pt, err := realtick.PlayerTick(arc, t, w, c)
	if err != nil {
		return tickOutput{}, err
	}
	if wt != realtick.NoTick {
		out.WorldTick = &wt
	}
	if pt != realtick.NoTick {
		out.PlayerTick = &pt
	}
	return out, nil
}

func printTick(out tickOutput) {
	fmt.Printf("%s arc at lat=%.1s lon=%.1s\n", out.Arc, fmtDeg(out.Latitude), fmtDeg(out.Longitude))
	fmt.Printf("Time: %s (JD %.5f)\n\n", out.Time.Format(time.RFC3339), out.JulianDay)
	fmt.Printf("Sun altitude : %.1s\n", fmtDeg(out.Altitude))
	fmt.Printf("Sun azimuth  : %.1s\n", fmtDeg(out.Azimuth))
	if out.WorldTick != nil {
		fmt.Printf("World tick   : %d\n", *out.WorldTick)
	} else {
		fmt.Printf("World tick   : (untouched)\n")
	}
	if out.PlayerTick != nil {
		fmt.Printf("Player tick  : %d\n", *out.PlayerTick)
	} else {
		fmt.Printf("Player tick  : (untouched)\n")
	}
	fmt.Printf("Lunar phase  : %d (%s)\n", out.LunarPhase, out.PhaseName)
}

// ---------------------
// Phase subcommand
// ---------------------

func runPhase(args []string) {
	fs := flag.NewFlagSet("phase", flag.ExitOnError)
	timeS := fs.String("time", "", "instant in RFC3339 (defaults to now)")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}

	t := parseInstant(*timeS)
	phase, err := realtick.LunarPhase(t)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Moon phase at %s\n", t.Format(time.RFC3339))
	fmt.Printf("  Octant : %d\n", phase)
	fmt.Printf("  Name   : %s\n", realtick.LunarPhaseName(phase))
}

// ---------------------
// Sun subcommand
// ---------------------

func runSun(args []string) {
	fs := flag.NewFlagSet("sun", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "latitude in degrees (north positive)")
	lon := fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
	dateS := fs.String("date", "", "date in YYYY-MM-DD (defaults to today in local time)")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}

	var date time.Time
	if *dateS == "" {
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	} else {
		var err error
		date, err = time.ParseInLocation("2006-01-02", *dateS, time.Local)
		if err != nil {
			log.Fatal(err, "date", *dateS)
		}
	}
	c := realtick.CoordinatesFromDeg(*lat, *lon)

	fmt.Printf("Sun for lat=%.1s lon=%.1s on %s (%s)\n\n",
		fmtDeg(*lat), fmtDeg(*lon), date.Format("2006-01-02"), date.Location())

	ev, err := realtick.SunEventsFor(c, date)
	if err != nil {
		log.PrintErr(err)
	} else {
		if ev.HasRise {
			fmt.Printf("Rise     : %s\n", ev.Rise.Format(time.RFC3339))
		}
		if ev.HasSet {
			fmt.Printf("Set      : %s\n", ev.Set.Format(time.RFC3339))
		}
		fmt.Printf("Daylight : %.2f h\n", ev.DaylightHours())
	}

	noon, half := sun.Transit(timeutil.JulianDay(date.Add(12*time.Hour)), c.Lat.Rad(), c.Lon.Rad())
	fmt.Printf("\nSunrise equation: noon JD %.5f, half day %.4f d\n", noon, half)
}

// ---------------------
// Worlds subcommand
// ---------------------

func runWorlds(args []string) {
	fs := flag.NewFlagSet("worlds", flag.ExitOnError)
	path := fs.String("config", "", "world configuration YAML (defaults to a single equatorial world)")
	timeS := fs.String("time", "", "instant in RFC3339 (defaults to now)")
	fullTime := fs.Int64("full-time", 0, "elapsed ticks applied to every world")
	jsonOut := fs.Bool("json", false, "output result as JSON")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load(*path)
	if err != nil {
		log.Fatal(err)
	}
	worlds, err := cfg.Resolve()
	if err != nil {
		log.Fatal(err)
	}
	log.Info("loaded worlds", "count", len(worlds), "default", cfg.DefaultWorld)

	t := parseInstant(*timeS)
	outs := make([]tickOutput, 0, len(worlds))
	for _, w := range worlds {
		out, err := evaluate(w.Arc, t, realtick.FullTime(*fullTime), w.Spawn)
		if err != nil {
			log.PrintErr(err, "world", w.Name)
			continue
		}
		if *jsonOut {
			outs = append(outs, out)
			continue
		}
		fmt.Printf("== %s (%s, weather %s)\n", w.Name, w.Location, w.Weather)
		printTick(out)
		fmt.Println()
	}
	if *jsonOut {
		printJSON(outs)
	}
}

// ---------------------
// Shared helpers
// ---------------------

func parseInstant(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		log.Fatal(err, "time", s)
	}
	return t
}

func fmtDeg(d float64) *sexa.Angle {
	return sexa.FmtAngle(unit.AngleFromDeg(d))
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	log.ErrIfFail(func() error { return enc.Encode(v) })
}
