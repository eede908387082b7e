// Package config reads the per-world settings that choose how each world's
// sky is simulated.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/ansel1/merry"
	"gopkg.in/yaml.v3"

	"github.com/thurmanmarka/realtick"
)

// Weather provider selectors.
const (
	WeatherNone = "none"
	WeatherReal = "real"
)

const defaultRadius = 20000

type Config struct {
	DefaultWorld string      `yaml:"default_world"`
	Worlds       []WorldSpec `yaml:"worlds"`
}

type WorldSpec struct {
	Name      string  `yaml:"name"`
	Timezone  string  `yaml:"timezone"`
	Arc       string  `yaml:"arc"`
	Weather   string  `yaml:"weather"`
	Latitude  float64 `yaml:"latitude"`  // degrees, north positive
	Longitude float64 `yaml:"longitude"` // degrees, east positive
	Radius    float64 `yaml:"radius"`    // blocks from spawn to a pole
}

// World is a WorldSpec with its arc, time zone and coordinates resolved.
type World struct {
	Name       string
	Arc        realtick.DiurnalArc
	Location   *time.Location
	Weather    string
	Spawn      realtick.Coordinates
	Projection realtick.Projection
}

// Load reads the YAML configuration at path. An empty path yields the
// built-in defaults.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		cfg := defaults()
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, merry.Prepend(err, "read world config")
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, merry.Prependf(err, "%s", path)
	}
	return cfg, nil
}

// Parse decodes, schema-checks, normalizes and validates a YAML document.
func Parse(b []byte) (Config, error) {
	var doc interface{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return Config{}, merry.Prepend(err, "yaml")
	}
	if err := checkSchema(doc); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, merry.Prepend(err, "yaml")
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		DefaultWorld: "world",
		Worlds: []WorldSpec{
			{
				Name:      "world",
				Timezone:  "UTC",
				Arc:       realtick.ArcTerrestrial,
				Weather:   WeatherNone,
				Latitude:  0,
				Longitude: 0,
				Radius:    defaultRadius,
			},
		},
	}
}

// Normalize fills in omitted fields and canonicalizes names.
func (c *Config) Normalize() {
	for i := range c.Worlds {
		w := &c.Worlds[i]
		w.Name = strings.TrimSpace(w.Name)
		w.Timezone = strings.TrimSpace(w.Timezone)
		if w.Timezone == "" {
			w.Timezone = "UTC"
		}
		w.Arc = strings.ToLower(strings.TrimSpace(w.Arc))
		if w.Arc == "" {
			w.Arc = realtick.ArcTerrestrial
		}
		w.Weather = strings.ToLower(strings.TrimSpace(w.Weather))
		if w.Weather == "" {
			w.Weather = WeatherNone
		}
		if w.Radius == 0 {
			w.Radius = defaultRadius
		}
	}
	c.DefaultWorld = strings.TrimSpace(c.DefaultWorld)
	if c.DefaultWorld == "" && len(c.Worlds) > 0 {
		c.DefaultWorld = c.Worlds[0].Name
	}
}

func (c Config) Validate() error {
	if len(c.Worlds) == 0 {
		return merry.New("worlds must not be empty")
	}
	seen := map[string]bool{}
	for i, w := range c.Worlds {
		if w.Name == "" {
			return merry.Errorf("worlds[%d]: name must not be empty", i)
		}
		if seen[w.Name] {
			return merry.Errorf("duplicate world name: %s", w.Name)
		}
		seen[w.Name] = true
		if err := w.Validate(); err != nil {
			return merry.Prependf(err, "world %s", w.Name)
		}
	}
	if !seen[c.DefaultWorld] {
		return merry.Errorf("default_world %q not found in worlds", c.DefaultWorld)
	}
	return nil
}

func (w WorldSpec) Validate() error {
	if w.Latitude < -90 || w.Latitude > 90 {
		return merry.Errorf("latitude %v must be in [-90, 90]", w.Latitude)
	}
	if w.Longitude < -180 || w.Longitude > 180 {
		return merry.Errorf("longitude %v must be in [-180, 180]", w.Longitude)
	}
	if w.Radius <= 0 {
		return merry.Errorf("radius %v must be > 0", w.Radius)
	}
	if _, err := realtick.ArcByName(w.Arc); err != nil {
		return merry.Prependf(err, "arc (one of %s)", strings.Join(realtick.ArcNames(), ", "))
	}
	if _, err := time.LoadLocation(w.Timezone); err != nil {
		return merry.Prepend(err, "timezone")
	}
	switch w.Weather {
	case WeatherNone, WeatherReal:
	default:
		return merry.Errorf("weather %q must be %q or %q", w.Weather, WeatherNone, WeatherReal)
	}
	return nil
}

// WorldSpecByName finds a world by name.
func (c Config) WorldSpecByName(name string) (WorldSpec, bool) {
	for _, w := range c.Worlds {
		if w.Name == name {
			return w, true
		}
	}
	return WorldSpec{}, false
}

// Resolve turns a validated WorldSpec into a World. The arc is constructed here
// once; a simple arc runs on the world's time zone.
func (w WorldSpec) Resolve() (World, error) {
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return World{}, merry.Prependf(err, "world %s: timezone", w.Name)
	}
	arc, err := realtick.ArcByName(w.Arc)
	if err != nil {
		return World{}, merry.Prependf(err, "world %s", w.Name)
	}
	if _, ok := arc.(realtick.SimpleArc); ok {
		arc = realtick.SimpleArc{Location: loc}
	}
	spawn := realtick.CoordinatesFromDeg(w.Latitude, w.Longitude)
	return World{
		Name:       w.Name,
		Arc:        arc,
		Location:   loc,
		Weather:    w.Weather,
		Spawn:      spawn,
		Projection: realtick.Projection{Origin: spawn, Radius: w.Radius},
	}, nil
}

// Resolve resolves every world, in file order.
func (c Config) Resolve() ([]World, error) {
	out := make([]World, 0, len(c.Worlds))
	for _, spec := range c.Worlds {
		w, err := spec.Resolve()
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
