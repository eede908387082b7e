package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thurmanmarka/realtick"
)

const sampleYAML = `
default_world: overworld
worlds:
  - name: overworld
    timezone: Europe/London
    arc: Solar-Terrestrial
    weather: real
    latitude: 51.4779
    longitude: -0.0015
    radius: 10000
  - name: lobby
    timezone: America/Phoenix
    arc: simple
  - name: creative
    arc: minecraft
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Len(t, cfg.Worlds, 1)

	w := cfg.Worlds[0]
	assert.Equal(t, "world", cfg.DefaultWorld)
	assert.Equal(t, "world", w.Name)
	assert.Equal(t, "UTC", w.Timezone)
	assert.Equal(t, realtick.ArcTerrestrial, w.Arc)
	assert.Equal(t, WeatherNone, w.Weather)
	assert.Equal(t, float64(defaultRadius), w.Radius)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, cfg.Worlds, 3)

	assert.Equal(t, "overworld", cfg.DefaultWorld)

	over, ok := cfg.WorldSpecByName("overworld")
	require.True(t, ok)
	assert.Equal(t, realtick.ArcSolarTerrestrial, over.Arc)
	assert.Equal(t, WeatherReal, over.Weather)
	assert.Equal(t, 10000.0, over.Radius)
	assert.InDelta(t, 51.4779, over.Latitude, 1e-9)

	lobby, ok := cfg.WorldSpecByName("lobby")
	require.True(t, ok)
	assert.Equal(t, WeatherNone, lobby.Weather)
	assert.Equal(t, float64(defaultRadius), lobby.Radius)

	creative, ok := cfg.WorldSpecByName("creative")
	require.True(t, ok)
	assert.Equal(t, "UTC", creative.Timezone)

	_, ok = cfg.WorldSpecByName("nether")
	assert.False(t, ok)
}

func TestParse_DefaultWorldFallsBackToFirst(t *testing.T) {
	cfg, err := Parse([]byte("worlds:\n  - name: alpha\n  - name: beta\n"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", cfg.DefaultWorld)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"not yaml", "worlds: [", "yaml"},
		{"empty document", "", "schema"},
		{"no worlds", "worlds: []\n", "schema"},
		{"unknown key", "worlds:\n  - name: a\n    colour: blue\n", "schema"},
		{"latitude out of range", "worlds:\n  - name: a\n    latitude: 91\n", "schema"},
		{"zero radius", "worlds:\n  - name: a\n    radius: 0\n", "schema"},
		{"missing name", "worlds:\n  - arc: simple\n", "schema"},
		{"unknown arc", "worlds:\n  - name: a\n    arc: martian\n", "unknown diurnal arc"},
		{"unknown timezone", "worlds:\n  - name: a\n    timezone: Mars/Olympus\n", "timezone"},
		{"unknown weather", "worlds:\n  - name: a\n    weather: acid\n", "weather"},
		{"duplicate names", "worlds:\n  - name: a\n  - name: a\n", "duplicate world name"},
		{"missing default", "default_world: b\nworlds:\n  - name: a\n", "default_world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worlds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Worlds, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read world config")
}

func TestLoad_FileNamedInError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("worlds: []\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestResolve(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	worlds, err := cfg.Resolve()
	require.NoError(t, err)
	require.Len(t, worlds, 3)

	over := worlds[0]
	assert.Equal(t, "overworld", over.Name)
	assert.Equal(t, realtick.ArcSolarTerrestrial, over.Arc.Name())
	assert.Equal(t, "Europe/London", over.Location.String())
	assert.InDelta(t, 51.4779, over.Spawn.Lat.Deg(), 1e-9)
	assert.Equal(t, over.Spawn, over.Projection.Origin)
	assert.Equal(t, 10000.0, over.Projection.Radius)

	// a simple arc follows its world's clock
	lobby := worlds[1]
	simple, ok := lobby.Arc.(realtick.SimpleArc)
	require.True(t, ok)
	assert.Equal(t, "America/Phoenix", simple.Location.String())

	creative := worlds[2]
	assert.False(t, creative.Arc.SimulatesPlanet())
}

func TestLoad_SampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "worlds.yaml"))
	require.NoError(t, err)

	worlds, err := cfg.Resolve()
	require.NoError(t, err)
	require.Len(t, worlds, 4)
	assert.Equal(t, "overworld", cfg.DefaultWorld)
	for _, w := range worlds {
		assert.NotNil(t, w.Arc, w.Name)
		assert.NotNil(t, w.Location, w.Name)
	}
}
