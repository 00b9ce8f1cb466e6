package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/loop"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Input)
	assert.False(t, cfg.Verbose)
	assert.True(t, cfg.Render.Color)
	assert.Equal(t, "first", cfg.Walk.Departure)
	assert.NoError(t, ValidateConfig(&cfg))
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeFile(t, "pipeloop.toml", `
input   = "day10.txt"
verbose = true

[render]
color = false

[walk]
departure = "second"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "day10.txt", cfg.Input)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Render.Color)
	assert.Equal(t, "second", cfg.Walk.Departure)
}

func TestLoadConfig_YAML(t *testing.T) {
	for _, name := range []string{"pipeloop.yaml", "pipeloop.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "input: grid.txt\nrender:\n  color: false\n")
			cfg, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, "grid.txt", cfg.Input)
			assert.False(t, cfg.Render.Color)
			assert.Equal(t, "first", cfg.Walk.Departure, "unset keys keep defaults")
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := LoadConfig(t.TempDir() + "/none.toml")
		assert.ErrorContains(t, err, "read config")
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "input = \n")
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "parse config")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "render: [\n")
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "parse config")
	})

	t.Run("invalid departure", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[walk]\ndeparture = \"up\"\n")
		_, err := LoadConfig(path)
		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "walk.departure", verr.Field)
		assert.Contains(t, verr.Error(), `"up"`)
	})
}

func TestConfig_WalkOptions(t *testing.T) {
	tests := []struct {
		departure string
		want      loop.Departure
	}{
		{"", loop.First},
		{"first", loop.First},
		{"second", loop.Second},
	}
	for _, tt := range tests {
		t.Run(tt.departure, func(t *testing.T) {
			cfg := Config{Walk: WalkConfig{Departure: tt.departure}}
			opts := loop.DefaultOptions()
			for _, opt := range cfg.walkOptions() {
				opt(&opts)
			}
			assert.Equal(t, tt.want, opts.Departure)
		})
	}
}
