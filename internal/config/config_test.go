package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "The Freedom Layer", cfg.Field.Text)
	assert.Equal(t, 768, cfg.Field.MobileBreakpoint)
	assert.Equal(t, 7000, cfg.Field.Desktop.BaseParticles)
	assert.Equal(t, 4000, cfg.Field.Mobile.BaseParticles)
	assert.Equal(t, 240.0, cfg.Field.Desktop.InteractionRadius)
	assert.Equal(t, 160.0, cfg.Field.Mobile.InteractionRadius)
	assert.Equal(t, 100, cfg.Field.MaxSampleAttempts)
	assert.Equal(t, 100, cfg.Button.CanvasSize)
}

func TestProfile(t *testing.T) {
	f := DefaultConfig().Field
	assert.Equal(t, f.Mobile, f.Profile(true))
	assert.Equal(t, f.Desktop, f.Profile(false))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.yaml")
	data := []byte(`
field:
  text: "Freedom"
  desktop:
    base_particles: 3000
button:
  spawn_chance: 0.5
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Freedom", cfg.Field.Text)
	assert.Equal(t, 3000, cfg.Field.Desktop.BaseParticles)
	// untouched keys keep their defaults
	assert.Equal(t, 240.0, cfg.Field.Desktop.InteractionRadius)
	assert.Equal(t, 0.5, cfg.Button.SpawnChance)
	assert.Equal(t, 20, cfg.Button.Batch)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty text", "field:\n  text: \"\"\n"},
		{"ease above one", "field:\n  ease: 1.5\n"},
		{"inverted font clamp", "field:\n  mobile:\n    max_font_size: 5\n"},
		{"spawn chance", "button:\n  spawn_chance: 2\n"},
		{"zero window", "window:\n  width: 0\n"},
		{"scroll ease", "page:\n  scroll_ease: 0\n"},
		{"malformed", "field: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "landing.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
