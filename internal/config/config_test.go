package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v, "")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ANTENNA_ANGLE_STEP", "2.5")
	t.Setenv("ANTENNA_HUM_ENABLED", "true")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v, "")
	require.NoError(t, err)
	require.Equal(t, 2.5, cfg.AngleStep)
	require.True(t, cfg.Hum.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "antenna.toml")
	data := "tps = 30\n\n[snapshot]\nframes = 10\nevery = 2\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v, path)
	require.NoError(t, err)
	require.Equal(t, 30, cfg.TPS)
	require.Equal(t, 10, cfg.Snapshot.Frames)
	require.Equal(t, 2, cfg.Snapshot.Every)
	require.Equal(t, DefaultSnapshotDir, cfg.Snapshot.Dir)
}

func TestLoadMissingFile(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	_, err := Load(v, filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"canvas": func(c *Config) { c.CanvasSize = 0 },
		"step":   func(c *Config) { c.AngleStep = -5 },
		"scale":  func(c *Config) { c.WindowScale = 0 },
		"tps":    func(c *Config) { c.TPS = 0 },
		"freq":   func(c *Config) { c.Hum.Frequency = 0 },
		"volume": func(c *Config) { c.Hum.Volume = 1.5 },
		"frames": func(c *Config) { c.Snapshot.Frames = 0 },
		"every":  func(c *Config) { c.Snapshot.Every = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
	require.NoError(t, Default().Validate())
}
