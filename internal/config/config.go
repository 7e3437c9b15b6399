package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	CanvasSize  = 400
	WindowTitle = "Antenna Logo"

	DefaultAngleStep   = 5
	DefaultTPS         = 60
	DefaultWindowScale = 1

	// Hum parameters
	DefaultHumFrequency = 110
	DefaultHumVolume    = 0.2
	HumSampleRate       = 44100

	// Snapshot parameters
	DefaultSnapshotFrames = 72
	DefaultSnapshotEvery  = 1
	DefaultSnapshotDir    = "frames"

	EnvPrefix = "ANTENNA"
)

var ErrInvalidConfig = errors.New("invalid config")

type Hum struct {
	Enabled   bool
	Frequency float64
	Volume    float64
}

type Snapshot struct {
	Frames int
	Every  int
	Dir    string
}

type Config struct {
	CanvasSize  int
	AngleStep   float64
	WindowScale int
	TPS         int
	AntiAlias   bool
	LogLevel    string

	Hum      Hum
	Snapshot Snapshot
}

func Default() Config {
	return Config{
		CanvasSize:  CanvasSize,
		AngleStep:   DefaultAngleStep,
		WindowScale: DefaultWindowScale,
		TPS:         DefaultTPS,
		AntiAlias:   true,
		LogLevel:    "info",
		Hum: Hum{
			Frequency: DefaultHumFrequency,
			Volume:    DefaultHumVolume,
		},
		Snapshot: Snapshot{
			Frames: DefaultSnapshotFrames,
			Every:  DefaultSnapshotEvery,
			Dir:    DefaultSnapshotDir,
		},
	}
}

// SetDefaults registers every key with its default so that environment
// variables are picked up for keys never set by a flag or file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("canvas_size", d.CanvasSize)
	v.SetDefault("angle_step", d.AngleStep)
	v.SetDefault("window_scale", d.WindowScale)
	v.SetDefault("tps", d.TPS)
	v.SetDefault("antialias", d.AntiAlias)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("hum.enabled", d.Hum.Enabled)
	v.SetDefault("hum.frequency", d.Hum.Frequency)
	v.SetDefault("hum.volume", d.Hum.Volume)
	v.SetDefault("snapshot.frames", d.Snapshot.Frames)
	v.SetDefault("snapshot.every", d.Snapshot.Every)
	v.SetDefault("snapshot.dir", d.Snapshot.Dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the optional config file and returns the validated result.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	cfg := Config{
		CanvasSize:  v.GetInt("canvas_size"),
		AngleStep:   v.GetFloat64("angle_step"),
		WindowScale: v.GetInt("window_scale"),
		TPS:         v.GetInt("tps"),
		AntiAlias:   v.GetBool("antialias"),
		LogLevel:    v.GetString("log_level"),
		Hum: Hum{
			Enabled:   v.GetBool("hum.enabled"),
			Frequency: v.GetFloat64("hum.frequency"),
			Volume:    v.GetFloat64("hum.volume"),
		},
		Snapshot: Snapshot{
			Frames: v.GetInt("snapshot.frames"),
			Every:  v.GetInt("snapshot.every"),
			Dir:    v.GetString("snapshot.dir"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.CanvasSize <= 0:
		return fmt.Errorf("%w: canvas size must be positive, got %d", ErrInvalidConfig, c.CanvasSize)
	case c.AngleStep <= 0:
		return fmt.Errorf("%w: angle step must be positive, got %g", ErrInvalidConfig, c.AngleStep)
	case c.WindowScale <= 0:
		return fmt.Errorf("%w: window scale must be positive, got %d", ErrInvalidConfig, c.WindowScale)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	case c.Hum.Frequency <= 0:
		return fmt.Errorf("%w: hum frequency must be positive, got %g", ErrInvalidConfig, c.Hum.Frequency)
	case c.Hum.Volume < 0 || c.Hum.Volume > 1:
		return fmt.Errorf("%w: hum volume must be within [0, 1], got %g", ErrInvalidConfig, c.Hum.Volume)
	case c.Snapshot.Frames <= 0:
		return fmt.Errorf("%w: snapshot frames must be positive, got %d", ErrInvalidConfig, c.Snapshot.Frames)
	case c.Snapshot.Every <= 0:
		return fmt.Errorf("%w: snapshot interval must be positive, got %d", ErrInvalidConfig, c.Snapshot.Every)
	}
	return nil
}
