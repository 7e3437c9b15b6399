package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iburimskiy/antenna-logo/internal/config"
	"github.com/iburimskiy/antenna-logo/internal/logging"
)

// Root builds the command tree. Flags are bound into v, which also carries
// defaults and environment overrides.
func Root(v *viper.Viper) *cobra.Command {
	var cfgFile string
	config.SetDefaults(v)

	root := &cobra.Command{
		Use:           "antenna-logo",
		Short:         "Animated robot face logo",
		Long:          `Draw the robot face logo and wobble its antenna once per frame`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(v, cfgFile)
			if err != nil {
				return err
			}
			return runWindow(cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "path to config file")
	pf.Float64("angle-step", config.DefaultAngleStep, "antenna angle advance per frame, in degrees")
	pf.String("log-level", "info", "log level: none, trace, debug, info, warn, error")
	bindFlags(v, pf, map[string]string{
		"angle_step": "angle-step",
		"log_level":  "log-level",
	})

	f := root.Flags()
	f.Int("scale", config.DefaultWindowScale, "window size multiplier")
	f.Int("tps", config.DefaultTPS, "frames per second")
	f.Bool("antialias", true, "antialias shape edges")
	f.Bool("hum", false, "play a hum that pulses with the antenna tip")
	f.Float64("hum-frequency", config.DefaultHumFrequency, "hum frequency in Hz")
	f.Float64("hum-volume", config.DefaultHumVolume, "hum volume within [0, 1]")
	bindFlags(v, f, map[string]string{
		"window_scale":  "scale",
		"tps":           "tps",
		"antialias":     "antialias",
		"hum.enabled":   "hum",
		"hum.frequency": "hum-frequency",
		"hum.volume":    "hum-volume",
	})

	root.AddCommand(
		snapshotCommand(v, &cfgFile),
		traceCommand(v, &cfgFile),
		versionCommand(),
	)
	return root
}

func load(v *viper.Viper, file string) (config.Config, error) {
	cfg, err := config.Load(v, file)
	if err != nil {
		return cfg, err
	}
	logging.Setup(cfg.LogLevel)
	log.Debug().Interface("config", cfg).Msg("config loaded")
	return cfg, nil
}
