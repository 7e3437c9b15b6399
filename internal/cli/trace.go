package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iburimskiy/antenna-logo/internal/config"
	"github.com/iburimskiy/antenna-logo/internal/logo"
)

func traceCommand(v *viper.Viper, cfgFile *string) *cobra.Command {
	var frames int
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Log the drawing commands of each frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(v, *cfgFile)
			if err != nil {
				return err
			}
			trace(cfg, frames)
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 1, "number of frames to trace")
	return cmd
}

func trace(cfg config.Config, frames int) logo.AnimationState {
	scene, state := logo.NewScene(cfg.CanvasSize)
	state = state.WithStep(cfg.AngleStep)

	rec := &logo.Recorder{}
	for i := 0; i < frames; i++ {
		rec.Reset()
		angle := state.AngleDegrees
		state = logo.RenderFrame(rec, scene, state)

		cmds := make([]string, 0, len(rec.Commands))
		for _, c := range rec.Commands {
			cmds = append(cmds, c.String())
		}
		log.Info().
			Int("frame", i).
			Float64("angle", angle).
			Float64("sway", logo.Sway(angle)).
			Float64("scale", logo.ScaleFactor(angle)).
			Strs("commands", cmds).
			Msg("frame")
	}
	return state
}
