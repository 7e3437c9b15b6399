package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iburimskiy/antenna-logo/internal/config"
	"github.com/iburimskiy/antenna-logo/internal/logo"
	"github.com/iburimskiy/antenna-logo/internal/snapshot"
)

func snapshotCommand(v *viper.Viper, cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames to PNG files",
		Long:  `Render successive frames without a window and write them as PNG files`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(v, *cfgFile)
			if err != nil {
				return err
			}
			return runSnapshot(cfg)
		},
	}
	f := cmd.Flags()
	f.Int("frames", config.DefaultSnapshotFrames, "number of frames to render")
	f.Int("every", config.DefaultSnapshotEvery, "write every n-th frame")
	f.StringP("out", "o", config.DefaultSnapshotDir, "output directory")
	bindFlags(v, f, map[string]string{
		"snapshot.frames": "frames",
		"snapshot.every":  "every",
		"snapshot.dir":    "out",
	})
	return cmd
}

func runSnapshot(cfg config.Config) error {
	scene, state := logo.NewScene(cfg.CanvasSize)
	state = state.WithStep(cfg.AngleStep)

	paths, _, err := snapshot.Render(scene, state, cfg.Snapshot.Frames, cfg.Snapshot.Every, cfg.Snapshot.Dir)
	if err != nil {
		return err
	}
	log.Info().Int("written", len(paths)).Str("dir", cfg.Snapshot.Dir).Msg("snapshot done")
	return nil
}
