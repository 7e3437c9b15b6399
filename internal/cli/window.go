package cli

import (
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/antenna-logo/internal/config"
	"github.com/iburimskiy/antenna-logo/internal/game"
	"github.com/iburimskiy/antenna-logo/internal/hum"
)

func runWindow(cfg config.Config) error {
	var err error
	if cfg.Hum.Enabled {
		err = runWithHum(cfg)
	} else {
		err = game.Run(cfg, nil, log.Logger)
	}
	if err != nil {
		showError(err)
	}
	return err
}

func runWithHum(cfg config.Config) error {
	player, err := hum.Start(cfg.Hum)
	if err != nil {
		// the animation does not need sound
		log.Warn().Err(err).Msg("hum disabled")
		return game.Run(cfg, nil, log.Logger)
	}
	defer player.Stop()
	log.Info().Float64("frequency", cfg.Hum.Frequency).Float64("volume", cfg.Hum.Volume).Msg("hum playing")
	return game.Run(cfg, player, log.Logger)
}

// showError tells a desktop user why the window went away.
func showError(err error) {
	dlgErr := zenity.Error(err.Error(),
		zenity.Title(config.WindowTitle),
		zenity.ErrorIcon,
	)
	if dlgErr != nil {
		log.Debug().Err(dlgErr).Msg("error dialog unavailable")
	}
}
