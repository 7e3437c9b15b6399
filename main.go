package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/iburimskiy/antenna-logo/internal/cli"
)

func main() {
	if err := cli.Root(viper.New()).Execute(); err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}
