package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/seymourg/flipside/bot"
	"github.com/seymourg/flipside/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	// The manager reads moves from stdout, so every diagnostic has to
	// stay on stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	b := bot.New(cfg.BotName, os.Stdin, os.Stdout)
	if err := b.Run(); err != nil {
		log.Fatal().Err(err).Msg("manager session failed")
	}
}
