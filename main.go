package main

import (
	"log"
	"math/rand/v2"

	"tritris/internal/config"
	"tritris/internal/domain"
	"tritris/internal/logging"
	"tritris/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.ResolvedSeed()
	logger.Info().Uint64("seed", seed).Msg("starting")

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	sess := domain.NewSession(cfg.Rules(), domain.NewClock(), rng, logger)
	return tui.Run(sess, cfg.PollInterval(), logger)
}
