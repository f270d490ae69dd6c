package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"darkchess/internal/config"
	"darkchess/internal/engine"
	"darkchess/internal/mgtp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for move selection (0 = time based)")
	flag.StringVar(&cfg.AIName, "name", cfg.AIName, "engine name reported to the server")
	flag.Parse()

	log, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng := engine.NewEngine(engine.Config{Seed: cfg.Seed, Logger: log})
	s := mgtp.NewSession(eng, mgtp.Options{
		Name:    cfg.AIName,
		Version: cfg.AIVersion,
		Logger:  log,
	})
	log.WithField("session", s.ID).Info("mgtp engine ready")

	if err := s.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Error("session ended")
		os.Exit(1)
	}
	log.WithField("session", s.ID).Info("bye")
}
