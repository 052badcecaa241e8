// Package main is the entry point for wolfgrid.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/wolfgrid/internal/config"
	"github.com/Faultbox/wolfgrid/internal/game"
	"github.com/Faultbox/wolfgrid/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	if config.InitRequested() {
		path, err := config.Default().Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== wolfgrid ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if err := g.Run(); err != nil {
		g.Close()
		logger.Error("game error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	g.Close()

	logger.Info("game closed normally")
}
