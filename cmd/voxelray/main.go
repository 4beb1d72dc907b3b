// Package main is the entry point for the voxelray benchmark harness.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelray/internal/bench"
	"github.com/Faultbox/voxelray/internal/config"
	"github.com/Faultbox/voxelray/internal/logger"
)

func main() {
	config.ParseFlags()

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

	logger.Info("=== Voxelray ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	b, err := bench.New(cfg)
	if err != nil {
		logger.Error("failed to set up benchmark", zap.Error(err))
		os.Exit(1)
	}

	if err := b.Run(); err != nil {
		logger.Error("benchmark error", zap.Error(err))
		os.Exit(1)
	}
}
