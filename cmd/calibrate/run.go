package main

import (
	"fmt"
	"os"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/pokercore/internal/calibration"
	"github.com/lox/pokercore/internal/config"
	"github.com/lox/pokercore/internal/engine"
	"github.com/lox/pokercore/internal/infoset"
	"github.com/lox/pokercore/internal/rollout"
	"github.com/lox/pokercore/internal/shared"
)

// RunCmd drives one calibration batch end to end.
type RunCmd struct {
	Config        string `kong:"help='Path to an HCL calibration config file',default='calibration.hcl'"`
	Mode          string `kong:"help='practice or challenge; overrides the config file',default=''"`
	SeedCount     int    `kong:"help='Number of seeds to calibrate; overrides the config file',default='0'"`
	SeedStart     int    `kong:"help='First seed in the batch; overrides the config file',default='0'"`
	ArtifactsRoot string `kong:"help='Root directory for pipeline artifacts; overrides the config file',default=''"`
	Debug         bool   `kong:"help='Enable debug logging'"`
}

func (c *RunCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := config.LoadCalibrationConfig(c.Config)
	if err != nil {
		return fmt.Errorf("calibrate: load config: %w", err)
	}
	if c.Mode != "" {
		cfg.Run.Mode = c.Mode
	}
	if c.SeedCount > 0 {
		cfg.Run.SeedCount = c.SeedCount
	}
	if c.SeedStart > 0 {
		cfg.Run.SeedStart = c.SeedStart
	}
	if c.ArtifactsRoot != "" {
		cfg.Run.ArtifactsRoot = c.ArtifactsRoot
	}

	mode := engine.Practice
	if cfg.Run.Mode == "challenge" {
		mode = engine.Challenge
	}

	seeds := make([]uint64, cfg.Run.SeedCount)
	for i := range seeds {
		seeds[i] = uint64(cfg.Run.SeedStart + i)
	}

	clock := quartz.NewReal()
	runID := clock.Now().Format("20060102T150405Z")

	rolloutCfg := rollout.Config{K: cfg.Run.RolloutK, R: cfg.Run.RolloutR}
	pipeline := calibration.NewPipeline(logger, infoset.Calibration(), rolloutCfg, cfg.Run.ArtifactsRoot, runID)

	logger.Info().
		Str("run_id", runID).
		Str("mode", mode.String()).
		Int("seed_count", len(seeds)).
		Int("rollout_k", rolloutCfg.K).
		Int("rollout_r", rolloutCfg.R).
		Msg("starting calibration run")

	start := time.Now()
	if err := pipeline.Run(seeds, mode); err != nil {
		return fmt.Errorf("calibrate: run pipeline: %w", err)
	}

	logger.Info().
		Str("run_id", runID).
		Dur("elapsed", time.Since(start)).
		Str("artifacts_dir", calibration.RunDir(cfg.Run.ArtifactsRoot, runID)).
		Msg("calibration run complete")

	fmt.Fprintln(os.Stdout, runID)
	return nil
}
