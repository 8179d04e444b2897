package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/lox/pokercore/internal/calibration"
	"github.com/lox/pokercore/internal/config"
	"github.com/lox/pokercore/internal/httpapi"
	"github.com/lox/pokercore/internal/shared"
)

// ServeCmd starts the runtime HTTP/WebSocket adapter.
type ServeCmd struct {
	Config       string `kong:"help='Path to an HCL runtime config file',default='apiserver.hcl'"`
	Addr         string `kong:"help='Listen address; overrides the config file',default=''"`
	SeedManifest string `kong:"help='Path to seed_manifest.json; defaults to <artifacts_root>/pipeline/<run_id>/seed_manifest.json'"`
	Debug        bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := config.LoadRuntimeConfig(c.Config)
	if err != nil {
		return fmt.Errorf("apiserver: load config: %w", err)
	}
	if c.Addr != "" {
		if err := applyAddr(cfg, c.Addr); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("apiserver: invalid config: %w", err)
	}

	manifestPath := c.SeedManifest
	if manifestPath == "" {
		manifestPath = calibration.RunDir(cfg.Server.ArtifactsRoot, cfg.Server.ActiveRunID) + "/seed_manifest.json"
	}
	manifest, err := calibration.LoadSeedManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("apiserver: load seed manifest: %w", err)
	}

	srv := httpapi.NewServer(logger, cfg, manifest)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.Info().Str("addr", addr).Str("seed_manifest", manifestPath).Msg("starting apiserver")

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	ctx := shared.SetupSignalHandler(logger)
	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down apiserver")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

func applyAddr(cfg *config.RuntimeConfig, addr string) error {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("apiserver: invalid --addr %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("apiserver: invalid --addr %q: %w", addr, err)
	}
	cfg.Server.Address = host
	cfg.Server.Port = port
	return nil
}
