// Package config loads the HCL-based runtime and calibration
// configuration files: parse with hclparse, decode with gohcl, fall
// back to an in-memory default when the file is absent rather than
// failing startup.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// RuntimeConfig configures the HTTP adapter process (cmd/apiserver).
type RuntimeConfig struct {
	Server RuntimeServerSettings `hcl:"server,block"`
}

// RuntimeServerSettings are the address and artifact-location settings
// an apiserver instance needs at startup.
type RuntimeServerSettings struct {
	Address        string `hcl:"address,optional"`
	Port           int    `hcl:"port,optional"`
	LogLevel       string `hcl:"log_level,optional"`
	ArtifactsRoot  string `hcl:"artifacts_root,optional"`
	ActiveRunID    string `hcl:"active_run_id,optional"`
	HintBudget     int    `hcl:"hint_budget,optional"`
	JumpBudget     int    `hcl:"jump_budget,optional"`
}

// DefaultRuntimeConfig returns the configuration used when no HCL file
// is present.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Server: RuntimeServerSettings{
			Address:       "localhost",
			Port:          8080,
			LogLevel:      "info",
			ArtifactsRoot: "artifacts",
			HintBudget:    20,
			JumpBudget:    10,
		},
	}
}

// LoadRuntimeConfig loads RuntimeConfig from an HCL file. A missing
// file is not an error: the caller gets DefaultRuntimeConfig, with no
// indication that the file was absent.
func LoadRuntimeConfig(filename string) (*RuntimeConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultRuntimeConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", filename, diags.Error())
	}

	cfg := DefaultRuntimeConfig()
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}
	applyRuntimeDefaults(cfg)
	return cfg, nil
}

func applyRuntimeDefaults(cfg *RuntimeConfig) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Server.ArtifactsRoot == "" {
		cfg.Server.ArtifactsRoot = "artifacts"
	}
}

// Validate checks RuntimeConfig invariants the HTTP adapter depends on.
func (c *RuntimeConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid port: %d", c.Server.Port)
	}
	if c.Server.ArtifactsRoot == "" {
		return fmt.Errorf("config: artifacts_root must not be empty")
	}
	return nil
}

// CalibrationConfig configures a cmd/calibrate run.
type CalibrationConfig struct {
	Run CalibrationRunSettings `hcl:"run,block"`
}

// CalibrationRunSettings are the knobs a calibration batch needs.
type CalibrationRunSettings struct {
	Mode          string `hcl:"mode,optional"`
	SeedCount     int    `hcl:"seed_count,optional"`
	SeedStart     int    `hcl:"seed_start,optional"`
	RolloutK      int    `hcl:"rollout_k,optional"`
	RolloutR      int    `hcl:"rollout_r,optional"`
	ArtifactsRoot string `hcl:"artifacts_root,optional"`
}

// DefaultCalibrationConfig returns the configuration used when no HCL
// file is present.
func DefaultCalibrationConfig() *CalibrationConfig {
	return &CalibrationConfig{
		Run: CalibrationRunSettings{
			Mode:          "practice",
			SeedCount:     1000,
			SeedStart:     1,
			RolloutK:      10,
			RolloutR:      128,
			ArtifactsRoot: "artifacts",
		},
	}
}

// LoadCalibrationConfig loads CalibrationConfig from an HCL file,
// falling back to defaults when the file is absent.
func LoadCalibrationConfig(filename string) (*CalibrationConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultCalibrationConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", filename, diags.Error())
	}

	cfg := DefaultCalibrationConfig()
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}
	if cfg.Run.RolloutK == 0 {
		cfg.Run.RolloutK = 10
	}
	if cfg.Run.RolloutR == 0 {
		cfg.Run.RolloutR = 128
	}
	if cfg.Run.ArtifactsRoot == "" {
		cfg.Run.ArtifactsRoot = "artifacts"
	}
	return cfg, nil
}
