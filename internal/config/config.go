// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/gobench/internal/bench"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete gobench configuration.
type Config struct {
	Run    RunSettings    `toml:"run"`
	Output OutputSettings `toml:"output"`
}

// RunSettings maps onto bench.RunConfig.
type RunSettings struct {
	// TimeoutSeconds is the soft per-entry budget in seconds. Zero
	// means the budget is spent immediately after the iteration floor.
	TimeoutSeconds float64 `toml:"timeout_seconds"`
	// MaxIterations is the retained-call target.
	MaxIterations int `toml:"max_iterations"`
	// MinIterations is the raw-call floor.
	MinIterations int `toml:"min_iterations"`
	// Cut is the trim fraction per side, in [0, 0.5).
	Cut float64 `toml:"cut"`
}

// OutputSettings controls the reporter and the optional one-shot
// report export.
type OutputSettings struct {
	// Verbose enables the multi-line per-entry summary.
	Verbose bool `toml:"verbose"`
	// ExportDir, when set, receives a report of the run.
	ExportDir string `toml:"export_dir"`
	// ExportFormat is "json" or "markdown".
	ExportFormat string `toml:"export_format"`
}

// Default returns the built-in settings, matching bench.DefaultRunConfig.
func Default() *Config {
	return &Config{
		Run: RunSettings{
			TimeoutSeconds: 10,
			MaxIterations:  1000,
			MinIterations:  3,
			Cut:            0.05,
		},
		Output: OutputSettings{
			ExportFormat: "json",
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load builds the effective configuration: defaults, then the TOML file
// at path (skipped when path is empty), then GOBENCH_* environment
// overrides. The result is validated before being returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays GOBENCH_* environment variables. Malformed values
// are ignored rather than fatal; the file and defaults still apply.
func (c *Config) applyEnv() {
	if v := os.Getenv("GOBENCH_TIMEOUT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Run.TimeoutSeconds = f
		}
	}
	if v := os.Getenv("GOBENCH_MAX_ITR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Run.MaxIterations = n
		}
	}
	if v := os.Getenv("GOBENCH_MIN_ITR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Run.MinIterations = n
		}
	}
	if v := os.Getenv("GOBENCH_CUT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Run.Cut = f
		}
	}
	if v := os.Getenv("GOBENCH_VERBOSE"); v != "" {
		c.Output.Verbose = v == "1" || v == "true"
	}
	if v := os.Getenv("GOBENCH_EXPORT_DIR"); v != "" {
		c.Output.ExportDir = v
	}
	if v := os.Getenv("GOBENCH_EXPORT_FORMAT"); v != "" {
		c.Output.ExportFormat = v
	}
}

// Validate rejects settings the run controller would refuse anyway, so
// bad config fails at load time instead of mid-run.
func (c *Config) Validate() error {
	if err := c.RunConfig().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Output.ExportFormat {
	case "", "json", "markdown":
	default:
		return fmt.Errorf("config: export_format must be json or markdown, got %q", c.Output.ExportFormat)
	}
	return nil
}

// RunConfig converts the run settings into the controller's form.
func (c *Config) RunConfig() bench.RunConfig {
	return bench.RunConfig{
		MaxItr:  c.Run.MaxIterations,
		MinItr:  c.Run.MinIterations,
		Timeout: time.Duration(c.Run.TimeoutSeconds * float64(time.Second)),
		Cut:     c.Run.Cut,
	}
}
