// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bench

import (
	"math"
	"time"
)

// NoTimeout disables the soft time budget: the controller runs until
// the raw-call target is reached. A Timeout of zero is meaningful on
// its own (stop as soon as MinItr calls have completed), so it cannot
// double as the disabled value.
const NoTimeout = time.Duration(math.MaxInt64)

// maxCut caps the cut used for the raw-call target so the denominator
// 1-2*cut stays positive.
const maxCut = 0.499

// RunConfig holds the iteration-control parameters shared by every
// entry in a run. It is read-only while a run is in progress.
type RunConfig struct {
	// MaxItr is the target number of retained calls after trimming.
	MaxItr int
	// MinItr is the minimum number of raw calls executed regardless of
	// the timeout.
	MinItr int
	// Timeout is the soft wall-clock budget, checked only between calls.
	Timeout time.Duration
	// Cut is the fraction of samples discarded from each end before
	// aggregation, in [0, 0.5).
	Cut float64
}

// DefaultRunConfig returns the stock parameters: 10s budget, 1000
// retained iterations, 3-call floor, 5% cut per side.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		MaxItr:  1000,
		MinItr:  3,
		Timeout: 10 * time.Second,
		Cut:     0.05,
	}
}

// Validate checks the config before any timed call is made.
func (c RunConfig) Validate() error {
	if c.MaxItr <= 0 {
		return newConfigError("max_itr must be >= 1, got %d", c.MaxItr)
	}
	if c.MinItr <= 0 {
		return newConfigError("min_itr must be >= 1, got %d", c.MinItr)
	}
	if c.Timeout < 0 {
		return newConfigError("timeout must be non-negative, got %s", c.Timeout)
	}
	if c.Cut < 0 || c.Cut >= 0.5 {
		return newConfigError("cut must be in [0, 0.5), got %g", c.Cut)
	}
	return nil
}

// rawTarget is the number of raw calls needed so that about MaxItr
// samples survive trimming: ceil(MaxItr / (1 - 2*cut)).
func (c RunConfig) rawTarget() int {
	cut := c.Cut
	if cut < 0 {
		cut = 0
	}
	if cut > maxCut {
		cut = maxCut
	}
	return int(math.Ceil(float64(c.MaxItr) / (1 - 2*cut)))
}
