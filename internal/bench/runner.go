// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bench

import (
	"time"
)

// =============================================================================
// RUN CONTROLLER
// =============================================================================

// runEntry executes one entry under cfg and returns the raw per-call
// durations in measurement order.
//
// The loop invariant: at least MinItr calls always complete; once the
// floor is met the loop stops at whichever comes first of the raw-call
// target and the soft timeout. The timeout is read only between calls,
// so a call in progress is never aborted. On a target failure the
// partial sample set is discarded by the caller; the after hook is
// still attempted.
func runEntry(e *Entry, cfg RunConfig) ([]time.Duration, *RunError, *RunError) {
	if err := cfg.Validate(); err != nil {
		re := err.(*RunError)
		re.Entry = e.Name
		return nil, re, nil
	}

	if e.before != nil {
		if err := e.before.invoke(); err != nil {
			return nil, &RunError{Kind: KindBeforeHook, Entry: e.Name, Err: err}, nil
		}
	}

	target := cfg.rawTarget()
	samples := make([]time.Duration, 0, target)

	var targetErr *RunError
	start := time.Now()
	for {
		callStart := time.Now()
		err := e.fn(e.args)
		d := time.Since(callStart)
		if err != nil {
			targetErr = &RunError{Kind: KindTarget, Entry: e.Name, Err: err}
			break
		}
		samples = append(samples, d)

		if len(samples) < cfg.MinItr {
			continue
		}
		if len(samples) >= target || time.Since(start) >= cfg.Timeout {
			break
		}
	}

	var afterErr *RunError
	if e.after != nil {
		if err := e.after.invoke(); err != nil {
			afterErr = &RunError{Kind: KindAfterHook, Entry: e.Name, Err: err}
		}
	}

	if targetErr != nil {
		return nil, targetErr, afterErr
	}
	return samples, nil, afterErr
}
