// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// outcome.go - Tagged per-entry results and kind-tagged run errors.
//
// A failure in one entry must never abort the rest of the suite, so the
// run loop returns an Outcome per entry instead of propagating errors
// upward. Callers branch on Outcome.OK or on the error Kind.

package bench

import (
	"errors"
	"fmt"

	"github.com/jeranaias/gobench/internal/stats"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

// ErrorKind classifies a run failure.
type ErrorKind int

const (
	// KindConfig: invalid run parameters, detected before any call.
	KindConfig ErrorKind = iota
	// KindBeforeHook: the before hook failed; no timed call was made.
	KindBeforeHook
	// KindAfterHook: the after hook failed; collected samples stand.
	KindAfterHook
	// KindTarget: the benchmarked callable failed during a timed call.
	KindTarget
	// KindNoSamples: aggregation was handed an empty sample set.
	KindNoSamples
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "configuration"
	case KindBeforeHook:
		return "before-hook"
	case KindAfterHook:
		return "after-hook"
	case KindTarget:
		return "target"
	case KindNoSamples:
		return "insufficient-data"
	default:
		return "unknown"
	}
}

// RunError is a kind-tagged error attached to an entry's outcome.
type RunError struct {
	Kind  ErrorKind
	Entry string
	Err   error
}

func (e *RunError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("%s: %s error: %v", e.Entry, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a RunError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *RunError
	return errors.As(err, &re) && re.Kind == kind
}

func newConfigError(format string, args ...any) *RunError {
	return &RunError{Kind: KindConfig, Err: fmt.Errorf(format, args...)}
}

// =============================================================================
// OUTCOMES
// =============================================================================

// Outcome is the result of running one entry: a summary on success, a
// kind-tagged error on failure. AfterErr is set when the after hook
// failed after samples were already collected; the summary remains
// valid in that case.
type Outcome struct {
	Entry string
	// Pretty is the entry rendered as a call expression, for display.
	Pretty  string
	Summary *stats.Summary
	Err     *RunError
	// AfterErr records an after-hook failure that did not invalidate
	// the collected samples.
	AfterErr *RunError
}

// OK reports whether the entry produced a usable summary.
func (o Outcome) OK() bool {
	return o.Err == nil
}
