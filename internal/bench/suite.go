// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bench

import (
	"fmt"
	"time"

	"github.com/jeranaias/gobench/internal/stats"
)

// =============================================================================
// SUITE
// =============================================================================

// Suite owns an ordered set of benchmark entries and the run
// parameters shared by all of them. The zero value is not usable;
// construct with NewSuite. There is deliberately no package-level
// default suite: callers pass their own.
type Suite struct {
	entries []*Entry
	before  *Hook
	after   *Hook
	cfg     RunConfig
}

// NewSuite returns an empty suite with default run parameters.
func NewSuite() *Suite {
	return &Suite{cfg: DefaultRunConfig()}
}

// =============================================================================
// REGISTRATION
// =============================================================================

// Add registers a benchmark target with its bound arguments. The
// arguments are reused identically on every call.
func (s *Suite) Add(name string, fn Func, args Args) error {
	if fn == nil {
		return fmt.Errorf("bench: target %q must be a function", name)
	}
	s.entries = append(s.entries, &Entry{Name: name, fn: fn, args: args})
	return nil
}

// Before sets a hook run once per entry immediately before its first
// timed call. The hook's execution is never included in the samples.
func (s *Suite) Before(name string, fn Func, args Args) error {
	if fn == nil {
		return fmt.Errorf("bench: before hook %q must be a function", name)
	}
	s.before = &Hook{Name: name, fn: fn, args: args}
	return nil
}

// After sets a hook run once per entry after its last timed call, even
// when the entry stopped on a timeout or a target failure.
func (s *Suite) After(name string, fn Func, args Args) error {
	if fn == nil {
		return fmt.Errorf("bench: after hook %q must be a function", name)
	}
	s.after = &Hook{Name: name, fn: fn, args: args}
	return nil
}

// Clear removes all registered entries. Hooks and run parameters are
// kept.
func (s *Suite) Clear() {
	s.entries = nil
}

// Len returns the number of registered entries.
func (s *Suite) Len() int {
	return len(s.entries)
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// SetTimeout sets the soft wall-clock budget per entry.
func (s *Suite) SetTimeout(d time.Duration) {
	s.cfg.Timeout = d
}

// SetMaxItr sets the target number of retained calls.
func (s *Suite) SetMaxItr(n int) {
	s.cfg.MaxItr = n
}

// SetMinItr sets the raw-call floor.
func (s *Suite) SetMinItr(n int) {
	s.cfg.MinItr = n
}

// SetCut sets the trim fraction per side.
func (s *Suite) SetCut(f float64) {
	s.cfg.Cut = f
}

// SetConfig replaces the whole run configuration.
func (s *Suite) SetConfig(cfg RunConfig) {
	s.cfg = cfg
}

// Config returns the current run configuration.
func (s *Suite) Config() RunConfig {
	return s.cfg
}

// Snapshot returns the suite's current state as a plain mapping:
// registered entries (rendered as call expressions), run parameters,
// and hook names.
func (s *Suite) Snapshot() map[string]any {
	tests := make([]string, len(s.entries))
	for i, e := range s.entries {
		tests[i] = e.Pretty()
	}
	snap := map[string]any{
		"tests":   tests,
		"timeout": s.cfg.Timeout,
		"max_itr": s.cfg.MaxItr,
		"min_itr": s.cfg.MinItr,
		"cut":     s.cfg.Cut,
		"before":  "",
		"after":   "",
	}
	if s.before != nil {
		snap["before"] = s.before.Name
	}
	if s.after != nil {
		snap["after"] = s.after.Name
	}
	return snap
}

// =============================================================================
// RUN LOOP
// =============================================================================

// Reporter receives run progress. Implementations write the console
// summary; a nil reporter runs silently.
type Reporter interface {
	// RunStarted is called once with the entry names, in run order.
	RunStarted(names []string)
	// EntryFinished is called after each entry with its outcome.
	EntryFinished(o Outcome)
}

// RunOptions configures one suite invocation.
type RunOptions struct {
	// Reporter receives progress and results. nil disables output.
	Reporter Reporter
}

// Run benchmarks every registered entry in registration order and
// returns one outcome per entry. A failure in one entry's hooks or
// target never prevents the remaining entries from running.
func (s *Suite) Run(opts RunOptions) []Outcome {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	if opts.Reporter != nil {
		opts.Reporter.RunStarted(names)
	}

	outcomes := make([]Outcome, 0, len(s.entries))
	for _, e := range s.entries {
		o := s.runOne(e)
		if opts.Reporter != nil {
			opts.Reporter.EntryFinished(o)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}

// runOne executes a single entry and reduces its samples. The suite
// hooks are attached at run time so entries registered before a
// Before/After call still get them.
func (s *Suite) runOne(e *Entry) Outcome {
	run := &Entry{Name: e.Name, fn: e.fn, args: e.args, before: s.before, after: s.after}

	samples, runErr, afterErr := runEntry(run, s.cfg)
	o := Outcome{Entry: e.Name, Pretty: e.Pretty(), AfterErr: afterErr}
	if runErr != nil {
		o.Err = runErr
		return o
	}

	summary, err := stats.Aggregate(samples, s.cfg.Cut)
	if err != nil {
		o.Err = &RunError{Kind: KindNoSamples, Entry: e.Name, Err: err}
		return o
	}
	o.Summary = summary
	return o
}

// Entries returns the registered entries in order. The slice is a copy;
// entries themselves are immutable.
func (s *Suite) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
