// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bench

import (
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// CALL CONTRACT
// =============================================================================

// Args holds the argument set bound to a callable at registration time.
// The same values are passed on every invocation.
type Args struct {
	// Pos are the positional values, in registration order.
	Pos []any
	// Named are the named values.
	Named map[string]any
}

// IsZero reports whether no arguments are bound.
func (a Args) IsZero() bool {
	return len(a.Pos) == 0 && len(a.Named) == 0
}

// Func is the uniform call contract for benchmark targets and hooks.
// Targets of any arity are wrapped in this signature; the bound Args
// are delivered unchanged on every call. A non-nil error aborts the
// entry's run.
type Func func(args Args) error

// =============================================================================
// ENTRIES AND HOOKS
// =============================================================================

// Hook is a callable run once per entry outside the timed region,
// either immediately before the first timed call or after the last.
type Hook struct {
	Name string
	fn   Func
	args Args
}

func (h *Hook) invoke() error {
	return h.fn(h.args)
}

// Entry is one registered benchmark target with its bound arguments and
// optional hooks. Entries are immutable once registered and live until
// the owning suite is cleared.
type Entry struct {
	Name   string
	fn     Func
	args   Args
	before *Hook
	after  *Hook
}

// Pretty renders the entry as a call expression, e.g.
// "sum(1, 2, 3, a=4, b=5)". Named arguments are rendered in key order
// so the output is stable.
func (e *Entry) Pretty() string {
	parts := make([]string, 0, len(e.args.Pos)+len(e.args.Named))
	for _, v := range e.args.Pos {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	keys := make([]string, 0, len(e.args.Named))
	for k := range e.args.Named {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.args.Named[k]))
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(parts, ", "))
}
