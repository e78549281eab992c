// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bench implements the micro-benchmark suite: registration of
// callables with bound arguments, the per-entry run controller, and the
// tagged per-entry outcome model.
//
// A Suite owns an ordered list of entries and a shared RunConfig. Each
// entry is invoked repeatedly by the run controller, which times every
// call on the monotonic clock and decides between calls whether to keep
// going. The raw samples are then reduced by the stats package.
//
// # Iteration control
//
// The controller never stops before MinItr raw calls have completed.
// After that floor is met it stops as soon as either the soft Timeout
// budget has elapsed or the raw-call target has been reached. The raw
// target is ceil(MaxItr / (1 - 2*cut)): enough extra calls that roughly
// MaxItr samples survive trimming. The timeout is consulted only
// between calls; a single call may overrun the budget arbitrarily, and
// there is no mechanism to interrupt a hung target.
//
// # Failure isolation
//
// A failing entry never aborts the suite. Every entry produces an
// Outcome carrying either a summary or a kind-tagged error, and the
// run loop always advances to the next entry.
//
// Suites are not safe for concurrent use; entries run strictly one
// after another and calls within an entry are strictly sequential.
// Side effects a target leaves behind are visible to its subsequent
// calls, which mirrors realistic repeated-call behavior.
package bench
