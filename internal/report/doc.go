// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report renders benchmark outcomes for the console.
//
// The Console type implements bench.Reporter and prints a one-line
// summary per entry, or a multi-line breakdown in verbose mode. Colors
// follow terminal capabilities: disabled for non-TTY output and when
// NO_COLOR is set, forced on with FORCE_COLOR.
//
// Durations are rendered with an adaptive unit (ps through s, then
// M:SS) sized so the mantissa stays within three significant digits.
package report
