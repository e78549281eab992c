// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// =============================================================================
// DURATION FORMATTING
// =============================================================================

var units = []struct {
	suffix string
	ratio  float64
}{
	{"ps", 1e-12},
	{"ns", 1e-9},
	{"µs", 1e-6},
	{"ms", 1e-3},
	{"s", 1},
}

// FormatSeconds renders a duration in seconds with an adaptive unit and
// three significant digits. The unit switches when the mantissa would
// round into four digits (999.5), except seconds, which hand over to
// minute formatting at 59.95 so "60s" is never printed.
func FormatSeconds(t float64) string {
	for _, u := range units {
		factor := 999.5
		if u.suffix == "s" {
			factor = 59.95
		}
		if t < factor*u.ratio {
			return strconv.FormatFloat(t/u.ratio, 'g', 3, 64) + u.suffix
		}
	}

	secs := int(math.Round(t))
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatDuration is FormatSeconds over a time.Duration.
func FormatDuration(d time.Duration) string {
	return FormatSeconds(d.Seconds())
}

// FormatRate renders an iterations-per-second figure: whole numbers
// above 10, two decimals below.
func FormatRate(itrPerSec float64) string {
	if itrPerSec > 10 {
		return strconv.FormatInt(int64(itrPerSec), 10)
	}
	return strconv.FormatFloat(math.Round(itrPerSec*100)/100, 'f', -1, 64)
}
