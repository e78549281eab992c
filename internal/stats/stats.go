// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package stats

import (
	"errors"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// ErrNoSamples is returned when aggregation is invoked on an empty
// sample set. The run controller guarantees at least one sample per
// completed run, so hitting this indicates a caller bug.
var ErrNoSamples = errors.New("stats: no samples to aggregate")

// =============================================================================
// SUMMARY
// =============================================================================

// Summary holds the trimmed statistics for one benchmark run.
//
// Min and Max are the extremes of the retained samples, not the global
// extremes of the raw set. Total is the exact sum of the retained
// durations; it is never re-derived from Mean and CountUsed.
type Summary struct {
	Mean   time.Duration `json:"mean"`
	Median time.Duration `json:"median"`
	Min    time.Duration `json:"min"`
	Max    time.Duration `json:"max"`
	Stddev time.Duration `json:"stddev"`
	Total  time.Duration `json:"total"`

	// ItrPerSec is the retained-iteration throughput (CountUsed / Total).
	ItrPerSec float64 `json:"itr_per_sec"`

	// CountUsed is the number of samples retained after trimming.
	CountUsed int `json:"count_used"`
	// CountRaw is the number of raw calls executed.
	CountRaw int `json:"count_raw"`
}

// =============================================================================
// AGGREGATION
// =============================================================================

// Aggregate sorts samples, discards the cut fraction from each end, and
// computes a Summary over the retained middle. The input slice is not
// modified.
//
// cut values below zero are treated as zero. Large cuts never empty the
// retained set: when 2*floor(n*cut) >= n the full set is kept.
func Aggregate(samples []time.Duration, cut float64) (*Summary, error) {
	n := len(samples)
	if n == 0 {
		return nil, ErrNoSamples
	}
	if cut < 0 {
		cut = 0
	}

	sorted := make([]time.Duration, n)
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	trim := int(float64(n) * cut)
	if 2*trim >= n {
		trim = 0
	}
	retained := sorted[trim : n-trim]

	xs := make([]float64, len(retained))
	var total time.Duration
	for i, d := range retained {
		xs[i] = float64(d)
		total += d
	}

	mean := stat.Mean(xs, nil)
	stddev := stat.PopStdDev(xs, nil)
	if math.IsNaN(stddev) {
		stddev = 0
	}

	s := &Summary{
		Mean:      time.Duration(math.Round(mean)),
		Median:    retained[len(retained)/2],
		Min:       retained[0],
		Max:       retained[len(retained)-1],
		Stddev:    time.Duration(math.Round(stddev)),
		Total:     total,
		CountUsed: len(retained),
		CountRaw:  n,
	}
	if total > 0 {
		s.ItrPerSec = float64(s.CountUsed) / total.Seconds()
	}
	return s, nil
}
