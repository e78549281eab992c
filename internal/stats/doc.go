// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package stats reduces raw benchmark timing samples to trimmed summary
// statistics.
//
// The aggregation is a pure function over a slice of per-call durations:
// samples are sorted, a configurable fraction is discarded from each end,
// and the mean, median, minimum, maximum, population standard deviation,
// and total time are computed over the retained samples.
//
// # Trimming
//
// The trim count per side is floor(n * cut). When trimming both sides
// would remove the whole set (2 * trim >= n), nothing is discarded at
// all; small sample sets are therefore always reported in full. With
// the default minimum of three iterations and any cut below one third,
// no sample is ever dropped.
//
// # Usage
//
//	summary, err := stats.Aggregate(samples, 0.05)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(summary.Mean, summary.CountUsed, summary.CountRaw)
package stats
