// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package stats

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ms(n int64) time.Duration { return time.Duration(n) * time.Millisecond }

// =============================================================================
// AGGREGATION TESTS
// =============================================================================

func TestAggregate_Empty(t *testing.T) {
	_, err := Aggregate(nil, 0.1)
	require.ErrorIs(t, err, ErrNoSamples)

	_, err = Aggregate([]time.Duration{}, 0)
	require.ErrorIs(t, err, ErrNoSamples)
}

func TestAggregate_SingleSample(t *testing.T) {
	s, err := Aggregate([]time.Duration{ms(5)}, 0.4)
	require.NoError(t, err)
	require.Equal(t, ms(5), s.Mean)
	require.Equal(t, ms(5), s.Median)
	require.Equal(t, ms(5), s.Min)
	require.Equal(t, ms(5), s.Max)
	require.Equal(t, time.Duration(0), s.Stddev)
	require.Equal(t, ms(5), s.Total)
	require.Equal(t, 1, s.CountUsed)
	require.Equal(t, 1, s.CountRaw)
}

// Three samples with a large cut hit the no-trim boundary rule:
// floor(3*0.4) = 1 per side, but removing both sides would leave one
// of three, and 2*1 >= 3, so the full set is retained.
func TestAggregate_SmallSetNeverTrimsToEmpty(t *testing.T) {
	s, err := Aggregate([]time.Duration{ms(1), ms(2), ms(3)}, 0.4)
	require.NoError(t, err)
	require.Equal(t, 3, s.CountUsed)
	require.Equal(t, 3, s.CountRaw)
	require.Equal(t, ms(2), s.Mean)
	require.Equal(t, ms(1), s.Min)
	require.Equal(t, ms(3), s.Max)
	require.Equal(t, ms(6), s.Total)
}

func TestAggregate_TrimsBothEnds(t *testing.T) {
	// 10 samples, cut 0.1: one discarded from each end.
	samples := []time.Duration{
		ms(100), ms(1), ms(2), ms(3), ms(4), ms(5), ms(6), ms(7), ms(8), ms(0),
	}
	s, err := Aggregate(samples, 0.1)
	require.NoError(t, err)
	require.Equal(t, 8, s.CountUsed)
	require.Equal(t, 10, s.CountRaw)

	// Min/Max are the post-trim extremes, not the global ones.
	require.Equal(t, ms(1), s.Min)
	require.Equal(t, ms(8), s.Max)
	require.Equal(t, ms(36), s.Total)
	require.Equal(t, ms(36)/8, s.Mean)
}

func TestAggregate_PopulationStddev(t *testing.T) {
	// Classic population example: mean 5, population stddev exactly 2.
	// The sample (n-1) estimator would give ~2.138 instead.
	samples := []time.Duration{ms(2), ms(4), ms(4), ms(4), ms(5), ms(5), ms(7), ms(9)}
	s, err := Aggregate(samples, 0)
	require.NoError(t, err)
	require.Equal(t, ms(5), s.Mean)
	require.Equal(t, ms(2), s.Stddev)
}

func TestAggregate_MedianUsesUpperMiddle(t *testing.T) {
	s, err := Aggregate([]time.Duration{ms(1), ms(2), ms(3), ms(4)}, 0)
	require.NoError(t, err)
	require.Equal(t, ms(3), s.Median)

	s, err = Aggregate([]time.Duration{ms(1), ms(2), ms(3)}, 0)
	require.NoError(t, err)
	require.Equal(t, ms(2), s.Median)
}

func TestAggregate_TotalIsExactRetainedSum(t *testing.T) {
	// Values chosen so a mean*count reconstruction would drift.
	samples := []time.Duration{7 * time.Nanosecond, 11 * time.Nanosecond, 13 * time.Nanosecond}
	s, err := Aggregate(samples, 0)
	require.NoError(t, err)
	require.Equal(t, 31*time.Nanosecond, s.Total)
}

func TestAggregate_NegativeCutTreatedAsZero(t *testing.T) {
	s, err := Aggregate([]time.Duration{ms(1), ms(2)}, -1)
	require.NoError(t, err)
	require.Equal(t, 2, s.CountUsed)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	samples := make([]time.Duration, 200)
	for i := range samples {
		samples[i] = time.Duration(rng.Int63n(int64(time.Millisecond)))
	}

	want, err := Aggregate(samples, 0.1)
	require.NoError(t, err)

	shuffled := make([]time.Duration, len(samples))
	copy(shuffled, samples)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	got, err := Aggregate(shuffled, 0.1)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestAggregate_Idempotent(t *testing.T) {
	samples := []time.Duration{ms(3), ms(1), ms(4), ms(1), ms(5), ms(9), ms(2), ms(6)}

	first, err := Aggregate(samples, 0.25)
	require.NoError(t, err)
	second, err := Aggregate(samples, 0.25)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	samples := []time.Duration{ms(9), ms(1), ms(5)}
	_, err := Aggregate(samples, 0)
	require.NoError(t, err)
	require.Equal(t, []time.Duration{ms(9), ms(1), ms(5)}, samples)
}

func TestAggregate_CountBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 3, 5, 10, 99, 1000} {
		for _, cut := range []float64{0, 0.05, 0.1, 0.25, 0.49} {
			samples := make([]time.Duration, n)
			for i := range samples {
				samples[i] = time.Duration(rng.Int63n(int64(time.Second)))
			}
			s, err := Aggregate(samples, cut)
			require.NoError(t, err)
			require.GreaterOrEqual(t, s.CountUsed, 1)
			require.LessOrEqual(t, s.CountUsed, s.CountRaw)
			require.GreaterOrEqual(t, s.CountUsed, s.CountRaw-2*int(float64(n)*cut))
		}
	}
}
