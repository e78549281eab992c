// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/gobench/internal/bench"
	"github.com/jeranaias/gobench/internal/stats"
)

func sampleOutcomes() []bench.Outcome {
	return []bench.Outcome{
		{
			Entry:  "sum",
			Pretty: "sum(1, 2, 3)",
			Summary: &stats.Summary{
				Mean:      1500 * time.Nanosecond,
				Median:    1400 * time.Nanosecond,
				Min:       time.Microsecond,
				Max:       2 * time.Microsecond,
				Stddev:    100 * time.Nanosecond,
				Total:     1500 * time.Microsecond,
				ItrPerSec: 666666.6,
				CountUsed: 1000,
				CountRaw:  1112,
			},
		},
		{
			Entry:  "flaky",
			Pretty: "flaky()",
			Err: &bench.RunError{
				Kind:  bench.KindTarget,
				Entry: "flaky",
				Err:   errors.New("boom"),
			},
		},
	}
}

func sampleReport() *Report {
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cfg := bench.RunConfig{MaxItr: 1000, MinItr: 3, Timeout: 10 * time.Second, Cut: 0.05}
	return NewReport(cfg, sampleOutcomes(), started, started.Add(2*time.Second))
}

func TestNewReport(t *testing.T) {
	r := sampleReport()

	require.NotEmpty(t, r.RunID)
	require.Len(t, r.Entries, 2)

	ok := r.Entries[0]
	require.Equal(t, StatusOK, ok.Status)
	require.Equal(t, "sum", ok.Name)
	require.Equal(t, int64(1500), ok.MeanNs)
	require.Equal(t, 1000, ok.CountUsed)
	require.Equal(t, 1112, ok.CountRaw)
	require.Empty(t, ok.Error)

	failed := r.Entries[1]
	require.Equal(t, StatusFailed, failed.Status)
	require.Contains(t, failed.Error, "boom")
	require.Zero(t, failed.CountRaw)
}

func TestNewReport_DistinctRunIDs(t *testing.T) {
	require.NotEqual(t, sampleReport().RunID, sampleReport().RunID)
}

func TestJSONExporter_RoundTrip(t *testing.T) {
	r := sampleReport()
	content, err := (&JSONExporter{}).Export(r)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(content, &decoded))
	require.Equal(t, r.RunID, decoded.RunID)
	require.Equal(t, r.Settings, decoded.Settings)
	require.Equal(t, r.Entries, decoded.Entries)
}

func TestMarkdownExporter(t *testing.T) {
	content, err := (&MarkdownExporter{}).Export(sampleReport())
	require.NoError(t, err)
	out := string(content)

	require.Contains(t, out, "# Benchmark Report")
	require.Contains(t, out, "| sum(1, 2, 3) | 1.5µs |")
	require.Contains(t, out, "failed: flaky: target error: boom")
	require.Contains(t, out, "max_itr=1000, min_itr=3, timeout=10s, cut=0.05")
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"", "json"} {
		e, err := ForFormat(format)
		require.NoError(t, err)
		require.Equal(t, ".json", e.FileExtension())
	}
	for _, format := range []string{"markdown", "md"} {
		e, err := ForFormat(format)
		require.NoError(t, err)
		require.Equal(t, ".md", e.FileExtension())
	}
	_, err := ForFormat("xml")
	require.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	r := sampleReport()

	path, err := WriteReport(r, &JSONExporter{}, dir)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, ".json"))
	require.Contains(t, path, "gobench_20250601-120000_")

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(content, &decoded))
	require.Equal(t, r.RunID, decoded.RunID)
}
