// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/gobench/internal/bench"
	"github.com/jeranaias/gobench/internal/stats"
)

func plainConsole(buf *bytes.Buffer, verbose bool) *Console {
	return NewConsole(buf, Options{Verbose: verbose, Color: false})
}

func okOutcome() bench.Outcome {
	return bench.Outcome{
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
	}
}

func TestConsole_RunStarted(t *testing.T) {
	var buf bytes.Buffer
	plainConsole(&buf, false).RunStarted([]string{"foo", "bar"})
	require.Equal(t, "Running benchmarks: foo, bar\n", buf.String())
}

func TestConsole_SummaryLine(t *testing.T) {
	var buf bytes.Buffer
	plainConsole(&buf, false).EntryFinished(okOutcome())
	require.Equal(t, "sum: 1.5µs/itr | 666666 itr/s\n", buf.String())
}

func TestConsole_VerboseBreakdown(t *testing.T) {
	var buf bytes.Buffer
	plainConsole(&buf, true).EntryFinished(okOutcome())
	out := buf.String()

	require.Contains(t, out, "sum: 1.5µs/itr | 666666 itr/s\n")
	require.Contains(t, out, "entry:               sum(1, 2, 3)\n")
	require.Contains(t, out, "std:                 100ns\n")
	require.Contains(t, out, "median:              1.4µs\n")
	require.Contains(t, out, "minimum:             1µs\n")
	require.Contains(t, out, "maximum:             2µs\n")
	require.Contains(t, out, "iterations:          1112\n")
	require.Contains(t, out, "counted iterations:  1000\n")
	require.Contains(t, out, "total time:          1.5ms\n")
}

func TestConsole_VerboseSkipsEntryLineWithoutArgs(t *testing.T) {
	o := okOutcome()
	o.Entry = "noop"
	o.Pretty = "noop()"

	var buf bytes.Buffer
	plainConsole(&buf, true).EntryFinished(o)
	require.NotContains(t, buf.String(), "entry:")
}

func TestConsole_FailureLine(t *testing.T) {
	o := bench.Outcome{
		Entry: "flaky",
		Err: &bench.RunError{
			Kind:  bench.KindTarget,
			Entry: "flaky",
			Err:   errors.New("boom"),
		},
	}

	var buf bytes.Buffer
	plainConsole(&buf, false).EntryFinished(o)
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "flaky: "))
	require.Contains(t, out, "target error: boom")
}

func TestConsole_AfterHookWarning(t *testing.T) {
	o := okOutcome()
	o.AfterErr = &bench.RunError{
		Kind:  bench.KindAfterHook,
		Entry: "sum",
		Err:   errors.New("cleanup failed"),
	}

	var buf bytes.Buffer
	plainConsole(&buf, false).EntryFinished(o)
	require.Contains(t, buf.String(), "warning: sum: after-hook error: cleanup failed")
}

func TestRun_DisableStdoutStillReturnsOutcomes(t *testing.T) {
	s := bench.NewSuite()
	s.SetConfig(bench.RunConfig{MaxItr: 3, MinItr: 3, Timeout: bench.NoTimeout, Cut: 0})
	require.NoError(t, s.Add("noop", func(bench.Args) error { return nil }, bench.Args{}))

	outcomes := Run(s, false, true)
	require.Len(t, outcomes, 1)
	require.True(t, outcomes[0].OK())
}
