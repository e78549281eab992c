// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/gobench/internal/bench"
)

// =============================================================================
// CONSOLE REPORTER
// =============================================================================

// labelWidth aligns the verbose detail columns.
const labelWidth = 20

// Console prints benchmark outcomes as they arrive. It implements
// bench.Reporter.
type Console struct {
	out     io.Writer
	verbose bool
	styles  styleSet
}

// Options configures a Console.
type Options struct {
	// Verbose prints a multi-line breakdown per entry.
	Verbose bool
	// Color enables ANSI styling. Callers should pass ColorsEnabled()
	// for stdout, false for buffers and files.
	Color bool
}

// NewConsole returns a reporter writing to out.
func NewConsole(out io.Writer, opts Options) *Console {
	return &Console{
		out:     out,
		verbose: opts.Verbose,
		styles:  newStyleSet(opts.Color),
	}
}

// RunStarted announces the run.
func (c *Console) RunStarted(names []string) {
	fmt.Fprintln(c.out, c.styles.title("Running benchmarks: ")+strings.Join(names, ", "))
}

// EntryFinished prints the per-entry summary line, plus the verbose
// breakdown or failure detail.
func (c *Console) EntryFinished(o bench.Outcome) {
	if !o.OK() {
		detail := fmt.Sprintf("%s error: %v", o.Err.Kind, o.Err.Err)
		fmt.Fprintf(c.out, "%s: %s\n", c.styles.name(o.Entry), c.styles.fail(detail))
		c.printAfterWarning(o)
		return
	}

	s := o.Summary
	fmt.Fprintf(c.out, "%s: %s/itr | %s itr/s\n",
		c.styles.name(o.Entry),
		c.styles.value(FormatDuration(s.Mean)),
		c.styles.value(FormatRate(s.ItrPerSec)),
	)

	if c.verbose {
		if o.Pretty != o.Entry+"()" {
			c.detail("entry:", o.Pretty)
		}
		c.detail("std:", FormatDuration(s.Stddev))
		c.detail("median:", FormatDuration(s.Median))
		c.detail("minimum:", FormatDuration(s.Min))
		c.detail("maximum:", FormatDuration(s.Max))
		c.detail("iterations:", strconv.Itoa(s.CountRaw))
		c.detail("counted iterations:", strconv.Itoa(s.CountUsed))
		c.detail("total time:", FormatDuration(s.Total))
	}

	c.printAfterWarning(o)
}

func (c *Console) printAfterWarning(o bench.Outcome) {
	if o.AfterErr != nil {
		fmt.Fprintf(c.out, "  %s\n", c.styles.warn("warning: "+o.AfterErr.Error()))
	}
}

func (c *Console) detail(label, value string) {
	fmt.Fprintf(c.out, "  %s %s\n", c.styles.label(runewidth.FillRight(label, labelWidth)), value)
}

// =============================================================================
// RUN WRAPPER
// =============================================================================

// Run benchmarks every entry in the suite and prints per-entry
// summaries to stdout. disableStdout suppresses all harness output;
// verbose switches the one-line summary to the full breakdown.
func Run(s *bench.Suite, verbose, disableStdout bool) []bench.Outcome {
	if disableStdout {
		return s.Run(bench.RunOptions{})
	}
	c := NewConsole(os.Stdout, Options{Verbose: verbose, Color: ColorsEnabled()})
	return s.Run(bench.RunOptions{Reporter: c})
}
