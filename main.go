// gobench - a micro-benchmark harness with trimmed statistics.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/jeranaias/gobench/internal/bench"
	"github.com/jeranaias/gobench/internal/cli"
	"github.com/jeranaias/gobench/internal/config"
	"github.com/jeranaias/gobench/internal/export"
	"github.com/jeranaias/gobench/internal/report"
)

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintHelp()
	case cli.CmdRun:
		if err := runBenchmarks(args); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
}

func runBenchmarks(args cli.Args) error {
	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		return err
	}

	suite := bench.NewSuite()
	suite.SetConfig(cfg.RunConfig())
	if err := registerWorkloads(suite); err != nil {
		return err
	}

	verbose := args.Verbose || cfg.Output.Verbose
	started := time.Now()
	outcomes := report.Run(suite, verbose, args.Quiet)
	finished := time.Now()

	exportDir := args.ExportDir
	if exportDir == "" {
		exportDir = cfg.Output.ExportDir
	}
	if exportDir != "" {
		format := args.ExportFormat
		if format == "" {
			format = cfg.Output.ExportFormat
		}
		exporter, err := export.ForFormat(format)
		if err != nil {
			return err
		}
		r := export.NewReport(suite.Config(), outcomes, started, finished)
		path, err := export.WriteReport(r, exporter, exportDir)
		if err != nil {
			return err
		}
		if !args.Quiet {
			fmt.Println("Report written to", path)
		}
	}

	for _, o := range outcomes {
		if !o.OK() {
			return fmt.Errorf("%d of %d benchmarks failed", countFailed(outcomes), len(outcomes))
		}
	}
	return nil
}

func countFailed(outcomes []bench.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.OK() {
			n++
		}
	}
	return n
}

// sink defeats dead-code elimination of the demo workloads.
var sink any

// registerWorkloads adds the stock demonstration benchmarks.
func registerWorkloads(s *bench.Suite) error {
	workloads := []struct {
		name string
		fn   bench.Func
		args bench.Args
	}{
		{"count_up", countUp, bench.Args{}},
		{"count_mixed", countMixed, bench.Args{}},
		{"build_string", buildString, bench.Args{}},
		{"append_ints", appendInts, bench.Args{}},
		{"sum_args", sumArgs, bench.Args{
			Pos:   []any{1, 2, 3},
			Named: map[string]any{"a": 4, "b": 5, "c": 6},
		}},
		{"sum_args", sumArgs, bench.Args{Pos: []any{1, 2, 3}}},
		{"sum_args", sumArgs, bench.Args{Named: map[string]any{"a": 4, "b": 5, "c": 6}}},
		{"sum_args", sumArgs, bench.Args{}},
		{"random_sleep", randomSleep, bench.Args{}},
	}
	for _, w := range workloads {
		if err := s.Add(w.name, w.fn, w.args); err != nil {
			return err
		}
	}
	return nil
}

func countUp(bench.Args) error {
	x := 0
	for i := 0; i < 10000; i++ {
		x++
	}
	sink = x
	return nil
}

func countMixed(bench.Args) error {
	x := 0
	for i := 0; i < 1000; i++ {
		x += 2
		x--
	}
	sink = x
	return nil
}

func buildString(bench.Args) error {
	var sb strings.Builder
	for i := 0; i < 10000; i++ {
		sb.WriteByte(byte(i % 256))
	}
	sink = sb.String()
	return nil
}

func appendInts(bench.Args) error {
	var xs []int
	for i := 0; i < 10000; i++ {
		xs = append(xs, i)
	}
	sink = xs
	return nil
}

func sumArgs(args bench.Args) error {
	total := 0
	for _, v := range args.Pos {
		n, ok := v.(int)
		if !ok {
			return fmt.Errorf("positional argument %v is not an int", v)
		}
		total += n
	}
	for k, v := range args.Named {
		n, ok := v.(int)
		if !ok {
			return fmt.Errorf("named argument %s=%v is not an int", k, v)
		}
		total += n
	}
	sink = total
	return nil
}

func randomSleep(bench.Args) error {
	time.Sleep(time.Duration(rand.Int63n(int64(time.Millisecond))))
	return nil
}
