// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses command-line arguments for the gobench binary.
package cli

import (
	"fmt"
	"os"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command is the action the binary should take.
type Command int

const (
	CmdRun Command = iota
	CmdVersion
	CmdHelp
)

// Args holds the parsed command-line options.
type Args struct {
	// Verbose prints the full per-entry breakdown.
	Verbose bool
	// Quiet suppresses all harness output.
	Quiet bool
	// ConfigPath is an optional TOML settings file.
	ConfigPath string
	// ExportDir, when set, receives a report of the run.
	ExportDir string
	// ExportFormat is "json" or "markdown"; empty defers to config.
	ExportFormat string
}

// Parse reads os.Args and returns the command plus its options.
func Parse() (Command, Args) {
	return parse(os.Args[1:])
}

func parse(raw []string) (Command, Args) {
	p := NewArgParser(raw)

	switch p.Subcommand() {
	case "version":
		return CmdVersion, Args{}
	case "help":
		return CmdHelp, Args{}
	}
	if p.BoolFlag("version") {
		return CmdVersion, Args{}
	}
	if p.BoolFlag("help") || p.BoolFlag("h") {
		return CmdHelp, Args{}
	}

	args := Args{
		Verbose:      p.BoolFlag("verbose") || p.BoolFlag("v"),
		Quiet:        p.BoolFlag("quiet") || p.BoolFlag("q"),
		ConfigPath:   p.Flag("config"),
		ExportDir:    p.Flag("export"),
		ExportFormat: p.Flag("format"),
	}
	return CmdRun, args
}

// PrintVersion writes the build information to stdout.
func PrintVersion() {
	fmt.Printf("gobench %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// PrintHelp writes usage to stdout.
func PrintHelp() {
	fmt.Print(`gobench - micro-benchmark harness

Usage:
  gobench [flags]
  gobench version

Flags:
  --verbose, -v     Print the full per-entry breakdown
  --quiet, -q       Suppress all output (results still collected)
  --config PATH     Load run parameters from a TOML file
  --export DIR      Write a run report into DIR
  --format FORMAT   Report format: json (default) or markdown
  --help, -h        Show this help

Environment:
  GOBENCH_TIMEOUT, GOBENCH_MAX_ITR, GOBENCH_MIN_ITR, GOBENCH_CUT,
  GOBENCH_VERBOSE, GOBENCH_EXPORT_DIR, GOBENCH_EXPORT_FORMAT
`)
}
