// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes the outcome of a single benchmark run to disk
// as JSON or Markdown. A report is a one-shot artifact of the run that
// produced it: nothing here reads reports back or compares them across
// runs.
package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/gobench/internal/bench"
	"github.com/jeranaias/gobench/internal/util"
)

// =============================================================================
// REPORT MODEL
// =============================================================================

// Report captures everything about one suite invocation.
type Report struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Settings   Settings      `json:"settings"`
	Entries    []EntryReport `json:"entries"`
}

// Settings echoes the run parameters the report was produced under.
type Settings struct {
	MaxItr         int     `json:"max_itr"`
	MinItr         int     `json:"min_itr"`
	TimeoutSeconds float64 `json:"timeout_seconds"`
	Cut            float64 `json:"cut"`
}

// EntryReport is one entry's outcome in exportable form. Durations are
// nanoseconds.
type EntryReport struct {
	Name   string `json:"name"`
	Call   string `json:"call"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`

	MeanNs    int64   `json:"mean_ns,omitempty"`
	MedianNs  int64   `json:"median_ns,omitempty"`
	MinNs     int64   `json:"min_ns,omitempty"`
	MaxNs     int64   `json:"max_ns,omitempty"`
	StddevNs  int64   `json:"stddev_ns,omitempty"`
	TotalNs   int64   `json:"total_ns,omitempty"`
	ItrPerSec float64 `json:"itr_per_sec,omitempty"`
	CountUsed int     `json:"count_used,omitempty"`
	CountRaw  int     `json:"count_raw,omitempty"`
}

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// NewReport assembles a report from the outcomes of one run.
func NewReport(cfg bench.RunConfig, outcomes []bench.Outcome, started, finished time.Time) *Report {
	r := &Report{
		RunID:      uuid.NewString(),
		StartedAt:  started,
		FinishedAt: finished,
		Settings: Settings{
			MaxItr:         cfg.MaxItr,
			MinItr:         cfg.MinItr,
			TimeoutSeconds: cfg.Timeout.Seconds(),
			Cut:            cfg.Cut,
		},
		Entries: make([]EntryReport, 0, len(outcomes)),
	}

	for _, o := range outcomes {
		er := EntryReport{Name: o.Entry, Call: o.Pretty}
		if o.OK() {
			s := o.Summary
			er.Status = StatusOK
			er.MeanNs = int64(s.Mean)
			er.MedianNs = int64(s.Median)
			er.MinNs = int64(s.Min)
			er.MaxNs = int64(s.Max)
			er.StddevNs = int64(s.Stddev)
			er.TotalNs = int64(s.Total)
			er.ItrPerSec = s.ItrPerSec
			er.CountUsed = s.CountUsed
			er.CountRaw = s.CountRaw
		} else {
			er.Status = StatusFailed
			er.Error = o.Err.Error()
		}
		if o.AfterErr != nil && er.Error == "" {
			er.Error = o.AfterErr.Error()
		}
		r.Entries = append(r.Entries, er)
	}
	return r
}

// =============================================================================
// EXPORTERS
// =============================================================================

// Exporter renders a report in one output format.
type Exporter interface {
	// Export renders the report and returns the file content.
	Export(r *Report) ([]byte, error)
	// FileExtension returns the extension for the format (e.g. ".json").
	FileExtension() string
}

// ForFormat returns the exporter for a format name ("json" or
// "markdown").
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "", "json":
		return &JSONExporter{}, nil
	case "markdown", "md":
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("export: unknown format %q", format)
	}
}

// WriteReport renders the report and writes it into dir. The filename
// carries the timestamp and a short run ID. Returns the written path.
func WriteReport(r *Report, e Exporter, dir string) (string, error) {
	content, err := e.Export(r)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	short := r.RunID
	if len(short) > 8 {
		short = short[:8]
	}
	filename := fmt.Sprintf("gobench_%s_%s%s",
		r.StartedAt.Format("20060102-150405"),
		short,
		e.FileExtension(),
	)

	path := filepath.Join(dir, filename)
	if err := util.AtomicWriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
