// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/gobench/internal/report"
)

// MarkdownExporter renders the report as a Markdown document with a
// result table.
type MarkdownExporter struct{}

// Export renders the report as Markdown.
func (e *MarkdownExporter) Export(r *Report) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("report is nil")
	}

	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("- **Run ID**: %s\n", r.RunID))
	sb.WriteString(fmt.Sprintf("- **Started**: %s\n", r.StartedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("- **Finished**: %s\n", r.FinishedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("- **Settings**: max_itr=%d, min_itr=%d, timeout=%gs, cut=%g\n\n",
		r.Settings.MaxItr, r.Settings.MinItr, r.Settings.TimeoutSeconds, r.Settings.Cut))

	sb.WriteString("| Benchmark | Mean/itr | Median | Min | Max | Stddev | Itr | Status |\n")
	sb.WriteString("|-----------|----------|--------|-----|-----|--------|-----|--------|\n")
	for _, er := range r.Entries {
		if er.Status == StatusOK {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %d/%d | %s |\n",
				escapeCell(er.Call),
				report.FormatSeconds(float64(er.MeanNs)/1e9),
				report.FormatSeconds(float64(er.MedianNs)/1e9),
				report.FormatSeconds(float64(er.MinNs)/1e9),
				report.FormatSeconds(float64(er.MaxNs)/1e9),
				report.FormatSeconds(float64(er.StddevNs)/1e9),
				er.CountUsed, er.CountRaw,
				er.Status,
			))
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | - | - | - | - | - | - | %s: %s |\n",
			escapeCell(er.Call), er.Status, escapeCell(er.Error)))
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// escapeCell keeps pipes and newlines from breaking the table.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
