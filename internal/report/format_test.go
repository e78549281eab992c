// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"testing"
	"time"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0ps"},
		{5e-10, "500ps"},
		{1.5e-9, "1.5ns"},
		{500e-9, "500ns"},
		{1.25e-6, "1.25µs"},
		{0.0015, "1.5ms"},
		{0.25, "250ms"},
		{2, "2s"},
		{59.4, "59.4s"},
		{90, "01:30"},
		{3723, "1:02:03"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.in); got != tt.want {
			t.Errorf("FormatSeconds(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{1500 * time.Nanosecond, "1.5µs"},
		{2 * time.Second, "2s"},
		{3 * time.Minute, "03:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{812345.6, "812345"},
		{11, "11"},
		{9.876, "9.88"},
		{0.5, "0.5"},
	}
	for _, tt := range tests {
		if got := FormatRate(tt.in); got != tt.want {
			t.Errorf("FormatRate(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
