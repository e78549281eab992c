// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"github.com/charmbracelet/lipgloss"
)

// init configures lipgloss color profile based on terminal capabilities.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// styleSet holds the render functions the console reporter uses. The
// plain variant is the identity, so test output and piped output carry
// no escape sequences.
type styleSet struct {
	title func(string) string
	name  func(string) string
	value func(string) string
	label func(string) string
	fail  func(string) string
	warn  func(string) string
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")) // White

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Light gray

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")) // Red

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange
)

func newStyleSet(colored bool) styleSet {
	if !colored {
		id := func(s string) string { return s }
		return styleSet{title: id, name: id, value: id, label: id, fail: id, warn: id}
	}
	return styleSet{
		title: func(s string) string { return titleStyle.Render(s) },
		name:  func(s string) string { return nameStyle.Render(s) },
		value: func(s string) string { return valueStyle.Render(s) },
		label: func(s string) string { return labelStyle.Render(s) },
		fail:  func(s string) string { return failStyle.Render(s) },
		warn:  func(s string) string { return warnStyle.Render(s) },
	}
}
