// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     diffviewer
// Description: Styles for the diff viewer TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package diffviewer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/nvdiff/internal/compare"
	"github.com/msto63/nvdiff/internal/report"
)

// Colors beyond the shared report palette
var (
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray
	ColorBgPanel   = lipgloss.Color("#1E293B") // Slate 800
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(report.ColorPrimary).
			Bold(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(report.ColorPrimary).
			Padding(0, 2)

	FileLeftStyle = lipgloss.NewStyle().
			Foreground(report.ColorSecondary).
			Bold(true)

	FileRightStyle = lipgloss.NewStyle().
			Foreground(report.ColorAccent).
			Bold(true)
)

// Pair styles
var (
	PairPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	CodeStyle = lipgloss.NewStyle().
			Foreground(report.ColorText).
			Bold(true)

	HeadingStyle = lipgloss.NewStyle().
			Foreground(report.ColorText)

	PayloadStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	AbsentStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	KindChangedStyle = lipgloss.NewStyle().
				Foreground(report.ColorAccent).
				Bold(true)

	KindLeftOnlyStyle = lipgloss.NewStyle().
				Foreground(report.ColorSecondary).
				Bold(true)

	KindRightOnlyStyle = lipgloss.NewStyle().
				Foreground(report.ColorSuccess).
				Bold(true)
)

// Bar styles
var (
	FilterBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(report.ColorText).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(report.ColorText).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(report.ColorError).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(report.ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(report.ColorSuccess).
				Bold(true)

	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Logo
const Logo = "nvdiff"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderFilterStatus renders a filter status indicator
func RenderFilterStatus(name string, active bool) string {
	if active {
		return FilterActiveStyle.Render(name)
	}
	return FilterInactiveStyle.Render(name)
}

// RenderKindBadge renders the difference kind of a pair
func RenderKindBadge(kind compare.Kind) string {
	switch kind {
	case compare.Changed:
		return KindChangedStyle.Render("[changed]   ")
	case compare.LeftOnly:
		return KindLeftOnlyStyle.Render("[left only] ")
	default:
		return KindRightOnlyStyle.Render("[right only]")
	}
}
