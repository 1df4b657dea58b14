// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     report
// Description: Console styles for comparison reports
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
)

// Color palette shared with the diff viewer
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
)

// ColorMode controls styling of console reports
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// String returns the flag value of the mode
func (c ColorMode) String() string {
	switch c {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode accepts auto, always and never
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, mdwerror.New("invalid color mode").
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("value", s).
			WithDetail("allowed", "auto|always|never")
	}
}

// styles holds the lipgloss styles of one report writer
type styles struct {
	banner     lipgloss.Style
	leftLabel  lipgloss.Style
	rightLabel lipgloss.Style
	heading    lipgloss.Style
	enriched   lipgloss.Style
	sentinel   lipgloss.Style
	payload    lipgloss.Style
}

// newStyles returns nil when output should stay plain
func newStyles(out io.Writer, mode ColorMode) *styles {
	if mode == ColorNever {
		return nil
	}

	r := lipgloss.NewRenderer(out)
	if mode == ColorAlways {
		r.SetColorProfile(termenv.TrueColor)
	} else if r.ColorProfile() == termenv.Ascii {
		return nil
	}

	return &styles{
		banner:     r.NewStyle().Foreground(ColorPrimary).Bold(true),
		leftLabel:  r.NewStyle().Foreground(ColorSecondary).Bold(true),
		rightLabel: r.NewStyle().Foreground(ColorAccent).Bold(true),
		heading:    r.NewStyle().Foreground(ColorText),
		enriched:   r.NewStyle().Foreground(ColorSuccess),
		sentinel:   r.NewStyle().Foreground(ColorMuted).Italic(true),
		payload:    r.NewStyle().Foreground(ColorMuted),
	}
}
