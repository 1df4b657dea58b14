// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     compare
// Description: Comparison modes
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package compare

import (
	"strings"

	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
)

// Mode selects which differences Compare reports
type Mode int

const (
	// Present reports items found in both dumps whose contents differ
	Present Mode = iota
	// Missing reports items found in only one dump
	Missing
	// Both reports the union of Present and Missing
	Both
)

// String returns the long name of the mode
func (m Mode) String() string {
	switch m {
	case Present:
		return "present"
	case Missing:
		return "missing"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// ParseMode accepts present|missing|both and the one letter forms p|m|b
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p", "present":
		return Present, nil
	case "m", "missing":
		return Missing, nil
	case "b", "both":
		return Both, nil
	default:
		return Present, mdwerror.New("invalid comparison type").
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("value", s).
			WithDetail("allowed", "present|missing|both")
	}
}
