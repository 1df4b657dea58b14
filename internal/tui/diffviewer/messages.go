// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     diffviewer
// Description: Message types for async operations in the diff viewer
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package diffviewer

import (
	"github.com/msto63/nvdiff/internal/dictionary"
	"github.com/msto63/nvdiff/internal/dump"
)

// Message types for tea.Cmd async operations

// dumpsLoadedMsg is sent when both dumps and the dictionary have been read
type dumpsLoadedMsg struct {
	seq   int
	left  *dump.Dump
	right *dump.Dump
	dict  *dictionary.Dictionary
	err   error
}

// reloadMsg requests the dumps be read again from disk
type reloadMsg struct{}

// fileChangedMsg is sent when a watched dump was written
type fileChangedMsg struct {
	name string
}
