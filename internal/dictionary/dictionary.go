// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     dictionary
// Description: Grammar and loader for the NV item description lookup file
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package dictionary reads the lookup file that maps NV item codes to a
// human readable description and category. Each line has the form
//
//	453^"Feature mode"^'Modem*unused trailing text
//
// The category opener may be ' or ". The category ends at *, " or the end of
// the line and the rest of the line is ignored.
package dictionary

import (
	"os"

	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
	"github.com/msto63/nvdiff/internal/dump"
	"github.com/msto63/nvdiff/internal/table"
	"github.com/msto63/nvdiff/internal/textscan"
)

// Entry is one dictionary line
type Entry struct {
	Code        uint32 `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

// Key returns the item code
func (e Entry) Key() uint32 {
	return e.Code
}

// Dictionary is an indexed lookup file
type Dictionary = table.Table[Entry]

// Parse returns the entries in file order
func Parse(content []byte) ([]Entry, error) {
	if len(content) == 0 {
		return nil, mdwerror.New(dump.MsgEmptyInput).
			WithCode(mdwerror.CodeEmptyInput).
			WithOperation("dictionary.Parse")
	}

	s := textscan.New(content)
	entries := []Entry{}
	for {
		s.SkipSpace()
		if s.AtEOF() {
			return entries, nil
		}

		e, ok := parseEntry(s)
		if !ok {
			line, column := s.Position()
			return nil, mdwerror.New(dump.MsgInvalidFormat).
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("dictionary.Parse").
				WithDetail("line", line).
				WithDetail("column", column)
		}
		entries = append(entries, e)
	}
}

// Load reads and indexes a dictionary file
func Load(path string) (*Dictionary, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.New(dump.MsgOpenFailed).
			WithCode(mdwerror.CodeIO).
			WithCause(err).
			WithOperation("dictionary.Load").
			WithDetail("file", path)
	}

	entries, err := Parse(content)
	if err != nil {
		return nil, mdwerror.Wrap(err, path).WithOperation("dictionary.Load").WithDetail("file", path)
	}
	return table.Build(entries), nil
}

func parseEntry(s *textscan.Scanner) (Entry, bool) {
	code, ok := s.Decimal(32)
	if !ok {
		return Entry{}, false
	}

	if !separator(s) || !s.Byte('"') {
		return Entry{}, false
	}
	desc := s.Until(func(ch byte) bool { return ch == '"' })
	if desc == "" || !s.Byte('"') {
		return Entry{}, false
	}

	if !separator(s) {
		return Entry{}, false
	}
	if !s.Byte('\'') && !s.Byte('"') {
		return Entry{}, false
	}
	category := s.Until(func(ch byte) bool { return ch == '*' || ch == '"' || ch == '\r' || ch == '\n' })
	s.SkipLine()

	return Entry{Code: uint32(code), Description: desc, Category: category}, true
}

// separator matches ^ with optional blanks on either side
func separator(s *textscan.Scanner) bool {
	skipBlank(s)
	if !s.Byte('^') {
		return false
	}
	skipBlank(s)
	return true
}

func skipBlank(s *textscan.Scanner) {
	for s.Peek() == ' ' || s.Peek() == '\t' {
		s.Next()
	}
}
