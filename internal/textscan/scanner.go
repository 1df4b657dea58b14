// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     textscan
// Description: Byte cursor with backtracking shared by the dump and dictionary grammars
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package textscan provides the character level cursor the NV dump and
// dictionary parsers are written on. Every matcher either consumes input and
// reports success or leaves the cursor untouched.
package textscan

import (
	"strconv"
)

// Scanner walks a byte slice and tracks line and column for diagnostics
type Scanner struct {
	input  []byte
	pos    int // index of the next unread byte
	line   int // 1-based
	column int // 1-based
}

// Mark is a saved cursor position for backtracking
type Mark struct {
	pos    int
	line   int
	column int
}

// New creates a scanner positioned at the first byte of input
func New(input []byte) *Scanner {
	return &Scanner{input: input, line: 1, column: 1}
}

// AtEOF reports whether all input has been consumed
func (s *Scanner) AtEOF() bool {
	return s.pos >= len(s.input)
}

// Peek returns the next byte without consuming it, 0 at EOF
func (s *Scanner) Peek() byte {
	if s.AtEOF() {
		return 0
	}
	return s.input[s.pos]
}

// Next consumes and returns the next byte, 0 at EOF
func (s *Scanner) Next() byte {
	if s.AtEOF() {
		return 0
	}
	ch := s.input[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

// Mark saves the current position
func (s *Scanner) Mark() Mark {
	return Mark{pos: s.pos, line: s.line, column: s.column}
}

// Reset moves the cursor back to a saved position
func (s *Scanner) Reset(m Mark) {
	s.pos, s.line, s.column = m.pos, m.line, m.column
}

// Offset returns the byte offset of the cursor
func (s *Scanner) Offset() int {
	return s.pos
}

// Position returns the line and column of the cursor
func (s *Scanner) Position() (line, column int) {
	return s.line, s.column
}

// SkipSpace consumes ASCII whitespace
func (s *Scanner) SkipSpace() {
	for !s.AtEOF() && IsSpace(s.input[s.pos]) {
		s.Next()
	}
}

// Byte consumes ch if it is the next byte
func (s *Scanner) Byte(ch byte) bool {
	if s.AtEOF() || s.input[s.pos] != ch {
		return false
	}
	s.Next()
	return true
}

// Literal consumes lit if the input continues with exactly those bytes
func (s *Scanner) Literal(lit string) bool {
	if len(s.input)-s.pos < len(lit) || string(s.input[s.pos:s.pos+len(lit)]) != lit {
		return false
	}
	for i := 0; i < len(lit); i++ {
		s.Next()
	}
	return true
}

// Decimal consumes one or more decimal digits and returns their value.
// It fails without consuming anything if no digit follows or the value
// does not fit in bitSize bits.
func (s *Scanner) Decimal(bitSize int) (uint64, bool) {
	return s.number(10, IsDigit, bitSize)
}

// Hex consumes one or more hexadecimal digits (either case) and returns
// their value, failing like Decimal.
func (s *Scanner) Hex(bitSize int) (uint64, bool) {
	return s.number(16, IsHexDigit, bitSize)
}

func (s *Scanner) number(base int, accept func(byte) bool, bitSize int) (uint64, bool) {
	start := s.pos
	end := start
	for end < len(s.input) && accept(s.input[end]) {
		end++
	}
	if end == start {
		return 0, false
	}
	v, err := strconv.ParseUint(string(s.input[start:end]), base, bitSize)
	if err != nil {
		return 0, false
	}
	for s.pos < end {
		s.Next()
	}
	return v, true
}

// Run returns the length of the run of accepted bytes at the cursor
// without consuming it
func (s *Scanner) Run(accept func(byte) bool) int {
	n := 0
	for s.pos+n < len(s.input) && accept(s.input[s.pos+n]) {
		n++
	}
	return n
}

// Until consumes bytes up to, not including, the first byte for which stop
// returns true (or EOF) and returns them.
func (s *Scanner) Until(stop func(byte) bool) string {
	start := s.pos
	for !s.AtEOF() && !stop(s.input[s.pos]) {
		s.Next()
	}
	return string(s.input[start:s.pos])
}

// SkipLine consumes the rest of the current line including its newline
func (s *Scanner) SkipLine() {
	for !s.AtEOF() {
		if s.Next() == '\n' {
			return
		}
	}
}

// IsSpace reports ASCII whitespace
func IsSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsDigit reports a decimal digit
func IsDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// IsHexDigit reports a hexadecimal digit of either case
func IsHexDigit(ch byte) bool {
	return IsDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}
