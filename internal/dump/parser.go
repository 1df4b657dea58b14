// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     dump
// Description: Grammar for NV item dump files
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package dump parses NV item dumps and loads them into indexed tables.
//
// A dump starts with one or more bracketed headers followed by the items:
//
//	[NV items]
//	[Complete items - 2, Items size - 4]
//	10 (0x000A) - OK
//	01 02 0A FF
//	11 (0x000B) - Inactive item
//
// Whitespace between tokens is insignificant. The payload length of every
// OK item is the most recent "Items size" header value.
package dump

import (
	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
	"github.com/msto63/nvdiff/internal/nvitem"
	"github.com/msto63/nvdiff/internal/textscan"
)

// Messages of input file errors, shared with the dictionary grammar
const (
	// MsgOpenFailed is reported when a file cannot be read
	MsgOpenFailed = "Could not open input file"
	// MsgEmptyInput is reported for a zero length file
	MsgEmptyInput = "Empty input file"
	// MsgInvalidFormat is reported when the grammar does not match the whole file
	MsgInvalidFormat = "Invalid format input file"
)

// Header holds the counters declared by the dump headers
type Header struct {
	CompleteItems uint32
	ItemSize      uint32
	HasSize       bool
}

// Parse returns the records of a dump in file order
func Parse(content []byte) ([]nvitem.Record, error) {
	_, records, err := ParseWithHeader(content)
	return records, err
}

// ParseWithHeader returns the records of a dump together with the last
// declared header counters
func ParseWithHeader(content []byte) (Header, []nvitem.Record, error) {
	if len(content) == 0 {
		return Header{}, nil, mdwerror.New(MsgEmptyInput).
			WithCode(mdwerror.CodeEmptyInput).
			WithOperation("dump.Parse")
	}

	p := &parser{s: textscan.New(content)}
	records, ok := p.parse()
	if !ok {
		line, column := p.s.Position()
		return Header{}, nil, mdwerror.New(MsgInvalidFormat).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("dump.Parse").
			WithDetail("line", line).
			WithDetail("column", column)
	}
	return p.header, records, nil
}

type parser struct {
	s      *textscan.Scanner
	header Header
}

// parse matches headers+ items* and requires the whole input to be used
func (p *parser) parse() ([]nvitem.Record, bool) {
	if !p.headerBlock() {
		return nil, false
	}
	for p.headerBlock() {
	}

	records := []nvitem.Record{}
	for {
		rec, ok := p.item()
		if !ok {
			break
		}
		records = append(records, rec)
	}

	p.s.SkipSpace()
	if !p.s.AtEOF() {
		return nil, false
	}
	return records, true
}

// headerBlock matches '[' ( "NV items" | counters ) ']'
func (p *parser) headerBlock() bool {
	m := p.s.Mark()
	saved := p.header

	p.s.SkipSpace()
	if !p.s.Byte('[') {
		p.s.Reset(m)
		return false
	}

	p.s.SkipSpace()
	if !p.s.Literal("NV items") && !p.counters() {
		p.s.Reset(m)
		p.header = saved
		return false
	}

	p.s.SkipSpace()
	if !p.s.Byte(']') {
		p.s.Reset(m)
		p.header = saved
		return false
	}
	return true
}

// counters matches "Complete items" - uint , "Items size" - uint
func (p *parser) counters() bool {
	complete, ok := p.labelledUint("Complete items")
	if !ok {
		return false
	}

	p.s.SkipSpace()
	if !p.s.Byte(',') {
		return false
	}

	size, ok := p.labelledUint("Items size")
	if !ok {
		return false
	}

	p.header.CompleteItems = complete
	p.header.ItemSize = size
	p.header.HasSize = true
	return true
}

func (p *parser) labelledUint(label string) (uint32, bool) {
	p.s.SkipSpace()
	if !p.s.Literal(label) {
		return 0, false
	}
	p.s.SkipSpace()
	if !p.s.Byte('-') {
		return 0, false
	}
	p.s.SkipSpace()
	v, ok := p.s.Decimal(32)
	return uint32(v), ok
}

// item matches a present item or, failing that, an absent one
func (p *parser) item() (nvitem.Record, bool) {
	m := p.s.Mark()

	if rec, ok := p.presentItem(); ok {
		return rec, true
	}
	p.s.Reset(m)

	if rec, ok := p.absentItem(); ok {
		return rec, true
	}
	p.s.Reset(m)

	return nvitem.Record{}, false
}

func (p *parser) presentItem() (nvitem.Record, bool) {
	code, ok := p.code()
	if !ok {
		return nvitem.Record{}, false
	}

	p.s.SkipSpace()
	if !p.s.Literal(string(nvitem.StatusOK)) || !p.header.HasSize {
		return nvitem.Record{}, false
	}

	data := make([]byte, 0, p.header.ItemSize)
	for i := uint32(0); i < p.header.ItemSize; i++ {
		b, ok := p.payloadByte()
		if !ok {
			return nvitem.Record{}, false
		}
		data = append(data, b)
	}

	return nvitem.Record{Code: code, Status: nvitem.StatusOK, Data: data}, true
}

func (p *parser) absentItem() (nvitem.Record, bool) {
	code, ok := p.code()
	if !ok {
		return nvitem.Record{}, false
	}

	p.s.SkipSpace()
	for _, status := range nvitem.AbsentStatuses {
		if p.s.Literal(string(status)) {
			return nvitem.Record{Code: code, Status: status}, true
		}
	}
	return nvitem.Record{}, false
}

// code matches <decimal> ( 0x<hex> ) -
// The hex restatement is not checked against the decimal value.
func (p *parser) code() (uint32, bool) {
	p.s.SkipSpace()
	code, ok := p.s.Decimal(32)
	if !ok {
		return 0, false
	}

	p.s.SkipSpace()
	if !p.s.Byte('(') {
		return 0, false
	}
	p.s.SkipSpace()
	if !p.s.Literal("0x") {
		return 0, false
	}
	p.s.SkipSpace()
	if _, ok := p.s.Hex(32); !ok {
		return 0, false
	}
	p.s.SkipSpace()
	if !p.s.Byte(')') {
		return 0, false
	}
	p.s.SkipSpace()
	if !p.s.Byte('-') {
		return 0, false
	}
	return uint32(code), true
}

// payloadByte matches one or two hex digits
func (p *parser) payloadByte() (byte, bool) {
	p.s.SkipSpace()
	if n := p.s.Run(textscan.IsHexDigit); n == 0 || n > 2 {
		return 0, false
	}
	v, ok := p.s.Hex(8)
	return byte(v), ok
}
