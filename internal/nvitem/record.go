// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     nvitem
// Description: NV item record, status tags and sentinel-aware equality
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package nvitem defines the record parsed from one entry of an NV item dump.
package nvitem

import (
	"bytes"
	"fmt"
	"strings"
)

// Status is the textual state tag reported for an NV item
type Status string

const (
	StatusOK           Status = "OK"
	StatusInactive     Status = "Inactive item"
	StatusParameterBad Status = "Parameter bad"
	StatusAccessDenied Status = "Access denied"
	statusNone         Status = ""
)

const bytesPerPayloadLine = 16

// AbsentStatuses lists the tags of items that carry no payload, in grammar order
var AbsentStatuses = []Status{StatusInactive, StatusParameterBad, StatusAccessDenied}

// IsValid reports whether s is one of the tags a dump may contain
func (s Status) IsValid() bool {
	switch s {
	case StatusOK, StatusInactive, StatusParameterBad, StatusAccessDenied:
		return true
	}
	return false
}

// Record is one NV item. Description and Category stay empty unless the
// record was enriched from a dictionary.
type Record struct {
	Code        uint32
	Status      Status
	Data        []byte
	Description string
	Category    string
}

// Sentinel returns the placeholder that stands in for an item missing on
// one side of a comparison.
func Sentinel() Record {
	return Record{}
}

// Key returns the item code
func (r Record) Key() uint32 {
	return r.Code
}

// IsSentinel reports whether r is the absent placeholder
func (r Record) IsSentinel() bool {
	return r.Code == 0 && r.Status == statusNone
}

// Equal compares code, status and payload. A sentinel on either side is
// never equal to anything, itself included.
func (r Record) Equal(other Record) bool {
	if r.IsSentinel() || other.IsSentinel() {
		return false
	}
	return r.Code == other.Code &&
		r.Status == other.Status &&
		bytes.Equal(r.Data, other.Data)
}

// Clone returns a copy that shares no payload memory with r
func (r Record) Clone() Record {
	c := r
	if r.Data != nil {
		c.Data = bytes.Clone(r.Data)
	}
	return c
}

// Heading renders the first display line without a trailing newline:
// "0100 (0x0064) - OK", or "0100 (Foo, Bar) - OK" once enriched.
func (r Record) Heading() string {
	if r.Description != "" || r.Category != "" {
		return fmt.Sprintf("%04d (%s, %s) - %s", r.Code, r.Description, r.Category, r.Status)
	}
	return fmt.Sprintf("%04d (0x%04X) - %s", r.Code, r.Code, r.Status)
}

// PayloadLines renders the data as uppercase hex bytes, 16 per line
func (r Record) PayloadLines() []string {
	if len(r.Data) == 0 {
		return nil
	}

	lines := make([]string, 0, (len(r.Data)+bytesPerPayloadLine-1)/bytesPerPayloadLine)
	for start := 0; start < len(r.Data); start += bytesPerPayloadLine {
		end := min(start+bytesPerPayloadLine, len(r.Data))
		parts := make([]string, 0, end-start)
		for _, b := range r.Data[start:end] {
			parts = append(parts, fmt.Sprintf("%02X", b))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}

// String renders the heading and payload, each line newline terminated
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.Heading())
	sb.WriteByte('\n')
	for _, line := range r.PayloadLines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
