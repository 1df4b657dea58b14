// File: format_test.go
// Title: Format Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with formatter tests
// - 2026-10-19 v0.2.0: Stable field order assertions

package log

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
)

func testEntry() *Entry {
	entry := NewEntry(LevelWarn, "dictionary not loaded")
	entry.Timestamp = time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	entry.Logger = "nvdiff"
	entry.Fields = Fields{"path": "nv.txt", "attempt": 1}
	return entry
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
			if !tt.wantErr && got.String() != strings.ToLower(tt.input) {
				t.Errorf("String() = %v, want %v", got.String(), strings.ToLower(tt.input))
			}
		})
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	data, err := NewJSONFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if obj["level"] != "warn" || obj["logger"] != "nvdiff" || obj["path"] != "nv.txt" {
		t.Errorf("unexpected JSON: %v", obj)
	}
	if obj["timestamp"] != "2026-10-19T08:30:00Z" {
		t.Errorf("timestamp = %v", obj["timestamp"])
	}
}

func TestJSONFormatter_WithError(t *testing.T) {
	entry := testEntry()
	entry.Error = mdwerror.New("Empty input file").WithCode(mdwerror.CodeEmptyInput)

	data, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if obj["error"] != "Empty input file" {
		t.Errorf("error = %v", obj["error"])
	}
	details, ok := obj["error_details"].(map[string]interface{})
	if !ok || details["code"] != "EMPTY_INPUT" {
		t.Errorf("error_details = %v", obj["error_details"])
	}
}

func TestTextFormatter_Format(t *testing.T) {
	data, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "08:30:00 [WRN] {nvdiff} dictionary not loaded [attempt=1 path=nv.txt]\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", string(data), want)
	}

	f := NewTextFormatter()
	f.DisableTimestamp = true
	data, _ = f.Format(testEntry())
	if strings.HasPrefix(string(data), "08:30:00") {
		t.Errorf("DisableTimestamp ignored: %q", string(data))
	}
}

func TestConsoleFormatter_Format(t *testing.T) {
	data, err := NewConsoleFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(string(data), LevelWarn.Color()) || !strings.Contains(string(data), "\033[0m") {
		t.Errorf("console output not colored: %q", string(data))
	}

	f := NewConsoleFormatter()
	f.DisableColors = true
	data, _ = f.Format(testEntry())
	if strings.Contains(string(data), "\033[") {
		t.Errorf("DisableColors ignored: %q", string(data))
	}
}

func TestLogfmtFormatter_Format(t *testing.T) {
	entry := testEntry()
	entry.CorrelationID = "run-1"

	data, err := NewLogfmtFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `timestamp=2026-10-19T08:30:00Z level=warn message="dictionary not loaded" logger=nvdiff correlation_id=run-1 attempt=1 path="nv.txt"` + "\n"
	if string(data) != want {
		t.Errorf("Format() =\n%q\nwant\n%q", string(data), want)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		check  func(Formatter) bool
	}{
		{FormatJSON, func(f Formatter) bool { _, ok := f.(*JSONFormatter); return ok }},
		{FormatText, func(f Formatter) bool { _, ok := f.(*TextFormatter); return ok }},
		{FormatConsole, func(f Formatter) bool { _, ok := f.(*ConsoleFormatter); return ok }},
		{FormatLogfmt, func(f Formatter) bool { _, ok := f.(*LogfmtFormatter); return ok }},
		{Format(99), func(f Formatter) bool { _, ok := f.(*TextFormatter); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if !tt.check(GetFormatter(tt.format)) {
				t.Errorf("GetFormatter(%v) returned wrong type", tt.format)
			}
		})
	}
}
