package textscan

import (
	"testing"
)

func TestLiteralMultiByte(t *testing.T) {
	s := New([]byte("µs]"))

	if !s.Literal("µs") {
		t.Fatal("Literal() did not match")
	}
	if s.Offset() != len("µs") {
		t.Errorf("Offset() = %d, want %d", s.Offset(), len("µs"))
	}
	if !s.Byte(']') || !s.AtEOF() {
		t.Error("expected ']' then EOF")
	}
}

func TestLiteralAndBacktrack(t *testing.T) {
	s := New([]byte("NV items]"))

	if s.Literal("NV itemz") {
		t.Fatal("Literal() matched a different string")
	}
	if s.Offset() != 0 {
		t.Fatalf("failed Literal() moved the cursor to %d", s.Offset())
	}

	m := s.Mark()
	if !s.Literal("NV items") {
		t.Fatal("Literal() did not match")
	}
	if !s.Byte(']') || !s.AtEOF() {
		t.Fatal("expected ']' then EOF")
	}

	s.Reset(m)
	if s.Offset() != 0 || s.Peek() != 'N' {
		t.Errorf("Reset() did not restore the cursor")
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		hex     bool
		bitSize int
		want    uint64
		wantOK  bool
		rest    string
	}{
		{"decimal", "1234 (", false, 32, 1234, true, " ("},
		{"decimal stops at hex letter", "12AB", false, 32, 12, true, "AB"},
		{"decimal none", "x1", false, 32, 0, false, "x1"},
		{"decimal overflow", "4294967296", false, 32, 0, false, "4294967296"},
		{"hex lower", "ff )", true, 8, 0xFF, true, " )"},
		{"hex upper", "1F", true, 8, 0x1F, true, ""},
		{"hex overflow byte", "102", true, 8, 0, false, "102"},
		{"hex none", "zz", true, 8, 0, false, "zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New([]byte(tt.input))
			var got uint64
			var ok bool
			if tt.hex {
				got, ok = s.Hex(tt.bitSize)
			} else {
				got, ok = s.Decimal(tt.bitSize)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("got (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
			if rest := string(s.input[s.Offset():]); rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestPositionTracking(t *testing.T) {
	s := New([]byte("ab\n  cd"))
	s.Next()
	s.Next()
	s.SkipSpace()

	line, col := s.Position()
	if line != 2 || col != 3 {
		t.Errorf("Position() = (%d, %d), want (2, 3)", line, col)
	}
}

func TestUntilAndSkipLine(t *testing.T) {
	s := New([]byte("Bar*junk\nnext"))

	got := s.Until(func(ch byte) bool { return ch == '*' || ch == '"' || ch == '\n' })
	if got != "Bar" {
		t.Errorf("Until() = %q, want Bar", got)
	}

	s.SkipLine()
	if s.Peek() != 'n' {
		t.Errorf("SkipLine() left cursor at %q", s.Peek())
	}

	s.SkipLine()
	if !s.AtEOF() {
		t.Error("SkipLine() on last line should reach EOF")
	}
	if s.Next() != 0 || s.Peek() != 0 {
		t.Error("Next()/Peek() at EOF should return 0")
	}
}

func TestRun(t *testing.T) {
	s := New([]byte("0aF9 x"))
	if got := s.Run(IsHexDigit); got != 4 {
		t.Errorf("Run() = %d, want 4", got)
	}
	if s.Offset() != 0 {
		t.Error("Run() must not consume input")
	}
}
