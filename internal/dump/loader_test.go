package dump

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "left.txt", sampleDump+"10 (0x000A) - Access denied\n")

	d, err := NewLoader(nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if d.Name != "left.txt" || d.Path != path {
		t.Errorf("Name/Path = %q/%q", d.Name, d.Path)
	}
	if d.Items.Len() != 4 {
		t.Errorf("Items.Len() = %d, want 4 distinct codes", d.Items.Len())
	}
	if rec, _ := d.Items.Find(10); rec.Status != "Access denied" {
		t.Errorf("repeated code 10 should keep the last record, got %q", rec.Status)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	_, err := NewLoader(nil).Load(path)
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("error should wrap fs.ErrNotExist")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeIO) {
		t.Errorf("code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeIO)
	}
	if file, ok := FileOf(err); !ok || file != path {
		t.Errorf("FileOf() = %q, %v", file, ok)
	}
}

func TestLoadParseErrorCarriesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.txt", "garbage")

	_, err := NewLoader(nil).Load(path)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Fatalf("code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidFormat)
	}
	if file, _ := FileOf(err); file != path {
		t.Errorf("FileOf() = %q, want %q", file, path)
	}
}

func TestLoadPair(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "a.txt", sampleDump)
	right := writeFile(t, dir, "b.txt", "[NV items]\n11 (0x000B) - OK\n")
	empty := writeFile(t, dir, "empty.txt", "")
	broken := writeFile(t, dir, "broken.txt", "[NV items")

	t.Run("both valid", func(t *testing.T) {
		l, r, err := NewLoader(nil).LoadPair(left, left)
		if err != nil {
			t.Fatalf("LoadPair() error = %v", err)
		}
		if l.Items.Len() != 4 || r.Items.Len() != 4 {
			t.Errorf("Len() = %d/%d", l.Items.Len(), r.Items.Len())
		}
	})

	t.Run("one fails", func(t *testing.T) {
		l, r, err := NewLoader(nil).LoadPair(left, right)
		if err == nil {
			t.Fatal("LoadPair() should fail")
		}
		if l != nil || r != nil {
			t.Error("LoadPair() must not return partial results")
		}
		errs := FileErrors(err)
		if len(errs) != 1 {
			t.Fatalf("FileErrors() = %d errors, want 1", len(errs))
		}
		if file, _ := FileOf(errs[0]); file != right {
			t.Errorf("failing file = %q, want %q", file, right)
		}
	})

	t.Run("both fail in argument order", func(t *testing.T) {
		_, _, err := NewLoader(nil).LoadPair(empty, broken)
		errs := FileErrors(err)
		if len(errs) != 2 {
			t.Fatalf("FileErrors() = %d errors, want 2", len(errs))
		}
		if !mdwerror.HasCode(errs[0], mdwerror.CodeEmptyInput) {
			t.Errorf("first error code = %v", mdwerror.GetCode(errs[0]))
		}
		if !mdwerror.HasCode(errs[1], mdwerror.CodeInvalidFormat) {
			t.Errorf("second error code = %v", mdwerror.GetCode(errs[1]))
		}
	})
}

func TestFileErrors(t *testing.T) {
	if FileErrors(nil) != nil {
		t.Error("FileErrors(nil) should be nil")
	}
	single := errors.New("x")
	if errs := FileErrors(single); len(errs) != 1 || errs[0] != single {
		t.Errorf("FileErrors(single) = %v", errs)
	}
}
