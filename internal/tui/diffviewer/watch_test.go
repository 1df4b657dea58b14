package diffviewer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/nvdiff/foundation/core/log"
)

func TestFileWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	left := filepath.Join(dir, "left.txt")
	other := filepath.Join(dir, "other.txt")
	for _, p := range []string{left, other} {
		if err := os.WriteFile(p, []byte("[NV items]\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	fw, err := newFileWatcher(log.Discard(), left)
	if err != nil {
		t.Fatalf("newFileWatcher() error = %v", err)
	}
	defer fw.Close()

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- fw.wait()() }()

	// unrelated files in the same directory are ignored
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(left, []byte("[NV items]\n10 (0x000A) - Inactive item\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case msg := <-msgs:
		changed, ok := msg.(fileChangedMsg)
		if !ok {
			t.Fatalf("wait() = %T, want fileChangedMsg", msg)
		}
		if changed.name != "left.txt" {
			t.Errorf("changed file = %q, want left.txt", changed.name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestFileWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "left.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	fw, err := newFileWatcher(log.Discard(), path)
	if err != nil {
		t.Fatalf("newFileWatcher() error = %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	select {
	case msg := <-wrap(fw.wait()):
		if msg != nil {
			t.Errorf("wait() after Close = %v, want nil", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("wait() blocked after Close")
	}
}

func wrap(cmd tea.Cmd) <-chan tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	return ch
}
