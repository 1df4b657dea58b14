// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     diffviewer
// Description: Reloads the viewer when a compared dump changes on disk
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package diffviewer

import (
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/msto63/nvdiff/foundation/core/log"
)

// debounceDelay collapses the burst of events an editor save produces
const debounceDelay = 250 * time.Millisecond

// fileWatcher reports writes to a fixed set of files. The parent
// directories are watched so that files replaced by rename are still seen.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	changes chan string
	done    chan struct{}
	once    sync.Once
	logger  *log.Logger
}

func newFileWatcher(logger *log.Logger, paths ...string) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &fileWatcher{
		watcher: w,
		files:   make(map[string]bool, len(paths)),
		changes: make(chan string),
		done:    make(chan struct{}),
		logger:  logger,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, err
		}
		fw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, err
		}
	}

	go fw.run()
	return fw, nil
}

func (fw *fileWatcher) run() {
	defer close(fw.changes)

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending string
	)

	for {
		select {
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.files[filepath.Clean(ev.Name)] {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			pending = filepath.Base(ev.Name)
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			fire = timer.C

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.WarnWithErr("file watcher error", err)

		case <-fire:
			fire = nil
			select {
			case fw.changes <- pending:
			case <-fw.done:
				return
			}

		case <-fw.done:
			return
		}
	}
}

// wait returns a command that blocks until the next change
func (fw *fileWatcher) wait() tea.Cmd {
	return func() tea.Msg {
		name, ok := <-fw.changes
		if !ok {
			return nil
		}
		return fileChangedMsg{name: name}
	}
}

// Close stops watching. It is safe to call more than once.
func (fw *fileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		close(fw.done)
		err = fw.watcher.Close()
	})
	return err
}
