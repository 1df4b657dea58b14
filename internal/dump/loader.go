// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     dump
// Description: Loads dump files from disk into indexed tables
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package dump

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
	"github.com/msto63/nvdiff/foundation/core/log"
	"github.com/msto63/nvdiff/foundation/utils/filex"
	"github.com/msto63/nvdiff/internal/nvitem"
	"github.com/msto63/nvdiff/internal/table"
)

// Dump is a parsed dump file
type Dump struct {
	Path   string
	Name   string // base name used in reports
	Header Header
	Items  *table.Table[nvitem.Record]
}

// Loader reads and parses dump files
type Loader struct {
	logger *log.Logger
}

// NewLoader creates a loader. A nil logger discards all output.
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Discard()
	}
	return &Loader{logger: logger.WithName("dump")}
}

// Load reads and parses a single dump file. Errors carry the path as the
// "file" detail.
func (l *Loader) Load(path string) (*Dump, error) {
	timer := l.logger.StartTimer("load dump").WithField("file", path)

	content, err := os.ReadFile(path)
	if err != nil {
		timer.WithField("error", err.Error()).Stop()
		return nil, mdwerror.New(MsgOpenFailed).
			WithCode(mdwerror.CodeIO).
			WithCause(err).
			WithOperation("dump.Load").
			WithDetail("file", path)
	}

	header, records, err := ParseWithHeader(content)
	if err != nil {
		var parseErr *mdwerror.Error
		if errors.As(err, &parseErr) {
			parseErr.WithDetail("file", path)
		}
		timer.WithField("error", err.Error()).Stop()
		return nil, err
	}

	d := &Dump{
		Path:   path,
		Name:   filepath.Base(path),
		Header: header,
		Items:  table.Build(records),
	}

	timer.WithField("size", filex.FormatSize(int64(len(content)))).
		WithField("records", len(records)).
		WithField("items", d.Items.Len()).
		Stop()
	if d.Items.Len() != len(records) {
		l.logger.Debug("dump repeats item codes, last occurrence kept", log.Fields{
			"file":     path,
			"records":  len(records),
			"distinct": d.Items.Len(),
		})
	}
	if header.CompleteItems != 0 && int(header.CompleteItems) != len(records) {
		l.logger.Debug("declared item count differs from parsed items", log.Fields{
			"file":     path,
			"declared": header.CompleteItems,
			"parsed":   len(records),
		})
	}

	return d, nil
}

// LoadPair loads both dumps concurrently. When either fails the returned
// error joins the failure of every file, in argument order.
func (l *Loader) LoadPair(leftPath, rightPath string) (*Dump, *Dump, error) {
	paths := [2]string{leftPath, rightPath}
	var dumps [2]*Dump
	var errs [2]error

	var wg sync.WaitGroup
	for i := range paths {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dumps[i], errs[i] = l.Load(paths[i])
		}(i)
	}
	wg.Wait()

	if err := errors.Join(errs[0], errs[1]); err != nil {
		return nil, nil, err
	}
	return dumps[0], dumps[1], nil
}

// FileErrors splits an error returned by LoadPair into one error per file
func FileErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// FileOf returns the "file" detail attached by Load, if any
func FileOf(err error) (string, bool) {
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		return "", false
	}
	v, ok := mdwErr.Detail("file")
	if !ok {
		return "", false
	}
	path, ok := v.(string)
	return path, ok
}
