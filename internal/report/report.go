// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     report
// Description: Console and export rendering of comparison results
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package report renders comparison results for the console (interleaved,
// sequential or count only) and as YAML or JSON documents.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
	"github.com/msto63/nvdiff/internal/compare"
	"github.com/msto63/nvdiff/internal/nvitem"
)

// Format selects the report layout
type Format int

const (
	// Interleaved prints the left and right record of each pair together
	Interleaved Format = iota
	// Sequential prints all left records, then all right records
	Sequential
	// Count prints only the number of pairs
	Count
	// YAML writes a structured document
	YAML
	// JSON writes a structured document
	JSON
)

// String returns the long name of the format
func (f Format) String() string {
	switch f {
	case Interleaved:
		return "interleaved"
	case Sequential:
		return "sequential"
	case Count:
		return "count"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat accepts interleaved|sequential|count, i|s|c, yaml|yml and json
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "i", "interleaved", "interleave":
		return Interleaved, nil
	case "s", "sequential":
		return Sequential, nil
	case "c", "count":
		return Count, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return Interleaved, mdwerror.New("invalid output format").
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("value", s).
			WithDetail("allowed", "interleaved|sequential|count|yaml|json")
	}
}

// Options describes the comparison being reported
type Options struct {
	LeftName  string // label of the left dump, usually its base name
	RightName string
	LeftPath  string
	RightPath string
	Mode      compare.Mode
	Color     ColorMode
	RunID     string
}

// Writer renders reports to an output stream
type Writer struct {
	out   io.Writer
	opts  Options
	style *styles
}

// NewWriter creates a report writer
func NewWriter(out io.Writer, opts Options) *Writer {
	return &Writer{
		out:   out,
		opts:  opts,
		style: newStyles(out, opts.Color),
	}
}

// Write renders pairs in the given format
func (w *Writer) Write(format Format, pairs []compare.Pair) error {
	switch format {
	case YAML, JSON:
		return w.writeDocument(format, pairs)
	}

	bw := bufio.NewWriter(w.out)
	w.banner(bw, len(pairs))

	switch format {
	case Interleaved:
		for _, p := range pairs {
			w.record(bw, w.leftLabel(), p.Left)
			bw.WriteByte('\n')
			w.record(bw, w.rightLabel(), p.Right)
			bw.WriteByte('\n')
		}
	case Sequential:
		fmt.Fprintf(bw, "%s\n\n", w.leftLabel())
		for _, p := range pairs {
			w.record(bw, "", p.Left)
			bw.WriteByte('\n')
		}
		fmt.Fprintf(bw, "%s\n\n", w.rightLabel())
		for _, p := range pairs {
			w.record(bw, "", p.Right)
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

func (w *Writer) banner(bw *bufio.Writer, n int) {
	text := fmt.Sprintf("Found %d non matching items", n)
	if w.style != nil {
		text = w.style.banner.Render(text)
	}
	fmt.Fprintf(bw, "%s\n\n", text)
}

func (w *Writer) leftLabel() string {
	label := "[" + w.opts.LeftName + "]:"
	if w.style != nil {
		return w.style.leftLabel.Render(label)
	}
	return label
}

func (w *Writer) rightLabel() string {
	label := "[" + w.opts.RightName + "]:"
	if w.style != nil {
		return w.style.rightLabel.Render(label)
	}
	return label
}

// record writes an optional label, the heading line and the payload lines
func (w *Writer) record(bw *bufio.Writer, label string, rec nvitem.Record) {
	if label != "" {
		bw.WriteString(label)
		bw.WriteByte(' ')
	}

	heading := rec.Heading()
	if w.style != nil {
		switch {
		case rec.IsSentinel():
			heading = w.style.sentinel.Render(heading)
		case rec.Description != "" || rec.Category != "":
			heading = w.style.enriched.Render(heading)
		default:
			heading = w.style.heading.Render(heading)
		}
	}
	bw.WriteString(heading)
	bw.WriteByte('\n')

	for _, line := range rec.PayloadLines() {
		if w.style != nil {
			line = w.style.payload.Render(line)
		}
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
}

// WriteRecords prints a titled list of records, as used for a single dump
func (w *Writer) WriteRecords(title string, records []nvitem.Record) error {
	bw := bufio.NewWriter(w.out)
	if w.style != nil {
		title = w.style.banner.Render(title)
	}
	fmt.Fprintf(bw, "%s\n\n", title)
	for _, rec := range records {
		w.record(bw, "", rec)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
