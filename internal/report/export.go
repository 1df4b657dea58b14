// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     report
// Description: YAML and JSON export of comparison results
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package report

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/msto63/nvdiff/internal/compare"
	"github.com/msto63/nvdiff/internal/nvitem"
)

// Document is the exported form of a comparison
type Document struct {
	RunID   string          `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Left    string          `json:"left" yaml:"left"`
	Right   string          `json:"right" yaml:"right"`
	Mode    string          `json:"mode" yaml:"mode"`
	Summary compare.Summary `json:"summary" yaml:"summary"`
	Total   int             `json:"total" yaml:"total"`
	Pairs   []PairDocument  `json:"pairs" yaml:"pairs"`
}

// PairDocument is one exported difference. A missing side is omitted.
type PairDocument struct {
	Code        uint32          `json:"code" yaml:"code"`
	Kind        string          `json:"kind" yaml:"kind"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string          `json:"category,omitempty" yaml:"category,omitempty"`
	Left        *RecordDocument `json:"left,omitempty" yaml:"left,omitempty"`
	Right       *RecordDocument `json:"right,omitempty" yaml:"right,omitempty"`
}

// RecordDocument is an exported record with its payload as hex bytes
type RecordDocument struct {
	Status string `json:"status" yaml:"status"`
	Data   string `json:"data,omitempty" yaml:"data,omitempty"`
}

// NewDocument builds the export document for pairs
func NewDocument(opts Options, pairs []compare.Pair) Document {
	summary := compare.Summarize(pairs)
	doc := Document{
		RunID:   opts.RunID,
		Left:    opts.LeftPath,
		Right:   opts.RightPath,
		Mode:    opts.Mode.String(),
		Summary: summary,
		Total:   summary.Total(),
		Pairs:   make([]PairDocument, 0, len(pairs)),
	}

	for _, p := range pairs {
		pd := PairDocument{
			Code: p.Code(),
			Kind: p.Kind().String(),
		}
		named := p.Left
		if named.IsSentinel() {
			named = p.Right
		}
		pd.Description, pd.Category = named.Description, named.Category

		if !p.Left.IsSentinel() {
			pd.Left = newRecordDocument(p.Left)
		}
		if !p.Right.IsSentinel() {
			pd.Right = newRecordDocument(p.Right)
		}
		doc.Pairs = append(doc.Pairs, pd)
	}
	return doc
}

func newRecordDocument(rec nvitem.Record) *RecordDocument {
	return &RecordDocument{
		Status: string(rec.Status),
		Data:   strings.Join(rec.PayloadLines(), " "),
	}
}

func (w *Writer) writeDocument(format Format, pairs []compare.Pair) error {
	doc := NewDocument(w.opts, pairs)

	if format == JSON {
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
