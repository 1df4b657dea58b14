// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     compare
// Description: Joins two NV item tables and reports the differing items
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package compare computes the differences between two NV item tables and
// annotates them from a dictionary.
package compare

import (
	"github.com/msto63/nvdiff/internal/nvitem"
	"github.com/msto63/nvdiff/internal/table"
)

// Records is an indexed NV item dump
type Records = table.Table[nvitem.Record]

// Pair is one reported difference. Either side may be the sentinel. The
// records are copies and may be modified freely.
type Pair struct {
	Left  nvitem.Record
	Right nvitem.Record
}

// Kind classifies a pair
type Kind int

const (
	Changed Kind = iota
	LeftOnly
	RightOnly
)

// String returns the kind name used in exports
func (k Kind) String() string {
	switch k {
	case Changed:
		return "changed"
	case LeftOnly:
		return "left-only"
	case RightOnly:
		return "right-only"
	default:
		return "unknown"
	}
}

// Kind reports whether the pair is a changed item or an item present on
// only one side
func (p Pair) Kind() Kind {
	switch {
	case p.Right.IsSentinel():
		return LeftOnly
	case p.Left.IsSentinel():
		return RightOnly
	default:
		return Changed
	}
}

// Code returns the code of the non-sentinel side, left preferred
func (p Pair) Code() uint32 {
	if !p.Left.IsSentinel() {
		return p.Left.Code
	}
	return p.Right.Code
}

// Compare reports the differences between left and right.
//
// Pairs from a pass over left in table order come first: differing items
// present on both sides (unless mode is Missing) and, unless mode is
// Present, left-only items paired with the sentinel. Unless mode is Present
// a second pass over right follows, reporting right-only items as
// (sentinel, item) in right's table order.
func Compare(left, right *Records, mode Mode) []Pair {
	pairs := leftRelative(left, right, mode)
	if mode == Present {
		return pairs
	}

	for _, p := range leftRelative(right, left, Missing) {
		pairs = append(pairs, Pair{Left: nvitem.Sentinel(), Right: p.Left})
	}
	return pairs
}

// leftRelative walks left and looks every item up in right
func leftRelative(left, right *Records, mode Mode) []Pair {
	pairs := []Pair{}
	for l := range left.Values() {
		r, ok := right.Find(l.Code)
		switch {
		case ok && mode != Missing && !l.Equal(r):
			pairs = append(pairs, Pair{Left: l.Clone(), Right: r.Clone()})
		case !ok && mode != Present:
			pairs = append(pairs, Pair{Left: l.Clone(), Right: nvitem.Sentinel()})
		}
	}
	return pairs
}

// Summary counts the pairs of a comparison by kind
type Summary struct {
	Changed   int `json:"changed" yaml:"changed"`
	LeftOnly  int `json:"left_only" yaml:"left_only"`
	RightOnly int `json:"right_only" yaml:"right_only"`
}

// Total returns the number of pairs
func (s Summary) Total() int {
	return s.Changed + s.LeftOnly + s.RightOnly
}

// Summarize counts pairs by kind
func Summarize(pairs []Pair) Summary {
	var s Summary
	for _, p := range pairs {
		switch p.Kind() {
		case Changed:
			s.Changed++
		case LeftOnly:
			s.LeftOnly++
		case RightOnly:
			s.RightOnly++
		}
	}
	return s
}
