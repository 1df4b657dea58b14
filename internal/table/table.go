// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     table
// Description: Immutable keyed table built once from a parsed sequence
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package table provides the indexed container that dumps and dictionaries
// are looked up through. A table is built once and never mutated. When the
// source repeats a key the last value wins, but the key keeps the position of
// its first appearance, so iteration order is reproducible.
package table

import (
	"iter"
)

// Keyed is implemented by anything that can be indexed by a numeric code
type Keyed interface {
	Key() uint32
}

// Table maps codes to values
type Table[T Keyed] struct {
	index  map[uint32]int
	values []T
}

// Build indexes seq. The slice is not retained.
func Build[T Keyed](seq []T) *Table[T] {
	t := &Table[T]{
		index:  make(map[uint32]int, len(seq)),
		values: make([]T, 0, len(seq)),
	}

	for _, v := range seq {
		k := v.Key()
		if i, ok := t.index[k]; ok {
			t.values[i] = v
			continue
		}
		t.index[k] = len(t.values)
		t.values = append(t.values, v)
	}
	return t
}

// Find returns the value stored for key
func (t *Table[T]) Find(key uint32) (T, bool) {
	var zero T
	if t == nil {
		return zero, false
	}
	i, ok := t.index[key]
	if !ok {
		return zero, false
	}
	return t.values[i], true
}

// Contains reports whether key is present
func (t *Table[T]) Contains(key uint32) bool {
	_, ok := t.Find(key)
	return ok
}

// Len returns the number of distinct keys
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.values)
}

// Values iterates over the stored values in table order
func (t *Table[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil {
			return
		}
		for _, v := range t.values {
			if !yield(v) {
				return
			}
		}
	}
}

// All iterates over key/value pairs in table order
func (t *Table[T]) All() iter.Seq2[uint32, T] {
	return func(yield func(uint32, T) bool) {
		if t == nil {
			return
		}
		for _, v := range t.values {
			if !yield(v.Key(), v) {
				return
			}
		}
	}
}

// Keys returns the keys in table order
func (t *Table[T]) Keys() []uint32 {
	if t == nil {
		return nil
	}
	keys := make([]uint32, 0, len(t.values))
	for _, v := range t.values {
		keys = append(keys, v.Key())
	}
	return keys
}
