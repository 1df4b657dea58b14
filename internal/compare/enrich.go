// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     compare
// Description: Annotates difference pairs with dictionary descriptions
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package compare

import (
	"github.com/msto63/nvdiff/internal/dictionary"
	"github.com/msto63/nvdiff/internal/nvitem"
)

// Enrich copies the dictionary description and category of each pair's
// code onto both sides of the pair, sentinels included. Codes missing from
// the dictionary are left as they are. A nil dictionary does nothing.
// It returns the number of pairs that were annotated.
func Enrich(pairs []Pair, dict *dictionary.Dictionary) int {
	if dict == nil {
		return 0
	}

	n := 0
	for i := range pairs {
		p := &pairs[i]
		entry, ok := dict.Find(p.Code())
		if !ok {
			continue
		}
		p.Left.Description, p.Left.Category = entry.Description, entry.Category
		p.Right.Description, p.Right.Category = entry.Description, entry.Category
		n++
	}
	return n
}

// EnrichRecords annotates single records in place and returns how many
// were found in the dictionary
func EnrichRecords(records []nvitem.Record, dict *dictionary.Dictionary) int {
	if dict == nil {
		return 0
	}

	n := 0
	for i := range records {
		if entry, ok := dict.Find(records[i].Code); ok {
			records[i].Description, records[i].Category = entry.Description, entry.Category
			n++
		}
	}
	return n
}
