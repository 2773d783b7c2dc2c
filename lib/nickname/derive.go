// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package nickname

// PageSize is how many additional cards one reveal step shows.
const PageSize = 6

// Visible returns the records shown under filter, in cache order. The
// store already scopes per-user responses, so for a user-scoped cache
// this is the identity; the re-filter only guards against a store that
// returns foreign records. The result never aliases records.
func Visible(records []Record, filter string) []Record {
	visible := make([]Record, 0, len(records))
	for _, record := range records {
		if filter == NoFilter || record.Owner == filter {
			visible = append(visible, record)
		}
	}
	return visible
}

// RenderCount is min(revealCount, visible), floored at zero.
func RenderCount(revealCount, visible int) int {
	if revealCount < 0 {
		return 0
	}
	return min(revealCount, visible)
}

// RemoveByID returns records without any entry whose ID is id,
// preserving the order of the rest. The second result reports whether
// anything was removed. An empty id never matches.
func RemoveByID(records []Record, id string) ([]Record, bool) {
	if id == "" {
		return records, false
	}
	kept := make([]Record, 0, len(records))
	removed := false
	for _, record := range records {
		if record.ID == id {
			removed = true
			continue
		}
		kept = append(kept, record)
	}
	if !removed {
		return records, false
	}
	return kept, true
}

// Unique drops records whose ID repeats an earlier one, keeping the
// first occurrence. Records without an ID are all kept. The dropped
// IDs are returned in encounter order.
func Unique(records []Record) ([]Record, []string) {
	seen := make(map[string]struct{}, len(records))
	unique := make([]Record, 0, len(records))
	var duplicates []string
	for _, record := range records {
		if record.ID != "" {
			if _, exists := seen[record.ID]; exists {
				duplicates = append(duplicates, record.ID)
				continue
			}
			seen[record.ID] = struct{}{}
		}
		unique = append(unique, record)
	}
	return unique, duplicates
}
