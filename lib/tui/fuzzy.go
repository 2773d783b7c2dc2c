// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"slices"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult is the outcome of matching one text against a pattern.
// Score is zero when the pattern does not match. Positions holds the
// rune indices of matched characters in ascending order.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// FuzzyMatch scores text against pattern with fzf's V2 algorithm,
// ignoring case. An empty pattern matches everything with score 1 and
// no positions. slab may be nil.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{Score: 1}
	}
	lowered := make([]rune, len(pattern))
	for index, character := range pattern {
		lowered[index] = unicode.ToLower(character)
	}
	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Start < 0 || result.Score <= 0 {
		return FuzzyResult{}
	}
	var sorted []int
	if positions != nil {
		sorted = slices.Clone(*positions)
		slices.Sort(sorted)
	}
	return FuzzyResult{Score: int(result.Score), Positions: sorted}
}
