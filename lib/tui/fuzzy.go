// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult is the outcome of matching a pattern against one text.
type FuzzyResult struct {
	// Score is fzf's match quality. Zero means no match.
	Score int

	// Positions are the rune indices of matched characters in the
	// text, for highlight rendering. Empty when there is no match.
	Positions []int
}

// FuzzyMatch runs fzf's FuzzyMatchV2 algorithm case-insensitively.
// The pattern must already be lowercase (callers lowercase once per
// keystroke, not once per candidate). slab may be nil; passing a
// shared slab across calls avoids per-candidate allocations.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	chars := util.ToChars([]byte(strings.ToLower(text)))
	result, positions := algo.FuzzyMatchV2(false, false, true, &chars, pattern, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	matched := []int{}
	if positions != nil {
		matched = *positions
	}
	// fzf reports positions back to front; highlighting walks the text
	// forward.
	sort.Ints(matched)
	return FuzzyResult{Score: result.Score, Positions: matched}
}

// NewSlab allocates a matching slab sized per fzf's defaults.
func NewSlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}

// LowerPattern prepares a typed query for FuzzyMatch.
func LowerPattern(query string) []rune {
	return []rune(strings.ToLower(query))
}
