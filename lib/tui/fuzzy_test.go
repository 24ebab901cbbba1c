// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"
)

func TestFuzzyMatchBasic(t *testing.T) {
	slab := NewSlab()
	result := FuzzyMatch("Água de coco", LowerPattern("coco"), slab)
	if result.Score <= 0 {
		t.Fatal("expected a positive score for substring match")
	}
	if len(result.Positions) != 4 {
		t.Errorf("expected 4 matched positions, got %v", result.Positions)
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	slab := NewSlab()
	lower := FuzzyMatch("porção de batata", LowerPattern("batata"), slab)
	upper := FuzzyMatch("PORÇÃO DE BATATA", LowerPattern("BATATA"), slab)
	if lower.Score <= 0 || upper.Score <= 0 {
		t.Fatalf("expected matches regardless of case: lower=%d upper=%d",
			lower.Score, upper.Score)
	}
}

func TestFuzzyMatchScattered(t *testing.T) {
	result := FuzzyMatch("Caipirinha de limão", LowerPattern("cpl"), nil)
	if result.Score <= 0 {
		t.Fatal("expected scattered characters to match")
	}
	if len(result.Positions) != 3 {
		t.Errorf("expected 3 positions, got %v", result.Positions)
	}
	// Positions must be increasing for highlight rendering.
	for i := 1; i < len(result.Positions); i++ {
		if result.Positions[i] <= result.Positions[i-1] {
			t.Errorf("positions not increasing: %v", result.Positions)
		}
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := FuzzyMatch("Refrigerante lata", LowerPattern("xyz"), nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for non-match, got %d", result.Score)
	}
	if len(result.Positions) != 0 {
		t.Errorf("expected no positions for non-match, got %v", result.Positions)
	}
}

func TestFuzzyMatchEmptyPattern(t *testing.T) {
	result := FuzzyMatch("anything", nil, nil)
	if result.Score != 0 || len(result.Positions) != 0 {
		t.Errorf("expected zero result for empty pattern, got %+v", result)
	}
}

func TestFuzzyMatchPrefersConsecutive(t *testing.T) {
	slab := NewSlab()
	consecutive := FuzzyMatch("Água de coco", LowerPattern("coco"), slab)
	scattered := FuzzyMatch("caldo quente com ovo", LowerPattern("coco"), slab)
	if consecutive.Score <= 0 {
		t.Fatal("expected consecutive match")
	}
	if scattered.Score > 0 && scattered.Score >= consecutive.Score {
		t.Errorf("expected consecutive match to score higher: consecutive=%d scattered=%d",
			consecutive.Score, scattered.Score)
	}
}
