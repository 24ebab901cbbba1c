// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"testing"
	"time"
)

func TestElapsedLabel(t *testing.T) {
	opened := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "agora"},
		{30 * time.Second, "agora"},
		{59 * time.Second, "agora"},
		{60 * time.Second, "há 1 min"},
		{90 * time.Second, "há 1 min"},
		{119 * time.Second, "há 1 min"},
		{120 * time.Second, "há 2 min"},
		{47 * time.Minute, "há 47 min"},
		{2 * time.Hour, "há 120 min"},
	}
	for _, test := range tests {
		got := ElapsedLabel(opened, opened.Add(test.elapsed))
		if got != test.want {
			t.Errorf("ElapsedLabel(+%v) = %q, want %q", test.elapsed, got, test.want)
		}
	}
}

// The label must flip exactly at each 60-second boundary, not at the
// rounded half-minute.
func TestElapsedLabelFlooredAtBoundary(t *testing.T) {
	opened := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	if got := ElapsedLabel(opened, opened.Add(89*time.Second)); got != "há 1 min" {
		t.Errorf("at 89s: got %q, want %q", got, "há 1 min")
	}
	if got := ElapsedLabel(opened, opened.Add(179*time.Second)); got != "há 2 min" {
		t.Errorf("at 179s: got %q, want %q", got, "há 2 min")
	}
	if got := ElapsedLabel(opened, opened.Add(180*time.Second)); got != "há 3 min" {
		t.Errorf("at 180s: got %q, want %q", got, "há 3 min")
	}
}
