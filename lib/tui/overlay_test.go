// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlayReplacesRegion(t *testing.T) {
	view := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
		"dddddddddd",
	}, "\n")
	overlay := []string{"XXXX", "YYYY"}

	result := SpliceOverlay(view, overlay, 3, 1)
	lines := strings.Split(ansi.Strip(result), "\n")

	if lines[0] != "aaaaaaaaaa" {
		t.Errorf("line above overlay changed: %q", lines[0])
	}
	if lines[1] != "bbbXXXXbbb" {
		t.Errorf("overlay line 1 = %q, want %q", lines[1], "bbbXXXXbbb")
	}
	if lines[2] != "cccYYYYccc" {
		t.Errorf("overlay line 2 = %q, want %q", lines[2], "cccYYYYccc")
	}
	if lines[3] != "dddddddddd" {
		t.Errorf("line below overlay changed: %q", lines[3])
	}
}

func TestSpliceOverlayAtOrigin(t *testing.T) {
	view := "1234567890\n1234567890"
	result := SpliceOverlay(view, []string{"AB"}, 0, 0)
	lines := strings.Split(ansi.Strip(result), "\n")
	if lines[0] != "AB34567890" {
		t.Errorf("line 0 = %q, want %q", lines[0], "AB34567890")
	}
}

func TestSpliceOverlayBeyondView(t *testing.T) {
	view := "short"
	result := SpliceOverlay(view, []string{"AA", "BB", "CC"}, 0, 4)
	// Lines outside the view are dropped, not appended.
	if got := len(strings.Split(result, "\n")); got != 1 {
		t.Errorf("expected 1 line, got %d", got)
	}
}

func TestSpliceOverlayEmpty(t *testing.T) {
	view := "unchanged"
	if result := SpliceOverlay(view, nil, 2, 0); result != view {
		t.Errorf("empty overlay must leave view unchanged, got %q", result)
	}
}

func TestSpliceOverlayPreservesStyledView(t *testing.T) {
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	view := styled.Render("aaaaaaaaaa")
	result := SpliceOverlay(view, []string{"XX"}, 4, 0)

	if ansi.Strip(result) != "aaaaXXaaaa" {
		t.Errorf("visible text = %q, want %q", ansi.Strip(result), "aaaaXXaaaa")
	}
	// Overlay must be isolated from the view's styling with resets.
	if !strings.Contains(result, "\x1b[0m") {
		t.Error("expected reset sequences around overlay content")
	}
}

func TestPadOverlayLine(t *testing.T) {
	background := lipgloss.NewStyle()
	padded := PadOverlayLine("abc", 10, background)
	// One space margin each side plus padding to inner width.
	if width := ansi.StringWidth(padded); width != 12 {
		t.Errorf("padded width = %d, want 12", width)
	}
	if !strings.Contains(ansi.Strip(padded), "abc") {
		t.Error("content missing from padded line")
	}
}

func TestPadOverlayLineOverflow(t *testing.T) {
	background := lipgloss.NewStyle()
	padded := PadOverlayLine("abcdefgh", 4, background)
	// Content wider than innerWidth keeps margins without negative padding.
	if width := ansi.StringWidth(padded); width != 10 {
		t.Errorf("padded width = %d, want 10", width)
	}
}
