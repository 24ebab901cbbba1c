// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/barb1424/SeaShadeFront/lib/api"
	"github.com/barb1424/SeaShadeFront/lib/tui"
)

// autocompleteDropdown lists menu products whose names contain the
// quick-add input text. Arrow keys move the cursor; Enter on a
// highlighted row adds that product directly. Cursor -1 means nothing
// is highlighted and Enter falls back to exact-match on the typed
// text.
type autocompleteDropdown struct {
	options []api.Product
	cursor  int
}

// matchProducts returns the active products whose names contain query,
// case-insensitively, in menu order.
func matchProducts(menu []api.Product, query string) []api.Product {
	if query == "" {
		return nil
	}
	lowered := strings.ToLower(query)
	var matches []api.Product
	for _, product := range menu {
		if !product.Active {
			continue
		}
		if strings.Contains(strings.ToLower(product.Name), lowered) {
			matches = append(matches, product)
		}
	}
	return matches
}

func newAutocomplete(menu []api.Product, query string) *autocompleteDropdown {
	options := matchProducts(menu, query)
	if len(options) == 0 {
		return nil
	}
	return &autocompleteDropdown{options: options, cursor: -1}
}

// moveUp moves the highlight up, stopping at "nothing highlighted".
func (dropdown *autocompleteDropdown) moveUp() {
	if dropdown.cursor >= 0 {
		dropdown.cursor--
	}
}

// moveDown moves the highlight down, clamping at the last option.
func (dropdown *autocompleteDropdown) moveDown() {
	if dropdown.cursor < len(dropdown.options)-1 {
		dropdown.cursor++
	}
}

// selected returns the highlighted product, or nil when the cursor is
// on the input itself.
func (dropdown *autocompleteDropdown) selected() *api.Product {
	if dropdown.cursor < 0 || dropdown.cursor >= len(dropdown.options) {
		return nil
	}
	return &dropdown.options[dropdown.cursor]
}

// render produces equal-width dropdown lines for overlay splicing
// under the quick-add input.
func (dropdown *autocompleteDropdown) render(theme tui.Theme, maxRows int) []string {
	options := dropdown.options
	if maxRows > 0 && len(options) > maxRows {
		options = options[:maxRows]
	}

	width := 0
	for _, option := range options {
		lineWidth := ansi.StringWidth(option.Name) + ansi.StringWidth(option.PriceCentavos().String())
		if lineWidth > width {
			width = lineWidth
		}
	}
	width += 7 // Marker, gaps, padding.

	background := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.NormalText)
	highlighted := lipgloss.NewStyle().
		Background(theme.SearchHighlightBackground).
		Foreground(theme.SelectedForeground)

	var lines []string
	for index, option := range options {
		marker := "  "
		style := background
		if index == dropdown.cursor {
			marker = "> "
			style = highlighted
		}
		price := option.PriceCentavos().String()
		gap := width - ansi.StringWidth(marker) - ansi.StringWidth(option.Name) -
			ansi.StringWidth(price) - 2
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, style.Render(
			marker+option.Name+strings.Repeat(" ", gap)+price+" "))
	}
	return lines
}
