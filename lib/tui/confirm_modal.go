// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ConfirmModal is a centered yes/no overlay guarding a destructive or
// irreversible action: sending a ticket to the kitchen, finalizing,
// cancelling. The action only proceeds on an explicit confirmation.
type ConfirmModal struct {
	// Title identifies the action being confirmed ("Finalizar comanda").
	Title string

	// Prompt is the question shown to the user.
	Prompt string

	// Confirmed is the currently selected answer. Starts false so an
	// accidental double-Enter does nothing destructive.
	Confirmed bool

	theme Theme
}

// NewConfirmModal creates a ConfirmModal with "no" preselected.
func NewConfirmModal(title, prompt string, theme Theme) ConfirmModal {
	return ConfirmModal{
		Title:  title,
		Prompt: prompt,
		theme:  theme,
	}
}

// ConfirmOutcome is the result of feeding a key to the modal.
type ConfirmOutcome int

const (
	// ConfirmPending means the modal stays open.
	ConfirmPending ConfirmOutcome = iota
	// ConfirmAccepted means the user confirmed the action.
	ConfirmAccepted
	// ConfirmDismissed means the user backed out.
	ConfirmDismissed
)

// Update processes a key message. Left/right and tab toggle the
// selection, y/n answer directly, Enter submits the selection, Esc
// dismisses.
func (modal *ConfirmModal) Update(message tea.KeyMsg) ConfirmOutcome {
	switch message.Type {
	case tea.KeyEsc:
		return ConfirmDismissed
	case tea.KeyLeft, tea.KeyRight, tea.KeyTab:
		modal.Confirmed = !modal.Confirmed
		return ConfirmPending
	case tea.KeyEnter:
		if modal.Confirmed {
			return ConfirmAccepted
		}
		return ConfirmDismissed
	case tea.KeyRunes:
		switch string(message.Runes) {
		case "y", "s": // "s" for sim
			return ConfirmAccepted
		case "n":
			return ConfirmDismissed
		}
	}
	return ConfirmPending
}

// Render produces the modal overlay lines and the anchor position for
// splicing onto the view with [SpliceOverlay].
func (modal ConfirmModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	background := lipgloss.NewStyle().Background(modal.theme.SelectedBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.SelectedBackground)
	textStyle := lipgloss.NewStyle().
		Foreground(modal.theme.NormalText).
		Background(modal.theme.SelectedBackground)
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Reverse(true)

	// Inner width fits the widest of title, prompt, and buttons, with
	// a floor so short prompts still get a visible box.
	innerWidth := ansi.StringWidth(modal.Prompt)
	if w := ansi.StringWidth(modal.Title); w > innerWidth {
		innerWidth = w
	}
	if innerWidth < 24 {
		innerWidth = 24
	}
	if innerWidth > screenWidth-6 {
		innerWidth = screenWidth - 6
	}

	yes := "  Sim  "
	no := "  Não  "
	if modal.Confirmed {
		yes = selectedStyle.Render(yes)
		no = textStyle.Render(no)
	} else {
		yes = textStyle.Render(yes)
		no = selectedStyle.Render(no)
	}
	buttons := no + background.Render("   ") + yes

	prompt := modal.Prompt
	if ansi.StringWidth(prompt) > innerWidth {
		prompt = ansi.Truncate(prompt, innerWidth-1, "…")
	}

	lines := []string{
		PadOverlayLine(titleStyle.Render(modal.Title), innerWidth, background),
		PadOverlayLine("", innerWidth, background),
		PadOverlayLine(textStyle.Render(prompt), innerWidth, background),
		PadOverlayLine("", innerWidth, background),
		PadOverlayLine(buttons, innerWidth, background),
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor)
	rendered := borderStyle.Render(strings.Join(lines, "\n"))

	resultLines := strings.Split(rendered, "\n")
	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}

	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(resultLines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return resultLines, anchorX, anchorY
}
