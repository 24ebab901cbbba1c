// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func keyMsg(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModalDefaultsToNo(t *testing.T) {
	modal := NewConfirmModal("Cancelar comanda", "Cancelar a comanda #12?", DefaultTheme)
	if modal.Confirmed {
		t.Fatal("modal must start with no preselected")
	}
	if outcome := modal.Update(keyMsg(tea.KeyEnter)); outcome != ConfirmDismissed {
		t.Errorf("Enter on default selection = %v, want ConfirmDismissed", outcome)
	}
}

func TestConfirmModalToggleAndAccept(t *testing.T) {
	modal := NewConfirmModal("Finalizar comanda", "Finalizar a comanda #7?", DefaultTheme)

	if outcome := modal.Update(keyMsg(tea.KeyLeft)); outcome != ConfirmPending {
		t.Fatalf("toggle = %v, want ConfirmPending", outcome)
	}
	if !modal.Confirmed {
		t.Fatal("expected selection toggled to yes")
	}
	if outcome := modal.Update(keyMsg(tea.KeyEnter)); outcome != ConfirmAccepted {
		t.Errorf("Enter after toggle = %v, want ConfirmAccepted", outcome)
	}
}

func TestConfirmModalEscDismisses(t *testing.T) {
	modal := NewConfirmModal("t", "p", DefaultTheme)
	modal.Confirmed = true
	if outcome := modal.Update(keyMsg(tea.KeyEsc)); outcome != ConfirmDismissed {
		t.Errorf("Esc = %v, want ConfirmDismissed", outcome)
	}
}

func TestConfirmModalDirectKeys(t *testing.T) {
	tests := []struct {
		key  string
		want ConfirmOutcome
	}{
		{"y", ConfirmAccepted},
		{"s", ConfirmAccepted},
		{"n", ConfirmDismissed},
		{"q", ConfirmPending},
	}
	for _, test := range tests {
		modal := NewConfirmModal("t", "p", DefaultTheme)
		if outcome := modal.Update(runeMsg(test.key)); outcome != test.want {
			t.Errorf("key %q = %v, want %v", test.key, outcome, test.want)
		}
	}
}

func TestConfirmModalRenderCentered(t *testing.T) {
	modal := NewConfirmModal("Enviar para cozinha", "Enviar a comanda #3 para a cozinha?", DefaultTheme)
	lines, anchorX, anchorY := modal.Render(120, 40)

	if len(lines) == 0 {
		t.Fatal("expected rendered lines")
	}
	joined := ansi.Strip(strings.Join(lines, "\n"))
	for _, want := range []string{"Enviar para cozinha", "comanda #3", "Sim", "Não"} {
		if !strings.Contains(joined, want) {
			t.Errorf("rendered modal missing %q:\n%s", want, joined)
		}
	}

	width := ansi.StringWidth(lines[0])
	if anchorX != (120-width)/2 {
		t.Errorf("anchorX = %d, want centered for width %d", anchorX, width)
	}
	if anchorY != (40-len(lines))/2 {
		t.Errorf("anchorY = %d, want centered for height %d", anchorY, len(lines))
	}

	// Every line must be the same visible width for splicing.
	for index, line := range lines {
		if ansi.StringWidth(line) != width {
			t.Errorf("line %d width = %d, want %d", index, ansi.StringWidth(line), width)
		}
	}
}

func TestConfirmModalRenderClampsAnchors(t *testing.T) {
	modal := NewConfirmModal("Título", "Pergunta?", DefaultTheme)
	_, anchorX, anchorY := modal.Render(10, 2)
	if anchorX < 0 || anchorY < 0 {
		t.Errorf("anchors must clamp to zero, got (%d, %d)", anchorX, anchorY)
	}
}
