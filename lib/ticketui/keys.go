// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings shared by the board, history, and
// detail views.
type KeyMap struct {
	// Navigation across cards (board) or item rows (detail).
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	Select   key.Binding // Open the ticket under the cursor.
	BackView key.Binding // Return to the previous view.

	// Board view switching.
	History   key.Binding // Closed and cancelled tickets.
	NewTicket key.Binding // Open ticket creation.
	Refresh   key.Binding // Re-fetch immediately, outside the poll cadence.

	// Detail editor.
	QuickAdd      key.Binding // Focus the quick-add input.
	MenuModal     key.Binding // Open the fuzzy menu search.
	SendKitchen   key.Binding
	Finalize      key.Binding
	Cancel        key.Binding
	MarkDelivered key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in binding set: vim-style j/k next to
// arrow keys, mnemonic action keys in Portuguese where the original
// labels are.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "subir"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "descer"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "início"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "fim"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "abrir"),
	),
	BackView: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "voltar"),
	),
	History: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "histórico"),
	),
	NewTicket: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "nova comanda"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "atualizar"),
	),
	QuickAdd: key.NewBinding(
		key.WithKeys("a", "/"),
		key.WithHelp("a", "adicionar item"),
	),
	MenuModal: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "cardápio"),
	),
	SendKitchen: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "enviar p/ cozinha"),
	),
	Finalize: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "finalizar"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "cancelar comanda"),
	),
	MarkDelivered: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "marcar entregue"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "sair"),
	),
}
