// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/barb1424/SeaShadeFront/lib/api"
	"github.com/barb1424/SeaShadeFront/lib/clock"
)

func testMenu() []api.Product {
	return []api.Product{
		{ID: 1, Name: "Água de coco", Price: 8.5, Category: "Bebidas", Active: true},
		{ID: 2, Name: "Caipirinha", Price: 25, Category: "Drinks", Active: true},
		{ID: 3, Name: "Porção de batata", Price: 30, Category: "Porções", Active: true},
		{ID: 4, Name: "Chopp", Price: 12, Category: "Bebidas", Active: false},
	}
}

func editorTicket(status api.TicketStatus, items []api.TicketItem) api.Ticket {
	return api.Ticket{
		ID:       5,
		Number:   105,
		Status:   status,
		Slot:     &api.Slot{ID: 9, Label: "G09", Status: "OCUPADO"},
		Items:    items,
		OpenedAt: api.Time{Time: testEpoch.Add(-5 * time.Minute)},
	}
}

func editorModel(t *testing.T, ticket api.Ticket, menu []api.Product) Model {
	t.Helper()
	clk := clock.Fake(testEpoch)
	model := NewForTicket(Config{
		KioskID: 7,
		Context: t.Context(),
		Clock:   clk,
	}, ticket.ID)
	model.standalone = false
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})
	model = apply(t, model, editorTicketMsg{
		generation: model.generation, initial: true, ticket: &ticket,
	})
	model = apply(t, model, editorMenuMsg{
		generation: model.generation, products: menu,
	})
	return model
}

func pendingItems() []api.TicketItem {
	return []api.TicketItem{
		{ID: 51, ProductName: "Caipirinha", UnitPrice: 25, Quantity: 1, Status: api.ItemReady},
		{ID: 52, ProductName: "Água de coco", UnitPrice: 8.5, Quantity: 2, Status: api.ItemPending},
	}
}

func TestEditorRendersOnlyWhenBothLoadsArrive(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := NewForTicket(Config{KioskID: 7, Context: t.Context(), Clock: clk}, 5)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})

	ticket := editorTicket(api.TicketOpen, pendingItems())
	model = apply(t, model, editorTicketMsg{
		generation: model.generation, initial: true, ticket: &ticket,
	})
	if !strings.Contains(model.View(), "Carregando comanda") {
		t.Fatal("editor must not render before the menu arrives")
	}

	model = apply(t, model, editorMenuMsg{generation: model.generation, products: testMenu()})
	view := model.View()
	for _, want := range []string{
		"Comanda #105",
		"Guarda-sol G09",
		"1x Caipirinha",
		"2x Água de coco",
		"Pronto",
		"Pendente",
		"Total: R$ 42,00",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("editor view missing %q", want)
		}
	}
}

func TestEditorInitialLoadFailureBlocks(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := NewForTicket(Config{KioskID: 7, Context: t.Context(), Clock: clk}, 5)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})

	model = apply(t, model, editorTicketMsg{
		generation: model.generation, initial: true, err: errors.New("404"),
	})
	if !strings.Contains(model.View(), "Não foi possível carregar a comanda") {
		t.Error("initial load failure must block the editor")
	}
}

func TestQuickAddExactMatchCaseInsensitive(t *testing.T) {
	model := editorModel(t, editorTicket(api.TicketOpen, nil), testMenu())

	model = apply(t, model, keyRune('a'))
	if !model.detail.inputActive {
		t.Fatal("a must open the quick-add input")
	}
	for _, r := range "CAIPIRINHA" {
		model = apply(t, model, keyRune(r))
	}
	model = apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if model.detail.inputActive {
		t.Error("input must close once the product is resolved")
	}
	modal := model.detail.menuModal
	if modal == nil {
		t.Fatal("exact case-insensitive match must open the quantity/note stage")
	}
	if modal.stage != stageDetails || modal.selected.ID != 2 {
		t.Fatalf("expected caipirinha on the details stage, got stage=%d product=%d",
			modal.stage, modal.selected.ID)
	}

	// Keep the default quantity, skip the note, submit.
	model = apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model, cmd := applyCmd(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("confirming quantity and note must dispatch the add")
	}
	if model.detail.menuModal != nil {
		t.Error("modal must close after submit")
	}
}

func TestQuickAddPartialMatchAddsNothing(t *testing.T) {
	model := editorModel(t, editorTicket(api.TicketOpen, nil), testMenu())

	model = apply(t, model, keyRune('a'))
	for _, r := range "caipi" {
		model = apply(t, model, keyRune(r))
	}
	model = apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(model.notice, "não encontrado no cardápio") {
		t.Errorf("partial match must show the not-found notice, got %q", model.notice)
	}
	if !model.detail.inputActive {
		t.Error("input must stay open so the user can correct the name")
	}
}

func TestQuickAddDropdownSelection(t *testing.T) {
	model := editorModel(t, editorTicket(api.TicketOpen, nil), testMenu())

	model = apply(t, model, keyRune('a'))
	for _, r := range "co" {
		model = apply(t, model, keyRune(r))
	}
	dropdown := model.detail.dropdown
	if dropdown == nil {
		t.Fatal("typing must open the autocomplete dropdown")
	}
	// "co" matches Água de coco but not the inactive Chopp.
	if len(dropdown.options) != 1 || dropdown.options[0].ID != 1 {
		t.Fatalf("expected only the active coconut water match, got %v", dropdown.options)
	}
	if dropdown.selected() != nil {
		t.Fatal("nothing is highlighted until the user moves the cursor")
	}

	model = apply(t, model, tea.KeyMsg{Type: tea.KeyDown})
	model = apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.detail.inputActive {
		t.Error("input must close once the product is resolved")
	}
	modal := model.detail.menuModal
	if modal == nil {
		t.Fatal("selecting a dropdown row must open the quantity/note stage")
	}
	if modal.stage != stageDetails || modal.selected.ID != 1 {
		t.Fatalf("expected coconut water on the details stage, got stage=%d product=%d",
			modal.stage, modal.selected.ID)
	}

	// Quantity 2, no note.
	model = apply(t, model, tea.KeyMsg{Type: tea.KeyBackspace})
	model = apply(t, model, keyRune('2'))
	model = apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model, cmd := applyCmd(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("confirming quantity and note must dispatch the add")
	}
	if model.detail.menuModal != nil {
		t.Error("modal must close after submit")
	}
}

func TestSendToKitchenGate(t *testing.T) {
	// No items: the action is a no-op.
	model := editorModel(t, editorTicket(api.TicketOpen, nil), testMenu())
	model = apply(t, model, keyRune('c'))
	if model.detail.confirm != nil {
		t.Fatal("send to kitchen must be disabled on an empty ticket")
	}

	// Wrong status: no-op.
	model = editorModel(t, editorTicket(api.TicketInKitchen, pendingItems()), testMenu())
	model = apply(t, model, keyRune('c'))
	if model.detail.confirm != nil {
		t.Fatal("send to kitchen is only available from ABERTA")
	}

	// Open with items: asks for confirmation.
	model = editorModel(t, editorTicket(api.TicketOpen, pendingItems()), testMenu())
	model = apply(t, model, keyRune('c'))
	if model.detail.confirm == nil {
		t.Fatal("send to kitchen must ask for confirmation")
	}

	// Dismissing does nothing.
	model = apply(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	if model.detail.confirm != nil || model.detail.acting {
		t.Error("dismissed confirmation must not run the action")
	}
}

func TestConfirmedSendToKitchenUpdatesTicket(t *testing.T) {
	model := editorModel(t, editorTicket(api.TicketOpen, pendingItems()), testMenu())
	model = apply(t, model, keyRune('c'))

	// Accept via the direct "s" (sim) key.
	model, cmd := applyCmd(t, model, keyRune('s'))
	if cmd == nil || !model.detail.acting {
		t.Fatal("accepted confirmation must dispatch the mutation")
	}

	updated := editorTicket(api.TicketInKitchen, pendingItems())
	model = apply(t, model, mutationMsg{
		generation: model.generation, action: actionSendKitchen, ticket: &updated,
	})
	if model.detail.acting {
		t.Error("acting flag must clear when the mutation lands")
	}
	if model.detail.ticket.Status != api.TicketInKitchen {
		t.Errorf("ticket status = %s, want NA_COZINHA", model.detail.ticket.Status)
	}
}

func TestFinalizeGateAndReturnToBoard(t *testing.T) {
	// NA_COZINHA: finalize disabled.
	model := editorModel(t, editorTicket(api.TicketInKitchen, pendingItems()), testMenu())
	model = apply(t, model, keyRune('f'))
	if model.detail.confirm != nil {
		t.Fatal("finalize must be disabled while in the kitchen")
	}

	// PRONTO_PARA_ENTREGA: allowed.
	model = editorModel(t, editorTicket(api.TicketReady, pendingItems()), testMenu())
	model = apply(t, model, keyRune('f'))
	if model.detail.confirm == nil {
		t.Fatal("finalize must be available from PRONTO_PARA_ENTREGA")
	}
	model = apply(t, model, keyRune('s'))

	// Success: back to the board.
	model = apply(t, model, mutationMsg{generation: model.generation, action: actionFinalize})
	if model.view != ViewBoard {
		t.Errorf("after finalize the editor must return to the board, got view %d", model.view)
	}
}

func TestCancelGate(t *testing.T) {
	model := editorModel(t, editorTicket(api.TicketPreparing, pendingItems()), testMenu())
	model = apply(t, model, keyRune('x'))
	if model.detail.confirm == nil {
		t.Fatal("cancel must be available from any active status")
	}

	model = editorModel(t, editorTicket(api.TicketClosed, pendingItems()), testMenu())
	model = apply(t, model, keyRune('x'))
	if model.detail.confirm != nil {
		t.Error("cancel must be disabled on a closed ticket")
	}
}

func TestMarkDeliveredOnlyWhenReady(t *testing.T) {
	model := editorModel(t, editorTicket(api.TicketReady, pendingItems()), testMenu())

	// Cursor starts on item 51 (PRONTO).
	model, cmd := applyCmd(t, model, keyRune('d'))
	if cmd == nil {
		t.Fatal("d on a PRONTO item must dispatch the delivery")
	}
	if model.detail.pendingItemID != 51 {
		t.Errorf("pending item = %d, want 51", model.detail.pendingItemID)
	}
	if !strings.Contains(model.View(), "entregando...") {
		t.Error("only the acted-on row shows the pending indicator")
	}

	// A second d while pending is a no-op.
	if _, cmd := applyCmd(t, model, keyRune('d')); cmd != nil {
		t.Error("delivery must not double-dispatch while pending")
	}

	// Success clears the indicator and swaps in the re-fetched ticket.
	delivered := pendingItems()
	delivered[0].Status = api.ItemDelivered
	updated := editorTicket(api.TicketReady, delivered)
	model = apply(t, model, itemDeliveredMsg{
		generation: model.generation, itemID: 51, ticket: &updated,
	})
	if model.detail.pendingItemID != 0 {
		t.Error("pending indicator must clear on success")
	}
	if model.detail.ticket.Items[0].Status != api.ItemDelivered {
		t.Error("ticket must reflect the re-fetched delivery status")
	}
}

func TestMarkDeliveredDisabledOnPendingItem(t *testing.T) {
	model := editorModel(t, editorTicket(api.TicketReady, pendingItems()), testMenu())
	model = apply(t, model, keyRune('j')) // Move to the PENDENTE item.
	if _, cmd := applyCmd(t, model, keyRune('d')); cmd != nil {
		t.Error("d on a non-PRONTO item must be a no-op")
	}
}

func TestMutationFailureShowsNoticeAndStaysUsable(t *testing.T) {
	model := editorModel(t, editorTicket(api.TicketOpen, pendingItems()), testMenu())
	model = apply(t, model, keyRune('f'))
	model = apply(t, model, keyRune('s'))

	model = apply(t, model, mutationMsg{
		generation: model.generation,
		action:     actionFinalize,
		err:        errors.New("Comanda possui itens não entregues"),
	})
	if model.view != ViewDetail {
		t.Fatal("a failed mutation must keep the editor open")
	}
	if !strings.Contains(model.notice, "itens não entregues") {
		t.Errorf("server message must surface in the status bar, got %q", model.notice)
	}
	if model.detail.acting {
		t.Error("acting flag must clear on failure")
	}
}

func TestMenuModalFlow(t *testing.T) {
	model := editorModel(t, editorTicket(api.TicketOpen, nil), testMenu())

	model = apply(t, model, keyRune('m'))
	modal := model.detail.menuModal
	if modal == nil {
		t.Fatal("m must open the menu modal")
	}
	// Inactive products are excluded.
	if len(modal.matches) != 3 {
		t.Fatalf("expected 3 active products listed, got %d", len(modal.matches))
	}

	// Narrow with a fuzzy query.
	for _, r := range "batata" {
		model = apply(t, model, keyRune(r))
	}
	if len(modal.matches) != 1 || modal.matches[0].product.ID != 3 {
		t.Fatalf("fuzzy query must narrow to the potato portion, got %v", modal.matches)
	}

	// Pick it, set quantity 2, add a note, submit.
	model = apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if modal.stage != stageDetails {
		t.Fatal("Enter must move to the quantity/note stage")
	}
	model = apply(t, model, tea.KeyMsg{Type: tea.KeyBackspace}) // Clear default "1".
	model = apply(t, model, keyRune('2'))
	model = apply(t, model, tea.KeyMsg{Type: tea.KeyEnter}) // To the note field.
	for _, r := range "sem sal" {
		if r == ' ' {
			model = apply(t, model, tea.KeyMsg{Type: tea.KeySpace})
		} else {
			model = apply(t, model, keyRune(r))
		}
	}
	model, cmd := applyCmd(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("submitting the modal must dispatch the add")
	}
	if model.detail.menuModal != nil {
		t.Error("modal must close after submit")
	}
}

func TestEscReturnsToBoard(t *testing.T) {
	model := editorModel(t, editorTicket(api.TicketOpen, nil), testMenu())
	model, _ = applyCmd(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	if model.view != ViewBoard {
		t.Error("Esc must return to the board when not standalone")
	}
}
