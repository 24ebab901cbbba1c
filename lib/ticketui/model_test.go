// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/barb1424/SeaShadeFront/lib/api"
	"github.com/barb1424/SeaShadeFront/lib/clock"
	"github.com/barb1424/SeaShadeFront/lib/tui"
)

var testEpoch = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func testModel(clk clock.Clock) Model {
	return New(Config{
		KioskID: 7,
		Context: context.Background(),
		Clock:   clk,
		Theme:   tui.DefaultTheme,
	})
}

func apply(t *testing.T, model Model, message tea.Msg) Model {
	t.Helper()
	updated, _ := model.Update(message)
	return updated.(Model)
}

func applyCmd(t *testing.T, model Model, message tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := model.Update(message)
	return updated.(Model), cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testTicket(id, number int64, status api.TicketStatus, slot string, opened time.Time) api.Ticket {
	return api.Ticket{
		ID:     id,
		Number: number,
		Status: status,
		Slot:   &api.Slot{ID: id, Label: slot, Status: "OCUPADO"},
		Items: []api.TicketItem{
			{ID: id * 10, ProductName: "Água de coco", UnitPrice: 8.5, Quantity: 2, Status: api.ItemPending},
		},
		OpenedAt: api.Time{Time: opened},
	}
}

func activeFixture(fetchedAt time.Time) activeTicketsMsg {
	return activeTicketsMsg{
		tickets: []api.Ticket{
			testTicket(1, 101, api.TicketOpen, "G01", testEpoch.Add(-2*time.Minute)),
			testTicket(2, 102, api.TicketInKitchen, "G02", testEpoch.Add(-10*time.Minute)),
			testTicket(3, 103, api.TicketOpen, "G03", testEpoch.Add(-30*time.Second)),
			testTicket(4, 104, api.TicketReady, "G04", testEpoch.Add(-25*time.Minute)),
		},
		fetchedAt: fetchedAt,
	}
}

func TestBoardBuckets(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})
	model = apply(t, model, activeFixture(testEpoch))

	awaiting := model.awaiting()
	if len(awaiting) != 2 {
		t.Fatalf("expected 2 awaiting tickets, got %d", len(awaiting))
	}
	// Server order preserved within the bucket.
	if awaiting[0].Number != 101 || awaiting[1].Number != 103 {
		t.Errorf("awaiting order = %d,%d, want 101,103", awaiting[0].Number, awaiting[1].Number)
	}

	inProgress := model.inProgress()
	if len(inProgress) != 2 {
		t.Fatalf("expected 2 in-progress tickets, got %d", len(inProgress))
	}
	if inProgress[0].Number != 102 || inProgress[1].Number != 104 {
		t.Errorf("in-progress order = %d,%d, want 102,104", inProgress[0].Number, inProgress[1].Number)
	}

	// Every ticket lands in exactly one bucket.
	if len(model.boardOrder()) != 4 {
		t.Errorf("board order has %d tickets, want 4", len(model.boardOrder()))
	}
}

func TestBoardViewShowsCards(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 60})
	model = apply(t, model, activeFixture(testEpoch))

	view := model.View()
	for _, want := range []string{
		"Aguardando pedido (2)",
		"Em andamento (2)",
		"Comanda #101",
		"Guarda-sol G02",
		"há 2 min",  // Ticket 101 opened two minutes ago.
		"agora",     // Ticket 103 opened 30 seconds ago.
		"há 25 min", // Ticket 104.
		"2x Água de coco",
		"Total: R$ 17,00",
		"Na cozinha",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("board view missing %q", want)
		}
	}
}

func TestBoardFirstFailureBlocks(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})
	model = apply(t, model, activeTicketsMsg{err: errors.New("connection refused")})

	if model.loaded {
		t.Fatal("model must not be loaded after a first-fetch failure")
	}
	view := model.View()
	if !strings.Contains(view, "Não foi possível carregar o painel") {
		t.Errorf("expected blocking error view, got:\n%s", view)
	}
	if !strings.Contains(view, "connection refused") {
		t.Error("error view must show the failure")
	}
}

func TestBoardKeepsStaleDataAfterPollFailure(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 60})
	model = apply(t, model, activeFixture(testEpoch))
	model = apply(t, model, activeTicketsMsg{err: errors.New("502")})

	if len(model.tickets) != 4 {
		t.Fatal("stale data must survive a poll failure")
	}
	view := model.View()
	if !strings.Contains(view, "Comanda #101") {
		t.Error("stale board must keep rendering tickets")
	}
	if !strings.Contains(view, "dados de 12:00:00") {
		t.Errorf("status bar must show the data age, got:\n%s", view)
	}

	// A later successful poll clears the staleness.
	model = apply(t, model, activeFixture(testEpoch.Add(15*time.Second)))
	if strings.Contains(model.View(), "dados de") {
		t.Error("staleness indicator must clear after a successful poll")
	}
}

func TestPollReplacesListWholesale(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})
	model = apply(t, model, activeFixture(testEpoch))

	model = apply(t, model, activeTicketsMsg{
		tickets:   []api.Ticket{testTicket(9, 109, api.TicketOpen, "G09", testEpoch)},
		fetchedAt: testEpoch.Add(15 * time.Second),
	})
	if len(model.tickets) != 1 || model.tickets[0].Number != 109 {
		t.Errorf("poll must replace the list wholesale, got %d tickets", len(model.tickets))
	}
}

func TestStaleGenerationDiscarded(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})
	model = apply(t, model, activeFixture(testEpoch))

	// Switch to history; the generation advances.
	model = apply(t, model, keyRune('h'))
	if model.view != ViewHistory {
		t.Fatal("h must open the history view")
	}

	// A board response issued before the switch lands late: dropped.
	model = apply(t, model, activeTicketsMsg{
		generation: 0,
		tickets:    []api.Ticket{testTicket(9, 109, api.TicketOpen, "G09", testEpoch)},
		fetchedAt:  testEpoch.Add(time.Second),
	})
	if len(model.tickets) != 4 {
		t.Error("late response from a previous generation must be discarded")
	}

	// The old poll tick loop dies too.
	_, cmd := applyCmd(t, model, pollTickMsg{generation: 0})
	if cmd != nil {
		t.Error("stale poll tick must not reschedule")
	}
}

func TestPollTickRefetchesOnBoard(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})
	model = apply(t, model, activeFixture(testEpoch))

	_, cmd := applyCmd(t, model, pollTickMsg{generation: model.generation})
	if cmd == nil {
		t.Error("current-generation poll tick must re-fetch and reschedule")
	}
}

func TestElapsedTickAdvancesLabels(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 60})
	model = apply(t, model, activeFixture(testEpoch))

	if !strings.Contains(model.View(), "agora") {
		t.Fatal("ticket 103 must start at \"agora\"")
	}

	// One minute later the 30-second-old ticket crosses the boundary.
	clk.Advance(time.Minute)
	model = apply(t, model, elapsedTickMsg{})
	view := model.View()
	if !strings.Contains(view, "há 1 min") {
		t.Errorf("expected \"há 1 min\" after the minute tick, got:\n%s", view)
	}
	if !strings.Contains(view, "há 3 min") {
		t.Error("ticket 101 must advance from 2 to 3 minutes")
	}
}

func TestStandaloneInitSchedulesElapsedTick(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := NewForTicket(Config{
		KioskID: 7,
		Context: context.Background(),
		Clock:   clk,
		Theme:   tui.DefaultTheme,
	}, 5)

	cmd := model.Init()
	if cmd == nil {
		t.Fatal("Init must return a command")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected a batch from Init, got %T", cmd())
	}
	// Editor load plus the elapsed tick that keeps the opened-ago
	// label current without a board visit.
	if len(batch) != 2 {
		t.Errorf("expected 2 commands in the standalone init batch, got %d", len(batch))
	}
}

func TestBoardEnterOpensDetail(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})
	model = apply(t, model, activeFixture(testEpoch))

	model = apply(t, model, keyRune('j'))
	model, cmd := applyCmd(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if model.view != ViewDetail {
		t.Fatal("Enter on a card must open the detail editor")
	}
	// Cursor 1 is the second awaiting ticket (number 103, id 3).
	if model.detail.ticketID != 3 {
		t.Errorf("detail ticket id = %d, want 3", model.detail.ticketID)
	}
	if cmd == nil {
		t.Error("opening the editor must issue the parallel load")
	}
}

func TestHistorySortedByCloseTimeDescending(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})
	model = apply(t, model, keyRune('h'))

	older := testTicket(1, 101, api.TicketClosed, "G01", testEpoch.Add(-3*time.Hour))
	older.ClosedAt = api.Time{Time: testEpoch.Add(-2 * time.Hour)}
	newer := testTicket(2, 102, api.TicketCancelled, "G02", testEpoch.Add(-time.Hour))
	newer.ClosedAt = api.Time{Time: testEpoch.Add(-10 * time.Minute)}

	model = apply(t, model, historyTicketsMsg{
		generation: model.generation,
		tickets:    []api.Ticket{older, newer},
	})

	if len(model.history) != 2 {
		t.Fatalf("expected 2 history tickets, got %d", len(model.history))
	}
	if model.history[0].Number != 102 {
		t.Errorf("most recently closed ticket must come first, got #%d", model.history[0].Number)
	}

	view := model.View()
	if !strings.Contains(view, "Cancelada") || !strings.Contains(view, "Fechada") {
		t.Errorf("history must label closed and cancelled tickets, got:\n%s", view)
	}
}

func TestCreateRejectsOccupiedSlot(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})
	model = apply(t, model, keyRune('n'))
	if model.view != ViewCreate {
		t.Fatal("n must open ticket creation")
	}

	model = apply(t, model, slotsMsg{
		generation: model.generation,
		slots: []api.Slot{
			{ID: 1, Label: "G01", Status: "OCUPADO"},
			{ID: 2, Label: "G02", Status: "LIVRE"},
		},
	})

	// Enter on the occupied slot: rejected client-side with the label.
	model = apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.creating {
		t.Fatal("occupied slot must not start a create call")
	}
	if !strings.Contains(model.notice, "G01") || !strings.Contains(model.notice, "ocupado") {
		t.Errorf("notice must name the occupied slot, got %q", model.notice)
	}

	// Enter on the free slot issues the create.
	model = apply(t, model, keyRune('j'))
	model, cmd := applyCmd(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if !model.creating || cmd == nil {
		t.Error("free slot must start the create call")
	}
}

func TestCreatedTicketOpensEditor(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})
	model = apply(t, model, keyRune('n'))

	created := testTicket(42, 142, api.TicketOpen, "G05", testEpoch)
	model = apply(t, model, ticketCreatedMsg{generation: model.generation, ticket: &created})

	if model.view != ViewDetail {
		t.Fatal("a created ticket must open in the editor")
	}
	if model.detail.ticketID != 42 {
		t.Errorf("editor ticket id = %d, want 42", model.detail.ticketID)
	}
}

func TestNoticeFade(t *testing.T) {
	clk := clock.Fake(testEpoch)
	model := testModel(clk)
	model = apply(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})

	model = apply(t, model, tui.LogNoticeMsg{Summary: "falha na cozinha", Level: slog.LevelWarn})
	if model.notice != "falha na cozinha" {
		t.Fatalf("notice = %q", model.notice)
	}

	// A fade for an older notice must not clear a newer one.
	model = apply(t, model, noticeFadeMsg{seq: model.noticeSeq - 1})
	if model.notice == "" {
		t.Fatal("stale fade must not clear the current notice")
	}

	model = apply(t, model, noticeFadeMsg{seq: model.noticeSeq})
	if model.notice != "" {
		t.Error("matching fade must clear the notice")
	}
}
