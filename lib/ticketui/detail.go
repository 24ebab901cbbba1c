// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barb1424/SeaShadeFront/lib/api"
	"github.com/barb1424/SeaShadeFront/lib/tui"
)

// detailAction is a confirmed status mutation on the open ticket.
type detailAction int

const (
	actionSendKitchen detailAction = iota
	actionFinalize
	actionCancel
)

func (action detailAction) label() string {
	switch action {
	case actionSendKitchen:
		return "Enviar para cozinha"
	case actionFinalize:
		return "Finalizar comanda"
	case actionCancel:
		return "Cancelar comanda"
	}
	return ""
}

// detailState is the editor's view state. The ticket and the menu load
// in parallel and the editor renders only when both arrived; the menu
// is fetched once per editor session and ticket reloads re-use it.
type detailState struct {
	ticketID     int64
	ticket       *api.Ticket
	menu         []api.Product
	ticketLoaded bool
	menuLoaded   bool
	loadErr      error

	itemCursor    int
	pendingItemID int64 // Item with a delivery call in flight.

	// Quick-add input and its autocomplete dropdown.
	inputActive bool
	input       string
	dropdown    *autocompleteDropdown

	menuModal *MenuModal

	confirm       *tui.ConfirmModal
	confirmAction detailAction
	acting        bool // A confirmed status mutation is in flight.
}

func newDetailState(ticketID int64) detailState {
	return detailState{ticketID: ticketID}
}

// editorTicketMsg carries a ticket fetch for the editor: the initial
// load (blocking on error) or a reload after an add (notice on error).
type editorTicketMsg struct {
	generation int
	initial    bool
	ticket     *api.Ticket
	err        error
}

type editorMenuMsg struct {
	generation int
	products   []api.Product
	err        error
}

type mutationMsg struct {
	generation int
	action     detailAction
	ticket     *api.Ticket // Updated ticket, when the call returns one.
	err        error
}

type itemDeliveredMsg struct {
	generation int
	itemID     int64
	ticket     *api.Ticket
	err        error
}

// --- Commands ---

// loadEditor fetches the ticket and the menu in parallel. Either
// failing fails the load as a whole.
func (model Model) loadEditor() tea.Cmd {
	return tea.Batch(model.fetchEditorTicket(true), model.fetchEditorMenu())
}

func (model Model) fetchEditorTicket(initial bool) tea.Cmd {
	generation := model.generation
	client, ctx, ticketID := model.client, model.ctx, model.detail.ticketID
	return func() tea.Msg {
		ticket, err := client.GetTicket(ctx, ticketID)
		return editorTicketMsg{generation: generation, initial: initial, ticket: ticket, err: err}
	}
}

func (model Model) fetchEditorMenu() tea.Cmd {
	generation := model.generation
	client, ctx, kioskID := model.client, model.ctx, model.kioskID
	return func() tea.Msg {
		products, err := client.ListProducts(ctx, kioskID)
		return editorMenuMsg{generation: generation, products: products, err: err}
	}
}

// addItem posts the item and re-fetches the full ticket; the view
// never merges locally.
func (model Model) addItem(request api.AddItemRequest) tea.Cmd {
	generation := model.generation
	client, ctx, ticketID := model.client, model.ctx, model.detail.ticketID
	return func() tea.Msg {
		if err := client.AddTicketItem(ctx, ticketID, request); err != nil {
			return editorTicketMsg{generation: generation, err: err}
		}
		ticket, err := client.GetTicket(ctx, ticketID)
		return editorTicketMsg{generation: generation, ticket: ticket, err: err}
	}
}

func (model Model) runAction(action detailAction) tea.Cmd {
	generation := model.generation
	client, ctx, ticketID := model.client, model.ctx, model.detail.ticketID
	return func() tea.Msg {
		message := mutationMsg{generation: generation, action: action}
		switch action {
		case actionSendKitchen:
			message.ticket, message.err = client.SendToKitchen(ctx, ticketID)
		case actionFinalize:
			message.err = client.FinalizeTicket(ctx, ticketID)
		case actionCancel:
			message.err = client.CancelTicket(ctx, ticketID)
		}
		return message
	}
}

func (model Model) deliverItem(itemID int64) tea.Cmd {
	generation := model.generation
	client, ctx, ticketID := model.client, model.ctx, model.detail.ticketID
	return func() tea.Msg {
		if err := client.MarkItemDelivered(ctx, itemID); err != nil {
			return itemDeliveredMsg{generation: generation, itemID: itemID, err: err}
		}
		ticket, err := client.GetTicket(ctx, ticketID)
		return itemDeliveredMsg{generation: generation, itemID: itemID, ticket: ticket, err: err}
	}
}

// --- Gates ---

func (state detailState) canSendKitchen() bool {
	return state.ticket != nil &&
		state.ticket.Status == api.TicketOpen &&
		len(state.ticket.Items) > 0
}

func (state detailState) canFinalize() bool {
	return state.ticket != nil &&
		(state.ticket.Status == api.TicketOpen || state.ticket.Status == api.TicketReady)
}

func (state detailState) canCancel() bool {
	return state.ticket != nil && state.ticket.Status.Active()
}

func (state detailState) selectedItem() *api.TicketItem {
	if state.ticket == nil || state.itemCursor >= len(state.ticket.Items) {
		return nil
	}
	return &state.ticket.Items[state.itemCursor]
}

// --- Data updates ---

func (model Model) updateDetailData(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case editorTicketMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			if message.initial {
				model.detail.loadErr = message.err
				return model, nil
			}
			model.logger.Warn("comanda não atualizada", "error", message.err)
			return model, model.setNotice(message.err.Error(), slog.LevelWarn)
		}
		model.detail.ticket = message.ticket
		model.detail.ticketLoaded = true
		if model.detail.itemCursor >= len(message.ticket.Items) {
			model.detail.itemCursor = max(0, len(message.ticket.Items)-1)
		}
		return model, nil

	case editorMenuMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			model.detail.loadErr = message.err
			return model, nil
		}
		model.detail.menu = message.products
		model.detail.menuLoaded = true
		return model, nil

	case mutationMsg:
		if message.generation != model.generation {
			return model, nil
		}
		model.detail.acting = false
		if message.err != nil {
			model.logger.Warn("ação na comanda falhou",
				"action", message.action.label(), "error", message.err)
			return model, model.setNotice(message.err.Error(), slog.LevelWarn)
		}
		switch message.action {
		case actionSendKitchen:
			if message.ticket != nil {
				model.detail.ticket = message.ticket
			}
			return model, nil
		case actionFinalize, actionCancel:
			// The ticket left the active set; the editor is done.
			if model.standalone {
				return model, tea.Quit
			}
			return model, model.switchView(ViewBoard)
		}
		return model, nil

	case itemDeliveredMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if model.detail.pendingItemID == message.itemID {
			model.detail.pendingItemID = 0
		}
		if message.err != nil {
			model.logger.Warn("marcar entregue falhou",
				"item", message.itemID, "error", message.err)
			return model, model.setNotice(message.err.Error(), slog.LevelWarn)
		}
		if message.ticket != nil {
			model.detail.ticket = message.ticket
		}
		return model, nil
	}
	return model, nil
}

// --- Keys ---

func (model Model) handleDetailKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.detail

	if state.confirm != nil {
		switch state.confirm.Update(message) {
		case tui.ConfirmAccepted:
			action := state.confirmAction
			state.confirm = nil
			state.acting = true
			return model, model.runAction(action)
		case tui.ConfirmDismissed:
			state.confirm = nil
		}
		return model, nil
	}

	if state.menuModal != nil {
		outcome, selection := state.menuModal.Update(message)
		switch outcome {
		case MenuModalCancelled:
			state.menuModal = nil
		case MenuModalSubmitted:
			state.menuModal = nil
			return model, model.addItem(api.AddItemRequest{
				ProductID: selection.ProductID,
				Quantity:  selection.Quantity,
				Notes:     selection.Note,
			})
		}
		return model, nil
	}

	if state.inputActive {
		return model.handleQuickAddKey(message)
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.BackView):
		if model.standalone {
			return model, tea.Quit
		}
		return model, model.switchView(ViewBoard)

	case key.Matches(message, model.keys.Up):
		if state.itemCursor > 0 {
			state.itemCursor--
		}

	case key.Matches(message, model.keys.Down):
		if state.ticket != nil && state.itemCursor < len(state.ticket.Items)-1 {
			state.itemCursor++
		}

	case key.Matches(message, model.keys.QuickAdd):
		if state.ticket != nil && state.ticket.Status.Active() {
			state.inputActive = true
			state.input = ""
			state.dropdown = nil
		}

	case key.Matches(message, model.keys.MenuModal):
		if state.ticket != nil && state.ticket.Status.Active() && state.menuLoaded {
			state.menuModal = NewMenuModal(state.menu, model.theme)
		}

	case key.Matches(message, model.keys.SendKitchen):
		if state.canSendKitchen() && !state.acting {
			model.openConfirm(actionSendKitchen,
				fmt.Sprintf("Enviar a comanda #%d para a cozinha?", state.ticket.Number))
		}

	case key.Matches(message, model.keys.Finalize):
		if state.canFinalize() && !state.acting {
			model.openConfirm(actionFinalize,
				fmt.Sprintf("Finalizar a comanda #%d (%s)?",
					state.ticket.Number, state.ticket.Subtotal()))
		}

	case key.Matches(message, model.keys.Cancel):
		if state.canCancel() && !state.acting {
			model.openConfirm(actionCancel,
				fmt.Sprintf("Cancelar a comanda #%d?", state.ticket.Number))
		}

	case key.Matches(message, model.keys.MarkDelivered):
		item := state.selectedItem()
		if item != nil && item.Status == api.ItemReady && state.pendingItemID == 0 {
			state.pendingItemID = item.ID
			return model, model.deliverItem(item.ID)
		}

	case key.Matches(message, model.keys.Refresh):
		return model, model.fetchEditorTicket(false)
	}
	return model, nil
}

// openQuickAddDetails closes the inline input and hands the resolved
// product to the menu modal's quantity and note stage.
func (model *Model) openQuickAddDetails(product api.Product) {
	state := &model.detail
	state.inputActive = false
	state.input = ""
	state.dropdown = nil
	state.menuModal = NewMenuModalForProduct(state.menu, product, model.theme)
}

func (model *Model) openConfirm(action detailAction, prompt string) {
	confirm := tui.NewConfirmModal(action.label(), prompt, model.theme)
	model.detail.confirm = &confirm
	model.detail.confirmAction = action
}

// handleQuickAddKey drives the inline add-by-name input. Enter takes
// the dropdown selection when one is highlighted, otherwise the typed
// text must match a product name exactly (case-insensitive). Either
// way the resolved product goes through the quantity and note stage
// before anything is submitted.
func (model Model) handleQuickAddKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.detail

	switch message.Type {
	case tea.KeyEsc:
		state.inputActive = false
		state.input = ""
		state.dropdown = nil

	case tea.KeyUp:
		if state.dropdown != nil {
			state.dropdown.moveUp()
		}

	case tea.KeyDown:
		if state.dropdown != nil {
			state.dropdown.moveDown()
		}

	case tea.KeyEnter:
		if state.dropdown != nil {
			if product := state.dropdown.selected(); product != nil {
				model.openQuickAddDetails(*product)
				return model, nil
			}
		}
		typed := strings.TrimSpace(state.input)
		if typed == "" {
			return model, nil
		}
		for _, product := range state.menu {
			if product.Active && strings.EqualFold(product.Name, typed) {
				model.openQuickAddDetails(product)
				return model, nil
			}
		}
		return model, model.setNotice(
			fmt.Sprintf("Produto %q não encontrado no cardápio.", typed),
			slog.LevelWarn)

	case tea.KeyBackspace:
		if state.input != "" {
			runes := []rune(state.input)
			state.input = string(runes[:len(runes)-1])
			state.dropdown = newAutocomplete(state.menu, state.input)
		}

	case tea.KeyRunes:
		state.input += string(message.Runes)
		state.dropdown = newAutocomplete(state.menu, state.input)

	case tea.KeySpace:
		state.input += " "
		state.dropdown = newAutocomplete(state.menu, state.input)
	}
	return model, nil
}

// --- View ---

func itemStatusLabel(status api.ItemStatus) string {
	switch status {
	case api.ItemPending:
		return "Pendente"
	case api.ItemInKitchen:
		return "Na cozinha"
	case api.ItemPreparing:
		return "Em preparo"
	case api.ItemReady:
		return "Pronto"
	case api.ItemDelivered:
		return "Entregue"
	}
	return string(status)
}

func (model Model) itemStatusColor(status api.ItemStatus) lipgloss.Color {
	switch status {
	case api.ItemPending:
		return model.theme.StatusAwaiting
	case api.ItemInKitchen, api.ItemPreparing:
		return model.theme.StatusKitchen
	case api.ItemReady:
		return model.theme.StatusReady
	case api.ItemDelivered:
		return model.theme.DeliveredText
	}
	return model.theme.FaintText
}

func (model Model) viewDetail() string {
	state := model.detail

	if state.loadErr != nil {
		return model.errorView("Não foi possível carregar a comanda", state.loadErr)
	}
	if !state.ticketLoaded || !state.menuLoaded {
		return model.centered("Carregando comanda...")
	}

	ticket := state.ticket
	theme := model.theme

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	statusStyle := lipgloss.NewStyle().Foreground(theme.StatusColor(ticket.Status))

	var body strings.Builder
	body.WriteString(titleStyle.Render(
		fmt.Sprintf("Comanda #%d · Guarda-sol %s", ticket.Number, ticket.SlotLabel())) + "\n")
	body.WriteString(statusStyle.Render(tui.StatusLabel(ticket.Status)) +
		faint.Render("  aberta "+ElapsedLabel(ticket.OpenedAt.Time, model.now)) + "\n\n")

	if len(ticket.Items) == 0 {
		body.WriteString(faint.Render("Nenhum item lançado.") + "\n")
	}
	for index, item := range ticket.Items {
		body.WriteString(model.renderItemRow(item, index == state.itemCursor) + "\n")
		if item.Notes != "" {
			body.WriteString(faint.Render("      "+item.Notes) + "\n")
		}
	}

	body.WriteString("\n" + lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.MoneyForeground).
		Render("Total: "+ticket.Subtotal().String()) + "\n")

	if state.inputActive {
		cursor := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground).Render("▎")
		body.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.NormalText).
			Render("+ item: "+state.input) + cursor + "\n")
		if state.dropdown != nil {
			for _, line := range state.dropdown.render(theme, 6) {
				body.WriteString(line + "\n")
			}
		}
	}

	help := model.detailHelp()
	view := model.withStatusBar(body.String(), help)

	if state.menuModal != nil {
		lines, anchorX, anchorY := state.menuModal.Render(model.width, model.height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}
	if state.confirm != nil {
		lines, anchorX, anchorY := state.confirm.Render(model.width, model.height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}
	return view
}

func (model Model) renderItemRow(item api.TicketItem, selected bool) string {
	theme := model.theme

	marker := "  "
	if selected {
		marker = "> "
	}

	line := fmt.Sprintf("%dx %-28s %s", item.Quantity, item.ProductName, item.LineTotal())
	style := lipgloss.NewStyle().Foreground(theme.NormalText)
	if item.Status == api.ItemDelivered {
		style = lipgloss.NewStyle().Foreground(theme.DeliveredText).Strikethrough(true)
	} else if selected {
		style = style.Bold(true)
	}

	status := lipgloss.NewStyle().
		Foreground(model.itemStatusColor(item.Status)).
		Render(itemStatusLabel(item.Status))
	if model.detail.pendingItemID == item.ID {
		status = lipgloss.NewStyle().Foreground(theme.FaintText).Render("entregando...")
	}

	return marker + style.Render(line) + "  " + status
}

// detailHelp builds the status bar hint from the actions available in
// the ticket's current status.
func (model Model) detailHelp() string {
	state := model.detail
	var hints []string
	if state.ticket != nil && state.ticket.Status.Active() {
		hints = append(hints, "a adicionar", "m cardápio")
	}
	if state.canSendKitchen() {
		hints = append(hints, "c cozinha")
	}
	if state.canFinalize() {
		hints = append(hints, "f finalizar")
	}
	if state.canCancel() {
		hints = append(hints, "x cancelar")
	}
	if item := state.selectedItem(); item != nil && item.Status == api.ItemReady {
		hints = append(hints, "d entregue")
	}
	hints = append(hints, "Esc voltar", "q sair")
	return strings.Join(hints, " · ")
}
