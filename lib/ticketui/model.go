// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/barb1424/SeaShadeFront/lib/api"
	"github.com/barb1424/SeaShadeFront/lib/clock"
	"github.com/barb1424/SeaShadeFront/lib/tui"
)

// View identifies which screen the model is showing.
type View int

const (
	// ViewBoard is the polling board of active tickets.
	ViewBoard View = iota
	// ViewHistory shows closed and cancelled tickets.
	ViewHistory
	// ViewCreate picks a free umbrella slot for a new ticket.
	ViewCreate
	// ViewDetail is the per-ticket editor.
	ViewDetail
)

// Default cadences. The poll interval re-fetches the board's data; the
// elapsed tick only re-renders the "há N min" labels.
const (
	DefaultPollInterval = 15 * time.Second
	DefaultElapsedTick  = 60 * time.Second

	noticeFadeDelay = 5 * time.Second
)

// Config wires a Model to the API and the environment.
type Config struct {
	// Client is the authenticated API client.
	Client *api.Client

	// KioskID scopes every fetch.
	KioskID int64

	// Context is cancelled when the command stops; in-flight fetches
	// abort with it.
	Context context.Context

	// Clock supplies the current time for elapsed labels and the
	// staleness display. Defaults to clock.Real().
	Clock clock.Clock

	// Logger receives mutation failures; wire it through a
	// tui.LogHandler so WARN records land in the status bar.
	Logger *slog.Logger

	Theme tui.Theme
	Keys  KeyMap

	// PollInterval is the board re-fetch cadence. Zero means
	// DefaultPollInterval.
	PollInterval time.Duration

	// ElapsedTick is the label refresh cadence. Zero means
	// DefaultElapsedTick.
	ElapsedTick time.Duration
}

// Messages. Every asynchronous result carries the generation that
// issued it; the model drops results from a previous view so a fetch
// landing after a view switch cannot clobber the current screen.

type activeTicketsMsg struct {
	generation int
	tickets    []api.Ticket
	fetchedAt  time.Time
	err        error
}

type historyTicketsMsg struct {
	generation int
	tickets    []api.Ticket
	err        error
}

type slotsMsg struct {
	generation int
	slots      []api.Slot
	err        error
}

type ticketCreatedMsg struct {
	generation int
	ticket     *api.Ticket
	err        error
}

// pollTickMsg re-issues the board fetch. A tick from a previous
// generation is ignored, which stops the old tick loop after a view
// switch.
type pollTickMsg struct {
	generation int
}

// elapsedTickMsg advances the "há N min" labels without fetching.
type elapsedTickMsg struct{}

// noticeFadeMsg clears the status bar notice set with the same
// sequence number.
type noticeFadeMsg struct {
	seq int
}

// Model is the bubbletea model for all interactive ticket views.
type Model struct {
	client  *api.Client
	kioskID int64
	ctx     context.Context
	clock   clock.Clock
	logger  *slog.Logger
	theme   tui.Theme
	keys    KeyMap

	pollInterval time.Duration
	elapsedTick  time.Duration

	width  int
	height int
	ready  bool

	view       View
	generation int

	// Board state. tickets is the last successful fetch, replaced
	// wholesale on every poll. A failure before the first success
	// blocks the view; afterwards the stale list stays up and the
	// status bar shows the age of the data.
	tickets     []api.Ticket
	loaded      bool
	loadErr     error
	stale       bool
	lastSuccess time.Time
	cursor      int

	// now drives elapsed labels; advanced by elapsedTickMsg.
	now time.Time

	// History state.
	history       []api.Ticket
	historyLoaded bool
	historyErr    error
	historyCursor int

	// Creation state.
	slots      []api.Slot
	slotsOpen  bool
	slotsErr   error
	slotCursor int
	creating   bool

	// Detail editor state.
	detail detailState

	// standalone is true when the model was started directly on a
	// ticket (seashade ticket open): leaving the editor quits instead
	// of returning to the board.
	standalone bool

	// Status bar notice, cleared after a short delay.
	notice      string
	noticeLevel slog.Level
	noticeSeq   int
}

// New creates a Model starting on the board view.
func New(config Config) Model {
	model := newModel(config)
	model.view = ViewBoard
	return model
}

// NewForTicket creates a Model starting directly in the detail editor
// for one ticket. Leaving the editor exits the program.
func NewForTicket(config Config, ticketID int64) Model {
	model := newModel(config)
	model.view = ViewDetail
	model.standalone = true
	model.detail = newDetailState(ticketID)
	return model
}

func newModel(config Config) Model {
	if config.Clock == nil {
		config.Clock = clock.Real()
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}
	if config.ElapsedTick <= 0 {
		config.ElapsedTick = DefaultElapsedTick
	}
	if config.Keys.Quit.Keys() == nil {
		config.Keys = DefaultKeyMap
	}

	return Model{
		client:       config.Client,
		kioskID:      config.KioskID,
		ctx:          config.Context,
		clock:        config.Clock,
		logger:       config.Logger,
		theme:        config.Theme,
		keys:         config.Keys,
		pollInterval: config.PollInterval,
		elapsedTick:  config.ElapsedTick,
		now:          config.Clock.Now(),
	}
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	switch model.view {
	case ViewDetail:
		// The elapsed tick keeps "aberta há N min" moving even when
		// the program never visits the board.
		return tea.Batch(
			model.loadEditor(),
			model.scheduleElapsedTick(),
		)
	default:
		return tea.Batch(
			model.fetchActive(),
			model.schedulePoll(),
			model.scheduleElapsedTick(),
		)
	}
}

// --- Commands ---

func (model Model) fetchActive() tea.Cmd {
	generation := model.generation
	client, kioskID, ctx, clk := model.client, model.kioskID, model.ctx, model.clock
	return func() tea.Msg {
		tickets, err := client.ListTickets(ctx, kioskID, api.ActiveTicketStatuses)
		return activeTicketsMsg{
			generation: generation,
			tickets:    tickets,
			fetchedAt:  clk.Now(),
			err:        err,
		}
	}
}

func (model Model) fetchHistory() tea.Cmd {
	generation := model.generation
	client, kioskID, ctx := model.client, model.kioskID, model.ctx
	return func() tea.Msg {
		tickets, err := client.ListTickets(ctx, kioskID, api.HistoryTicketStatuses)
		return historyTicketsMsg{generation: generation, tickets: tickets, err: err}
	}
}

func (model Model) fetchSlots() tea.Cmd {
	generation := model.generation
	client, kioskID, ctx := model.client, model.kioskID, model.ctx
	return func() tea.Msg {
		slots, err := client.ListSlots(ctx, kioskID)
		return slotsMsg{generation: generation, slots: slots, err: err}
	}
}

func (model Model) createTicket(slotID int64) tea.Cmd {
	generation := model.generation
	client, ctx := model.client, model.ctx
	return func() tea.Msg {
		ticket, err := client.CreateTicket(ctx, slotID)
		return ticketCreatedMsg{generation: generation, ticket: ticket, err: err}
	}
}

func (model Model) schedulePoll() tea.Cmd {
	generation := model.generation
	return tea.Tick(model.pollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{generation: generation}
	})
}

func (model Model) scheduleElapsedTick() tea.Cmd {
	return tea.Tick(model.elapsedTick, func(time.Time) tea.Msg {
		return elapsedTickMsg{}
	})
}

// setNotice puts a transient message in the status bar and schedules
// its removal.
func (model *Model) setNotice(text string, level slog.Level) tea.Cmd {
	model.notice = text
	model.noticeLevel = level
	model.noticeSeq++
	seq := model.noticeSeq
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{seq: seq}
	})
}

// switchView moves to another view, bumping the generation so late
// responses for the old view are discarded, and kicks off the new
// view's load.
func (model *Model) switchView(view View) tea.Cmd {
	model.generation++
	model.view = view

	switch view {
	case ViewBoard:
		// The board keeps its last data; resume polling with a fresh
		// fetch so the list is current immediately.
		return tea.Batch(model.fetchActive(), model.schedulePoll())
	case ViewHistory:
		model.historyLoaded = false
		model.historyErr = nil
		model.historyCursor = 0
		return model.fetchHistory()
	case ViewCreate:
		model.slotsOpen = false
		model.slotsErr = nil
		model.slotCursor = 0
		model.creating = false
		return model.fetchSlots()
	case ViewDetail:
		return model.loadEditor()
	}
	return nil
}

// --- Update ---

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		return model, nil

	case activeTicketsMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			if !model.loaded {
				model.loadErr = message.err
			} else {
				model.stale = true
			}
			return model, nil
		}
		model.tickets = message.tickets
		model.loaded = true
		model.loadErr = nil
		model.stale = false
		model.lastSuccess = message.fetchedAt
		model.clampBoardCursor()
		return model, nil

	case historyTicketsMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			model.historyErr = message.err
			return model, nil
		}
		tickets := message.tickets
		sort.SliceStable(tickets, func(i, j int) bool {
			return tickets[i].ClosedAt.After(tickets[j].ClosedAt.Time)
		})
		model.history = tickets
		model.historyLoaded = true
		if model.historyCursor >= len(tickets) {
			model.historyCursor = max(0, len(tickets)-1)
		}
		return model, nil

	case slotsMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			model.slotsErr = message.err
			return model, nil
		}
		model.slots = message.slots
		model.slotsOpen = true
		if model.slotCursor >= len(message.slots) {
			model.slotCursor = max(0, len(message.slots)-1)
		}
		return model, nil

	case ticketCreatedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		model.creating = false
		if message.err != nil {
			model.logger.Warn("abrir comanda falhou", "error", message.err)
			return model, model.setNotice(message.err.Error(), slog.LevelWarn)
		}
		model.detail = newDetailState(message.ticket.ID)
		return model, model.switchView(ViewDetail)

	case pollTickMsg:
		if message.generation != model.generation || model.view != ViewBoard {
			return model, nil
		}
		return model, tea.Batch(model.fetchActive(), model.schedulePoll())

	case elapsedTickMsg:
		model.now = model.clock.Now()
		return model, model.scheduleElapsedTick()

	case noticeFadeMsg:
		if message.seq == model.noticeSeq {
			model.notice = ""
		}
		return model, nil

	case tui.LogNoticeMsg:
		if message.Level >= slog.LevelWarn {
			return model, model.setNotice(message.Summary, message.Level)
		}
		return model, nil

	case editorTicketMsg, editorMenuMsg, mutationMsg, itemDeliveredMsg:
		return model.updateDetailData(message)

	case tea.KeyMsg:
		return model.handleKey(message)
	}
	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.view == ViewDetail {
		return model.handleDetailKey(message)
	}

	if key.Matches(message, model.keys.Quit) {
		return model, tea.Quit
	}

	switch model.view {
	case ViewBoard:
		return model.handleBoardKey(message)
	case ViewHistory:
		return model.handleHistoryKey(message)
	case ViewCreate:
		return model.handleCreateKey(message)
	}
	return model, nil
}

func (model Model) handleBoardKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.boardOrder())-1 {
			model.cursor++
		}
	case key.Matches(message, model.keys.Home):
		model.cursor = 0
	case key.Matches(message, model.keys.End):
		model.cursor = max(0, len(model.boardOrder())-1)
	case key.Matches(message, model.keys.Select):
		order := model.boardOrder()
		if model.cursor < len(order) {
			model.detail = newDetailState(order[model.cursor].ID)
			return model, model.switchView(ViewDetail)
		}
	case key.Matches(message, model.keys.History):
		return model, model.switchView(ViewHistory)
	case key.Matches(message, model.keys.NewTicket):
		return model, model.switchView(ViewCreate)
	case key.Matches(message, model.keys.Refresh):
		return model, model.fetchActive()
	}
	return model, nil
}

func (model Model) handleHistoryKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Up):
		if model.historyCursor > 0 {
			model.historyCursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.historyCursor < len(model.history)-1 {
			model.historyCursor++
		}
	case key.Matches(message, model.keys.BackView), key.Matches(message, model.keys.History):
		return model, model.switchView(ViewBoard)
	}
	return model, nil
}

func (model Model) handleCreateKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.creating {
		return model, nil
	}
	switch {
	case key.Matches(message, model.keys.Up):
		if model.slotCursor > 0 {
			model.slotCursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.slotCursor < len(model.slots)-1 {
			model.slotCursor++
		}
	case key.Matches(message, model.keys.Select):
		if model.slotCursor < len(model.slots) {
			slot := model.slots[model.slotCursor]
			if !slot.Free() {
				return model, model.setNotice(
					fmt.Sprintf("Guarda-sol %s está ocupado.", slot.Label),
					slog.LevelWarn)
			}
			model.creating = true
			return model, model.createTicket(slot.ID)
		}
	case key.Matches(message, model.keys.BackView):
		return model, model.switchView(ViewBoard)
	}
	return model, nil
}

// --- Board data ---

// awaiting returns the ABERTA bucket in server order.
func (model Model) awaiting() []api.Ticket {
	var out []api.Ticket
	for _, ticket := range model.tickets {
		if ticket.Status == api.TicketOpen {
			out = append(out, ticket)
		}
	}
	return out
}

// inProgress returns every other active ticket in server order.
func (model Model) inProgress() []api.Ticket {
	var out []api.Ticket
	for _, ticket := range model.tickets {
		if ticket.Status != api.TicketOpen {
			out = append(out, ticket)
		}
	}
	return out
}

// boardOrder is the cursor's traversal order: the awaiting bucket
// first, then in-progress.
func (model Model) boardOrder() []api.Ticket {
	return append(model.awaiting(), model.inProgress()...)
}

func (model *Model) clampBoardCursor() {
	if count := len(model.boardOrder()); model.cursor >= count {
		model.cursor = max(0, count-1)
	}
}

// --- Views ---

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return ""
	}
	switch model.view {
	case ViewBoard:
		return model.viewBoard()
	case ViewHistory:
		return model.viewHistory()
	case ViewCreate:
		return model.viewCreate()
	case ViewDetail:
		return model.viewDetail()
	}
	return ""
}

func (model Model) viewBoard() string {
	if model.loadErr != nil {
		return model.errorView("Não foi possível carregar o painel", model.loadErr)
	}
	if !model.loaded {
		return model.centered("Carregando painel...")
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground).
		Render("Painel de comandas")

	var body strings.Builder
	body.WriteString(header + "\n\n")

	order := model.boardOrder()
	awaiting := model.awaiting()
	sections := []struct {
		title   string
		tickets []api.Ticket
		offset  int
	}{
		{"Aguardando pedido", awaiting, 0},
		{"Em andamento", model.inProgress(), len(awaiting)},
	}

	sectionStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText).Bold(true)
	for _, section := range sections {
		body.WriteString(sectionStyle.Render(
			fmt.Sprintf("%s (%d)", section.title, len(section.tickets))) + "\n")
		if len(section.tickets) == 0 {
			body.WriteString(lipgloss.NewStyle().
				Foreground(model.theme.FaintText).
				Render("  nenhuma comanda") + "\n")
		}
		for index, ticket := range section.tickets {
			selected := section.offset+index == model.cursor && len(order) > 0
			body.WriteString(model.renderCard(ticket, selected) + "\n")
		}
		body.WriteString("\n")
	}

	return model.withStatusBar(body.String(),
		"Enter abrir · n nova · h histórico · r atualizar · q sair")
}

// renderCard draws one ticket card: number, slot, status, elapsed
// label, item lines, and the locally computed total.
func (model Model) renderCard(ticket api.Ticket, selected bool) string {
	statusColor := model.theme.StatusColor(ticket.Status)

	title := fmt.Sprintf("Comanda #%d · Guarda-sol %s", ticket.Number, ticket.SlotLabel())
	elapsed := ElapsedLabel(ticket.OpenedAt.Time, model.now)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.NormalText)
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	statusStyle := lipgloss.NewStyle().Foreground(statusColor)

	var lines []string
	lines = append(lines, titleStyle.Render(title)+faint.Render("  "+elapsed))
	lines = append(lines, statusStyle.Render(tui.StatusLabel(ticket.Status)))

	delivered := lipgloss.NewStyle().
		Foreground(model.theme.DeliveredText).
		Strikethrough(true)
	normal := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	for _, item := range ticket.Items {
		line := fmt.Sprintf("%dx %s", item.Quantity, item.ProductName)
		if item.Status == api.ItemDelivered {
			lines = append(lines, delivered.Render(line))
		} else {
			lines = append(lines, normal.Render(line))
		}
	}

	total := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.MoneyForeground).
		Render("Total: " + ticket.Subtotal().String())
	lines = append(lines, total)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Padding(0, 1)
	if selected {
		border = border.BorderForeground(statusColor)
	}
	width := model.width - 4
	if width > 60 {
		width = 60
	}
	if width > 0 {
		border = border.Width(width)
	}
	return border.Render(strings.Join(lines, "\n"))
}

func (model Model) viewHistory() string {
	if model.historyErr != nil {
		return model.errorView("Não foi possível carregar o histórico", model.historyErr)
	}
	if !model.historyLoaded {
		return model.centered("Carregando histórico...")
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground).
		Render("Histórico de comandas")

	var body strings.Builder
	body.WriteString(header + "\n\n")

	if len(model.history) == 0 {
		body.WriteString(lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("Nenhuma comanda fechada.") + "\n")
	}

	for index, ticket := range model.history {
		statusStyle := lipgloss.NewStyle().
			Foreground(model.theme.StatusColor(ticket.Status))
		line := fmt.Sprintf("#%-5d guarda-sol %-8s %s  %s",
			ticket.Number,
			ticket.SlotLabel(),
			statusStyle.Render(tui.StatusLabel(ticket.Status)),
			ticket.Subtotal().String())
		if !ticket.ClosedAt.IsZero() {
			line += lipgloss.NewStyle().
				Foreground(model.theme.FaintText).
				Render("  " + ticket.ClosedAt.Format("02/01 15:04"))
		}
		if index == model.historyCursor {
			line = lipgloss.NewStyle().
				Background(model.theme.SelectedBackground).
				Foreground(model.theme.SelectedForeground).
				Render("> ") + line
		} else {
			line = "  " + line
		}
		body.WriteString(line + "\n")
	}

	return model.withStatusBar(body.String(), "Esc voltar · q sair")
}

func (model Model) viewCreate() string {
	if model.slotsErr != nil {
		return model.errorView("Não foi possível carregar os guarda-sois", model.slotsErr)
	}
	if !model.slotsOpen {
		return model.centered("Carregando guarda-sois...")
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground).
		Render("Nova comanda — escolha o guarda-sol")

	var body strings.Builder
	body.WriteString(header + "\n\n")

	freeStyle := lipgloss.NewStyle().Foreground(model.theme.SlotFree)
	occupiedStyle := lipgloss.NewStyle().Foreground(model.theme.SlotOccupied)
	for index, slot := range model.slots {
		status := occupiedStyle.Render("ocupado")
		if slot.Free() {
			status = freeStyle.Render("livre")
		}
		line := fmt.Sprintf("%-12s %s", slot.Label, status)
		if index == model.slotCursor {
			line = "> " + line
		} else {
			line = "  " + line
		}
		body.WriteString(line + "\n")
	}

	hint := "Enter abrir comanda · Esc voltar"
	if model.creating {
		hint = "Abrindo comanda..."
	}
	return model.withStatusBar(body.String(), hint)
}

// errorView is the blocking screen shown when a view has no data to
// fall back on.
func (model Model) errorView(title string, err error) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.NoticeError)
	body := titleStyle.Render(title) + "\n\n" +
		lipgloss.NewStyle().Foreground(model.theme.NormalText).Render(err.Error()) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("r tentar novamente · q sair")
	return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center, body)
}

func (model Model) centered(text string) string {
	return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(text))
}

// withStatusBar lays out content above a single status line. The right
// side carries the transient notice or, when the latest poll failed,
// the age of the data on screen.
func (model Model) withStatusBar(content, help string) string {
	contentHeight := model.height - 1
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	lines = model.scrollToCursor(lines, contentHeight)
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}

	left := lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(help)
	right := ""
	switch {
	case model.notice != "":
		color := model.theme.NoticeWarn
		if model.noticeLevel >= slog.LevelError {
			color = model.theme.NoticeError
		}
		right = lipgloss.NewStyle().Foreground(color).Render(model.notice)
	case model.stale && !model.lastSuccess.IsZero():
		right = lipgloss.NewStyle().
			Foreground(model.theme.NoticeStale).
			Render("dados de " + model.lastSuccess.Format("15:04:05"))
	}

	gap := model.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right

	return strings.Join(lines, "\n") + "\n" + bar
}

// scrollToCursor trims the content to the viewport, keeping the line
// containing the cursor marker visible. Cards vary in height, so
// scrolling works on rendered lines rather than rows.
func (model Model) scrollToCursor(lines []string, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	// Find the first line of the selected element by its highlight; as
	// a cheap anchor, keep the window proportional to cursor position.
	anchor := 0
	total := len(model.boardOrder())
	switch model.view {
	case ViewBoard:
		if total > 1 {
			anchor = model.cursor * (len(lines) - height) / (total - 1)
		}
	case ViewHistory:
		if len(model.history) > 1 {
			anchor = model.historyCursor * (len(lines) - height) / (len(model.history) - 1)
		}
	case ViewCreate:
		if len(model.slots) > 1 {
			anchor = model.slotCursor * (len(lines) - height) / (len(model.slots) - 1)
		}
	}
	if anchor < 0 {
		anchor = 0
	}
	if anchor > len(lines)-height {
		anchor = len(lines) - height
	}
	return lines[anchor : anchor+height]
}
