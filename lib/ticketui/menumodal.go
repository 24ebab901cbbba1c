// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/junegunn/fzf/src/util"

	"github.com/barb1424/SeaShadeFront/lib/api"
	"github.com/barb1424/SeaShadeFront/lib/tui"
)

// menuModalStage is the modal's input phase: searching the menu, then
// entering quantity and note for the chosen product.
type menuModalStage int

const (
	stageSearch menuModalStage = iota
	stageDetails
)

// MenuSelection is the confirmed result of the menu modal.
type MenuSelection struct {
	ProductID int64
	Quantity  int
	Note      string
}

// MenuModalOutcome reports what a keystroke did to the modal.
type MenuModalOutcome int

const (
	// MenuModalPending means the modal stays open.
	MenuModalPending MenuModalOutcome = iota
	// MenuModalCancelled means the user dismissed the modal.
	MenuModalCancelled
	// MenuModalSubmitted means a selection was confirmed.
	MenuModalSubmitted
)

// menuMatch pairs a product with its fuzzy match for highlighting.
type menuMatch struct {
	product   api.Product
	positions []int
	score     int
}

// MenuModal is the fuzzy-searchable menu picker: type to narrow the
// product list, Enter to pick, then quantity and a free-text note
// before the item is submitted.
type MenuModal struct {
	products []api.Product
	theme    tui.Theme
	slab     *util.Slab

	query   string
	matches []menuMatch
	cursor  int

	stage    menuModalStage
	selected api.Product
	quantity string
	note     string
	onNote   bool // Details stage focus: false = quantity, true = note.
}

// NewMenuModal creates the modal over the active products of the menu.
func NewMenuModal(products []api.Product, theme tui.Theme) *MenuModal {
	var active []api.Product
	for _, product := range products {
		if product.Active {
			active = append(active, product)
		}
	}
	modal := &MenuModal{
		products: active,
		theme:    theme,
		slab:     tui.NewSlab(),
		quantity: "1",
	}
	modal.rescore()
	return modal
}

// NewMenuModalForProduct opens the modal straight on the quantity and
// note stage for an already chosen product. Esc falls back to the
// search stage over the full menu.
func NewMenuModalForProduct(products []api.Product, product api.Product, theme tui.Theme) *MenuModal {
	modal := NewMenuModal(products, theme)
	modal.stage = stageDetails
	modal.selected = product
	return modal
}

// rescore recomputes the match list for the current query. An empty
// query lists the whole menu in menu order.
func (modal *MenuModal) rescore() {
	modal.matches = modal.matches[:0]
	if modal.query == "" {
		for _, product := range modal.products {
			modal.matches = append(modal.matches, menuMatch{product: product})
		}
	} else {
		pattern := tui.LowerPattern(modal.query)
		for _, product := range modal.products {
			result := tui.FuzzyMatch(product.Name, pattern, modal.slab)
			if result.Score <= 0 {
				continue
			}
			modal.matches = append(modal.matches, menuMatch{
				product:   product,
				positions: result.Positions,
				score:     result.Score,
			})
		}
		sort.SliceStable(modal.matches, func(i, j int) bool {
			return modal.matches[i].score > modal.matches[j].score
		})
	}
	if modal.cursor >= len(modal.matches) {
		modal.cursor = 0
	}
}

// Update processes one keystroke. On MenuModalSubmitted the returned
// selection is non-nil.
func (modal *MenuModal) Update(message tea.KeyMsg) (MenuModalOutcome, *MenuSelection) {
	if modal.stage == stageDetails {
		return modal.updateDetails(message)
	}

	switch message.Type {
	case tea.KeyEsc:
		return MenuModalCancelled, nil
	case tea.KeyUp:
		if modal.cursor > 0 {
			modal.cursor--
		}
	case tea.KeyDown:
		if modal.cursor < len(modal.matches)-1 {
			modal.cursor++
		}
	case tea.KeyEnter:
		if modal.cursor < len(modal.matches) {
			modal.selected = modal.matches[modal.cursor].product
			modal.stage = stageDetails
			modal.quantity = "1"
			modal.note = ""
			modal.onNote = false
		}
	case tea.KeyBackspace:
		if modal.query != "" {
			runes := []rune(modal.query)
			modal.query = string(runes[:len(runes)-1])
			modal.rescore()
		}
	case tea.KeyRunes:
		modal.query += string(message.Runes)
		modal.rescore()
	case tea.KeySpace:
		modal.query += " "
		modal.rescore()
	}
	return MenuModalPending, nil
}

func (modal *MenuModal) updateDetails(message tea.KeyMsg) (MenuModalOutcome, *MenuSelection) {
	switch message.Type {
	case tea.KeyEsc:
		// Back to search, keeping the query and match list.
		modal.stage = stageSearch
		return MenuModalPending, nil
	case tea.KeyTab:
		modal.onNote = !modal.onNote
	case tea.KeyEnter:
		if !modal.onNote {
			modal.onNote = true
			return MenuModalPending, nil
		}
		quantity, err := strconv.Atoi(modal.quantity)
		if err != nil || quantity < 1 {
			quantity = 1
		}
		return MenuModalSubmitted, &MenuSelection{
			ProductID: modal.selected.ID,
			Quantity:  quantity,
			Note:      strings.TrimSpace(modal.note),
		}
	case tea.KeyBackspace:
		if modal.onNote {
			if modal.note != "" {
				runes := []rune(modal.note)
				modal.note = string(runes[:len(runes)-1])
			}
		} else if modal.quantity != "" {
			modal.quantity = modal.quantity[:len(modal.quantity)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		input := " "
		if message.Type == tea.KeyRunes {
			input = string(message.Runes)
		}
		if modal.onNote {
			modal.note += input
		} else {
			// Quantity accepts digits only.
			for _, r := range input {
				if r >= '0' && r <= '9' {
					modal.quantity += string(r)
				}
			}
		}
	}
	return MenuModalPending, nil
}

// Render produces the modal lines and anchor for overlay splicing.
func (modal *MenuModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := 44
	if innerWidth > screenWidth-6 {
		innerWidth = screenWidth - 6
	}

	background := lipgloss.NewStyle().Background(modal.theme.SelectedBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.SelectedBackground)
	textStyle := lipgloss.NewStyle().
		Foreground(modal.theme.NormalText).
		Background(modal.theme.SelectedBackground)
	faintStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.SelectedBackground)

	var lines []string
	if modal.stage == stageSearch {
		lines = modal.renderSearch(innerWidth, titleStyle, textStyle, faintStyle, background)
	} else {
		lines = modal.renderDetails(innerWidth, titleStyle, textStyle, faintStyle, background)
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor)
	rendered := strings.Split(border.Render(strings.Join(lines, "\n")), "\n")

	width := 0
	if len(rendered) > 0 {
		width = ansi.StringWidth(rendered[0])
	}
	anchorX := (screenWidth - width) / 2
	anchorY := (screenHeight - len(rendered)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return rendered, anchorX, anchorY
}

func (modal *MenuModal) renderSearch(innerWidth int, titleStyle, textStyle, faintStyle, background lipgloss.Style) []string {
	lines := []string{
		tui.PadOverlayLine(titleStyle.Render("Cardápio"), innerWidth, background),
		tui.PadOverlayLine(textStyle.Render("/ "+modal.query)+
			titleStyle.Render("▎"), innerWidth, background),
		tui.PadOverlayLine("", innerWidth, background),
	}

	const maxRows = 8
	rows := modal.matches
	first := 0
	if modal.cursor >= maxRows {
		first = modal.cursor - maxRows + 1
	}
	if first+maxRows < len(rows) {
		rows = rows[first : first+maxRows]
	} else if first < len(rows) {
		rows = rows[first:]
	}

	if len(rows) == 0 {
		lines = append(lines, tui.PadOverlayLine(
			faintStyle.Render("nenhum produto encontrado"), innerWidth, background))
	}
	for index, match := range rows {
		selected := first+index == modal.cursor
		lines = append(lines, tui.PadOverlayLine(
			modal.renderMatch(match, selected, innerWidth), innerWidth, background))
	}

	lines = append(lines,
		tui.PadOverlayLine("", innerWidth, background),
		tui.PadOverlayLine(faintStyle.Render("Enter escolher · Esc fechar"), innerWidth, background))
	return lines
}

// renderMatch styles one product row, highlighting the fuzzily matched
// runes of the name.
func (modal *MenuModal) renderMatch(match menuMatch, selected bool, innerWidth int) string {
	base := lipgloss.NewStyle().
		Foreground(modal.theme.NormalText).
		Background(modal.theme.SelectedBackground)
	highlight := lipgloss.NewStyle().
		Foreground(modal.theme.SelectedForeground).
		Background(modal.theme.SearchHighlightBackground).
		Bold(true)
	price := lipgloss.NewStyle().
		Foreground(modal.theme.MoneyForeground).
		Background(modal.theme.SelectedBackground)

	marker := "  "
	if selected {
		marker = "> "
		base = base.Bold(true)
	}

	highlighted := make(map[int]bool, len(match.positions))
	for _, position := range match.positions {
		highlighted[position] = true
	}

	var name strings.Builder
	for index, r := range []rune(match.product.Name) {
		if highlighted[index] {
			name.WriteString(highlight.Render(string(r)))
		} else {
			name.WriteString(base.Render(string(r)))
		}
	}

	priceText := match.product.PriceCentavos().String()
	gap := innerWidth - ansi.StringWidth(marker) - len([]rune(match.product.Name)) -
		ansi.StringWidth(priceText) - 2
	if gap < 1 {
		gap = 1
	}
	return base.Render(marker) + name.String() +
		base.Render(strings.Repeat(" ", gap)) + price.Render(priceText)
}

func (modal *MenuModal) renderDetails(innerWidth int, titleStyle, textStyle, faintStyle, background lipgloss.Style) []string {
	cursor := titleStyle.Render("▎")
	quantityLine := textStyle.Render("Quantidade: " + modal.quantity)
	noteLine := textStyle.Render("Observação: " + modal.note)
	if modal.onNote {
		noteLine += cursor
	} else {
		quantityLine += cursor
	}

	return []string{
		tui.PadOverlayLine(titleStyle.Render(modal.selected.Name), innerWidth, background),
		tui.PadOverlayLine(faintStyle.Render(modal.selected.PriceCentavos().String()), innerWidth, background),
		tui.PadOverlayLine("", innerWidth, background),
		tui.PadOverlayLine(quantityLine, innerWidth, background),
		tui.PadOverlayLine(noteLine, innerWidth, background),
		tui.PadOverlayLine("", innerWidth, background),
		tui.PadOverlayLine(faintStyle.Render("Enter adicionar · Tab campo · Esc voltar"), innerWidth, background),
	}
}
