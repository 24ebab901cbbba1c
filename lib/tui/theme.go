// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/barb1424/SeaShadeFront/lib/api"
)

// Theme defines the color palette for SeaShade's terminal UIs. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and the semantic categories of the domain: ticket statuses, item
// delivery states, slot occupancy.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Ticket status colors, mirroring the board's original palette:
	// orange for awaiting, sky for in-preparation, green for ready.
	StatusAwaiting  lipgloss.Color
	StatusKitchen   lipgloss.Color
	StatusReady     lipgloss.Color
	StatusClosed    lipgloss.Color
	StatusCancelled lipgloss.Color

	// Delivered ticket items render struck through in this color.
	DeliveredText lipgloss.Color

	// Slot occupancy.
	SlotFree     lipgloss.Color
	SlotOccupied lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Status bar notices.
	NoticeError lipgloss.Color
	NoticeWarn  lipgloss.Color
	NoticeStale lipgloss.Color

	// Search and filter match highlighting.
	SearchHighlightBackground lipgloss.Color

	// Money amounts (totals, subtotals).
	MoneyForeground lipgloss.Color
}

// StatusColor returns the color for a ticket status. Unknown values
// return FaintText.
func (theme Theme) StatusColor(status api.TicketStatus) lipgloss.Color {
	switch status {
	case api.TicketOpen:
		return theme.StatusAwaiting
	case api.TicketInKitchen, api.TicketPreparing:
		return theme.StatusKitchen
	case api.TicketReady:
		return theme.StatusReady
	case api.TicketClosed:
		return theme.StatusClosed
	case api.TicketCancelled:
		return theme.StatusCancelled
	default:
		return theme.FaintText
	}
}

// StatusLabel returns the display text for a ticket status, matching
// the board's original labels.
func StatusLabel(status api.TicketStatus) string {
	switch status {
	case api.TicketOpen:
		return "Aguardando pedido"
	case api.TicketInKitchen:
		return "Na cozinha"
	case api.TicketPreparing:
		return "Em preparo"
	case api.TicketReady:
		return "Pronto para servir"
	case api.TicketClosed:
		return "Fechada"
	case api.TicketCancelled:
		return "Cancelada"
	default:
		return string(status)
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusAwaiting:  lipgloss.Color("208"), // orange
	StatusKitchen:   lipgloss.Color("75"),  // sky blue
	StatusReady:     lipgloss.Color("114"), // green
	StatusClosed:    lipgloss.Color("245"), // gray
	StatusCancelled: lipgloss.Color("196"), // red

	DeliveredText: lipgloss.Color("240"),

	SlotFree:     lipgloss.Color("114"), // green
	SlotOccupied: lipgloss.Color("196"), // red

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	NoticeError: lipgloss.Color("196"),
	NoticeWarn:  lipgloss.Color("220"),
	NoticeStale: lipgloss.Color("220"),

	SearchHighlightBackground: lipgloss.Color("58"), // dark amber

	MoneyForeground: lipgloss.Color("114"),
}
