// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
	"github.com/barb1424/SeaShadeFront/lib/ticketui"
)

// openCommand returns the "open" command: the detail editor for one
// ticket, standalone (finishing the ticket exits the program instead
// of returning to the board).
func openCommand() *cli.Command {
	return &cli.Command{
		Name:    "open",
		Summary: "Edit one ticket full-screen",
		Description: `Open the interactive editor for a single ticket.

Items are added by typed name (exact match), from the autocomplete
dropdown, or through the fuzzy-searchable menu ("m"); every add asks
for a quantity and an optional note. Ticket actions (send to kitchen,
finalize, cancel) are offered only when the ticket's current status
allows them and ask for confirmation; marking an item delivered applies
immediately.`,
		Usage: "seashade ticket open <id>",
		Examples: []cli.Example{
			{Command: "seashade ticket open 42"},
		},
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("expected exactly one ticket id\n\nUsage: seashade ticket open <id>")
			}
			ticketID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return cli.Validation("invalid ticket id %q", args[0])
			}

			return runTicketUI(ctx, func(uiConfig ticketui.Config) ticketui.Model {
				return ticketui.NewForTicket(uiConfig, ticketID)
			})
		},
	}
}
