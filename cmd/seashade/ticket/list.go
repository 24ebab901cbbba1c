// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
	"github.com/barb1424/SeaShadeFront/lib/api"
	"github.com/barb1424/SeaShadeFront/lib/tui"
)

// listParams holds the parameters for the list command.
type listParams struct {
	cli.JSONOutput
	History bool `flag:"history" desc:"list closed and cancelled tickets instead of active ones"`
}

// listCommand returns the "list" command: a plain table of the kiosk's
// tickets for scripts and quick checks.
func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List tickets as a table",
		Description: `Print the kiosk's tickets to stdout.

By default only active tickets are listed; --history switches to the
closed and cancelled set. Totals are computed client-side from the
returned items.`,
		Usage: "seashade ticket list [flags]",
		Examples: []cli.Example{
			{Command: "seashade ticket list"},
			{Command: "seashade ticket list --history --json"},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			client, session, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			statuses := api.ActiveTicketStatuses
			if params.History {
				statuses = api.HistoryTicketStatuses
			}
			tickets, err := client.ListTickets(ctx, session.KioskID, statuses)
			if err != nil {
				return cli.MapAPIError(err)
			}

			if done, err := params.EmitJSON(tickets); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tNUMBER\tSLOT\tSTATUS\tITEMS\tTOTAL\tOPENED")
			for _, ticket := range tickets {
				fmt.Fprintf(writer, "%d\t%d\t%s\t%s\t%d\t%s\t%s\n",
					ticket.ID,
					ticket.Number,
					ticket.SlotLabel(),
					tui.StatusLabel(ticket.Status),
					len(ticket.Items),
					ticket.Subtotal(),
					ticket.OpenedAt.Format("2006-01-02 15:04"),
				)
			}
			return writer.Flush()
		},
	}
}
