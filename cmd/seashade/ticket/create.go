// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
)

// createParams holds the parameters for the create command.
type createParams struct {
	cli.JSONOutput
	SlotID int64 `flag:"slot" desc:"umbrella slot id to open the ticket on (required)"`
}

// createCommand returns the "create" command, which opens a ticket on
// a free umbrella slot. An occupied slot is rejected before the
// request goes out, naming the slot, so the error reads like the
// on-site check rather than a server response.
func createCommand() *cli.Command {
	var params createParams

	return &cli.Command{
		Name:    "create",
		Summary: "Open a ticket on a free slot",
		Description: `Open a new ticket (comanda) on an umbrella slot.

The slot must be free. Use "seashade slot list" to see which slots are
available.`,
		Usage: "seashade ticket create --slot <id> [flags]",
		Examples: []cli.Example{
			{Command: "seashade ticket create --slot 12"},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.SlotID == 0 {
				return cli.Validation("--slot is required")
			}

			client, session, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			slots, err := client.ListSlots(ctx, session.KioskID)
			if err != nil {
				return cli.MapAPIError(err)
			}
			for _, slot := range slots {
				if slot.ID != params.SlotID {
					continue
				}
				if !slot.Free() {
					return cli.Conflict("slot %s is occupied", slot.Label).
						WithHint("run \"seashade slot list\" to find a free slot")
				}
				break
			}

			ticket, err := client.CreateTicket(ctx, params.SlotID)
			if err != nil {
				return cli.MapAPIError(err)
			}

			if done, err := params.EmitJSON(ticket); done {
				return err
			}
			fmt.Fprintf(os.Stdout, "Opened ticket #%d on slot %s (id %d)\n",
				ticket.Number, ticket.SlotLabel(), ticket.ID)
			return nil
		},
	}
}
