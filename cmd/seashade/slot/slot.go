// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package slot implements the "seashade slot" command group: umbrella
// slots, the physical anchors tickets are opened against.
package slot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
)

const requestTimeout = 30 * time.Second

// Command returns the "slot" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "slot",
		Summary: "Manage umbrella slots",
		Subcommands: []*cli.Command{
			listCommand(),
			addCommand(),
			renameCommand(),
			deactivateCommand(),
		},
	}
}

// listParams holds the parameters for the list command.
type listParams struct {
	cli.JSONOutput
	Free bool `flag:"free" desc:"show only free slots"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List slots with occupancy",
		Usage:   "seashade slot list [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			client, session, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			slots, err := client.ListSlots(ctx, session.KioskID)
			if err != nil {
				return cli.MapAPIError(err)
			}

			free, occupied := 0, 0
			for _, slot := range slots {
				if slot.Free() {
					free++
				} else {
					occupied++
				}
			}
			if params.Free {
				filtered := slots[:0]
				for _, slot := range slots {
					if slot.Free() {
						filtered = append(filtered, slot)
					}
				}
				slots = filtered
			}

			if done, err := params.EmitJSON(slots); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tLABEL\tSTATUS")
			for _, slot := range slots {
				fmt.Fprintf(writer, "%d\t%s\t%s\n", slot.ID, slot.Label, slot.Status)
			}
			if err := writer.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "\n%d free, %d occupied\n", free, occupied)
			return nil
		},
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:    "add",
		Summary: "Add a slot",
		Usage:   "seashade slot add <label>",
		Examples: []cli.Example{
			{Command: "seashade slot add G13"},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 || args[0] == "" {
				return cli.Validation("expected exactly one slot label\n\nUsage: seashade slot add <label>")
			}
			label := args[0]

			client, session, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			slot, err := client.CreateSlot(ctx, session.KioskID, label)
			if err != nil {
				return cli.MapAPIError(err)
			}
			fmt.Fprintf(os.Stderr, "Slot %s created (id %d).\n", slot.Label, slot.ID)
			return nil
		},
	}
}

func renameCommand() *cli.Command {
	return &cli.Command{
		Name:    "rename",
		Summary: "Rename a slot",
		Usage:   "seashade slot rename <id> <label>",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 2 {
				return cli.Validation("expected a slot id and a new label\n\nUsage: seashade slot rename <id> <label>")
			}
			slotID, err := cli.ParseID(args[:1], "slot")
			if err != nil {
				return err
			}
			label := args[1]
			if label == "" {
				return cli.Validation("the new label must not be empty")
			}

			client, session, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			slot, err := client.RenameSlot(ctx, session.KioskID, slotID, label)
			if err != nil {
				return cli.MapAPIError(err)
			}
			fmt.Fprintf(os.Stderr, "Slot %d renamed to %s.\n", slot.ID, slot.Label)
			return nil
		},
	}
}

// deactivateParams holds the parameters for the deactivate command.
type deactivateParams struct {
	Yes bool `flag:"yes,y" desc:"skip the confirmation prompt"`
}

func deactivateCommand() *cli.Command {
	var params deactivateParams

	return &cli.Command{
		Name:    "deactivate",
		Summary: "Deactivate a slot",
		Description: `Deactivate an umbrella slot.

Past tickets keep their slot reference; only new tickets can no longer
be opened on it.`,
		Usage:  "seashade slot deactivate <id> [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			slotID, err := cli.ParseID(args, "slot")
			if err != nil {
				return err
			}
			if err := cli.ConfirmAction(
				fmt.Sprintf("Deactivate slot %d?", slotID), params.Yes); err != nil {
				return err
			}

			client, session, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			if err := client.DeactivateSlot(ctx, session.KioskID, slotID); err != nil {
				return cli.MapAPIError(err)
			}
			fmt.Fprintf(os.Stderr, "Slot %d deactivated.\n", slotID)
			return nil
		},
	}
}
