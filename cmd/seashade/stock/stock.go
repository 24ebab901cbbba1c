// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package stock implements the "seashade stock" command group: the
// inventory ledger. Items are only ever created together with an
// opening movement, and every later change is a movement too, so the
// history is the complete story of each item.
package stock

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
	"github.com/barb1424/SeaShadeFront/lib/api"
)

const requestTimeout = 30 * time.Second

// Command returns the "stock" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "stock",
		Summary: "Manage inventory",
		Subcommands: []*cli.Command{
			listCommand(),
			historyCommand(),
			addCommand(),
			moveCommand(),
			deactivateCommand(),
		},
	}
}

// listParams holds the parameters for the list command.
type listParams struct {
	cli.JSONOutput
	All bool `flag:"all" desc:"include deactivated items"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List stock items with balances",
		Usage:   "seashade stock list [flags]",
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

			items, err := client.ListStock(ctx, session.KioskID)
			if err != nil {
				return cli.MapAPIError(err)
			}
			if !params.All {
				active := items[:0]
				for _, item := range items {
					if item.Active {
						active = append(active, item)
					}
				}
				items = active
			}

			if done, err := params.EmitJSON(items); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tQUANTITY\tUNIT\tUNIT COST\tACTIVE")
			for _, item := range items {
				fmt.Fprintf(writer, "%d\t%s\t%g\t%s\t%.2f\t%t\n",
					item.ID, item.Name, item.Quantity, item.Unit,
					item.UnitCost, item.Active)
			}
			return writer.Flush()
		},
	}
}

// historyParams holds the parameters for the history command.
type historyParams struct {
	cli.JSONOutput
}

func historyCommand() *cli.Command {
	var params historyParams

	return &cli.Command{
		Name:    "history",
		Summary: "Show the movement ledger",
		Usage:   "seashade stock history [flags]",
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

			movements, err := client.StockHistory(ctx, session.KioskID)
			if err != nil {
				return cli.MapAPIError(err)
			}

			if done, err := params.EmitJSON(movements); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "WHEN\tITEM\tTYPE\tQUANTITY\tREASON\tNOTE")
			for _, movement := range movements {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%g\t%s\t%s\n",
					movement.At.Format("2006-01-02 15:04"),
					movement.Item.Name, movement.Type, movement.Quantity,
					movement.Reason, movement.Note)
			}
			return writer.Flush()
		},
	}
}

// addParams holds the parameters for the add command.
type addParams struct {
	Name     string  `flag:"name"     desc:"item name (required)"`
	Unit     string  `flag:"unit"     desc:"unit of measure, e.g. un, kg, l (required)"`
	Quantity float64 `flag:"quantity" desc:"opening balance (required)"`
	Reason   string  `flag:"reason"   desc:"reason recorded on the opening movement" default:"COMPRA"`
	Note     string  `flag:"note"     desc:"free-text note on the opening movement"`
}

func addCommand() *cli.Command {
	var params addParams

	return &cli.Command{
		Name:    "add",
		Summary: "Create an item with its opening balance",
		Description: `Create a stock item together with its first movement.

An item never exists without a ledger entry: the opening balance is
recorded as an ENTRADA movement in the same request.`,
		Usage: "seashade stock add --name <name> --unit <unit> --quantity <amount> [flags]",
		Examples: []cli.Example{
			{Command: `seashade stock add --name "Coco verde" --unit un --quantity 80`},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.Name == "" {
				return cli.Validation("--name is required")
			}
			if params.Unit == "" {
				return cli.Validation("--unit is required")
			}
			if params.Quantity <= 0 {
				return cli.Validation("--quantity must be positive")
			}

			client, session, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			err = client.CreateStockItem(ctx, session.KioskID, api.NewStockItemRequest{
				Name:     params.Name,
				Unit:     params.Unit,
				Quantity: params.Quantity,
				Reason:   params.Reason,
				Note:     params.Note,
			})
			if err != nil {
				return cli.MapAPIError(err)
			}
			fmt.Fprintf(os.Stderr, "Stock item %q created with %g %s.\n",
				params.Name, params.Quantity, params.Unit)
			return nil
		},
	}
}

// moveParams holds the parameters for the move command.
type moveParams struct {
	ItemID   int64   `flag:"item"     desc:"stock item id (required)"`
	Type     string  `flag:"type"     desc:"movement direction: entrada or saida (required)"`
	Quantity float64 `flag:"quantity" desc:"amount moved (required)"`
	Reason   string  `flag:"reason"   desc:"reason, e.g. COMPRA, PERDA, AJUSTE (required)"`
	Note     string  `flag:"note"     desc:"free-text note"`
}

func moveCommand() *cli.Command {
	var params moveParams

	return &cli.Command{
		Name:    "move",
		Summary: "Record an inventory movement",
		Usage:   "seashade stock move --item <id> --type <entrada|saida> --quantity <amount> --reason <reason> [flags]",
		Examples: []cli.Example{
			{Command: "seashade stock move --item 3 --type entrada --quantity 24 --reason COMPRA"},
			{Command: `seashade stock move --item 3 --type saida --quantity 2 --reason PERDA --note "garrafas quebradas"`},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.ItemID == 0 {
				return cli.Validation("--item is required")
			}
			movementType := strings.ToUpper(params.Type)
			if movementType != "ENTRADA" && movementType != "SAIDA" {
				return cli.Validation("--type must be entrada or saida, got %q", params.Type)
			}
			if params.Quantity <= 0 {
				return cli.Validation("--quantity must be positive")
			}
			if params.Reason == "" {
				return cli.Validation("--reason is required")
			}

			client, session, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			err = client.MoveStock(ctx, session.KioskID, api.MoveStockRequest{
				StockItemID: params.ItemID,
				Type:        movementType,
				Quantity:    params.Quantity,
				Reason:      strings.ToUpper(params.Reason),
				Note:        params.Note,
			})
			if err != nil {
				return cli.MapAPIError(err)
			}
			fmt.Fprintf(os.Stderr, "Movement recorded: %s %g on item %d.\n",
				movementType, params.Quantity, params.ItemID)
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
		Summary: "Deactivate a stock item",
		Usage:   "seashade stock deactivate <id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			itemID, err := cli.ParseID(args, "stock item")
			if err != nil {
				return err
			}
			if err := cli.ConfirmAction(
				fmt.Sprintf("Deactivate stock item %d?", itemID), params.Yes); err != nil {
				return err
			}

			client, session, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			if err := client.DeactivateStockItem(ctx, session.KioskID, itemID); err != nil {
				return cli.MapAPIError(err)
			}
			fmt.Fprintf(os.Stderr, "Stock item %d deactivated.\n", itemID)
			return nil
		},
	}
}
