// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package report implements the "seashade report" command group:
// read-only aggregates computed by the server.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
	"github.com/barb1424/SeaShadeFront/lib/api"
	"github.com/barb1424/SeaShadeFront/lib/money"
)

const requestTimeout = 30 * time.Second

// Command returns the "report" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "report",
		Summary: "Sales, stock and team reports",
		Subcommands: []*cli.Command{
			kpisCommand(),
			topItemsCommand(),
			bottomItemsCommand(),
			criticalStockCommand(),
			teamCommand(),
			salesCommand(),
			revenueCommand(),
			ordersCommand(),
		},
	}
}

// reportClient resolves the session once for the report subcommands,
// which all follow the same fetch-and-print shape.
func reportClient(logger *slog.Logger) (*api.Client, int64, error) {
	client, session, err := cli.AuthedClient(logger)
	if err != nil {
		return nil, 0, err
	}
	return client, session.KioskID, nil
}

type jsonParams struct {
	cli.JSONOutput
}

func kpisCommand() *cli.Command {
	var params jsonParams

	return &cli.Command{
		Name:    "kpis",
		Summary: "Today's headline numbers",
		Usage:   "seashade report kpis [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			client, kioskID, err := reportClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			kpis, err := client.KPIs(ctx, kioskID)
			if err != nil {
				return cli.MapAPIError(err)
			}
			if done, err := params.EmitJSON(kpis); done {
				return err
			}

			fmt.Fprintf(os.Stdout, "Revenue today:   %s\n", money.FromReais(kpis.RevenueToday))
			fmt.Fprintf(os.Stdout, "Average ticket:  %s\n", money.FromReais(kpis.AverageTicket))
			fmt.Fprintf(os.Stdout, "Active orders:   %d\n", kpis.ActiveOrders)
			fmt.Fprintf(os.Stdout, "Closed today:    %d\n", kpis.ClosedToday)
			return nil
		},
	}
}

func topItemsCommand() *cli.Command {
	var params jsonParams

	return &cli.Command{
		Name:    "top-items",
		Summary: "Best-selling products",
		Usage:   "seashade report top-items [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			client, kioskID, err := reportClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			items, err := client.TopItems(ctx, kioskID)
			if err != nil {
				return cli.MapAPIError(err)
			}
			if done, err := params.EmitJSON(items); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "PRODUCT\tSOLD")
			for _, item := range items {
				fmt.Fprintf(writer, "%s\t%d\n", item.Name, item.Quantity)
			}
			return writer.Flush()
		},
	}
}

func bottomItemsCommand() *cli.Command {
	var params jsonParams

	return &cli.Command{
		Name:    "bottom-items",
		Summary: "Products with the least movement",
		Usage:   "seashade report bottom-items [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			client, kioskID, err := reportClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			items, err := client.BottomItems(ctx, kioskID)
			if err != nil {
				return cli.MapAPIError(err)
			}
			if done, err := params.EmitJSON(items); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "PRODUCT\tSOLD")
			for _, item := range items {
				fmt.Fprintf(writer, "%s\t%d\n", item.Name, item.QuantitySold)
			}
			return writer.Flush()
		},
	}
}

func criticalStockCommand() *cli.Command {
	var params jsonParams

	return &cli.Command{
		Name:    "critical-stock",
		Summary: "Inventory running low",
		Usage:   "seashade report critical-stock [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			client, kioskID, err := reportClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			items, err := client.CriticalStock(ctx, kioskID)
			if err != nil {
				return cli.MapAPIError(err)
			}
			if done, err := params.EmitJSON(items); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ITEM\tQUANTITY\tMAX")
			for _, item := range items {
				fmt.Fprintf(writer, "%s\t%g\t%g\n", item.Name, item.Quantity, item.Max)
			}
			return writer.Flush()
		},
	}
}

func teamCommand() *cli.Command {
	var params jsonParams

	return &cli.Command{
		Name:    "team",
		Summary: "Tickets served per attendant today",
		Usage:   "seashade report team [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			client, kioskID, err := reportClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			members, err := client.TeamOverview(ctx, kioskID)
			if err != nil {
				return cli.MapAPIError(err)
			}
			if done, err := params.EmitJSON(members); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ATTENDANT\tSERVED TODAY")
			for _, member := range members {
				fmt.Fprintf(writer, "%s\t%d\n", member.Name, member.ServedToday)
			}
			return writer.Flush()
		},
	}
}
