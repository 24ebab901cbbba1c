// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
	"github.com/barb1424/SeaShadeFront/lib/money"
)

// salesParams holds the parameters for the sales command.
type salesParams struct {
	cli.JSONOutput
	Days int `flag:"days" desc:"trailing window of daily sales" default:"7"`
	Year int `flag:"year" desc:"report monthly sales vs purchases for a year instead of daily counts"`
}

func salesCommand() *cli.Command {
	var params salesParams

	return &cli.Command{
		Name:    "sales",
		Summary: "Daily sales, or monthly sales vs purchases",
		Usage:   "seashade report sales [--days <n> | --year <year>] [flags]",
		Examples: []cli.Example{
			{Command: "seashade report sales --days 14"},
			{Command: "seashade report sales --year 2026"},
		},
		Params: func() any { return &params },
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

			if params.Year > 0 {
				rows, err := client.MonthlySalesPurchases(ctx, kioskID, params.Year)
				if err != nil {
					return cli.MapAPIError(err)
				}
				if done, err := params.EmitJSON(rows); done {
					return err
				}
				writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
				fmt.Fprintln(writer, "MONTH\tSALES\tPURCHASES")
				for _, row := range rows {
					fmt.Fprintf(writer, "%s\t%s\t%s\n", row.Month,
						money.FromReais(row.Sales), money.FromReais(row.Purchases))
				}
				return writer.Flush()
			}

			if params.Days <= 0 {
				return cli.Validation("--days must be positive")
			}
			rows, err := client.DailySales(ctx, kioskID, params.Days)
			if err != nil {
				return cli.MapAPIError(err)
			}
			if done, err := params.EmitJSON(rows); done {
				return err
			}
			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "DAY\tTICKETS")
			for _, row := range rows {
				fmt.Fprintf(writer, "%s\t%d\n", row.Weekday, row.Quantity)
			}
			return writer.Flush()
		},
	}
}

// revenueParams holds the parameters for the revenue command.
type revenueParams struct {
	cli.JSONOutput
	Year     int  `flag:"year" desc:"calendar year (required)"`
	Expenses bool `flag:"expenses" desc:"show expenses next to revenue"`
}

func revenueCommand() *cli.Command {
	var params revenueParams

	return &cli.Command{
		Name:    "revenue",
		Summary: "Monthly revenue for a year",
		Usage:   "seashade report revenue --year <year> [flags]",
		Examples: []cli.Example{
			{Command: "seashade report revenue --year 2026"},
			{Command: "seashade report revenue --year 2026 --expenses"},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.Year <= 0 {
				return cli.Validation("--year is required")
			}
			client, kioskID, err := reportClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			if params.Expenses {
				rows, err := client.MonthlyRevenueExpense(ctx, kioskID, params.Year)
				if err != nil {
					return cli.MapAPIError(err)
				}
				if done, err := params.EmitJSON(rows); done {
					return err
				}
				writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
				fmt.Fprintln(writer, "MONTH\tREVENUE\tEXPENSE")
				for _, row := range rows {
					fmt.Fprintf(writer, "%s\t%s\t%s\n", row.Month,
						money.FromReais(row.Revenue), money.FromReais(row.Expense))
				}
				return writer.Flush()
			}

			rows, err := client.MonthlyRevenue(ctx, kioskID, params.Year)
			if err != nil {
				return cli.MapAPIError(err)
			}
			if done, err := params.EmitJSON(rows); done {
				return err
			}
			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "MONTH\tREVENUE")
			for _, row := range rows {
				fmt.Fprintf(writer, "%s\t%s\n", row.Month, money.FromReais(row.Revenue))
			}
			return writer.Flush()
		},
	}
}

// ordersParams holds the parameters for the orders command.
type ordersParams struct {
	cli.JSONOutput
	Year        int  `flag:"year" desc:"calendar year (required)"`
	ByAttendant bool `flag:"by-attendant" desc:"break monthly orders down per attendant"`
}

func ordersCommand() *cli.Command {
	var params ordersParams

	return &cli.Command{
		Name:    "orders",
		Summary: "Monthly order counts for a year",
		Usage:   "seashade report orders --year <year> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.Year <= 0 {
				return cli.Validation("--year is required")
			}
			client, kioskID, err := reportClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			if params.ByAttendant {
				// Column set varies with the team roster, so this
				// report is JSON-shaped even in text mode.
				rows, err := client.MonthlyOrdersByAttendant(ctx, kioskID, params.Year)
				if err != nil {
					return cli.MapAPIError(err)
				}
				return cli.WriteJSON(rows)
			}

			rows, err := client.MonthlyOrders(ctx, kioskID, params.Year)
			if err != nil {
				return cli.MapAPIError(err)
			}
			if done, err := params.EmitJSON(rows); done {
				return err
			}
			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "MONTH\tORDERS")
			for _, row := range rows {
				fmt.Fprintf(writer, "%s\t%d\n", row.Month, row.Quantity)
			}
			return writer.Flush()
		},
	}
}
