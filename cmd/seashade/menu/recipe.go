// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
	"github.com/barb1424/SeaShadeFront/lib/api"
)

// recipeCommand returns the "recipe" command group: the stock
// components a product consumes when sold, the basis for automatic
// inventory deduction.
func recipeCommand() *cli.Command {
	return &cli.Command{
		Name:    "recipe",
		Summary: "Manage a product's stock components",
		Description: `Link products to the stock items they consume.

Each component says how much of one stock item a single sale of the
product uses. The server deducts inventory from these links when items
are sold.`,
		Subcommands: []*cli.Command{
			recipeShowCommand(),
			recipeAddCommand(),
			recipeRemoveCommand(),
		},
	}
}

// recipeShowParams holds the parameters for the recipe show command.
type recipeShowParams struct {
	cli.JSONOutput
}

func recipeShowCommand() *cli.Command {
	var params recipeShowParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show a product's components",
		Usage:   "seashade menu recipe show <product-id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			productID, err := cli.ParseID(args, "product")
			if err != nil {
				return err
			}

			client, _, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			components, err := client.ListRecipeComponents(ctx, productID)
			if err != nil {
				return cli.MapAPIError(err)
			}

			if done, err := params.EmitJSON(components); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tINGREDIENT\tQUANTITY\tUNIT")
			for _, component := range components {
				fmt.Fprintf(writer, "%d\t%s\t%g\t%s\n",
					component.ID, component.IngredientName,
					component.QuantityUsed, component.Unit)
			}
			return writer.Flush()
		},
	}
}

// recipeAddParams holds the parameters for the recipe add command.
type recipeAddParams struct {
	StockItemID int64   `flag:"stock-item" desc:"stock item id the product consumes (required)"`
	Quantity    float64 `flag:"quantity"   desc:"amount used per sale, in the item's unit (required)"`
}

func recipeAddCommand() *cli.Command {
	var params recipeAddParams

	return &cli.Command{
		Name:    "add",
		Summary: "Add a component to a product",
		Usage:   "seashade menu recipe add <product-id> --stock-item <id> --quantity <amount>",
		Examples: []cli.Example{
			{
				Description: "One caipirinha uses 60ml of cachaça (stock item 3)",
				Command:     "seashade menu recipe add 7 --stock-item 3 --quantity 0.06",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			productID, err := cli.ParseID(args, "product")
			if err != nil {
				return err
			}
			if params.StockItemID == 0 {
				return cli.Validation("--stock-item is required")
			}
			if params.Quantity <= 0 {
				return cli.Validation("--quantity must be positive")
			}

			client, _, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			err = client.AddRecipeComponent(ctx, productID, api.AddComponentRequest{
				StockItemID:  params.StockItemID,
				QuantityUsed: params.Quantity,
			})
			if err != nil {
				return cli.MapAPIError(err)
			}
			fmt.Fprintf(os.Stderr, "Component added to product %d.\n", productID)
			return nil
		},
	}
}

// recipeRemoveParams holds the parameters for the recipe remove command.
type recipeRemoveParams struct {
	Yes bool `flag:"yes,y" desc:"skip the confirmation prompt"`
}

func recipeRemoveCommand() *cli.Command {
	var params recipeRemoveParams

	return &cli.Command{
		Name:    "remove",
		Summary: "Remove a component",
		Usage:   "seashade menu recipe remove <component-id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			componentID, err := cli.ParseID(args, "component")
			if err != nil {
				return err
			}
			if err := cli.ConfirmAction(
				fmt.Sprintf("Remove recipe component %d?", componentID), params.Yes); err != nil {
				return err
			}

			client, _, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			if err := client.RemoveRecipeComponent(ctx, componentID); err != nil {
				return cli.MapAPIError(err)
			}
			fmt.Fprintf(os.Stderr, "Component %d removed.\n", componentID)
			return nil
		},
	}
}
