// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package menu implements the "seashade menu" command group: products
// and their recipe components.
package menu

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
	"github.com/barb1424/SeaShadeFront/lib/api"
)

const requestTimeout = 30 * time.Second

// Command returns the "menu" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "menu",
		Summary: "Manage the product menu",
		Subcommands: []*cli.Command{
			listCommand(),
			addCommand(),
			deactivateCommand(),
			recipeCommand(),
		},
	}
}

// listParams holds the parameters for the list command.
type listParams struct {
	cli.JSONOutput
	All bool `flag:"all" desc:"include deactivated products"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List products",
		Usage:   "seashade menu list [flags]",
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

			products, err := client.ListProducts(ctx, session.KioskID)
			if err != nil {
				return cli.MapAPIError(err)
			}
			if !params.All {
				active := products[:0]
				for _, product := range products {
					if product.Active {
						active = append(active, product)
					}
				}
				products = active
			}

			if done, err := params.EmitJSON(products); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tCATEGORY\tPRICE\tACTIVE")
			for _, product := range products {
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%t\n",
					product.ID, product.Name, product.Category,
					product.PriceCentavos(), product.Active)
			}
			return writer.Flush()
		},
	}
}

// addParams holds the parameters for the add command.
type addParams struct {
	cli.JSONOutput
	Name        string  `flag:"name"        desc:"product name (required)"`
	Description string  `flag:"description" desc:"product description"`
	Price       float64 `flag:"price"       desc:"price in reais, e.g. 12.50 (required)"`
	Category    string  `flag:"category"    desc:"menu category (required)"`
	Image       string  `flag:"image"       desc:"path to a product image to upload"`
}

func addCommand() *cli.Command {
	var params addParams

	return &cli.Command{
		Name:    "add",
		Summary: "Add a product",
		Description: `Create a product on the kiosk's menu.

The image, when given, is uploaded together with the product data in a
single multipart request.`,
		Usage: "seashade menu add --name <name> --price <reais> --category <category> [flags]",
		Examples: []cli.Example{
			{Command: `seashade menu add --name "Água de coco" --price 8.50 --category Bebidas`},
			{Command: `seashade menu add --name Caipirinha --price 25 --category Drinks --image caipirinha.jpg`},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.Name == "" {
				return cli.Validation("--name is required")
			}
			if params.Price <= 0 {
				return cli.Validation("--price must be a positive amount in reais")
			}
			if params.Category == "" {
				return cli.Validation("--category is required")
			}

			client, session, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			product, err := client.CreateProduct(ctx, session.KioskID, api.NewProduct{
				Name:        params.Name,
				Description: params.Description,
				Price:       params.Price,
				Category:    params.Category,
			}, params.Image)
			if err != nil {
				return cli.MapAPIError(err)
			}

			if done, err := params.EmitJSON(product); done {
				return err
			}
			fmt.Fprintf(os.Stdout, "Added product %q (id %d) at %s\n",
				product.Name, product.ID, product.PriceCentavos())
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
		Summary: "Remove a product from the menu",
		Description: `Deactivate a product.

The product disappears from the menu but stays on past tickets, which
carry their own copy of the name and price.`,
		Usage: "seashade menu deactivate <id> [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			productID, err := cli.ParseID(args, "product")
			if err != nil {
				return err
			}
			if err := cli.ConfirmAction(
				fmt.Sprintf("Deactivate product %d?", productID), params.Yes); err != nil {
				return err
			}

			client, _, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			if err := client.DeactivateProduct(ctx, productID); err != nil {
				return cli.MapAPIError(err)
			}
			fmt.Fprintf(os.Stderr, "Product %d deactivated.\n", productID)
			return nil
		},
	}
}
