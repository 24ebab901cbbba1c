// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package staff implements the "seashade staff" command group:
// attendants, who log in with the short code shown when they are
// created.
package staff

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"text/tabwriter"
	"time"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
)

const requestTimeout = 30 * time.Second

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Command returns the "staff" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "staff",
		Summary: "Manage attendants",
		Subcommands: []*cli.Command{
			listCommand(),
			addCommand(),
			removeCommand(),
		},
	}
}

// listParams holds the parameters for the list command.
type listParams struct {
	cli.JSONOutput
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List attendants",
		Usage:   "seashade staff list [flags]",
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

			attendants, err := client.ListAttendants(ctx, session.KioskID)
			if err != nil {
				return cli.MapAPIError(err)
			}

			if done, err := params.EmitJSON(attendants); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tEMAIL\tCODE")
			for _, attendant := range attendants {
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n",
					attendant.ID, attendant.Name, attendant.Email, attendant.Code)
			}
			return writer.Flush()
		},
	}
}

// addParams holds the parameters for the add command.
type addParams struct {
	cli.JSONOutput
	Name  string `flag:"name"  desc:"attendant name (required)"`
	Email string `flag:"email" desc:"attendant email (required)"`
}

func addCommand() *cli.Command {
	var params addParams

	return &cli.Command{
		Name:    "add",
		Summary: "Add an attendant",
		Description: `Create an attendant.

The response carries the short code the attendant uses with
"seashade login --code". Write it down; it is shown here once.`,
		Usage: "seashade staff add --name <name> --email <email> [flags]",
		Examples: []cli.Example{
			{Command: `seashade staff add --name "João Silva" --email joao@praia.com`},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.Name == "" {
				return cli.Validation("--name is required")
			}
			if params.Email == "" {
				return cli.Validation("--email is required")
			}
			if !emailPattern.MatchString(params.Email) {
				return cli.Validation("%q does not look like an email address", params.Email)
			}

			client, session, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			attendant, err := client.CreateAttendant(ctx, session.KioskID, params.Name, params.Email)
			if err != nil {
				return cli.MapAPIError(err)
			}

			if done, err := params.EmitJSON(attendant); done {
				return err
			}
			fmt.Fprintf(os.Stdout, "Attendant %s created (id %d).\nLogin code: %s\n",
				attendant.Name, attendant.ID, attendant.Code)
			return nil
		},
	}
}

// removeParams holds the parameters for the remove command.
type removeParams struct {
	Yes bool `flag:"yes,y" desc:"skip the confirmation prompt"`
}

func removeCommand() *cli.Command {
	var params removeParams

	return &cli.Command{
		Name:    "remove",
		Summary: "Remove an attendant",
		Usage:   "seashade staff remove <id> [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			attendantID, err := cli.ParseID(args, "attendant")
			if err != nil {
				return err
			}
			if err := cli.ConfirmAction(
				fmt.Sprintf("Remove attendant %d?", attendantID), params.Yes); err != nil {
				return err
			}

			client, _, err := cli.AuthedClient(logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, requestTimeout)
			defer cancel()

			if err := client.RemoveAttendant(ctx, attendantID); err != nil {
				return cli.MapAPIError(err)
			}
			fmt.Fprintf(os.Stderr, "Attendant %d removed.\n", attendantID)
			return nil
		},
	}
}
