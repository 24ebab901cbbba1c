// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticket implements the "seashade ticket" command group: the
// interactive board and detail editor plus plain list/create
// subcommands for scripting.
package ticket

import (
	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
)

// Command returns the "ticket" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "ticket",
		Summary: "Manage tickets (comandas)",
		Description: `Work with the kiosk's tickets.

"board" and "open" are full-screen interactive views; "list" and
"create" print to stdout and suit scripts.`,
		Subcommands: []*cli.Command{
			boardCommand(),
			openCommand(),
			listCommand(),
			createCommand(),
		},
	}
}
