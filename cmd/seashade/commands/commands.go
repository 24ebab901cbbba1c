// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the seashade command tree.
package commands

import (
	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
	"github.com/barb1424/SeaShadeFront/cmd/seashade/menu"
	"github.com/barb1424/SeaShadeFront/cmd/seashade/report"
	"github.com/barb1424/SeaShadeFront/cmd/seashade/slot"
	"github.com/barb1424/SeaShadeFront/cmd/seashade/staff"
	"github.com/barb1424/SeaShadeFront/cmd/seashade/stock"
	"github.com/barb1424/SeaShadeFront/cmd/seashade/ticket"
)

// Root returns the top-level "seashade" command.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "seashade",
		Summary: "Terminal client for the SeaShade beach-kiosk POS",
		Description: `seashade is the terminal client for a SeaShade kiosk.

Log in once with "seashade login"; after that every command uses the
saved session. "seashade ticket board" is the live view for service,
the rest is administration and reporting.`,
		Usage: "seashade <command> [flags]",
		Subcommands: []*cli.Command{
			cli.LoginCommand(),
			cli.WhoAmICommand(),
			cli.LogoutCommand(),
			cli.RegisterCommand(),
			ticket.Command(),
			menu.Command(),
			stock.Command(),
			slot.Command(),
			staff.Command(),
			report.Command(),
			guideCommand(),
			versionCommand(),
		},
	}
}
