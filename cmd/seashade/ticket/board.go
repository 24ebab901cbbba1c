// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
	"github.com/barb1424/SeaShadeFront/lib/config"
	"github.com/barb1424/SeaShadeFront/lib/ticketui"
	"github.com/barb1424/SeaShadeFront/lib/tui"
)

// boardParams holds the parameters for the board command.
type boardParams struct {
	Poll time.Duration `flag:"poll" desc:"board refresh interval (default: from config, 15s)"`
}

// boardCommand returns the "board" command: the full-screen polling
// view of active tickets.
func boardCommand() *cli.Command {
	var params boardParams

	return &cli.Command{
		Name:    "board",
		Summary: "Live board of active tickets",
		Description: `Show the active tickets full-screen, refreshed every 15 seconds.

Tickets are split into "awaiting" (just opened, nothing sent to the
kitchen yet) and "in progress" (everything else still active). Enter
on a card opens its editor; "h" shows closed and cancelled tickets;
"n" opens a new ticket on a free umbrella slot.

If a refresh fails the board keeps the last good data and the status
bar shows how old it is.`,
		Usage: "seashade ticket board [flags]",
		Examples: []cli.Example{
			{Command: "seashade ticket board"},
			{Command: "seashade ticket board --poll 5s"},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			pollInterval := params.Poll
			if pollInterval <= 0 {
				cfg, err := config.Load()
				if err != nil {
					return cli.Internal("load config: %w", err)
				}
				pollInterval = cfg.PollInterval
			}

			return runTicketUI(ctx, func(uiConfig ticketui.Config) ticketui.Model {
				uiConfig.PollInterval = pollInterval
				return ticketui.New(uiConfig)
			})
		},
	}
}

// runTicketUI wires an authenticated client and a status-bar log
// handler into a ticketui model and runs the program. Warnings logged
// by the client while the program runs land in the status bar instead
// of corrupting the alternate screen.
func runTicketUI(ctx context.Context, build func(ticketui.Config) ticketui.Model) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	handler := tui.NewLogHandler(slog.LevelWarn)
	logger := slog.New(handler)

	client, session, err := cli.AuthedClient(logger)
	if err != nil {
		return err
	}

	model := build(ticketui.Config{
		Client:  client,
		KioskID: session.KioskID,
		Context: ctx,
		Logger:  logger,
		Theme:   tui.DefaultTheme,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.SetProgram(program)

	if _, err := program.Run(); err != nil {
		return cli.Internal("ticket view: %w", err)
	}
	return nil
}
