// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
	"github.com/barb1424/SeaShadeFront/lib/tui"
)

//go:embed guide.md
var guideMarkdown string

// guideCommand returns the "guide" command: the built-in usage guide,
// rendered for the terminal.
func guideCommand() *cli.Command {
	return &cli.Command{
		Name:    "guide",
		Summary: "Show the usage guide",
		Usage:   "seashade guide",
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			width := 100
			if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
				if terminalWidth, _, err := term.GetSize(fd); err == nil && terminalWidth > 0 {
					width = terminalWidth
				}
			}

			fmt.Fprint(os.Stdout, tui.RenderMarkdown(guideMarkdown, tui.DefaultTheme, width))
			return nil
		},
	}
}
