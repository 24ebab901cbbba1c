// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
	"github.com/barb1424/SeaShadeFront/lib/version"
)

// versionParams holds the parameters for the version command.
type versionParams struct {
	cli.JSONOutput
}

// versionOutput is the JSON output for the version command.
type versionOutput struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Show version information",
		Usage:   "seashade version [flags]",
		Params:  func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			output := versionOutput{
				Version:   version.Version,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			if done, err := params.EmitJSON(output); done {
				return err
			}
			fmt.Fprintf(os.Stdout, "seashade %s (%s, %s)\n",
				output.Version, output.GoVersion, output.Platform)
			return nil
		},
	}
}
