// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Command seashade is the terminal client for the SeaShade beach-kiosk
// point-of-sale backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/barb1424/SeaShadeFront/cmd/seashade/cli"
	"github.com/barb1424/SeaShadeFront/cmd/seashade/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := commands.Root().Execute(ctx, os.Args[1:])
	if err == nil {
		return
	}

	var toolError *cli.ToolError
	if errors.As(err, &toolError) {
		fmt.Fprintf(os.Stderr, "seashade: %s: %s\n", toolError.Category, toolError.Error())
	} else {
		fmt.Fprintf(os.Stderr, "seashade: %s\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps error categories to stable exit codes for scripts.
func exitCode(err error) int {
	var toolError *cli.ToolError
	if !errors.As(err, &toolError) {
		return 1
	}
	switch toolError.Category {
	case cli.CategoryValidation:
		return 2
	case cli.CategoryNotFound:
		return 3
	case cli.CategoryForbidden:
		return 4
	case cli.CategoryConflict:
		return 5
	case cli.CategoryTransient:
		return 6
	default:
		return 1
	}
}
