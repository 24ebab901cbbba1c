// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/barb1424/SeaShadeFront/lib/api"
	"github.com/barb1424/SeaShadeFront/lib/config"
)

// registerParams holds the parameters for the register command.
type registerParams struct {
	APIURL       string `flag:"api-url"       desc:"SeaShade backend URL (default: from config)"`
	Name         string `flag:"name"          desc:"owner's full name"`
	Kiosk        string `flag:"kiosk"         desc:"name of the kiosk to create"`
	PasswordFile string `flag:"password-file" desc:"path to file containing password, or - to prompt interactively (default: prompt)"`
}

// RegisterCommand returns the "register" command, which creates an
// owner account together with its kiosk. Registration does not log in;
// run "seashade login" afterwards.
func RegisterCommand() *Command {
	var params registerParams

	return &Command{
		Name:    "register",
		Summary: "Create an owner account and kiosk",
		Description: `Register a new kiosk owner on a SeaShade backend.

Requires the owner's name, email, the kiosk name, and a password. The
password is prompted twice interactively (or read once from
--password-file). On success, log in with "seashade login".`,
		Usage: "seashade register <email> --name <name> --kiosk <kiosk> [flags]",
		Examples: []Example{
			{
				Description: "Register a new kiosk",
				Command:     `seashade register dona@praia.com --name "Maria Silva" --kiosk "Barraca da Maria"`,
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return Validation("email is required\n\nUsage: seashade register <email> --name <name> --kiosk <kiosk>")
			}
			email := args[0]
			if len(args) > 1 {
				return Validation("unexpected argument: %s", args[1])
			}
			if !emailPattern.MatchString(email) {
				return Validation("%q does not look like an email address", email)
			}
			if params.Name == "" {
				return Validation("--name is required")
			}
			if params.Kiosk == "" {
				return Validation("--kiosk is required")
			}

			password, err := readRegisterPassword(params.PasswordFile)
			if err != nil {
				return err
			}

			apiURL := params.APIURL
			if apiURL == "" {
				cfg, err := config.Load()
				if err != nil {
					return Internal("load config: %w", err)
				}
				apiURL = cfg.APIURL
			}

			client, err := api.NewClient(api.ClientConfig{BaseURL: apiURL, Logger: logger})
			if err != nil {
				return Internal("create client: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			err = client.Register(ctx, api.RegisterRequest{
				Name:     params.Name,
				Email:    email,
				Password: password,
				Kiosk:    params.Kiosk,
			})
			if err != nil {
				if api.IsConflict(err) {
					return Conflict("registration failed: %w", err)
				}
				return Transient("registration failed: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Registered %s with kiosk %q. Run \"seashade login %s\" to sign in.\n",
				email, params.Kiosk, email)
			return nil
		},
	}
}

// readRegisterPassword reads the password for registration. The
// interactive prompt asks twice and requires both entries to match,
// since there is no server round-trip to catch a typo.
func readRegisterPassword(passwordFile string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		return readLoginPassword(passwordFile)
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return "", Validation("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	first, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", Internal("reading password: %w", err)
	}
	if len(first) == 0 {
		return "", Validation("password must not be empty")
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	second, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", Internal("reading password confirmation: %w", err)
	}
	if string(first) != string(second) {
		return "", Validation("passwords do not match")
	}

	return string(first), nil
}
