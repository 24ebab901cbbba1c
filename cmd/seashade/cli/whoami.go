// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/barb1424/SeaShadeFront/lib/api"
)

// whoamiParams holds the parameters for the whoami command.
type whoamiParams struct {
	JSONOutput
	Verify bool `flag:"verify" desc:"verify the session token against the backend"`
}

// whoamiOutput is the JSON output for the whoami command.
type whoamiOutput struct {
	UserName    string `json:"user_name"`
	Role        string `json:"role,omitempty"`
	KioskID     int64  `json:"kiosk_id"`
	APIURL      string `json:"api_url"`
	SessionFile string `json:"session_file"`
	Status      string `json:"status,omitempty"`
}

// WhoAmICommand returns the "whoami" command for displaying the saved
// identity. With --verify, the token is checked against the backend's
// profile endpoint.
func WhoAmICommand() *Command {
	var params whoamiParams

	return &Command{
		Name:    "whoami",
		Summary: "Show the current identity",
		Description: `Display the currently logged-in identity.

Shows the user name, role, kiosk id, backend URL, and session file path
from the saved session (created by "seashade login").

With --verify, the saved access token is checked against the backend to
confirm the session is still valid. Without --verify, only the local
session file is read (no network access).`,
		Usage: "seashade whoami [flags]",
		Examples: []Example{
			{
				Description: "Show current identity",
				Command:     "seashade whoami",
			},
			{
				Description: "Verify the session is still valid",
				Command:     "seashade whoami --verify",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return Validation("unexpected argument: %s", args[0])
			}

			session, err := LoadSession()
			if err != nil {
				return NotFound("%w", err)
			}

			output := whoamiOutput{
				UserName:    session.UserName,
				Role:        session.Role,
				KioskID:     session.KioskID,
				APIURL:      session.APIURL,
				SessionFile: SessionFilePath(),
			}

			if params.Verify {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				client, err := api.NewClient(api.ClientConfig{
					BaseURL: session.APIURL,
					Token:   session.AccessToken,
					Logger:  logger,
				})
				if err != nil {
					return Internal("create client: %w", err)
				}

				if _, err := client.Me(ctx); err != nil {
					output.Status = "invalid"
					if done, err := params.EmitJSON(output); done {
						return err
					}
					printWhoami(output)
					return Forbidden("session expired or revoked — run \"seashade login\" to refresh")
				}
				output.Status = "valid"
			}

			if done, err := params.EmitJSON(output); done {
				return err
			}
			printWhoami(output)
			return nil
		},
	}
}

func printWhoami(output whoamiOutput) {
	fmt.Fprintf(os.Stdout, "User:         %s\n", output.UserName)
	if output.Role != "" {
		fmt.Fprintf(os.Stdout, "Role:         %s\n", output.Role)
	}
	fmt.Fprintf(os.Stdout, "Kiosk:        %d\n", output.KioskID)
	fmt.Fprintf(os.Stdout, "Backend:      %s\n", output.APIURL)
	fmt.Fprintf(os.Stdout, "Session file: %s\n", output.SessionFile)
	if output.Status != "" {
		fmt.Fprintf(os.Stdout, "Status:       %s\n", output.Status)
	}
}

// LogoutCommand returns the "logout" command, which deletes the local
// session file. The server keeps no session state to invalidate.
func LogoutCommand() *Command {
	return &Command{
		Name:    "logout",
		Summary: "Delete the saved session",
		Description: `Remove the local session file.

The backend holds no revocable session state; deleting the file is the
whole logout. Running logout twice is fine.`,
		Usage: "seashade logout",
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return Validation("unexpected argument: %s", args[0])
			}
			if err := RemoveSession(); err != nil {
				return Internal("%w", err)
			}
			fmt.Fprintln(os.Stderr, "Logged out.")
			return nil
		},
	}
}
