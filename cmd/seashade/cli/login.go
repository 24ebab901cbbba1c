// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/barb1424/SeaShadeFront/lib/api"
	"github.com/barb1424/SeaShadeFront/lib/config"
)

// emailPattern is the same loose shape check the login form applies:
// something, an @, something, a dot, something. The server does the
// real validation.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// loginParams holds the parameters for the login command.
type loginParams struct {
	APIURL       string `flag:"api-url"       desc:"SeaShade backend URL (default: from config)"`
	Code         string `flag:"code"          desc:"attendant short code (logs in as staff instead of owner)"`
	PasswordFile string `flag:"password-file" desc:"path to file containing password, or - to prompt interactively (default: prompt)"`
}

// LoginCommand returns the "login" command. Owner logins take an email
// argument and prompt for the password; attendant logins take --code.
// Either flow resolves the kiosk id and saves the session to the
// well-known path, where every other command loads it transparently.
func LoginCommand() *Command {
	var params loginParams

	return &Command{
		Name:    "login",
		Summary: "Authenticate against a SeaShade backend",
		Description: `Log in to a SeaShade backend and save the session locally.

After login, commands like "seashade ticket board" and "seashade menu
list" use the saved session transparently — no flags needed.

The session file is stored at ~/.config/seashade/session.json (or
$SEASHADE_SESSION_FILE if set, or $XDG_CONFIG_HOME/seashade/session.json).
The file is written with mode 0600 (owner-only read/write) since it
contains an access token.

Owners log in with their email and password; the password can be
provided via --password-file or prompted interactively. Attendants log
in with their short code via --code, no password involved.`,
		Usage: "seashade login [<email>] [flags]",
		Examples: []Example{
			{
				Description: "Log in as the kiosk owner (prompts for password)",
				Command:     "seashade login dona@praia.com",
			},
			{
				Description: "Log in as an attendant with a short code",
				Command:     "seashade login --code BZ41",
			},
			{
				Description: "Log in against an explicit backend",
				Command:     "seashade login dona@praia.com --api-url http://kiosk.local:8080",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			apiURL := params.APIURL
			if apiURL == "" {
				cfg, err := config.Load()
				if err != nil {
					return Internal("load config: %w", err)
				}
				apiURL = cfg.APIURL
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if params.Code != "" {
				if len(args) > 0 {
					return Validation("--code logs in by short code; drop the email argument")
				}
				return attendantLogin(ctx, logger, apiURL, params.Code)
			}

			if len(args) < 1 {
				return Validation("email is required (or use --code for attendant login)\n\nUsage: seashade login <email> [flags]")
			}
			email := args[0]
			if len(args) > 1 {
				return Validation("unexpected argument: %s", args[1])
			}
			if !emailPattern.MatchString(email) {
				return Validation("%q does not look like an email address", email)
			}

			password, err := readLoginPassword(params.PasswordFile)
			if err != nil {
				return err
			}
			if password == "" {
				return Validation("password must not be empty")
			}

			return ownerLogin(ctx, logger, apiURL, email, password)
		},
	}
}

// ownerLogin runs the two-step owner flow: authenticate, then fetch
// the profile to resolve the kiosk id, then persist the session.
func ownerLogin(ctx context.Context, logger *slog.Logger, apiURL, email, password string) error {
	anonymous, err := api.NewClient(api.ClientConfig{BaseURL: apiURL, Logger: logger})
	if err != nil {
		return Internal("create client: %w", err)
	}

	login, err := anonymous.Login(ctx, email, password)
	if err != nil {
		return loginError(err)
	}

	authed, err := api.NewClient(api.ClientConfig{
		BaseURL: apiURL,
		Token:   login.AccessToken,
		Logger:  logger,
	})
	if err != nil {
		return Internal("create client: %w", err)
	}

	profile, err := authed.Me(ctx)
	if err != nil {
		return Internal("fetch profile: %w", err)
	}
	if profile.KioskID == 0 {
		return Internal("account %s has no kiosk associated", email)
	}

	session := &Session{
		AccessToken: login.AccessToken,
		UserName:    profile.Name,
		Role:        "OWNER",
		KioskID:     profile.KioskID,
		APIURL:      apiURL,
	}
	if err := SaveSession(session); err != nil {
		return Internal("save session: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Logged in as %s (kiosk %d)\n", profile.Name, profile.KioskID)
	fmt.Fprintf(os.Stderr, "Session saved to %s\n", SessionFilePath())
	return nil
}

// attendantLogin runs the short-code flow. The response carries the
// identity inline, so there is no profile fetch.
func attendantLogin(ctx context.Context, logger *slog.Logger, apiURL, code string) error {
	client, err := api.NewClient(api.ClientConfig{BaseURL: apiURL, Logger: logger})
	if err != nil {
		return Internal("create client: %w", err)
	}

	login, err := client.AttendantLogin(ctx, code)
	if err != nil {
		return loginError(err)
	}

	session := &Session{
		AccessToken: login.AccessToken,
		UserName:    login.UserName,
		Role:        login.UserRole,
		KioskID:     login.KioskID,
		APIURL:      apiURL,
	}
	if err := SaveSession(session); err != nil {
		return Internal("save session: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Logged in as %s (kiosk %d)\n", login.UserName, login.KioskID)
	fmt.Fprintf(os.Stderr, "Session saved to %s\n", SessionFilePath())
	return nil
}

// loginError maps a failed authentication to the right category. Bad
// credentials are the user's problem, not the tool's.
func loginError(err error) error {
	if api.IsUnauthorized(err) || api.IsForbidden(err) {
		return Validation("login failed: %w", err)
	}
	return Transient("login failed: %w", err)
}

// readLoginPassword reads a password for the login command. If
// passwordFile is empty or "-", prompts interactively on the terminal
// with echo disabled. Otherwise reads from the file path.
func readLoginPassword(passwordFile string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", Internal("reading %s: %w", passwordFile, err)
		}
		password := strings.TrimRight(string(data), "\r\n")
		if password == "" {
			return "", Validation("file %s is empty (after stripping trailing newlines)", passwordFile)
		}
		return password, nil
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return "", Validation("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", Internal("reading password: %w", err)
	}
	return string(passwordBytes), nil
}
