// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"

	"github.com/barb1424/SeaShadeFront/lib/api"
)

// AuthedClient loads the saved session and returns a client bound to
// it, plus the session for its kiosk id. Commands that talk to the
// API call this first; the NotFound error it returns on a missing
// session already tells the user to log in.
func AuthedClient(logger *slog.Logger) (*api.Client, *Session, error) {
	session, err := LoadSession()
	if err != nil {
		return nil, nil, NotFound("%w", err)
	}

	client, err := api.NewClient(api.ClientConfig{
		BaseURL: session.APIURL,
		Token:   session.AccessToken,
		Logger:  logger,
	})
	if err != nil {
		return nil, nil, Internal("create client: %w", err)
	}
	return client, session, nil
}

// MapAPIError converts an API failure into a categorized ToolError.
// The server's message is preserved verbatim; only the category is
// derived from the status code.
func MapAPIError(err error) error {
	switch {
	case err == nil:
		return nil
	case api.IsUnauthorized(err):
		return Forbidden("%w", err).WithHint("run \"seashade login\" to refresh your session")
	case api.IsForbidden(err):
		return Forbidden("%w", err)
	case api.IsNotFound(err):
		return NotFound("%w", err)
	case api.IsConflict(err):
		return Conflict("%w", err)
	default:
		if api.IsStatus(err, 400) || api.IsStatus(err, 422) {
			return Validation("%w", err)
		}
		return Transient("%w", err)
	}
}
