// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Session holds the authenticated user's state: the bearer token the
// API expects on every request plus the identity and kiosk resolved at
// login time. It is the single browser-local value of the product —
// everything else lives on the server.
//
// Stored at the well-known path returned by SessionFilePath and loaded
// automatically by commands that talk to the API. There is no refresh
// flow: when the token expires, requests fail as unauthorized and the
// user logs in again.
type Session struct {
	// AccessToken is the bearer token attached to every API request.
	AccessToken string `json:"access_token"`

	// UserName is the display name of the logged-in owner or attendant.
	UserName string `json:"user_name"`

	// Role distinguishes owner logins from attendant short-code logins.
	Role string `json:"role,omitempty"`

	// KioskID scopes every business endpoint. Resolved at login.
	KioskID int64 `json:"kiosk_id"`

	// APIURL is the base URL of the SeaShade backend this session was
	// opened against.
	APIURL string `json:"api_url"`
}

// SessionFilePath returns the path to the session file. Checks the
// SEASHADE_SESSION_FILE environment variable first, then falls back to
// ~/.config/seashade/session.json.
func SessionFilePath() string {
	if envPath := os.Getenv("SEASHADE_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "seashade-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "seashade", "session.json")
}

// LoadSession reads the session from the well-known path. Returns a
// clear error directing the user to "seashade login" if none exists.
func LoadSession() (*Session, error) {
	return LoadSessionFrom(SessionFilePath())
}

// LoadSessionFrom reads a session from a specific file path.
func LoadSessionFrom(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no SeaShade session found at %s — run \"seashade login\" first", path)
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}

	if session.AccessToken == "" {
		return nil, fmt.Errorf("session file %s has no access_token", path)
	}
	if session.KioskID == 0 {
		return nil, fmt.Errorf("session file %s has no kiosk_id", path)
	}
	if session.APIURL == "" {
		return nil, fmt.Errorf("session file %s has no api_url", path)
	}

	return &session, nil
}

// SaveSession writes a session to the well-known path. Creates the
// parent directory with mode 0700 if it doesn't exist. The file is
// written with mode 0600 (owner-only) since it contains a bearer token.
func SaveSession(session *Session) error {
	return SaveSessionTo(session, SessionFilePath())
}

// SaveSessionTo writes a session to a specific file path.
func SaveSessionTo(session *Session, path string) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	return nil
}

// RemoveSession deletes the session file. Missing file is not an error
// — logout is idempotent.
func RemoveSession() error {
	err := os.Remove(SessionFilePath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
