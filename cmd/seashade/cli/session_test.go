// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	t.Setenv("SEASHADE_SESSION_FILE", path)

	saved := &Session{
		AccessToken: "tok-123",
		UserName:    "Maria Silva",
		Role:        "OWNER",
		KioskID:     7,
		APIURL:      "http://kiosk.local:8080",
	}
	if err := SaveSession(saved); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat session file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("session file mode = %o, want 0600", perm)
	}

	loaded, err := LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("loaded = %+v, want %+v", loaded, saved)
	}
}

func TestLoadSessionMissingDirectsToLogin(t *testing.T) {
	t.Setenv("SEASHADE_SESSION_FILE", filepath.Join(t.TempDir(), "absent.json"))

	_, err := LoadSession()
	if err == nil {
		t.Fatal("expected error for missing session")
	}
	if !strings.Contains(err.Error(), "seashade login") {
		t.Errorf("error %q does not mention seashade login", err)
	}
}

func TestLoadSessionRejectsIncomplete(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no token", `{"kiosk_id":7,"api_url":"http://x"}`},
		{"no kiosk", `{"access_token":"t","api_url":"http://x"}`},
		{"no api url", `{"access_token":"t","kiosk_id":7}`},
		{"not json", `nope`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "session.json")
			if err := os.WriteFile(path, []byte(tt.body), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadSessionFrom(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRemoveSessionIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	t.Setenv("SEASHADE_SESSION_FILE", path)

	if err := RemoveSession(); err != nil {
		t.Fatalf("RemoveSession on missing file: %v", err)
	}

	if err := SaveSession(&Session{AccessToken: "t", KioskID: 1, APIURL: "http://x"}); err != nil {
		t.Fatal(err)
	}
	if err := RemoveSession(); err != nil {
		t.Fatalf("RemoveSession: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file still exists after RemoveSession")
	}
}
