// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticketui implements the interactive ticket views: the
// polling board of active tickets, the closed-ticket history, ticket
// creation on a free umbrella slot, and the per-ticket detail editor.
//
// The views hold no authoritative data. Every screen is a render of
// the latest server fetch, every mutation is one API call followed by
// a re-fetch, and a fixed 15-second tick keeps the board current. One
// bubbletea Model owns all views and switches between them; responses
// from a previous view are discarded by generation counting.
package ticketui
