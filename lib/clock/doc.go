// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Code that stamps or ages ticket data accepts a Clock interface
// parameter instead of calling time.Now or time.After directly. In
// production, Real() provides the standard library behavior. In tests,
// Fake() provides a deterministic clock that advances only when Advance
// or Set is called.
//
// # Wiring Pattern
//
// Add a Clock field to structs that use time:
//
//	type Board struct {
//	    clock clock.Clock
//	    // ...
//	}
//
// In production:
//
//	b := &Board{clock: clock.Real()}
//
// In tests:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	b := &Board{clock: c}
//	c.Advance(61 * time.Second) // one elapsed-minute boundary crossed
package clock
