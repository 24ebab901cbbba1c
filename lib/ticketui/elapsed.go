// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"fmt"
	"time"
)

// ElapsedLabel formats the time since a ticket was opened the way the
// board cards show it: "agora" under one minute, then "há N min" with
// minutes floored, so the label changes exactly at each 60-second
// boundary. Runs from the board's own minute tick, not from data
// refreshes.
func ElapsedLabel(opened, now time.Time) string {
	elapsed := now.Sub(opened)
	if elapsed < time.Minute {
		return "agora"
	}
	return fmt.Sprintf("há %d min", int(elapsed/time.Minute))
}
