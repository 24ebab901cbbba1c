// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "strconv"

// ParseID expects args to be exactly one numeric id and returns it.
// what names the resource in error messages ("product", "slot", ...).
func ParseID(args []string, what string) (int64, error) {
	if len(args) != 1 {
		return 0, Validation("expected exactly one %s id", what)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, Validation("invalid %s id %q", what, args[0])
	}
	return id, nil
}
