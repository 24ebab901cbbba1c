// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ConfirmAction prompts on stderr before a destructive operation and
// waits for an answer on stdin. assumeYes skips the prompt (the --yes
// flag for scripts). A declined prompt and a non-interactive stdin
// without assumeYes both return a validation error, so the command
// simply does nothing.
func ConfirmAction(prompt string, assumeYes bool) error {
	if assumeYes {
		return nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return Validation("refusing %q without confirmation", prompt).
			WithHint("pass --yes to confirm non-interactively")
	}

	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return Internal("reading confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return nil
	}
	return Validation("aborted")
}
