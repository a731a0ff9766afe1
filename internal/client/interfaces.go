// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line in args and returns the process exit
	// code.
	Run(ctx context.Context, args []string) int
}

// Terminal is the interactive side of stdin.
type Terminal interface {
	// IsInteractive reports whether a user can be prompted.
	IsInteractive() bool

	// ReadSecret prompts for a value without echoing it.
	ReadSecret(prompt string) ([]byte, error)

	// Confirm asks a yes/no question; anything but y/yes is no.
	Confirm(prompt string) (bool, error)
}
