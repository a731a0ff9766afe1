// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the pass command line.
//
// It wires configuration, logging, the store, the clipboard guard, the
// picker and the editor into cobra subcommands. Each invocation writes the
// store at most once, then exits. The only thing outliving it is the
// detached clipboard restore: the same binary running the hidden
// clip-restore subcommand.
package client
