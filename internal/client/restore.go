// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-store/internal/clipboard"
)

// restoreCommand is the detached child started by a reveal. It reads its
// request from stdin, waits and restores the previous clipboard content
// unless the user has copied something else in the meantime.
func (a *App) restoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:    clipboard.RestoreCommand,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			req, err := clipboard.ReadRestoreRequest(cmd.InOrStdin())
			if err != nil {
				return err
			}

			backend, err := a.clipboardBackend()
			if err != nil {
				return err
			}
			return clipboard.RunRestore(ctx, backend, req, a.log)
		},
	}
}
