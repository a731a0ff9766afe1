// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-store/internal/config"
)

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "pass [name]",
		Short: "Local encrypted secret store",
		Long: `pass keeps name/secret pairs in one encrypted file and copies secrets to
the clipboard for a limited time. Without a name, an interactive picker is
shown.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       a.buildInfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: a.runReveal,
	}

	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		a.insertCommand(),
		a.updateCommand(),
		a.removeCommand(),
		a.listCommand(),
		a.showCommand(),
		a.editCommand(),
		a.initCommand(),
		a.restoreCommand(),
	)
	return root
}

// runReveal copies the named secret, or the picked one, to the clipboard.
func (a *App) runReveal(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	svc, err := a.service()
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		if name, err = svc.Pick(ctx); err != nil {
			return err
		}
	}

	session, err := svc.Reveal(ctx, name)
	if err != nil {
		return err
	}

	a.log.Debug().Str("name", name).Time("expiry", session.Expiry).Msg("secret revealed")

	seconds := int(a.cfg.Clipboard.Delay.Seconds())
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s to clipboard. Will clear in %d seconds.\n",
		successText.Sprint("Copied"), nameText.Sprint(name), seconds)
	return nil
}
