// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-store/internal/store"
)

func (a *App) insertCommand() *cobra.Command {
	var multiline bool

	cmd := &cobra.Command{
		Use:   "insert <name>",
		Short: "Add a new secret",
		Long: `Adds a secret under a name that is not in the store yet. On a terminal the
secret is asked for twice without echo. With --multiline, or when stdin is
not a terminal, it is read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			svc, err := a.service()
			if err != nil {
				return err
			}

			exists, err := svc.Exists(ctx, name)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%w: %s", store.ErrNameExists, name)
			}

			secret, err := a.readSecret(name, multiline)
			if err != nil {
				return err
			}
			if err = svc.Insert(ctx, name, secret); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successText.Sprint("Added"), nameText.Sprint(name))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&multiline, "multiline", "m", false, "Read the whole secret from stdin until EOF")
	return cmd
}

func (a *App) updateCommand() *cobra.Command {
	var multiline bool

	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Replace an existing secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			svc, err := a.service()
			if err != nil {
				return err
			}

			exists, err := svc.Exists(ctx, name)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("%w: %s", store.ErrNameNotFound, name)
			}

			secret, err := a.readSecret(name, multiline)
			if err != nil {
				return err
			}
			if err = svc.Update(ctx, name, secret); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successText.Sprint("Updated"), nameText.Sprint(name))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&multiline, "multiline", "m", false, "Read the whole secret from stdin until EOF")
	return cmd
}

func (a *App) removeCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Remove a secret",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			svc, err := a.service()
			if err != nil {
				return err
			}

			if !force && a.terminal.IsInteractive() {
				ok, err := a.terminal.Confirm(fmt.Sprintf("Remove %s?", name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), warningText.Sprint("Nothing removed"))
					return nil
				}
			}

			if err = svc.Remove(ctx, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successText.Sprint("Removed"), nameText.Sprint(name))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Do not ask for confirmation")
	return cmd
}

func (a *App) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List secret names",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}

			names, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (a *App) showCommand() *cobra.Command {
	var metaOnly bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a secret with its metadata",
		Long: `Prints the whole secret: the first line, which is what gets copied to the
clipboard, followed by its metadata. With --meta only the metadata is
printed, so usernames and notes can be looked up without showing the
secret itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}

			secret, err := svc.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := string(secret)
			if metaOnly {
				out = secret.Meta()
			}
			if out != "" && !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&metaOnly, "meta", false, "Print only the lines after the secret")
	return cmd
}

func (a *App) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <name>",
		Short: "Edit a secret in $EDITOR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			svc, err := a.service()
			if err != nil {
				return err
			}

			changed, err := svc.Edit(cmd.Context(), name)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", warningText.Sprint("No changes to"), nameText.Sprint(name))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successText.Sprint("Updated"), nameText.Sprint(name))
			return nil
		},
	}
}

func (a *App) initCommand() *cobra.Command {
	var generateAge bool

	cmd := &cobra.Command{
		Use:   "init [recipient]",
		Short: "Create the store or re-encrypt it to a new recipient",
		Long: `Encrypts the store to recipient: a gpg key id, an age1... recipient or
"passphrase". Without an argument the configured recipient is used. With
--generate-age a new age identity is written to the
configured identity file and its recipient is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var recipient string
			switch {
			case generateAge && len(args) == 1:
				return errors.New("a recipient cannot be combined with --generate-age")
			case generateAge:
				path := a.cfg.Authority.AgeIdentityFile
				generated, err := a.newAgeIdentity(path)
				if err != nil {
					return err
				}
				recipient = generated
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successText.Sprint("Wrote age identity to"), pathText.Sprint(path))
			case len(args) == 1:
				recipient = args[0]
			case a.cfg.Authority.Recipient != "":
				recipient = a.cfg.Authority.Recipient
			default:
				return store.ErrNoRecipient
			}

			svc, err := a.service()
			if err != nil {
				return err
			}

			count, err := svc.Init(cmd.Context(), recipient)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d secrets to %s in %s\n",
				successText.Sprint("Encrypted"), count, nameText.Sprint(recipient), pathText.Sprint(a.cfg.Store.Path()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&generateAge, "generate-age", false, "Generate a new age identity and use its recipient")
	return cmd
}
