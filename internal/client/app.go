// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-store/internal/app"
	"github.com/MKhiriev/go-pass-store/internal/clipboard"
	"github.com/MKhiriev/go-pass-store/internal/config"
	"github.com/MKhiriev/go-pass-store/internal/crypto"
	"github.com/MKhiriev/go-pass-store/internal/editor"
	"github.com/MKhiriev/go-pass-store/internal/logger"
	"github.com/MKhiriev/go-pass-store/internal/service"
	"github.com/MKhiriev/go-pass-store/internal/store"
	"github.com/MKhiriev/go-pass-store/internal/tui"
	"github.com/MKhiriev/go-pass-store/models"
)

const appRole = "pass"

// App is the pass command line. Collaborators left unset are built from
// the configuration on first use.
type App struct {
	buildInfo models.AppBuildInfo

	flags *config.StructuredConfig
	cfg   *config.StructuredConfig
	log   *logger.Logger

	svc      service.SecretService
	terminal Terminal
	backend  clipboard.Backend

	newAgeIdentity func(path string) (string, error)

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option customizes an App.
type Option func(*App)

// WithService replaces the store-backed service.
func WithService(svc service.SecretService) Option {
	return func(a *App) { a.svc = svc }
}

// WithTerminal replaces the tty prompts.
func WithTerminal(t Terminal) Option {
	return func(a *App) { a.terminal = t }
}

// WithClipboardBackend replaces the system clipboard.
func WithClipboardBackend(b clipboard.Backend) Option {
	return func(a *App) { a.backend = b }
}

// WithIO replaces the standard streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdin = stdin
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithConfig skips configuration loading.
func WithConfig(cfg *config.StructuredConfig) Option {
	return func(a *App) { a.cfg = cfg }
}

// WithLogger sets the logger instead of opening the configured log file.
func WithLogger(log *logger.Logger) Option {
	return func(a *App) { a.log = log }
}

// NewApp returns the pass command line for the given build.
func NewApp(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		buildInfo:      buildInfo,
		newAgeIdentity: crypto.GenerateAgeIdentity,
		stdin:          os.Stdin,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.terminal == nil {
		a.terminal = newTTYTerminal(os.Stdin, a.stderr)
	}
	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) int {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if a.log != nil {
			a.log.Error().Err(err).Msg("command failed")
		}
		fmt.Fprintln(a.stderr, errorText.Sprint("error:"), app.Describe(err))
		return 1
	}
	return 0
}

// setup loads the configuration and opens the log. It runs before every
// subcommand.
func (a *App) setup(cmd *cobra.Command) error {
	if a.cfg == nil {
		cfg, err := config.GetConfig(a.flags)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.log == nil {
		role := appRole
		if cmd.Name() == clipboard.RestoreCommand {
			role = clipboard.RestoreCommand
		}
		a.log = logger.NewFileLogger(role, a.cfg.Log.File, a.cfg.Log.Level)
	}

	a.log.Debug().
		Str("command", cmd.CommandPath()).
		Str("store", a.cfg.Store.Path()).
		Msg("command started")
	return nil
}

// service returns the SecretService, wiring the real collaborators on first
// use.
func (a *App) service() (service.SecretService, error) {
	if a.svc != nil {
		return a.svc, nil
	}

	resolver := crypto.NewResolver(crypto.ResolverConfig{
		GPGBinary:       a.cfg.Authority.GPGBinary,
		AgeIdentityFile: a.cfg.Authority.AgeIdentityFile,
		Prompt: func(prompt string) ([]byte, error) {
			return a.terminal.ReadSecret(prompt + ": ")
		},
	})
	repo := store.NewFileStorage(a.cfg.Store, a.cfg.Authority.Recipient, resolver, a.log)

	backend, err := a.clipboardBackend()
	if err != nil {
		return nil, err
	}
	guard := clipboard.NewGuard(backend, a.cfg.Clipboard, a.log)

	picker := tui.New(nil, a.stderr, "")
	ed := editor.New("", "", a.log)

	a.svc = service.NewSecretService(repo, guard, picker, ed, a.log)
	return a.svc, nil
}

func (a *App) clipboardBackend() (clipboard.Backend, error) {
	if a.backend != nil {
		return a.backend, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable for clipboard restore: %w", err)
	}
	a.backend = clipboard.NewSystemBackend(exe, a.log)
	return a.backend, nil
}

// readSecret collects a new secret: the whole of stdin with multiline,
// a confirmed hidden prompt on a terminal, the first line of stdin
// otherwise.
func (a *App) readSecret(name string, multiline bool) (models.Secret, error) {
	if multiline {
		if a.terminal.IsInteractive() {
			fmt.Fprintf(a.stderr, "Enter contents of %s and press Ctrl+D when finished:\n", nameText.Sprint(name))
		}
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return models.Secret(data), nil
	}

	if !a.terminal.IsInteractive() {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return models.Secret(models.Secret(data).Reveal()), nil
	}

	first, err := a.terminal.ReadSecret(fmt.Sprintf("Enter secret for %s: ", name))
	if err != nil {
		return "", err
	}
	second, err := a.terminal.ReadSecret(fmt.Sprintf("Retype secret for %s: ", name))
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", errSecretsDiffer
	}
	return models.Secret(first), nil
}

var errSecretsDiffer = errors.New("the entered secrets do not match")
