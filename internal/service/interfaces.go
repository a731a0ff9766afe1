// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-store/internal/clipboard"
	"github.com/MKhiriev/go-pass-store/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SecretService is the command-level contract of the pass store. Every
// call loads the store once and, when it changes something, saves it once.
type SecretService interface {
	// Exists reports whether name is in the store.
	Exists(ctx context.Context, name string) (bool, error)

	// Insert adds a new entry. An existing name is rejected with
	// store.ErrNameExists; Update is the overwrite path.
	Insert(ctx context.Context, name string, secret models.Secret) error

	// Update overwrites an existing entry.
	Update(ctx context.Context, name string, secret models.Secret) error

	// Remove deletes an existing entry.
	Remove(ctx context.Context, name string) error

	// Show returns the whole secret, metadata included.
	Show(ctx context.Context, name string) (models.Secret, error)

	// Reveal puts the first line of the secret on the clipboard for a
	// limited time.
	Reveal(ctx context.Context, name string) (clipboard.Session, error)

	// Pick lets the user choose a name interactively.
	Pick(ctx context.Context) (string, error)

	// List returns all names in lexical order.
	List(ctx context.Context) ([]string, error)

	// Edit opens the secret in an editor and saves the result. It reports
	// whether anything changed.
	Edit(ctx context.Context, name string) (bool, error)

	// Init re-encrypts the store to recipient and returns the number of
	// entries carried over. It also creates an empty store.
	Init(ctx context.Context, recipient string) (int, error)
}

// Revealer places a secret on the clipboard temporarily.
type Revealer interface {
	Reveal(ctx context.Context, secret []byte) (clipboard.Session, error)
}

// Picker chooses one name out of many.
type Picker interface {
	Pick(ctx context.Context, names []string) (string, error)
}

// Editor lets the user change content in an external editor.
type Editor interface {
	Edit(ctx context.Context, name string, content []byte) ([]byte, error)
}
