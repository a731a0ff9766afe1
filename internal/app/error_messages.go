// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording of the pass store.
//
// All Msg* constants are human-readable messages printed by the CLI when a
// command fails. Keeping them in one place ensures consistent wording
// across subcommands; [Describe] picks the right one for an error.
package app

import (
	"errors"

	"github.com/MKhiriev/go-pass-store/internal/clipboard"
	"github.com/MKhiriev/go-pass-store/internal/config"
	"github.com/MKhiriev/go-pass-store/internal/crypto"
	"github.com/MKhiriev/go-pass-store/internal/editor"
	"github.com/MKhiriev/go-pass-store/internal/frame"
	"github.com/MKhiriev/go-pass-store/internal/service"
	"github.com/MKhiriev/go-pass-store/internal/store"
	"github.com/MKhiriev/go-pass-store/internal/tui"
	"github.com/MKhiriev/go-pass-store/internal/validators"
)

const (
	// MsgNameExists is shown when inserting a name that is already stored.
	MsgNameExists = "an entry with this name already exists, use update to overwrite it"

	// MsgNameNotFound is shown for any operation on an unknown name.
	MsgNameNotFound = "no entry with this name"

	// MsgEmptyName is shown when a name is empty or whitespace.
	MsgEmptyName = "the name must not be empty"

	// MsgEmptySecret is shown when a secret (or its first line) is empty.
	MsgEmptySecret = "the secret must not be empty"

	// MsgInvalidName is shown for names with control characters.
	MsgInvalidName = "the name must be printable text on one line"

	// MsgInvalidSecret is shown for secrets that are not UTF-8 text.
	MsgInvalidSecret = "the secret must be UTF-8 text"

	// MsgNoRecipient is shown when saving without any recipient.
	MsgNoRecipient = "no recipient configured, run init <recipient> or set PASS_RECIPIENT"

	// MsgStoreIO is shown when the store file cannot be read or written.
	MsgStoreIO = "the store file could not be accessed"

	// MsgStoreCorrupted is shown for truncated files, bad headers and
	// payloads that do not decode.
	MsgStoreCorrupted = "the store file is corrupted or was encrypted with a different key"

	// MsgUnknownRecipient is shown when no key is known for the recipient.
	MsgUnknownRecipient = "no key is available for the store's recipient"

	// MsgMissingCredential is shown when the private key or passphrase
	// needed for decryption is not available.
	MsgMissingCredential = "the private key needed to open the store is not available"

	// MsgPassphraseMismatch is shown when the passphrase confirmation
	// differs from the first entry.
	MsgPassphraseMismatch = "the passphrases do not match"

	// MsgAuthorityFailed is shown for other encryption backend failures.
	MsgAuthorityFailed = "the encryption backend failed"

	// MsgUnsupportedRecipient is shown for a recipient no backend handles.
	MsgUnsupportedRecipient = "the recipient is not supported"

	// MsgRecipientTooLarge is shown when the recipient or wrapped header
	// does not fit the file format.
	MsgRecipientTooLarge = "the recipient or its ciphertext is too large for the store format"

	// MsgPickerCancelled is shown when the picker is dismissed.
	MsgPickerCancelled = "nothing selected"

	// MsgStoreEmpty is shown when there is nothing to pick from.
	MsgStoreEmpty = "the store is empty"

	// MsgEditorFailed is shown when the external editor fails.
	MsgEditorFailed = "the editor exited with an error, nothing was saved"

	// MsgInvalidConfig is shown when the configuration does not validate.
	MsgInvalidConfig = "invalid configuration"

	// MsgClipboardUnavailable is shown when the clipboard cannot be used.
	MsgClipboardUnavailable = "the clipboard is not available"
)

// Describe translates err into a user-facing message. Unknown errors are
// shown as they are.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, store.ErrNameExists):
		return MsgNameExists
	case errors.Is(err, store.ErrNameNotFound):
		return MsgNameNotFound
	case errors.Is(err, store.ErrEmptyName), errors.Is(err, validators.ErrEmptyName):
		return MsgEmptyName
	case errors.Is(err, validators.ErrInvalidName):
		return MsgInvalidName
	case errors.Is(err, service.ErrEmptySecret), errors.Is(err, clipboard.ErrEmptySecret):
		return MsgEmptySecret
	case errors.Is(err, validators.ErrInvalidSecret):
		return MsgInvalidSecret
	case errors.Is(err, store.ErrNoRecipient):
		return MsgNoRecipient

	case errors.Is(err, frame.ErrFrameTooLarge):
		return MsgRecipientTooLarge
	case errors.Is(err, frame.ErrTruncatedFrame),
		errors.Is(err, crypto.ErrMalformedHeader),
		errors.Is(err, store.ErrPayloadDecode):
		return MsgStoreCorrupted
	case errors.Is(err, store.ErrIO):
		return MsgStoreIO

	case errors.Is(err, crypto.ErrPassphraseMismatch):
		return MsgPassphraseMismatch
	case errors.Is(err, crypto.ErrUnknownRecipient):
		return MsgUnknownRecipient
	case errors.Is(err, crypto.ErrMissingCredential):
		return MsgMissingCredential
	case errors.Is(err, crypto.ErrUnsupportedAuthority):
		return MsgUnsupportedRecipient
	case errors.Is(err, crypto.ErrAuthority):
		return MsgAuthorityFailed

	case errors.Is(err, tui.ErrUserQuit), errors.Is(err, service.ErrNoPicker):
		return MsgPickerCancelled
	case errors.Is(err, tui.ErrNothingToPick):
		return MsgStoreEmpty
	case errors.Is(err, editor.ErrEditorFailed), errors.Is(err, service.ErrNoEditor):
		return MsgEditorFailed
	case errors.Is(err, service.ErrNoRevealer), errors.Is(err, clipboard.ErrClipboardUnavailable):
		return MsgClipboardUnavailable

	case errors.Is(err, config.ErrInvalidStoreConfigs),
		errors.Is(err, config.ErrInvalidClipboardConfigs),
		errors.Is(err, config.ErrInvalidLogConfigs):
		return MsgInvalidConfig + ": " + err.Error()
	}

	return err.Error()
}
