// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"
)

// Fixed values that are part of the on-disk and process contract rather
// than user preferences.
const (
	// StoreFileName is the name of the store file inside Store.Dir.
	StoreFileName = "pass.store"

	// ClipboardTag is the argv[0] of the detached clipboard restore
	// process. It is how a later reveal finds and cancels a pending restore.
	ClipboardTag = "password store sleep"

	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "PASS_"

	appDirName = "pass-store"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging a JSON file, environment variables and flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       environment variable name (after the global PASS_ prefix).
type StructuredConfig struct {
	// Store locates the store file.
	Store Store `envPrefix:"STORE_"`

	// Authority configures how store headers are wrapped.
	Authority Authority

	// Clipboard configures the timed reveal.
	Clipboard Clipboard `envPrefix:"CLIP_"`

	// Log configures the JSON log file.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: PASS_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Store holds the location of the store file.
type Store struct {
	// Dir is the directory holding the store file.
	// Env: PASS_STORE_DIR
	Dir string `env:"DIR"`

	// FileName is always [StoreFileName]; it is not read from any source.
	FileName string
}

// Path returns the full path of the store file.
func (s Store) Path() string {
	return filepath.Join(s.Dir, s.FileName)
}

// Authority holds the recipient and the credentials used to wrap headers.
type Authority struct {
	// Recipient is the identifier a store without one is encrypted to: a
	// gpg key specifier, an age1... recipient, or "passphrase". An existing
	// store keeps the recipient found in its file until re-initialized.
	// Env: PASS_RECIPIENT
	Recipient string `env:"RECIPIENT"`

	// AgeIdentityFile holds age identities for decryption.
	// Env: PASS_AGE_IDENTITY_FILE
	AgeIdentityFile string `env:"AGE_IDENTITY_FILE"`

	// GPGBinary is the gpg executable.
	// Env: PASS_GPG_BINARY
	GPGBinary string `env:"GPG_BINARY"`
}

// Clipboard holds the timed reveal settings.
type Clipboard struct {
	// Delay is how long a revealed secret stays on the clipboard
	// (e.g. "45s").
	// Env: PASS_CLIP_TIME
	Delay time.Duration `env:"TIME"`

	// Settle is the pause after cancelling a pending restore, giving the
	// old process time to exit.
	// Env: PASS_CLIP_SETTLE
	Settle time.Duration `env:"SETTLE"`

	// Tag is always [ClipboardTag]; it is not read from any source.
	Tag string
}

// Log holds the logging settings.
type Log struct {
	// File is the path of the JSON log file.
	// Env: PASS_LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: PASS_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetConfig loads, merges, defaults and validates the configuration.
// flags holds the values bound by [BindFlags]; it may be nil.
func GetConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
