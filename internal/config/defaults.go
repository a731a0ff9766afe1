// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultClipboardDelay  = 45 * time.Second
	defaultClipboardSettle = 500 * time.Millisecond
	defaultLogLevel        = "info"
	defaultAgeIdentityFile = "age.key"
	defaultLogFile         = "pass.log"
)

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// applyDefaults fills every field no source has set. Fixed fields are
// always overwritten.
func (cfg *StructuredConfig) applyDefaults() error {
	if cfg.Store.Dir == "" {
		base, err := userConfigDir()
		if err != nil {
			return fmt.Errorf("%w: resolve config dir: %w", ErrInvalidStoreConfigs, err)
		}
		cfg.Store.Dir = filepath.Join(base, appDirName)
	}
	cfg.Store.FileName = StoreFileName

	if cfg.Authority.AgeIdentityFile == "" {
		cfg.Authority.AgeIdentityFile = filepath.Join(cfg.Store.Dir, defaultAgeIdentityFile)
	}
	if cfg.Authority.GPGBinary == "" {
		cfg.Authority.GPGBinary = "gpg"
	}

	if cfg.Clipboard.Delay == 0 {
		cfg.Clipboard.Delay = defaultClipboardDelay
	}
	if cfg.Clipboard.Settle == 0 {
		cfg.Clipboard.Settle = defaultClipboardSettle
	}
	cfg.Clipboard.Tag = ClipboardTag

	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.Store.Dir, defaultLogFile)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}

	return nil
}

// validate checks the merged and defaulted configuration.
func (cfg *StructuredConfig) validate() error {
	if cfg.Store.Dir == "" || cfg.Store.FileName == "" {
		return ErrInvalidStoreConfigs
	}
	if cfg.Clipboard.Delay < 0 || cfg.Clipboard.Settle < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidClipboardConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}
