// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStoreConfigs indicates the store location could not be
	// determined.
	ErrInvalidStoreConfigs = errors.New("invalid store configuration")
	// ErrInvalidClipboardConfigs indicates invalid clipboard timings.
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
