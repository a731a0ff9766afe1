// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-store/internal/validators"
)

var (
	// ErrEmptySecret is returned when a secret, or its revealed first
	// line, is empty.
	ErrEmptySecret = validators.ErrEmptySecret

	// ErrNoPicker is returned by Pick when no picker is wired in.
	ErrNoPicker = errors.New("no picker available")

	// ErrNoEditor is returned by Edit when no editor is wired in.
	ErrNoEditor = errors.New("no editor available")

	// ErrNoRevealer is returned by Reveal when no clipboard is wired in.
	ErrNoRevealer = errors.New("no clipboard available")
)
