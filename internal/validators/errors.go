// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName     = errors.New("name is empty")
	ErrInvalidName   = errors.New("name contains control characters or invalid UTF-8")
	ErrEmptySecret   = errors.New("secret is empty")
	ErrInvalidSecret = errors.New("secret is not valid UTF-8")
)
