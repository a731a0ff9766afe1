// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-store/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldName targets the entry name. It must be printable text because
	// names are listed one per line and shown in the picker.
	FieldName = "name"

	// FieldSecret targets the secret value.
	FieldSecret = "secret"
)

// EntryValidator implements the Validator interface for store entries.
//
// Names and secrets are kept as JSON strings in the payload, and
// encoding/json replaces invalid UTF-8 with U+FFFD, so both must be valid
// UTF-8 to survive a save/load round trip.
type EntryValidator struct {
}

// NewEntryValidator constructs a new EntryValidator
// and returns it as the Validator interface.
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate accepts models.Entry and *models.Entry. Optional fields restrict
// validation to the named subset; when omitted, every field is validated.
// Returns ErrUnsupportedType for any other value.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEntry(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateEntry returns the first encountered validation error or nil.
func (v *EntryValidator) validateEntry(_ context.Context, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(entry.Name) == "" {
				return ErrEmptyName
			}
			if !utf8.ValidString(entry.Name) || strings.IndexFunc(entry.Name, unicode.IsControl) >= 0 {
				return ErrInvalidName
			}
		case FieldSecret:
			if entry.Secret.IsEmpty() {
				return ErrEmptySecret
			}
			if !utf8.ValidString(string(entry.Secret)) {
				return ErrInvalidSecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
