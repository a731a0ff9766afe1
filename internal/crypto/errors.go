// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHeader is returned when a decrypted header does not have
	// the fixed header length.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrAuthority is the root of every asymmetric encrypt/decrypt failure.
	ErrAuthority = errors.New("authority failure")

	// ErrUnknownRecipient indicates the authority has no key for the
	// requested recipient.
	ErrUnknownRecipient = fmt.Errorf("%w: unknown recipient", ErrAuthority)

	// ErrMissingCredential indicates the private credential needed for
	// decryption is not available.
	ErrMissingCredential = fmt.Errorf("%w: missing private credential", ErrAuthority)

	// ErrUnsupportedAuthority is returned by the resolver for an authority
	// kind it does not know.
	ErrUnsupportedAuthority = errors.New("unsupported authority")
)
