// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/authority_mock.go -package=mock

// Authority performs asymmetric encryption on behalf of one recipient.
//
// Implementations return errors wrapping [ErrAuthority]; the more specific
// [ErrUnknownRecipient] and [ErrMissingCredential] are used when the cause
// is known.
type Authority interface {
	// Recipient returns the identifier the authority encrypts to. It is
	// stored unencrypted in the store file.
	Recipient() string

	// Encrypt encrypts plaintext to the recipient.
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext with the recipient's private credential.
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}

// AuthorityResolver maps a recipient identifier to the Authority that
// serves it.
type AuthorityResolver interface {
	Resolve(recipient string) (Authority, error)
}
