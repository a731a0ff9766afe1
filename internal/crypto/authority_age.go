// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"filippo.io/age"
)

// AgeRecipientPrefix starts every age X25519 recipient string.
const AgeRecipientPrefix = "age1"

// AgeAuthority wraps headers with age to an X25519 recipient and unwraps
// them with the identities kept in an identity file.
type AgeAuthority struct {
	recipient    string
	identityFile string
}

// NewAgeAuthority returns an AgeAuthority encrypting to recipient (age1...)
// and decrypting with the identities in identityFile.
func NewAgeAuthority(recipient, identityFile string) *AgeAuthority {
	return &AgeAuthority{recipient: recipient, identityFile: identityFile}
}

// Recipient implements [Authority].
func (a *AgeAuthority) Recipient() string {
	return a.recipient
}

// Encrypt implements [Authority].
func (a *AgeAuthority) Encrypt(_ context.Context, plaintext []byte) ([]byte, error) {
	recipient, err := age.ParseX25519Recipient(a.recipient)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing recipient %q: %w", ErrUnknownRecipient, a.recipient, err)
	}

	var out bytes.Buffer
	w, err := age.Encrypt(&out, recipient)
	if err != nil {
		return nil, fmt.Errorf("%w: creating age encryptor: %w", ErrAuthority, err)
	}
	if _, err = w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("%w: writing plaintext to age encryptor: %w", ErrAuthority, err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalizing age encryption: %w", ErrAuthority, err)
	}
	return out.Bytes(), nil
}

// Decrypt implements [Authority].
func (a *AgeAuthority) Decrypt(_ context.Context, ciphertext []byte) ([]byte, error) {
	identities, err := a.identities()
	if err != nil {
		return nil, err
	}

	r, err := age.Decrypt(bytes.NewReader(ciphertext), identities...)
	if err != nil {
		var noMatch *age.NoIdentityMatchError
		if errors.As(err, &noMatch) {
			return nil, fmt.Errorf("%w: no identity in %s matches: %w", ErrMissingCredential, a.identityFile, err)
		}
		return nil, fmt.Errorf("%w: decrypting: %w", ErrAuthority, err)
	}

	plain, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading decrypted plaintext: %w", ErrAuthority, err)
	}
	return plain, nil
}

func (a *AgeAuthority) identities() ([]age.Identity, error) {
	f, err := os.Open(a.identityFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: identity file %s not found", ErrMissingCredential, a.identityFile)
		}
		return nil, fmt.Errorf("%w: opening identity file: %w", ErrAuthority, err)
	}
	defer f.Close()

	ids, err := age.ParseIdentities(f)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing identity file %s: %w", ErrMissingCredential, a.identityFile, err)
	}
	return ids, nil
}

// GenerateAgeIdentity creates a new X25519 identity, writes it to path with
// 0600 permissions (refusing to overwrite) and returns the recipient string.
func GenerateAgeIdentity(path string) (string, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return "", fmt.Errorf("generating age keypair: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("create identity file: %w", err)
	}
	defer f.Close()

	recipient := identity.Recipient().String()
	content := fmt.Sprintf("# public key: %s\n%s\n", recipient, identity.String())
	if _, err = f.WriteString(content); err != nil {
		return "", fmt.Errorf("write identity file: %w", err)
	}
	return recipient, nil
}

// IsAgeRecipient reports whether recipient looks like an age X25519
// recipient.
func IsAgeRecipient(recipient string) bool {
	return strings.HasPrefix(recipient, AgeRecipientPrefix)
}
