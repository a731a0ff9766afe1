// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-pass-store/internal/crypto"
	"github.com/MKhiriev/go-pass-store/models"
)

// entriesOf lists the entries of s ordered by name.
func entriesOf(s *Store) []models.Entry {
	out := make([]models.Entry, 0, s.Len())
	for _, name := range s.Names() {
		secret, _ := s.Get(name)
		out = append(out, models.Entry{Name: name, Secret: secret})
	}
	return out
}

// xorAuthority is a reversible stand-in for a real asymmetric authority.
type xorAuthority struct {
	recipient string
	encrypts  int
	decrypts  int
}

func (a *xorAuthority) Recipient() string { return a.recipient }

func (a *xorAuthority) Encrypt(_ context.Context, p []byte) ([]byte, error) {
	a.encrypts++
	return flip(p), nil
}

func (a *xorAuthority) Decrypt(_ context.Context, c []byte) ([]byte, error) {
	a.decrypts++
	return flip(c), nil
}

func flip(b []byte) []byte {
	out := slices.Clone(b)
	for i := range out {
		out[i] ^= 0x5A
	}
	return out
}

type mapResolver map[string]crypto.Authority

func (m mapResolver) Resolve(recipient string) (crypto.Authority, error) {
	a, ok := m[recipient]
	if !ok {
		return nil, fmt.Errorf("%w: %s", crypto.ErrUnknownRecipient, recipient)
	}
	return a, nil
}

func bytesReader(b []byte) *bytes.Reader { return bytes.NewReader(b) }
