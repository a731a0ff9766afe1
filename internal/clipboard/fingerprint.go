// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"crypto/hmac"
	"crypto/rand"
	"fmt"

	"github.com/MKhiriev/go-pass-store/internal/utils"
)

const fingerprintKeySize = 32

// Fingerprint identifies clipboard content without carrying it. Sum is
// HMAC-SHA256 of the content under a one-off Key, so the pair reveals
// nothing useful about a low-entropy secret once the key is gone.
type Fingerprint struct {
	Key []byte `json:"key"`
	Sum []byte `json:"sum"`
}

// NewFingerprint fingerprints data under a fresh random key.
func NewFingerprint(data []byte) (Fingerprint, error) {
	key := make([]byte, fingerprintKeySize)
	if _, err := rand.Read(key); err != nil {
		return Fingerprint{}, fmt.Errorf("generate fingerprint key: %w", err)
	}
	return Fingerprint{Key: key, Sum: utils.Hash(data, key)}, nil
}

// Matches reports whether data is the fingerprinted content.
func (f Fingerprint) Matches(data []byte) bool {
	if len(f.Key) == 0 || len(f.Sum) == 0 {
		return false
	}
	return hmac.Equal(f.Sum, utils.Hash(data, f.Key))
}
