// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyChain derives key-encryption keys from a passphrase and seals small
// blobs with them.
type keyChain struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      int
}

// newKeyChain returns a keyChain with the Argon2id parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func newKeyChain() *keyChain {
	return &keyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		saltLen:      16,
	}
}

func (k *keyChain) generateSalt() ([]byte, error) {
	salt := make([]byte, k.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

func (k *keyChain) deriveKEK(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)
}

// seal encrypts plaintext under a KEK derived from passphrase with a fresh
// salt. Output layout: salt || nonce || AES-256-GCM ciphertext.
func (k *keyChain) seal(passphrase, plaintext []byte) ([]byte, error) {
	salt, err := k.generateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	kek := k.deriveKEK(passphrase, salt)
	defer wipe(kek)

	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return gcm.Seal(blob, nonce, plaintext, nil), nil
}

// open reverses seal. A wrong passphrase surfaces as a GCM authentication
// failure.
func (k *keyChain) open(passphrase, blob []byte) ([]byte, error) {
	if len(blob) < k.saltLen {
		return nil, fmt.Errorf("ciphertext too short")
	}
	salt, rest := blob[:k.saltLen], blob[k.saltLen:]

	kek := k.deriveKEK(passphrase, salt)
	defer wipe(kek)

	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	if len(rest) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
