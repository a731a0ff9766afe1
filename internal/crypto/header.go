// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
)

// Header record layout. The serialized header is the key followed by the
// nonce, with no padding:
//
//	offset  0, 32 bytes: ChaCha20 key
//	offset 32, 12 bytes: ChaCha20 nonce
const (
	KeySize   = chacha20.KeySize
	NonceSize = chacha20.NonceSize

	keyOffset   = 0
	nonceOffset = keyOffset + KeySize

	// HeaderSize is the length of a serialized header.
	HeaderSize = nonceOffset + NonceSize
)

// Header is the one-time symmetric key and nonce protecting one saved
// payload. It is never persisted in plaintext.
type Header struct {
	Key   [KeySize]byte
	Nonce [NonceSize]byte
}

// GenerateHeader draws a fresh random key and nonce from the OS CSPRNG.
func GenerateHeader() (Header, error) {
	var h Header
	if _, err := io.ReadFull(rand.Reader, h.Key[:]); err != nil {
		return Header{}, fmt.Errorf("generate header key: %w", err)
	}
	if _, err := io.ReadFull(rand.Reader, h.Nonce[:]); err != nil {
		return Header{}, fmt.Errorf("generate header nonce: %w", err)
	}
	return h, nil
}

// MarshalBinary returns the fixed HeaderSize-byte serialization.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	copy(buf[keyOffset:nonceOffset], h.Key[:])
	copy(buf[nonceOffset:HeaderSize], h.Nonce[:])
	return buf, nil
}

// UnmarshalBinary restores a header from its serialization. Any length
// other than HeaderSize is rejected with [ErrMalformedHeader].
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedHeader, len(data), HeaderSize)
	}
	copy(h.Key[:], data[keyOffset:nonceOffset])
	copy(h.Nonce[:], data[nonceOffset:HeaderSize])
	return nil
}

// Encrypt serializes the header and wraps it with authority.
func (h Header) Encrypt(ctx context.Context, authority Authority) ([]byte, error) {
	plain, _ := h.MarshalBinary()
	defer wipe(plain)

	ciphertext, err := authority.Encrypt(ctx, plain)
	if err != nil {
		return nil, fmt.Errorf("encrypt header: %w", err)
	}
	return ciphertext, nil
}

// DecryptHeader unwraps ciphertext with authority and rebuilds the header.
func DecryptHeader(ctx context.Context, authority Authority, ciphertext []byte) (Header, error) {
	plain, err := authority.Decrypt(ctx, ciphertext)
	if err != nil {
		return Header{}, fmt.Errorf("decrypt header: %w", err)
	}
	defer wipe(plain)

	var h Header
	if err = h.UnmarshalBinary(plain); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Cipher returns a ChaCha20 keystream positioned at the start of the
// payload.
func (h Header) Cipher() (*chacha20.Cipher, error) {
	c, err := chacha20.NewUnauthenticatedCipher(h.Key[:], h.Nonce[:])
	if err != nil {
		return nil, fmt.Errorf("create payload cipher: %w", err)
	}
	return c, nil
}

// NewReader wraps src so that reads return plaintext.
func (h Header) NewReader(src io.Reader) (*Reader, error) {
	c, err := h.Cipher()
	if err != nil {
		return nil, err
	}
	return NewReader(src, c), nil
}

// NewWriter wraps dst so that written plaintext reaches dst encrypted.
func (h Header) NewWriter(dst io.Writer) (*Writer, error) {
	c, err := h.Cipher()
	if err != nil {
		return nil, err
	}
	return NewWriter(dst, c), nil
}

// Wipe zeroes the key and nonce.
func (h *Header) Wipe() {
	wipe(h.Key[:])
	wipe(h.Nonce[:])
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
