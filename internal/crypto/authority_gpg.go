// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultGPGBinary is the gpg executable looked up on PATH.
const DefaultGPGBinary = "gpg"

// GPGAuthority delegates header wrapping to the gpg(1) binary and the
// user's keyring. Recipient is any key specifier gpg accepts (fingerprint,
// key ID, or email).
type GPGAuthority struct {
	binary    string
	recipient string
}

// NewGPGAuthority returns a GPGAuthority encrypting to recipient. An empty
// binary means [DefaultGPGBinary].
func NewGPGAuthority(binary, recipient string) *GPGAuthority {
	if binary == "" {
		binary = DefaultGPGBinary
	}
	return &GPGAuthority{binary: binary, recipient: recipient}
}

// Recipient implements [Authority].
func (g *GPGAuthority) Recipient() string {
	return g.recipient
}

// Encrypt implements [Authority].
func (g *GPGAuthority) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	if g.recipient == "" {
		return nil, fmt.Errorf("%w: empty gpg recipient", ErrUnknownRecipient)
	}
	return g.run(ctx, plaintext, "--recipient", g.recipient, "--encrypt")
}

// Decrypt implements [Authority]. The ciphertext is fed on stdin, so it
// never touches a temporary file.
func (g *GPGAuthority) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	return g.run(ctx, ciphertext, "--decrypt")
}

func (g *GPGAuthority) run(ctx context.Context, input []byte, args ...string) ([]byte, error) {
	base := []string{"--batch", "--quiet", "--yes", "--compress-algo=none"}
	cmd := exec.CommandContext(ctx, g.binary, append(base, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, classifyGPGError(err, stderr.String())
	}
	return stdout.Bytes(), nil
}

func classifyGPGError(err error, stderr string) error {
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = err.Error()
	}

	var execErr *exec.Error
	switch {
	case errors.As(err, &execErr):
		return fmt.Errorf("%w: gpg not available: %w", ErrAuthority, err)
	case strings.Contains(msg, "No secret key"), strings.Contains(msg, "decryption failed"):
		return fmt.Errorf("%w: %s", ErrMissingCredential, msg)
	case strings.Contains(msg, "No public key"), strings.Contains(msg, "skipped"):
		return fmt.Errorf("%w: %s", ErrUnknownRecipient, msg)
	default:
		return fmt.Errorf("%w: gpg: %s", ErrAuthority, msg)
	}
}
