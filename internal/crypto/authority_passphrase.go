// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// PassphraseRecipient is the recipient identifier written to store files
// whose header is wrapped by a [PassphraseAuthority].
const PassphraseRecipient = "passphrase"

// ErrPassphraseMismatch is returned when the confirmation prompt does not
// repeat the passphrase.
var ErrPassphraseMismatch = errors.New("passphrases do not match")

// PromptFunc asks the user for a passphrase with the given prompt.
type PromptFunc func(prompt string) ([]byte, error)

// PassphraseAuthority wraps headers with a key derived from a passphrase
// (Argon2id) and AES-256-GCM. The passphrase is asked once per process and
// kept for later calls.
type PassphraseAuthority struct {
	prompt PromptFunc
	chain  *keyChain

	mu         sync.Mutex
	passphrase []byte
}

// NewPassphraseAuthority returns a PassphraseAuthority reading the
// passphrase through prompt.
func NewPassphraseAuthority(prompt PromptFunc) *PassphraseAuthority {
	return &PassphraseAuthority{prompt: prompt, chain: newKeyChain()}
}

// Recipient implements [Authority].
func (p *PassphraseAuthority) Recipient() string {
	return PassphraseRecipient
}

// Encrypt implements [Authority]. The first passphrase entry of the process
// must be confirmed, since a typo here would lock the store for good.
func (p *PassphraseAuthority) Encrypt(_ context.Context, plaintext []byte) ([]byte, error) {
	passphrase, err := p.get(true)
	if err != nil {
		return nil, err
	}

	blob, err := p.chain.seal(passphrase, plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthority, err)
	}
	return blob, nil
}

// Decrypt implements [Authority].
func (p *PassphraseAuthority) Decrypt(_ context.Context, ciphertext []byte) ([]byte, error) {
	passphrase, err := p.get(false)
	if err != nil {
		return nil, err
	}

	plain, err := p.chain.open(passphrase, ciphertext)
	if err != nil {
		p.forget()
		return nil, fmt.Errorf("%w: %w", ErrMissingCredential, err)
	}
	return plain, nil
}

func (p *PassphraseAuthority) get(confirm bool) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.passphrase != nil {
		return p.passphrase, nil
	}
	if p.prompt == nil {
		return nil, fmt.Errorf("%w: no passphrase prompt", ErrMissingCredential)
	}

	first, err := p.prompt("Passphrase")
	if err != nil {
		return nil, fmt.Errorf("%w: read passphrase: %w", ErrMissingCredential, err)
	}
	if len(first) == 0 {
		return nil, fmt.Errorf("%w: empty passphrase", ErrMissingCredential)
	}

	if confirm {
		second, err := p.prompt("Retype passphrase")
		if err != nil {
			return nil, fmt.Errorf("%w: read passphrase: %w", ErrMissingCredential, err)
		}
		if string(first) != string(second) {
			return nil, ErrPassphraseMismatch
		}
		wipe(second)
	}

	p.passphrase = first
	return first, nil
}

func (p *PassphraseAuthority) forget() {
	p.mu.Lock()
	defer p.mu.Unlock()
	wipe(p.passphrase)
	p.passphrase = nil
}
