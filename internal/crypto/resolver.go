// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strings"
)

// ResolverConfig configures the authorities a [Resolver] can hand out.
type ResolverConfig struct {
	// GPGBinary is the gpg executable; empty means [DefaultGPGBinary].
	GPGBinary string
	// AgeIdentityFile holds the age identities used for decryption.
	AgeIdentityFile string
	// Prompt reads the passphrase for passphrase-protected stores.
	Prompt PromptFunc
}

// Resolver picks an [Authority] from the shape of the recipient identifier:
//   - "passphrase"  -> [PassphraseAuthority]
//   - "age1..."     -> [AgeAuthority]
//   - anything else -> [GPGAuthority]
type Resolver struct {
	cfg        ResolverConfig
	passphrase *PassphraseAuthority
}

// NewResolver returns a Resolver for cfg.
func NewResolver(cfg ResolverConfig) *Resolver {
	return &Resolver{
		cfg:        cfg,
		passphrase: NewPassphraseAuthority(cfg.Prompt),
	}
}

// Resolve implements [AuthorityResolver]. The passphrase authority is
// shared between calls so one process asks for the passphrase once.
func (r *Resolver) Resolve(recipient string) (Authority, error) {
	recipient = strings.TrimSpace(recipient)
	switch {
	case recipient == "":
		return nil, fmt.Errorf("%w: empty recipient", ErrUnknownRecipient)
	case recipient == PassphraseRecipient:
		return r.passphrase, nil
	case IsAgeRecipient(recipient):
		return NewAgeAuthority(recipient, r.cfg.AgeIdentityFile), nil
	default:
		return NewGPGAuthority(r.cfg.GPGBinary, recipient), nil
	}
}
