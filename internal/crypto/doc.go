// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the envelope encryption of the store file.
//
// Every save draws a fresh [Header] (a one-time ChaCha20 key and nonce).
// The header is wrapped by an [Authority] for a named recipient, and the
// payload that follows it is XORed with the header's keystream through
// [Reader] and [Writer].
//
// The payload is not authenticated. Tampering only surfaces indirectly,
// when the decrypted payload fails to parse.
package crypto
