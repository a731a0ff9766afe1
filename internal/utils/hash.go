// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the pass store.
package utils

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Hash computes an HMAC-SHA256 digest over data using key.
//
// A new HMAC instance is created on each call, so Hash is safe for
// concurrent use and keeps no copy of key around.
//
// Example usage:
//
//	sum := utils.Hash([]byte("clipboard content"), key)
func Hash(data, key []byte) []byte {
	hasher := hmac.New(sha256.New, key)
	hasher.Write(data)
	return hasher.Sum(nil)
}
