// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Secret is the value stored under a name. The first line is the part that
// gets revealed; anything after the first newline is free-form metadata
// (usernames, URLs, notes).
type Secret string

// Reveal returns the text up to the first newline. A trailing carriage
// return is dropped.
func (s Secret) Reveal() string {
	head, _, _ := strings.Cut(string(s), "\n")
	return strings.TrimSuffix(head, "\r")
}

// Meta returns everything after the first newline, or "" when the secret
// is a single line.
func (s Secret) Meta() string {
	_, tail, _ := strings.Cut(string(s), "\n")
	return tail
}

// IsEmpty reports whether the secret holds nothing but whitespace.
func (s Secret) IsEmpty() bool {
	return strings.TrimSpace(string(s)) == ""
}

// Entry is one name/secret pair.
type Entry struct {
	Name   string
	Secret Secret
}
