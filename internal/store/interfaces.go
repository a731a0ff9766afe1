// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Repository loads and saves the whole store. Every save is a full rewrite.
type Repository interface {
	// Load returns the persisted store, or an empty Store when none exists.
	Load(ctx context.Context) (*Store, error)

	// Save persists s, encrypted to s.Recipient().
	Save(ctx context.Context, s *Store) error
}
