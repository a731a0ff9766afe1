// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the store. Callers should use [errors.Is] to
// match against these values. Frame, header and authority failures keep
// their own sentinels from the frame and crypto packages.
var (
	// ErrIO wraps every filesystem failure while reading or writing the
	// store file.
	ErrIO = errors.New("store io error")

	// ErrStoreNotFound signals that no store file exists yet. [FileStorage.Load]
	// turns it into an empty Store; it never reaches callers from there.
	ErrStoreNotFound = errors.New("store file not found")

	// ErrPayloadDecode is returned when the decrypted payload is not a
	// valid serialized mapping (wrong key, corruption or tampering).
	ErrPayloadDecode = errors.New("store payload could not be decoded")

	// ErrNoRecipient is returned when saving a store that has no recipient
	// and none is configured.
	ErrNoRecipient = errors.New("no recipient configured for the store")

	// ErrNameExists is returned by Insert for a name already present.
	ErrNameExists = errors.New("name already exists")

	// ErrNameNotFound is returned for operations on an absent name.
	ErrNameNotFound = errors.New("name not found")

	// ErrEmptyName is returned when a name is empty or only whitespace.
	ErrEmptyName = errors.New("name is empty")
)
