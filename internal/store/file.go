// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-store/internal/config"
	"github.com/MKhiriev/go-pass-store/internal/crypto"
	"github.com/MKhiriev/go-pass-store/internal/logger"
)

// FileStorage is the [Repository] backed by the store file.
type FileStorage struct {
	path             string
	defaultRecipient string
	resolver         crypto.AuthorityResolver
	logger           *logger.Logger
}

// NewFileStorage returns a FileStorage for the store file described by
// storeCfg. defaultRecipient is used for stores that do not carry a
// recipient yet.
func NewFileStorage(storeCfg config.Store, defaultRecipient string, resolver crypto.AuthorityResolver, log *logger.Logger) *FileStorage {
	return &FileStorage{
		path:             storeCfg.Path(),
		defaultRecipient: defaultRecipient,
		resolver:         resolver,
		logger:           log,
	}
}

// Path returns the store file path.
func (f *FileStorage) Path() string {
	return f.path
}

// Load implements [Repository]. A missing file is not an error: it yields
// an empty Store using the default recipient.
func (f *FileStorage) Load(ctx context.Context) (*Store, error) {
	s, err := f.read(ctx)
	if errors.Is(err, ErrStoreNotFound) {
		f.logger.Debug().Str("path", f.path).Msg("no store file, starting empty")
		s = New()
	} else if err != nil {
		return nil, err
	}

	if s.Recipient() == "" {
		s.SetRecipient(f.defaultRecipient)
	}

	f.logger.Debug().
		Str("path", f.path).
		Str("recipient", s.Recipient()).
		Int("entries", s.Len()).
		Msg("store loaded")
	return s, nil
}

func (f *FileStorage) read(ctx context.Context) (*Store, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("%w: open store: %w", ErrIO, err)
	}
	defer file.Close()

	return Decode(ctx, file, f.resolver)
}

// Save implements [Repository]. The new content is written to a temporary
// file in the same directory, synced, and renamed over the store, so an
// interrupted save leaves the previous store intact.
func (f *FileStorage) Save(ctx context.Context, s *Store) error {
	recipient := s.Recipient()
	if recipient == "" {
		recipient = f.defaultRecipient
	}
	if recipient == "" {
		return ErrNoRecipient
	}

	authority, err := f.resolver.Resolve(recipient)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: create store dir: %w", ErrIO, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrIO, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o600); err != nil {
		return fmt.Errorf("%w: chmod temp file: %w", ErrIO, err)
	}
	if err = Encode(ctx, tmp, s, authority); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync temp file: %w", ErrIO, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", ErrIO, err)
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		_ = os.Remove(tmp.Name())
		committed = true
		return fmt.Errorf("%w: replace store: %w", ErrIO, err)
	}
	committed = true

	s.SetRecipient(authority.Recipient())
	f.logger.Debug().
		Str("path", f.path).
		Str("recipient", authority.Recipient()).
		Int("entries", s.Len()).
		Msg("store saved")
	return nil
}
