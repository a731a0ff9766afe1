// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-store/internal/clipboard"
	"github.com/MKhiriev/go-pass-store/internal/logger"
	"github.com/MKhiriev/go-pass-store/internal/store"
	"github.com/MKhiriev/go-pass-store/internal/validators"
	"github.com/MKhiriev/go-pass-store/models"
)

type secretService struct {
	repo      store.Repository
	revealer  Revealer
	picker    Picker
	editor    Editor
	validator validators.Validator
	logger    *logger.Logger
}

// NewSecretService wires the store repository with the interactive
// collaborators. revealer, picker and editor may be nil for commands that
// do not need them.
func NewSecretService(repo store.Repository, revealer Revealer, picker Picker, editor Editor, log *logger.Logger) SecretService {
	return &secretService{
		repo:      repo,
		revealer:  revealer,
		picker:    picker,
		editor:    editor,
		validator: validators.NewEntryValidator(),
		logger:    log,
	}
}

func (s *secretService) load(ctx context.Context) (*store.Store, error) {
	st, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	return st, nil
}

func (s *secretService) save(ctx context.Context, st *store.Store) error {
	if err := s.repo.Save(ctx, st); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}

func (s *secretService) Exists(ctx context.Context, name string) (bool, error) {
	st, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	return st.Has(name), nil
}

func (s *secretService) Insert(ctx context.Context, name string, secret models.Secret) error {
	if err := s.validator.Validate(ctx, models.Entry{Name: name, Secret: secret}); err != nil {
		return fmt.Errorf("invalid entry %q: %w", name, err)
	}

	st, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err = st.Insert(name, secret); err != nil {
		return err
	}
	if err = s.save(ctx, st); err != nil {
		return err
	}

	s.logger.Info().Str("name", name).Msg("entry inserted")
	return nil
}

func (s *secretService) Update(ctx context.Context, name string, secret models.Secret) error {
	if err := s.validator.Validate(ctx, models.Entry{Name: name, Secret: secret}); err != nil {
		return fmt.Errorf("invalid entry %q: %w", name, err)
	}

	st, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err = st.Update(name, secret); err != nil {
		return err
	}
	if err = s.save(ctx, st); err != nil {
		return err
	}

	s.logger.Info().Str("name", name).Msg("entry updated")
	return nil
}

func (s *secretService) Remove(ctx context.Context, name string) error {
	st, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err = st.Remove(name); err != nil {
		return err
	}
	if err = s.save(ctx, st); err != nil {
		return err
	}

	s.logger.Info().Str("name", name).Msg("entry removed")
	return nil
}

func (s *secretService) Show(ctx context.Context, name string) (models.Secret, error) {
	st, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	return st.Get(name)
}

func (s *secretService) Reveal(ctx context.Context, name string) (clipboard.Session, error) {
	if s.revealer == nil {
		return clipboard.Session{}, ErrNoRevealer
	}

	secret, err := s.Show(ctx, name)
	if err != nil {
		return clipboard.Session{}, err
	}

	line := secret.Reveal()
	if line == "" {
		return clipboard.Session{}, fmt.Errorf("%w: first line of %q", ErrEmptySecret, name)
	}

	session, err := s.revealer.Reveal(ctx, []byte(line))
	if err != nil {
		return clipboard.Session{}, fmt.Errorf("reveal %q: %w", name, err)
	}

	s.logger.Info().Str("name", name).Time("expiry", session.Expiry).Msg("entry revealed")
	return session, nil
}

func (s *secretService) Pick(ctx context.Context) (string, error) {
	if s.picker == nil {
		return "", ErrNoPicker
	}

	names, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	return s.picker.Pick(ctx, names)
}

func (s *secretService) List(ctx context.Context) ([]string, error) {
	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Names(), nil
}

func (s *secretService) Edit(ctx context.Context, name string) (bool, error) {
	if s.editor == nil {
		return false, ErrNoEditor
	}

	st, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	old, err := st.Get(name)
	if err != nil {
		return false, err
	}

	edited, err := s.editor.Edit(ctx, name, []byte(old))
	if err != nil {
		return false, fmt.Errorf("edit %q: %w", name, err)
	}
	// editors terminate the last line; keep the original ending
	if !strings.HasSuffix(string(old), "\n") {
		edited = bytes.TrimSuffix(edited, []byte("\n"))
	}

	secret := models.Secret(edited)
	if secret == old {
		s.logger.Debug().Str("name", name).Msg("entry unchanged after edit")
		return false, nil
	}
	if err = s.validator.Validate(ctx, models.Entry{Name: name, Secret: secret}, validators.FieldSecret); err != nil {
		return false, fmt.Errorf("edited %q: %w", name, err)
	}

	if err = st.Update(name, secret); err != nil {
		return false, err
	}
	if err = s.save(ctx, st); err != nil {
		return false, err
	}

	s.logger.Info().Str("name", name).Msg("entry edited")
	return true, nil
}

func (s *secretService) Init(ctx context.Context, recipient string) (int, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return 0, store.ErrNoRecipient
	}

	st, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	previous := st.Recipient()
	st.SetRecipient(recipient)
	if err = s.save(ctx, st); err != nil {
		return 0, err
	}

	s.logger.Info().
		Str("from", previous).
		Str("to", recipient).
		Int("entries", st.Len()).
		Msg("store re-encrypted")
	return st.Len(), nil
}
