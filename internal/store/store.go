// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pass-store/models"
)

// Store is the in-memory name→secret mapping. Names are unique. A Store is
// not safe for concurrent use; each command owns one.
type Store struct {
	recipient string
	pairs     map[string]models.Secret
}

// payload is the serialized shape of the mapping inside the encrypted part
// of the store file.
type payload struct {
	Pairs map[string]models.Secret `json:"pairs"`
}

// New returns an empty Store without a recipient.
func New() *Store {
	return &Store{pairs: make(map[string]models.Secret)}
}

// Recipient returns the recipient the store was read with (or last set).
func (s *Store) Recipient() string {
	return s.recipient
}

// SetRecipient changes the recipient used by the next save.
func (s *Store) SetRecipient(recipient string) {
	s.recipient = strings.TrimSpace(recipient)
}

// Insert adds a new entry. It rejects a name that already exists; use
// Update to overwrite.
func (s *Store) Insert(name string, secret models.Secret) error {
	if err := checkName(name); err != nil {
		return err
	}
	if _, ok := s.pairs[name]; ok {
		return fmt.Errorf("%w: %q", ErrNameExists, name)
	}
	s.pairs[name] = secret
	return nil
}

// Update overwrites the secret of an existing entry.
func (s *Store) Update(name string, secret models.Secret) error {
	if _, ok := s.pairs[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	s.pairs[name] = secret
	return nil
}

// Remove deletes an existing entry.
func (s *Store) Remove(name string) error {
	if _, ok := s.pairs[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	delete(s.pairs, name)
	return nil
}

// Get returns the secret stored under name.
func (s *Store) Get(name string) (models.Secret, error) {
	secret, ok := s.pairs[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	return secret, nil
}

// Has reports whether name is present.
func (s *Store) Has(name string) bool {
	_, ok := s.pairs[name]
	return ok
}

// Names returns all names in lexical order.
func (s *Store) Names() []string {
	return slices.Sorted(maps.Keys(s.pairs))
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.pairs)
}

// MarshalJSON implements json.Marshaler. The recipient is not part of the
// payload; it travels in clear in the envelope.
func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(payload{Pairs: s.pairs})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Store) UnmarshalJSON(data []byte) error {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Pairs == nil {
		p.Pairs = make(map[string]models.Secret)
	}
	s.pairs = p.Pairs
	return nil
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}
