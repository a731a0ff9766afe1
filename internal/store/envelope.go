// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-store/internal/crypto"
	"github.com/MKhiriev/go-pass-store/internal/frame"
)

// Store file layout:
//
//	[2B length][recipient identifier]
//	[2B length][authority ciphertext of the 44-byte header]
//	[ChaCha20-encrypted JSON payload, rest of file]

// Encode writes s to w in the store file format, wrapping a freshly
// generated header with authority. The recipient written to the file is
// authority.Recipient().
func Encode(ctx context.Context, w io.Writer, s *Store, authority crypto.Authority) error {
	header, err := crypto.GenerateHeader()
	if err != nil {
		return err
	}
	defer header.Wipe()

	wrapped, err := header.Encrypt(ctx, authority)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err = frame.Write(bw, []byte(authority.Recipient())); err != nil {
		return frameWriteError("recipient", err)
	}
	if err = frame.Write(bw, wrapped); err != nil {
		return frameWriteError("header", err)
	}

	cw, err := header.NewWriter(bw)
	if err != nil {
		return err
	}
	if err = json.NewEncoder(cw).Encode(s); err != nil {
		return fmt.Errorf("%w: write payload: %w", ErrIO, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrIO, err)
	}
	return nil
}

// Decode reads a store from r. The authority is resolved from the
// recipient found in the file. A file whose recipient frame is empty holds
// no data yet and yields an empty Store.
func Decode(ctx context.Context, r io.Reader, resolver crypto.AuthorityResolver) (*Store, error) {
	br := bufio.NewReader(r)

	recipient, err := frame.Read(br)
	if err != nil {
		return nil, frameReadError("recipient", err)
	}
	// fixed-width writers pad the identifier with NULs
	recipient = bytes.Trim(recipient, "\x00")
	if len(recipient) == 0 {
		return New(), nil
	}

	wrapped, err := frame.Read(br)
	if err != nil {
		return nil, frameReadError("header", err)
	}

	authority, err := resolver.Resolve(string(recipient))
	if err != nil {
		return nil, err
	}

	header, err := crypto.DecryptHeader(ctx, authority, wrapped)
	if err != nil {
		return nil, err
	}
	defer header.Wipe()

	cr, err := header.NewReader(br)
	if err != nil {
		return nil, err
	}

	s := New()
	if err = json.NewDecoder(cr).Decode(s); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
			errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %w", ErrPayloadDecode, err)
		}
		return nil, fmt.Errorf("%w: read payload: %w", ErrIO, err)
	}
	s.SetRecipient(string(recipient))
	return s, nil
}

func frameWriteError(field string, err error) error {
	if errors.Is(err, frame.ErrFrameTooLarge) {
		return fmt.Errorf("%s: %w", field, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrIO, field, err)
}

func frameReadError(field string, err error) error {
	if errors.Is(err, frame.ErrTruncatedFrame) {
		return fmt.Errorf("%s: %w", field, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrIO, field, err)
}
