// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// MaxPayload is the largest payload a single frame can carry.
const MaxPayload = math.MaxUint16

const lengthSize = 2

var (
	// ErrFrameTooLarge is returned by Write when the payload does not fit
	// the 16-bit length prefix.
	ErrFrameTooLarge = errors.New("frame payload too large")

	// ErrTruncatedFrame is returned by Read when the source ends before the
	// length prefix or the declared payload has been fully read.
	ErrTruncatedFrame = errors.New("truncated frame")
)

// Write emits payload to w as one frame. Prefix and payload are assembled
// into a single buffer so w sees one logical write.
func Write(w io.Writer, payload []byte) error {
	if len(payload) > MaxPayload {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFrameTooLarge, len(payload), MaxPayload)
	}

	buf := make([]byte, lengthSize+len(payload))
	binary.BigEndian.PutUint16(buf, uint16(len(payload)))
	copy(buf[lengthSize:], payload)

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Read reads one frame from r and returns its payload. The payload is
// collected with io.ReadFull, so short reads from r are retried until the
// declared length is satisfied.
func Read(r io.Reader) ([]byte, error) {
	var prefix [lengthSize]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, readError("length", err)
	}

	payload := make([]byte, binary.BigEndian.Uint16(prefix[:]))
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, readError("payload", err)
	}
	return payload, nil
}

func readError(part string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: short %s", ErrTruncatedFrame, part)
	}
	return fmt.Errorf("read frame %s: %w", part, err)
}
