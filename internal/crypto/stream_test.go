// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedHeader() Header {
	var h Header
	for i := range h.Key {
		h.Key[i] = byte(3 * i)
	}
	for i := range h.Nonce {
		h.Nonce[i] = byte(7 * i)
	}
	return h
}

func encryptChunks(t *testing.T, payload []byte, sizes func(i int) int) []byte {
	t.Helper()
	var sink bytes.Buffer
	w, err := fixedHeader().NewWriter(&sink)
	require.NoError(t, err)

	for off, i := 0, 0; off < len(payload); i++ {
		n := min(sizes(i), len(payload)-off)
		_, err = w.Write(payload[off : off+n])
		require.NoError(t, err)
		off += n
	}
	return sink.Bytes()
}

func TestWriter_ChunkSizeIndependent(t *testing.T) {
	payload := make([]byte, 1000)
	for i := range payload {
		payload[i] = byte(i * 31)
	}

	whole := encryptChunks(t, payload, func(int) int { return 1000 })
	require.Len(t, whole, 1000)
	assert.NotEqual(t, payload, whole)

	tests := []struct {
		name  string
		sizes func(i int) int
	}{
		{name: "3+997", sizes: func(i int) int {
			if i == 0 {
				return 3
			}
			return 997
		}},
		{name: "500 x 2", sizes: func(int) int { return 2 }},
		{name: "single bytes", sizes: func(int) int { return 1 }},
		{name: "odd block straddling", sizes: func(i int) int { return 63 + i%5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, whole, encryptChunks(t, payload, tt.sizes))
		})
	}
}

func TestWriter_DoesNotModifyCallerBuffer(t *testing.T) {
	var sink bytes.Buffer
	w, err := fixedHeader().NewWriter(&sink)
	require.NoError(t, err)

	buf := []byte("do not touch")
	_, err = w.Write(buf)
	require.NoError(t, err)
	assert.Equal(t, "do not touch", string(buf))
}

func TestReader_PartialReadsMatchSingleRead(t *testing.T) {
	plain := bytes.Repeat([]byte("secret payload "), 100)
	ciphertext := encryptChunks(t, plain, func(int) int { return len(plain) })

	readers := map[string]func(io.Reader) io.Reader{
		"plain":      func(r io.Reader) io.Reader { return r },
		"one byte":   iotest.OneByteReader,
		"half reads": iotest.HalfReader,
	}

	for name, wrap := range readers {
		t.Run(name, func(t *testing.T) {
			r, err := fixedHeader().NewReader(wrap(bytes.NewReader(ciphertext)))
			require.NoError(t, err)

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, plain, got)
		})
	}
}

func TestReader_AdvancesByBytesProducedOnly(t *testing.T) {
	plain := []byte("0123456789abcdef")
	ciphertext := encryptChunks(t, plain, func(int) int { return len(plain) })

	r, err := fixedHeader().NewReader(bytes.NewReader(ciphertext))
	require.NoError(t, err)

	// Oversized buffers must not consume keystream beyond what was read.
	big := make([]byte, 64)
	n, err := r.Read(big[:5])
	require.NoError(t, err)
	require.Equal(t, 5, n)

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, plain, append(big[:5], rest...))
}

func TestWriter_ShortWrite(t *testing.T) {
	w, err := fixedHeader().NewWriter(&shortWriter{})
	require.NoError(t, err)
	_, err = w.Write([]byte("abc"))
	require.ErrorIs(t, err, io.ErrShortWrite)
}

func TestWriter_ErrorIsSticky(t *testing.T) {
	dst := &shortWriter{}
	w, err := fixedHeader().NewWriter(dst)
	require.NoError(t, err)

	_, err = w.Write([]byte("abcd"))
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.Equal(t, 1, dst.calls)

	n, err := w.Write([]byte("cd"))
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Zero(t, n)
	assert.Equal(t, 1, dst.calls, "a retry must not reach the destination")
}

type shortWriter struct {
	calls int
}

func (s *shortWriter) Write(p []byte) (int, error) {
	s.calls++
	return len(p) / 2, nil
}
