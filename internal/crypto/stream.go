// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"io"
)

// Reader XORs everything read from an underlying reader with a keystream.
//
// The keystream advances by the number of bytes actually returned, so a
// sequence of short reads of any sizes yields the same plaintext as one
// large read.
type Reader struct {
	src    io.Reader
	stream cipher.Stream
}

// NewReader returns a Reader decrypting src with stream.
func NewReader(src io.Reader, stream cipher.Stream) *Reader {
	return &Reader{src: src, stream: stream}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.src.Read(p)
	if n > 0 {
		r.stream.XORKeyStream(p[:n], p[:n])
	}
	return n, err
}

// Writer XORs everything written to it with a keystream before forwarding
// it to an underlying writer. The caller's buffer is left untouched.
//
// The keystream advances by the whole of p before dst sees it, so after a
// failed or short write the stream is out of step with what dst received.
// The first error is therefore sticky: every later Write returns it
// without writing.
type Writer struct {
	dst    io.Writer
	stream cipher.Stream
	buf    []byte
	err    error
}

// NewWriter returns a Writer encrypting into dst with stream.
func NewWriter(dst io.Writer, stream cipher.Stream) *Writer {
	return &Writer{dst: dst, stream: stream}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if cap(w.buf) < len(p) {
		w.buf = make([]byte, len(p))
	}
	out := w.buf[:len(p)]
	w.stream.XORKeyStream(out, p)

	n, err := w.dst.Write(out)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	w.err = err
	return n, err
}
