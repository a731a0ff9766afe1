// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-pass-store/internal/logger"
)

// RestoreRequest is what the detached restore needs to know. It travels to
// the child on stdin, never on the command line.
type RestoreRequest struct {
	Delay    time.Duration `json:"delay"`
	Previous []byte        `json:"previous"`
	Expected Fingerprint   `json:"expected"`
}

// ErrInvalidRestoreRequest is returned by [ReadRestoreRequest] for a payload
// it cannot use.
var ErrInvalidRestoreRequest = errors.New("invalid clipboard restore request")

// WriteRestoreRequest encodes req to w.
func WriteRestoreRequest(w io.Writer, req RestoreRequest) error {
	if err := json.NewEncoder(w).Encode(req); err != nil {
		return fmt.Errorf("encode restore request: %w", err)
	}
	return nil
}

// ReadRestoreRequest decodes a request written by [WriteRestoreRequest].
func ReadRestoreRequest(r io.Reader) (RestoreRequest, error) {
	var req RestoreRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return RestoreRequest{}, fmt.Errorf("%w: %w", ErrInvalidRestoreRequest, err)
	}
	if req.Delay < 0 || len(req.Expected.Sum) == 0 {
		return RestoreRequest{}, ErrInvalidRestoreRequest
	}
	return req, nil
}

// RestoreIfUnchanged puts previous back on the clipboard when the current
// content still matches expected. It reports whether it restored.
func RestoreIfUnchanged(backend Backend, previous []byte, expected Fingerprint) (bool, error) {
	current, err := backend.Read()
	if err != nil {
		return false, fmt.Errorf("read clipboard: %w", err)
	}
	if !expected.Matches(current) {
		return false, nil
	}
	if err = backend.Write(previous); err != nil {
		return false, fmt.Errorf("write clipboard: %w", err)
	}
	return true, nil
}

// RunRestore is the body of the detached restore process: wait for the
// delay, then restore. Cancelling ctx abandons the restore.
func RunRestore(ctx context.Context, backend Backend, req RestoreRequest, log *logger.Logger) error {
	if err := sleep(ctx, req.Delay); err != nil {
		log.Debug().Msg("clipboard restore cancelled")
		return nil
	}

	restored, err := RestoreIfUnchanged(backend, req.Previous, req.Expected)
	if err != nil {
		log.Error().Err(err).Msg("clipboard restore failed")
		return err
	}
	if restored {
		log.Info().Msg("clipboard restored")
	} else {
		log.Info().Msg("clipboard changed since reveal, left untouched")
	}
	return nil
}
