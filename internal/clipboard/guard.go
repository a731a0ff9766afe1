// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-store/internal/config"
	"github.com/MKhiriev/go-pass-store/internal/logger"
)

// ErrEmptySecret is returned when asked to reveal nothing.
var ErrEmptySecret = errors.New("nothing to reveal")

// Session describes one reveal. It is superseded by the next reveal.
type Session struct {
	Fingerprint Fingerprint
	Expiry      time.Time
}

// Guard runs the reveal side of the timed clipboard protocol.
type Guard struct {
	backend Backend
	delay   time.Duration
	settle  time.Duration
	tag     string
	logger  *logger.Logger

	now func() time.Time
}

// NewGuard returns a Guard using backend and the clipboard settings in cfg.
func NewGuard(backend Backend, cfg config.Clipboard, log *logger.Logger) *Guard {
	return &Guard{
		backend: backend,
		delay:   cfg.Delay,
		settle:  cfg.Settle,
		tag:     cfg.Tag,
		logger:  log,
		now:     time.Now,
	}
}

// Delay returns how long a revealed secret stays on the clipboard.
func (g *Guard) Delay() time.Duration {
	return g.delay
}

// Reveal puts secret on the clipboard and schedules the restore of the
// previous content:
//
//  1. cancel the pending restore of an earlier reveal and give it time to exit;
//  2. snapshot the clipboard;
//  3. write secret;
//  4. start the detached restore.
//
// If the restore cannot be started the snapshot is put back immediately
// rather than leaving the secret on the clipboard.
func (g *Guard) Reveal(ctx context.Context, secret []byte) (Session, error) {
	if len(secret) == 0 {
		return Session{}, ErrEmptySecret
	}

	killed, err := g.backend.Kill(ctx, g.tag)
	if err != nil {
		g.logger.Warn().Err(err).Msg("could not cancel pending clipboard restore")
	}
	if killed {
		g.logger.Debug().Dur("settle", g.settle).Msg("cancelled pending clipboard restore")
		if err = sleep(ctx, g.settle); err != nil {
			return Session{}, err
		}
	}

	previous, err := g.backend.Read()
	if err != nil {
		return Session{}, fmt.Errorf("read clipboard: %w", err)
	}

	fp, err := NewFingerprint(secret)
	if err != nil {
		return Session{}, err
	}

	if err = g.backend.Write(secret); err != nil {
		return Session{}, fmt.Errorf("write clipboard: %w", err)
	}

	req := RestoreRequest{Delay: g.delay, Previous: previous, Expected: fp}
	if err = g.backend.SpawnDetached(ctx, g.tag, req); err != nil {
		if restoreErr := g.backend.Write(previous); restoreErr != nil {
			g.logger.Error().Err(restoreErr).Msg("could not restore clipboard after failed spawn")
		}
		return Session{}, fmt.Errorf("schedule clipboard restore: %w", err)
	}

	expiry := g.now().Add(g.delay)
	g.logger.Info().
		Dur("delay", g.delay).
		Time("expiry", expiry).
		Int("previous_len", len(previous)).
		Msg("secret revealed on clipboard")

	return Session{Fingerprint: fp, Expiry: expiry}, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
