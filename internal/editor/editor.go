// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package editor opens a secret in the user's text editor.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/MKhiriev/go-pass-store/internal/logger"
)

// DefaultEditor is used when neither VISUAL nor EDITOR is set.
const DefaultEditor = "vi"

// ErrEditorFailed is returned when the editor exits unsuccessfully.
var ErrEditorFailed = errors.New("editor failed")

// Editor runs an external editor on a private temporary file.
type Editor struct {
	command []string
	tempDir string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	logger  *logger.Logger
}

// New returns an Editor for command (split on whitespace, so "code -w"
// works). An empty command falls back to $VISUAL, $EDITOR, then
// [DefaultEditor]. Temporary files go to tempDir, or the OS default when
// empty.
func New(command, tempDir string, log *logger.Logger) *Editor {
	if command == "" {
		command = FromEnv()
	}
	return &Editor{
		command: strings.Fields(command),
		tempDir: tempDir,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		logger:  log,
	}
}

// FromEnv returns the editor configured in the environment.
func FromEnv() string {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return DefaultEditor
}

// Edit writes content to a 0600 temporary file, runs the editor on it and
// returns what the user saved. The file is overwritten with zeros and
// removed afterwards.
func (e *Editor) Edit(ctx context.Context, name string, content []byte) ([]byte, error) {
	if len(e.command) == 0 {
		return nil, fmt.Errorf("%w: no editor command", ErrEditorFailed)
	}

	f, err := os.CreateTemp(e.tempDir, "pass-"+sanitize(name)+"-*.txt")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer scrub(path)

	if err = f.Chmod(0o600); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err = f.Write(content); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err = f.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	args := append(e.command[1:len(e.command):len(e.command)], path)
	cmd := exec.CommandContext(ctx, e.command[0], args...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	e.logger.Debug().Str("editor", e.command[0]).Str("name", name).Msg("starting editor")
	if err = cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEditorFailed, e.command[0], err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read temp file: %w", err)
	}
	return edited, nil
}

// scrub overwrites the file before removing it. Editors that replace the
// file by rename defeat this, which is why the file is also short-lived.
func scrub(path string) {
	if info, err := os.Stat(path); err == nil {
		if f, err := os.OpenFile(path, os.O_WRONLY, 0); err == nil {
			_, _ = f.Write(make([]byte, info.Size()))
			_ = f.Sync()
			_ = f.Close()
		}
	}
	_ = os.Remove(path)
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}
