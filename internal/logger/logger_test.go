// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLast(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

// TestNewLogger_RoleField verifies that every log entry contains the "role"
// field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", &buf, zerolog.DebugLevel)

	l.Info().Msg("hello")

	entry := decodeLast(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

// TestNewLogger_Level verifies that events below the level are dropped.
func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("lvl", &buf, zerolog.WarnLevel)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

// TestNewFileLogger_WritesFile verifies that the log file and its directory
// are created and appended to.
func TestNewFileLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pass.log")

	l := NewFileLogger("cli", path, "debug")
	l.Debug().Str("name", "mail").Msg("revealed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"mail"`)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// TestNewFileLogger_BadLevelFallsBack verifies an unknown level means info.
func TestNewFileLogger_BadLevelFallsBack(t *testing.T) {
	l := NewFileLogger("cli", filepath.Join(t.TempDir(), "p.log"), "loud")
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role", &buf, zerolog.DebugLevel)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeLast(t, &buf)["role"])
}

// TestFromContext_ReturnsAttachedLogger verifies the WithContext/FromContext
// round trip.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx-role", &buf, zerolog.DebugLevel)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-role", decodeLast(t, &buf)["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil.
func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}
