// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryBackend is an in-process [Backend]. The "detached" restore is a
// timer keyed by tag, applying the same rule as the real child process.
// It is safe for concurrent use.
type MemoryBackend struct {
	mu       sync.Mutex
	content  []byte
	timers   map[string]*time.Timer
	restores int
}

// NewMemoryBackend returns a MemoryBackend holding initial.
func NewMemoryBackend(initial []byte) *MemoryBackend {
	return &MemoryBackend{
		content: slices.Clone(initial),
		timers:  make(map[string]*time.Timer),
	}
}

// Read implements [Backend].
func (m *MemoryBackend) Read() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.content), nil
}

// Write implements [Backend].
func (m *MemoryBackend) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = slices.Clone(data)
	return nil
}

// Kill implements [Backend] by stopping the pending timer for tag.
func (m *MemoryBackend) Kill(_ context.Context, tag string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.timers[tag]
	if !ok {
		return false, nil
	}
	delete(m.timers, tag)
	return t.Stop(), nil
}

// SpawnDetached implements [Backend]. A pending timer with the same tag is
// replaced.
func (m *MemoryBackend) SpawnDetached(_ context.Context, tag string, req RestoreRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.timers[tag]; ok {
		old.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(req.Delay, func() {
		restored, _ := RestoreIfUnchanged(m, req.Previous, req.Expected)

		m.mu.Lock()
		defer m.mu.Unlock()
		if restored {
			m.restores++
		}
		if m.timers[tag] == t {
			delete(m.timers, tag)
		}
	})
	m.timers[tag] = t
	return nil
}

// Pending reports whether a restore for tag is scheduled or running.
func (m *MemoryBackend) Pending(tag string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.timers[tag]
	return ok
}

// Restores returns how many restores have written to the clipboard.
func (m *MemoryBackend) Restores() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.restores
}
