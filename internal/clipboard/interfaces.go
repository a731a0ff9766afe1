// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/clipboard_mock.go -package=mock

// Backend is the clipboard plus the process plumbing of the timed restore.
type Backend interface {
	// Read returns the current clipboard content.
	Read() ([]byte, error)

	// Write replaces the clipboard content.
	Write(data []byte) error

	// Kill cancels the pending restore carrying tag, if any. It reports
	// whether one was found.
	Kill(ctx context.Context, tag string) (bool, error)

	// SpawnDetached schedules req to run after req.Delay, outliving the
	// caller.
	SpawnDetached(ctx context.Context, tag string, req RestoreRequest) error
}
