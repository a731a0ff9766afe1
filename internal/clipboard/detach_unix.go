// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build unix

package clipboard

import "syscall"

// detachedAttr puts the child in a new session so it survives the
// terminal closing and is not part of the caller's process group.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
