// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package frame implements the length-prefixed chunks used for the
// self-delimiting fields of the store file.
//
// A frame is a 2-byte big-endian length followed by exactly that many
// payload bytes, so a single frame carries at most 65535 bytes.
package frame
