// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard places a revealed secret on the clipboard for a limited
// time and then puts back whatever was there before.
//
// A reveal is short-lived: the command exits right after it. The timed
// restore therefore runs in a detached process tagged with a fixed argv[0]
// so that the next reveal can find and cancel it. The restore only happens
// when the clipboard still holds the revealed secret; a newer copy made by
// the user is left alone.
//
// The child never receives the secret itself, only a keyed fingerprint of
// it, see [Fingerprint].
package clipboard
