// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the pass store.
//
// Configuration is assembled from multiple sources; later sources override
// earlier non-zero fields:
//  1. JSON config file (path from PASS_CONFIG or --config)
//  2. Environment variables (PASS_ prefix)
//  3. Command-line flags
//
// Fields left empty by every source receive defaults derived from the
// platform configuration directory. The main entry point is [GetConfig].
package config
