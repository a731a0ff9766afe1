// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// they fill once fs is parsed.
//
// Flags:
//
//	--store-dir        directory holding the store file
//	--recipient        recipient for a store that has none yet
//	--age-identity     age identity file
//	--gpg              gpg executable
//	--clip-time        how long a revealed secret stays on the clipboard
//	--log-level        log level
//	-c/--config        json file path with configs
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Store.Dir, "store-dir", "", "Directory holding the store file")
	fs.StringVar(&cfg.Authority.Recipient, "recipient", "", "Recipient for a store that has none yet")
	fs.StringVar(&cfg.Authority.AgeIdentityFile, "age-identity", "", "age identity file")
	fs.StringVar(&cfg.Authority.GPGBinary, "gpg", "", "gpg executable")
	fs.DurationVar(&cfg.Clipboard.Delay, "clip-time", 0, "How long a revealed secret stays on the clipboard (e.g. 45s)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
