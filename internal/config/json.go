// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	Store struct {
		Dir string `json:"dir"`
	} `json:"store,omitempty"`

	Authority struct {
		Recipient       string `json:"recipient"`
		AgeIdentityFile string `json:"age_identity_file"`
		GPGBinary       string `json:"gpg_binary"`
	} `json:"authority,omitempty"`

	Clipboard struct {
		Delay  Duration `json:"delay"`
		Settle Duration `json:"settle"`
	} `json:"clipboard,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Store: Store{
			Dir: jsonCfg.Store.Dir,
		},
		Authority: Authority{
			Recipient:       jsonCfg.Authority.Recipient,
			AgeIdentityFile: jsonCfg.Authority.AgeIdentityFile,
			GPGBinary:       jsonCfg.Authority.GPGBinary,
		},
		Clipboard: Clipboard{
			Delay:  time.Duration(jsonCfg.Clipboard.Delay),
			Settle: time.Duration(jsonCfg.Clipboard.Settle),
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
