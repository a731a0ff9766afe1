// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive fuzzy picker over entry names.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrUserQuit is returned when the picker is dismissed without a choice.
	ErrUserQuit = errors.New("picker cancelled")

	// ErrNothingToPick is returned for an empty name list.
	ErrNothingToPick = errors.New("store is empty")
)

// Picker runs the picker on a terminal.
type Picker struct {
	input  io.Reader
	output io.Writer
	query  string
}

// New returns a Picker drawing on output (usually stderr, so stdout stays
// clean for pipes) and reading keys from input. query pre-fills the search.
func New(input io.Reader, output io.Writer, query string) *Picker {
	return &Picker{input: input, output: output, query: query}
}

// Pick lets the user choose one of names.
func (p *Picker) Pick(ctx context.Context, names []string) (string, error) {
	if len(names) == 0 {
		return "", ErrNothingToPick
	}

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithOutput(p.output),
	}
	if p.input != nil {
		opts = append(opts, tea.WithInput(p.input))
	}

	finalModel, err := tea.NewProgram(newPickerModel(names, p.query), opts...).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(pickerModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.cancelled || result.chosen == "" {
		return "", ErrUserQuit
	}
	return result.chosen, nil
}
