// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// formatter applies semantic formatting to CLI output.
type formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f formatter) Sprint(a ...any) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f formatter) Sprintf(format string, a ...any) string {
	return f.Sprint(fmt.Sprintf(format, a...))
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// successText marks completed actions. Green with color.
	successText = formatter{color.New(color.FgGreen), "", ""}

	// errorText marks failures. Red with color.
	errorText = formatter{color.New(color.FgRed), "", ""}

	// warningText marks things the user should double check. Yellow with color.
	warningText = formatter{color.New(color.FgYellow), "", ""}

	// nameText highlights entry names and recipients.
	// Cyan with color, 'single quotes' without.
	nameText = formatter{color.New(color.FgCyan), "'", "'"}

	// pathText formats file paths. Yellow with color.
	pathText = formatter{color.New(color.FgYellow), "", ""}
)
