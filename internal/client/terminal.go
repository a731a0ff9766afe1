// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"
)

// ttyTerminal prompts on the controlling terminal. When stdin is a pipe,
// prompts go to /dev/tty so piped input and passphrase entry can coexist.
type ttyTerminal struct {
	stdin  *os.File
	stderr io.Writer
}

func newTTYTerminal(stdin *os.File, stderr io.Writer) *ttyTerminal {
	return &ttyTerminal{stdin: stdin, stderr: stderr}
}

func (t *ttyTerminal) IsInteractive() bool {
	return term.IsTerminal(int(t.stdin.Fd()))
}

// open returns a terminal file to prompt on and a func releasing it.
func (t *ttyTerminal) open() (*os.File, func(), error) {
	if t.IsInteractive() {
		return t.stdin, func() {}, nil
	}

	ttyPath := "/dev/tty"
	if runtime.GOOS == "windows" {
		ttyPath = "CON"
	}
	tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open %s for input: %w", ttyPath, err)
	}
	if !term.IsTerminal(int(tty.Fd())) {
		_ = tty.Close()
		return nil, nil, fmt.Errorf("%s is not a terminal", ttyPath)
	}
	return tty, func() { _ = tty.Close() }, nil
}

func (t *ttyTerminal) ReadSecret(prompt string) ([]byte, error) {
	tty, release, err := t.open()
	if err != nil {
		return nil, err
	}
	defer release()

	fmt.Fprint(t.stderr, prompt)
	secret, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(t.stderr) // newline after hidden input
	if err != nil {
		return nil, fmt.Errorf("failed to read secret: %w", err)
	}
	return secret, nil
}

func (t *ttyTerminal) Confirm(prompt string) (bool, error) {
	tty, release, err := t.open()
	if err != nil {
		return false, err
	}
	defer release()

	fmt.Fprint(t.stderr, prompt+" [y/N] ")
	line, err := bufio.NewReader(tty).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
