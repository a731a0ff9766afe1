// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	cancel key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "ctrl+p", "ctrl+k")),
	down:   key.NewBinding(key.WithKeys("down", "ctrl+n", "ctrl+j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}
