// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/junegunn/fzf/src/util"
)

const (
	defaultVisible = 15
	slabSize16     = 100 * 1024
	slabSize32     = 2048
)

// pickerModel is a single-screen fuzzy finder over entry names.
type pickerModel struct {
	names   []string
	input   textinput.Model
	slab    *util.Slab
	matches []match
	idx     int
	visible int

	chosen    string
	cancelled bool
}

func newPickerModel(names []string, query string) pickerModel {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "search"
	in.SetValue(query)
	in.Focus()

	m := pickerModel{
		names:   names,
		input:   in,
		slab:    util.MakeSlab(slabSize16, slabSize32),
		visible: defaultVisible,
	}
	m.refilter()
	return m
}

func (m *pickerModel) refilter() {
	m.matches = rank(m.names, []rune(m.input.Value()), m.slab)
	m.idx = 0
}

func (m pickerModel) current() (string, bool) {
	if m.idx < 0 || m.idx >= len(m.matches) {
		return "", false
	}
	return m.matches[m.idx].name, true
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, input, blank line, help, padding
		m.visible = max(msg.Height-8, 1)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, keys.enter):
			if name, ok := m.current(); ok {
				m.chosen = name
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
			return m, nil
		case key.Matches(msg, keys.down):
			if m.idx < len(m.matches)-1 {
				m.idx++
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pass"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString(helpStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	start := 0
	if m.idx >= m.visible {
		start = m.idx - m.visible + 1
	}
	end := min(start+m.visible, len(m.matches))
	for i := start; i < end; i++ {
		line := highlight(m.matches[i])
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + m.matches[i].name))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(matchCount(len(m.matches), len(m.names)) + "  enter: reveal  esc: cancel"))
	return appStyle.Render(b.String())
}

func highlight(m match) string {
	if len(m.positions) == 0 {
		return m.name
	}

	var b strings.Builder
	for i, r := range []rune(m.name) {
		if _, ok := slices.BinarySearch(m.positions, i); ok {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func matchCount(n, total int) string {
	return fmt.Sprintf("%d/%d", n, total)
}
