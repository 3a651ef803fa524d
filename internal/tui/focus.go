// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/textinput"

// moveFocus cycles focus over the text inputs followed by extra non-input
// fields (selectors), blurring and focusing inputs as it goes.
func moveFocus(inputs []textinput.Model, focus, delta, extra int) int {
	total := len(inputs) + extra
	if total == 0 {
		return 0
	}

	if focus < len(inputs) {
		inputs[focus].Blur()
	}
	focus = ((focus+delta)%total + total) % total
	if focus < len(inputs) {
		inputs[focus].Focus()
	}
	return focus
}

func newInput(placeholder string, charLimit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 40
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newInput(placeholder, 256)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// cycle returns the index after moving delta steps through n options.
func cycle(idx, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((idx+delta)%n + n) % n
}
