// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	logout    key.Binding
	newIssue  key.Binding
	filter    key.Binding
	mine      key.Binding
	refresh   key.Binding
	stats     key.Binding
	chat      key.Binding
	edit      key.Binding
	copy      key.Binding
	version   key.Binding
	reconnect key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("x")),
	newIssue:  key.NewBinding(key.WithKeys("n")),
	filter:    key.NewBinding(key.WithKeys("f")),
	mine:      key.NewBinding(key.WithKeys("m")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	stats:     key.NewBinding(key.WithKeys("s")),
	chat:      key.NewBinding(key.WithKeys("t")),
	edit:      key.NewBinding(key.WithKeys("e")),
	copy:      key.NewBinding(key.WithKeys("c")),
	version:   key.NewBinding(key.WithKeys("v")),
	reconnect: key.NewBinding(key.WithKeys("ctrl+r")),
}
