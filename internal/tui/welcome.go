// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Register"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString("Report an issue, follow it, talk to the admins.\n\nChoose an action:\n\n")
	for i, item := range m.items {
		b.WriteString(cursor(i == m.idx))
		b.WriteString(item)
		b.WriteString("\n")
	}
	return renderPage("ISSUE DESK", b.String(), "↑/↓: select  enter: open  v: about  q: quit")
}
