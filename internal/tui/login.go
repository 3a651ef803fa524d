// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const (
	loginEmail = iota
	loginPassword
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	email := newInput("email", 254)
	email.Focus()

	return loginModel{inputs: []textinput.Model{email, newPasswordInput("password")}}
}

func (m loginModel) values() (email, password string) {
	return strings.TrimSpace(m.inputs[loginEmail].Value()), m.inputs[loginPassword].Value()
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Email\n")
	b.WriteString(m.inputs[loginEmail].View())
	b.WriteString("\n\nPassword\n")
	b.WriteString(m.inputs[loginPassword].View())
	if m.submitting {
		b.WriteString("\n\nLogging in...")
	}
	return renderPage("LOG IN", b.String(), "tab: next field  enter: log in  esc: back")
}
