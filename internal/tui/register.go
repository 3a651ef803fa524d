// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-issue-desk/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	// registerRole is the role selector after the text inputs.
	registerRole
)

var registerRoles = []models.Role{models.RoleResident, models.RoleAdmin}

type registerModel struct {
	inputs     []textinput.Model
	roleIdx    int
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	name := newInput("name", 100)
	name.Focus()

	return registerModel{inputs: []textinput.Model{
		name,
		newInput("email", 254),
		newPasswordInput("password"),
	}}
}

func (m registerModel) request() models.RegisterRequest {
	return models.RegisterRequest{
		Name:     strings.TrimSpace(m.inputs[registerName].Value()),
		Email:    strings.TrimSpace(m.inputs[registerEmail].Value()),
		Password: m.inputs[registerPassword].Value(),
		Role:     registerRoles[m.roleIdx],
	}
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString("Name\n")
	b.WriteString(m.inputs[registerName].View())
	b.WriteString("\n\nEmail\n")
	b.WriteString(m.inputs[registerEmail].View())
	b.WriteString("\n\nPassword\n")
	b.WriteString(m.inputs[registerPassword].View())
	b.WriteString("\n\nRole\n")
	b.WriteString(cursor(m.focus == registerRole))
	for i, role := range registerRoles {
		label := "[ " + string(role) + " ]"
		if i == m.roleIdx {
			label = selectedStyle.Render("[x " + string(role) + "]")
		}
		b.WriteString(label)
		b.WriteString(" ")
	}
	if m.submitting {
		b.WriteString("\n\nCreating account...")
	}
	return renderPage("REGISTER", b.String(), "tab: next field  ←/→: role  enter: register  esc: back")
}
