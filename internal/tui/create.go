// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-issue-desk/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	createTitle = iota
	createDescription
	createCategory
	// createPriority is the priority selector after the text inputs.
	createPriority
)

// createPriorities starts with "" so the backend default applies.
var createPriorities = []models.IssuePriority{
	"",
	models.IssuePriorityLow,
	models.IssuePriorityMedium,
	models.IssuePriorityHigh,
}

type createModel struct {
	inputs      []textinput.Model
	priorityIdx int
	focus       int
	submitting  bool
}

func newCreateModel() createModel {
	title := newInput("title", 200)
	title.Focus()

	description := newInput("description", 2000)
	description.Width = 60

	return createModel{inputs: []textinput.Model{
		title,
		description,
		newInput("category (plumbing, electrical, ...)", 50),
	}}
}

func (m createModel) request() models.CreateIssueRequest {
	return models.CreateIssueRequest{
		Title:       strings.TrimSpace(m.inputs[createTitle].Value()),
		Description: strings.TrimSpace(m.inputs[createDescription].Value()),
		Category:    strings.TrimSpace(m.inputs[createCategory].Value()),
		Priority:    createPriorities[m.priorityIdx],
	}
}

func (m createModel) View() string {
	var b strings.Builder
	b.WriteString("Title\n")
	b.WriteString(m.inputs[createTitle].View())
	b.WriteString("\n\nDescription\n")
	b.WriteString(m.inputs[createDescription].View())
	b.WriteString("\n\nCategory\n")
	b.WriteString(m.inputs[createCategory].View())
	b.WriteString("\n\n" + cursor(m.focus == createPriority) + "Priority: ")
	for i, p := range createPriorities {
		label := string(p)
		if label == "" {
			label = "default"
		}
		if i == m.priorityIdx {
			b.WriteString(selectedStyle.Render("[" + label + "]"))
		} else {
			b.WriteString(" " + label + " ")
		}
	}
	if m.submitting {
		b.WriteString("\n\nSubmitting...")
	}
	return renderPage("NEW ISSUE", b.String(), "tab: next field  ←/→: priority  enter: submit  esc: cancel")
}
