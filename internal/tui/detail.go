// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-issue-desk/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	// detailStatus is the status selector in front of the text inputs.
	detailStatus = iota
	detailNotes
	detailAssignee
)

type detailModel struct {
	issue   models.Issue
	isAdmin bool
	status  string
	changed bool

	editing    bool
	statusIdx  int
	inputs     []textinput.Model // notes, assignee
	focus      int
	submitting bool
}

func newDetailModel(issue models.Issue, isAdmin bool) detailModel {
	return detailModel{
		issue:   issue,
		isAdmin: isAdmin,
		inputs: []textinput.Model{
			newInput("admin notes", 1000),
			newInput("assigned to", 100),
		},
	}
}

// startEdit fills the edit form from the current issue.
func (m detailModel) startEdit() detailModel {
	m.editing = true
	m.statusIdx = max(slices.Index(models.IssueStatuses, m.issue.Status), 0)
	m.inputs[0].SetValue(m.issue.AdminNotes)
	m.inputs[1].SetValue(m.issue.AssignedTo)
	m.inputs[0].Blur()
	m.inputs[1].Blur()
	m.focus = detailStatus
	return m
}

// moveFocus cycles status selector, notes and assignee.
func (m detailModel) moveFocus(delta int) detailModel {
	// input i has focus index i+1
	if m.focus > detailStatus {
		m.inputs[m.focus-1].Blur()
	}
	m.focus = cycle(m.focus, delta, len(m.inputs)+1)
	if m.focus > detailStatus {
		m.inputs[m.focus-1].Focus()
	}
	return m
}

// changes builds an update carrying only the edited fields.
func (m detailModel) changes() (models.UpdateIssueRequest, bool) {
	var req models.UpdateIssueRequest
	changed := false

	if status := models.IssueStatuses[m.statusIdx]; status != m.issue.Status {
		req.Status = &status
		changed = true
	}
	if notes := strings.TrimSpace(m.inputs[0].Value()); notes != m.issue.AdminNotes {
		req.AdminNotes = &notes
		changed = true
	}
	if assignee := strings.TrimSpace(m.inputs[1].Value()); assignee != m.issue.AssignedTo {
		req.AssignedTo = &assignee
		changed = true
	}

	return req, changed
}

func (m detailModel) View() string {
	var b strings.Builder
	issue := m.issue

	fmt.Fprintf(&b, "ID:          %s\n", issue.ID)
	fmt.Fprintf(&b, "Title:       %s\n", issue.Title)
	fmt.Fprintf(&b, "Category:    %s\n", valueOrDash(issue.Category))
	fmt.Fprintf(&b, "Priority:    %s\n", valueOrDash(string(issue.Priority)))
	fmt.Fprintf(&b, "Status:      %s\n", renderStatus(issue.Status))
	if issue.ReportedBy != nil {
		fmt.Fprintf(&b, "Reported by: %s <%s>\n", issue.ReportedBy.Name, issue.ReportedBy.Email)
	}
	fmt.Fprintf(&b, "Assigned to: %s\n", valueOrDash(issue.AssignedTo))
	if !issue.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Created:     %s\n", issue.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if !issue.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "Updated:     %s\n", issue.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "\n%s\n", valueOrDash(issue.Description))
	fmt.Fprintf(&b, "\nAdmin notes: %s\n", valueOrDash(issue.AdminNotes))

	hotKeys := "c: copy id  esc: back"
	if m.isAdmin {
		hotKeys = "e: edit  " + hotKeys
	}

	if m.editing {
		b.WriteString("\n" + uiDivider + "\n")
		b.WriteString(cursor(m.focus == detailStatus) + "Status: ")
		for i, s := range models.IssueStatuses {
			if i == m.statusIdx {
				b.WriteString(selectedStyle.Render("[" + string(s) + "]"))
			} else {
				b.WriteString(" " + string(s) + " ")
			}
		}
		b.WriteString("\n\n" + cursor(m.focus == detailNotes) + "Notes\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n\n" + cursor(m.focus == detailAssignee) + "Assigned to\n")
		b.WriteString(m.inputs[1].View())
		if m.submitting {
			b.WriteString("\n\nSaving...")
		}
		hotKeys = "tab: next field  ←/→: status  enter: save  esc: cancel"
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage("ISSUE", b.String(), hotKeys)
}
