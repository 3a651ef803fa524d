// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-issue-desk/internal/app"
	"github.com/MKhiriev/go-issue-desk/models"
	"github.com/charmbracelet/bubbles/spinner"
)

const issuesPageSize = 10

type issuesModel struct {
	items []models.Issue
	idx   int

	mine      bool
	statusIdx int // 0 is "any", i > 0 is models.IssueStatuses[i-1]
	page      int
	pages     int
	total     int

	loading bool
	spinner spinner.Model
	status  string
}

func newIssuesModel() issuesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return issuesModel{spinner: s, page: 1}
}

func (m issuesModel) statusFilter() models.IssueStatus {
	if m.statusIdx == 0 {
		return ""
	}
	return models.IssueStatuses[m.statusIdx-1]
}

func (m issuesModel) current() (models.Issue, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Issue{}, false
	}
	return m.items[m.idx], true
}

func (m issuesModel) View(user models.User) string {
	var b strings.Builder

	scope := "all issues"
	if m.mine {
		scope = "my issues"
	}
	filter := "any"
	if s := m.statusFilter(); s != "" {
		filter = string(s)
	}
	fmt.Fprintf(&b, "%s (%s) · %s · status: %s\n", valueOrDash(user.Name), user.Role, scope, filter)
	if m.loading {
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(app.MsgLoading + "\n")
	case len(m.items) == 0:
		b.WriteString(app.MsgNoIssues + "\n")
	default:
		for i, issue := range m.items {
			line := fmt.Sprintf("%s%-12s %-40s %s", cursor(i == m.idx),
				fitText(issue.Category, 12), fitText(issue.Title, 40), renderStatus(issue.Status))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	pages := m.pages
	if pages < 1 {
		pages = 1
	}
	fmt.Fprintf(&b, "\npage %d/%d · %d total", m.page, pages, m.total)
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage("ISSUES", b.String(),
		"enter: open  ←/→: page  f: status  m: mine/all  n: new  s: stats  t: chat  r: refresh  x: log out  q: quit")
}
