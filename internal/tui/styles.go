// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-issue-desk/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

var statusStyles = map[models.IssueStatus]lipgloss.Style{
	models.IssueStatusPending:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	models.IssueStatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	models.IssueStatusResolved:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	models.IssueStatusRejected:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
}

func renderStatus(s models.IssueStatus) string {
	style, ok := statusStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(string(s))
}
