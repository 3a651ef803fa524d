// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-issue-desk/internal/app"
	"github.com/MKhiriev/go-issue-desk/models"
)

type statsModel struct {
	stats   models.IssueStats
	loading bool
}

func (m statsModel) View() string {
	if m.loading {
		return renderPage("STATISTICS", app.MsgLoading, "esc: back")
	}

	var b strings.Builder
	s := m.stats
	fmt.Fprintf(&b, "Total:       %d\n", s.Total)
	fmt.Fprintf(&b, "Pending:     %d\n", s.Pending)
	fmt.Fprintf(&b, "In progress: %d\n", s.InProgress)
	fmt.Fprintf(&b, "Resolved:    %d\n", s.Resolved)
	fmt.Fprintf(&b, "Rejected:    %d\n", s.Rejected)

	if len(s.ByCategory) > 0 {
		b.WriteString("\nBy category\n")
		for _, c := range s.ByCategory {
			fmt.Fprintf(&b, "  %-16s %d\n", fitText(valueOrDash(c.Category), 16), c.Count)
		}
	}

	return renderPage("STATISTICS", b.String(), "r: refresh  v: about  esc: back")
}
