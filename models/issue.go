// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// IssueStatus is the workflow state of an issue. Values are owned by the
// backend; the constants below are the ones the UI knows how to present.
type IssueStatus string

const (
	IssueStatusPending    IssueStatus = "pending"
	IssueStatusInProgress IssueStatus = "in-progress"
	IssueStatusResolved   IssueStatus = "resolved"
	IssueStatusRejected   IssueStatus = "rejected"
)

// IssueStatuses lists the known statuses in workflow order.
var IssueStatuses = []IssueStatus{
	IssueStatusPending,
	IssueStatusInProgress,
	IssueStatusResolved,
	IssueStatusRejected,
}

// IssuePriority is the urgency suggested by the reporter.
type IssuePriority string

const (
	IssuePriorityLow    IssuePriority = "low"
	IssuePriorityMedium IssuePriority = "medium"
	IssuePriorityHigh   IssuePriority = "high"
)

// Issue is a problem reported by a resident. It is validated and stored by
// the backend; the client only marshals it.
type Issue struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Priority    IssuePriority `json:"priority,omitempty"`
	Status      IssueStatus   `json:"status"`
	AdminNotes  string        `json:"adminNotes,omitempty"`
	AssignedTo  string        `json:"assignedTo,omitempty"`
	ReportedBy  *User         `json:"reportedBy,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// CreateIssueRequest is the body of POST /api/issues. Priority is omitted
// when empty so the backend applies its own default.
type CreateIssueRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Priority    IssuePriority `json:"priority,omitempty"`
}

// UpdateIssueRequest is the body of PUT /api/issues/{id}. Only non-nil
// fields are sent, which lets an admin touch a single attribute.
type UpdateIssueRequest struct {
	Status     *IssueStatus `json:"status,omitempty"`
	AdminNotes *string      `json:"adminNotes,omitempty"`
	AssignedTo *string      `json:"assignedTo,omitempty"`
}

// IssueFilter narrows GET /api/issues. Zero values mean "not set".
type IssueFilter struct {
	Status   IssueStatus
	Category string
	Page     int
	Limit    int
}

// MyIssueFilter narrows GET /api/issues/my-issues. Zero values mean
// "not set".
type MyIssueFilter struct {
	Status IssueStatus
	Page   int
	Limit  int
}

// IssueResponse wraps a single issue returned by create, update and get.
type IssueResponse struct {
	Message string `json:"message,omitempty"`
	Issue   Issue  `json:"issue"`
}

// IssueList is a page of issues.
type IssueList struct {
	Issues []Issue `json:"issues"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Pages  int     `json:"pages"`
}

// CategoryCount is one bucket of the per-category breakdown.
type CategoryCount struct {
	Category string `json:"_id"`
	Count    int    `json:"count"`
}

// IssueStats is the dashboard summary returned by GET /api/issues/stats.
type IssueStats struct {
	Total      int             `json:"total"`
	Pending    int             `json:"pending"`
	InProgress int             `json:"inProgress"`
	Resolved   int             `json:"resolved"`
	Rejected   int             `json:"rejected"`
	ByCategory []CategoryCount `json:"byCategory,omitempty"`
}
