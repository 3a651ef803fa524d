// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-issue-desk/models"
)

type sessionRestoredMsg struct {
	user models.User
	ok   bool
}

type authDoneMsg struct {
	user models.User
	err  error
}

type loggedOutMsg struct {
	err error
}

type sessionExpiredMsg struct{}

type issuesLoadedMsg struct {
	list models.IssueList
	err  error
}

type issueLoadedMsg struct {
	issue models.Issue
	err   error
}

type issueCreatedMsg struct {
	issue models.Issue
	err   error
}

type issueUpdatedMsg struct {
	issue models.Issue
	err   error
}

type statsLoadedMsg struct {
	stats models.IssueStats
	err   error
}

type chatConnectedMsg struct {
	err error
}

type chatReceivedMsg struct {
	message models.ChatMessage
}

type peerTypingMsg struct {
	userID string
	typing bool
}

// typingIdleMsg fires when no key was typed into the chat message for a
// while. seq identifies the keystroke that scheduled it.
type typingIdleMsg struct {
	seq int
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
