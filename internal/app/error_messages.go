// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// issue desk client screens.
//
// All Msg* constants are human-readable strings shown to the user in status
// lines and error overlays. Keeping them in one place keeps the wording
// consistent between screens.
package app

const (
	// MsgServerUnavailable replaces low-level network errors.
	MsgServerUnavailable = "network is down or the server is unavailable"

	// MsgSessionExpired is shown after the session watcher cleared an
	// expired token.
	MsgSessionExpired = "session expired, please log in again"

	// MsgNotAuthenticated is shown when an action needs a session that is
	// missing or expired.
	MsgNotAuthenticated = "you are not logged in"

	// MsgChatOffline is shown when a message is typed while the realtime
	// connection is down.
	MsgChatOffline = "chat is offline, press ctrl+r to reconnect"

	// MsgChatConnected is the chat status line after a successful connect.
	MsgChatConnected = "connected"

	// MsgChatConnecting is the chat status line while the handshake runs.
	MsgChatConnecting = "connecting..."

	// MsgAdminOnly is shown when a resident tries to edit an issue.
	MsgAdminOnly = "only admins can update issues"

	// MsgNothingChanged is shown when an admin saves an unchanged issue.
	MsgNothingChanged = "nothing changed"

	// MsgCopied confirms a clipboard copy.
	MsgCopied = "copied!"

	// MsgIssueCreated confirms a created issue.
	MsgIssueCreated = "issue created"

	// MsgIssueUpdated confirms an admin update.
	MsgIssueUpdated = "issue updated"

	// MsgNoIssues is the list placeholder.
	MsgNoIssues = "no issues"

	// MsgLoading is the generic loading line.
	MsgLoading = "loading..."
)
