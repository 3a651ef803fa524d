// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-issue-desk/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) cmdRestoreSession() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		if !auth.IsAuthenticated(ctx) {
			return sessionRestoredMsg{}
		}
		claims, ok := auth.CurrentUser(ctx)
		if !ok {
			return sessionRestoredMsg{}
		}
		return sessionRestoredMsg{user: claims.User(), ok: true}
	}
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Login(ctx, email, password)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Register(ctx, req)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdLoadIssues() tea.Cmd {
	ctx := m.ctx
	issues := m.services.Issues
	mine := m.issues.mine
	status := m.issues.statusFilter()
	page := m.issues.page
	return func() tea.Msg {
		var (
			list models.IssueList
			err  error
		)
		if mine {
			list, err = issues.GetMyIssues(ctx, models.MyIssueFilter{Status: status, Page: page, Limit: issuesPageSize})
		} else {
			list, err = issues.GetAllIssues(ctx, models.IssueFilter{Status: status, Page: page, Limit: issuesPageSize})
		}
		return issuesLoadedMsg{list: list, err: err}
	}
}

func (m appModel) cmdLoadIssue(id string) tea.Cmd {
	ctx := m.ctx
	issues := m.services.Issues
	return func() tea.Msg {
		resp, err := issues.GetIssueByID(ctx, id)
		return issueLoadedMsg{issue: resp.Issue, err: err}
	}
}

func (m appModel) cmdCreateIssue(req models.CreateIssueRequest) tea.Cmd {
	ctx := m.ctx
	issues := m.services.Issues
	return func() tea.Msg {
		resp, err := issues.CreateIssue(ctx, req)
		return issueCreatedMsg{issue: resp.Issue, err: err}
	}
}

func (m appModel) cmdUpdateIssue(id string, req models.UpdateIssueRequest) tea.Cmd {
	ctx := m.ctx
	issues := m.services.Issues
	return func() tea.Msg {
		resp, err := issues.UpdateIssueStatus(ctx, id, req)
		return issueUpdatedMsg{issue: resp.Issue, err: err}
	}
}

func (m appModel) cmdLoadStats() tea.Cmd {
	ctx := m.ctx
	issues := m.services.Issues
	return func() tea.Msg {
		stats, err := issues.GetIssueStats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

// cmdConnectChat connects with the stored session (a live connection is
// reused) and routes inbound chat events into the program. Handlers from an
// earlier connect are replaced, not stacked.
func (m appModel) cmdConnectChat() tea.Cmd {
	ctx := m.ctx
	chat := m.services.ChatService
	sender := m.sender
	return func() tea.Msg {
		if _, err := chat.ConnectWithSession(ctx); err != nil {
			return chatConnectedMsg{err: err}
		}

		chat.OffReceiveMessage()
		chat.OffUserTyping()
		chat.OffUserStopTyping()
		chat.OnReceiveMessage(func(msg models.ChatMessage) {
			sender.Send(chatReceivedMsg{message: msg})
		})
		chat.OnUserTyping(func(e models.TypingEvent) {
			sender.Send(peerTypingMsg{userID: e.UserID, typing: true})
		})
		chat.OnUserStopTyping(func(e models.TypingEvent) {
			sender.Send(peerTypingMsg{userID: e.UserID, typing: false})
		})
		return chatConnectedMsg{}
	}
}

// cmdLeaveChat stops a pending typing indicator and unhooks the chat
// handlers. The connection itself stays up.
func (m appModel) cmdLeaveChat(stopTypingTo string) tea.Cmd {
	chat := m.services.ChatService
	return func() tea.Msg {
		if stopTypingTo != "" {
			chat.StopTyping(stopTypingTo)
		}
		chat.OffReceiveMessage()
		chat.OffUserTyping()
		chat.OffUserStopTyping()
		return nil
	}
}

func (m appModel) cmdSendChat(msg models.OutgoingMessage, stopTyping bool) tea.Cmd {
	chat := m.services.ChatService
	return func() tea.Msg {
		if stopTyping {
			chat.StopTyping(msg.ReceiverID)
		}
		chat.SendMessage(msg)
		return nil
	}
}

func (m appModel) cmdStartTyping(receiverID string) tea.Cmd {
	chat := m.services.ChatService
	return func() tea.Msg {
		chat.StartTyping(receiverID)
		return nil
	}
}

func (m appModel) cmdStopTyping(receiverID string) tea.Cmd {
	chat := m.services.ChatService
	return func() tea.Msg {
		chat.StopTyping(receiverID)
		return nil
	}
}

func cmdTypingIdle(seq int) tea.Cmd {
	return tea.Tick(typingIdleAfter, func(time.Time) tea.Msg {
		return typingIdleMsg{seq: seq}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
