// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-issue-desk/internal/app"
	"github.com/MKhiriev/go-issue-desk/internal/service"
	"github.com/MKhiriev/go-issue-desk/internal/validators"
	"github.com/MKhiriev/go-issue-desk/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenIssues
	screenDetail
	screenCreate
	screenStats
	screenChat
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	sender        *msgSender
	validator     validators.Validator
	buildInfo     models.AppBuildInfo
	currentScreen screen

	user models.User

	welcome  welcomeModel
	login    loginModel
	register registerModel
	issues   issuesModel
	detail   detailModel
	create   createModel
	stats    statsModel
	chat     chatModel

	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, sender *msgSender, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		sender:        sender,
		validator:     validators.NewIssueDeskValidator(),
		buildInfo:     buildInfo,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		issues:        newIssuesModel(),
		create:        newCreateModel(),
		chat:          newChatModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdRestoreSession()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if key.Matches(msg, keys.version) && m.acceptsHotkeys() {
			m.showBuildInfo = true
			return m, nil
		}
	case tea.WindowSizeMsg:
		return m, nil
	case sessionRestoredMsg:
		if !msg.ok {
			return m, nil
		}
		m.user = msg.user
		return m.openIssues()
	case authDoneMsg:
		m.login.submitting = false
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.user = msg.user
		m.login = newLoginModel()
		m.register = newRegisterModel()
		return m.openIssues()
	case loggedOutMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		m.resetSession()
		return m, nil
	case sessionExpiredMsg:
		m.resetSession()
		m.showErrorf(app.MsgSessionExpired)
		return m, nil
	case issuesLoadedMsg:
		m.issues.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.issues.items = msg.list.Issues
		m.issues.total = msg.list.Total
		m.issues.pages = msg.list.Pages
		if msg.list.Page > 0 {
			m.issues.page = msg.list.Page
		}
		if m.issues.idx >= len(m.issues.items) {
			m.issues.idx = len(m.issues.items) - 1
		}
		if m.issues.idx < 0 {
			m.issues.idx = 0
		}
		return m, nil
	case issueLoadedMsg:
		if msg.err != nil {
			m.detail.status = humanizeError(msg.err)
			return m, nil
		}
		if m.currentScreen == screenDetail && !m.detail.editing && msg.issue.ID == m.detail.issue.ID {
			m.detail.issue = msg.issue
		}
		return m, nil
	case issueCreatedMsg:
		m.create.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.create = newCreateModel()
		m.currentScreen = screenIssues
		m.issues.status = app.MsgIssueCreated
		m.issues.loading = true
		return m, tea.Batch(m.cmdLoadIssues(), m.issues.spinner.Tick, cmdClearStatus())
	case issueUpdatedMsg:
		m.detail.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if msg.issue.ID != "" {
			m.detail.issue = msg.issue
		}
		m.detail.editing = false
		m.detail.changed = true
		m.detail.status = app.MsgIssueUpdated
		return m, cmdClearStatus()
	case statsLoadedMsg:
		m.stats.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.stats.stats = msg.stats
		return m, nil
	case chatConnectedMsg:
		m.chat.connecting = false
		if msg.err != nil {
			m.chat.status = humanizeError(msg.err)
			return m, nil
		}
		m.chat.status = app.MsgChatConnected
		return m, nil
	case chatReceivedMsg:
		at := msg.message.CreatedAt
		if at.IsZero() {
			at = time.Now()
		}
		m.chat.appendLine(chatLine{at: at, from: msg.message.SenderID, content: msg.message.Content})
		delete(m.chat.peerTyping, msg.message.SenderID)
		return m, nil
	case peerTypingMsg:
		if msg.typing {
			m.chat.peerTyping[msg.userID] = true
		} else {
			delete(m.chat.peerTyping, msg.userID)
		}
		return m, nil
	case typingIdleMsg:
		if !m.chat.typing || msg.seq != m.chat.typingSeq {
			return m, nil
		}
		to := m.chat.typingTo
		m.chat.typing = false
		m.chat.typingTo = ""
		return m, m.cmdStopTyping(to)
	case copiedMsg:
		if msg.err != nil {
			m.detail.status = msg.err.Error()
		} else {
			m.detail.status = app.MsgCopied
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.issues.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.issues.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.issues.spinner, cmd = m.issues.spinner.Update(msg)
		return m, cmd
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenIssues:
		return m.updateIssues(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenCreate:
		return m.updateCreate(msg)
	case screenStats:
		return m.updateStats(msg)
	case screenChat:
		return m.updateChat(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenIssues:
		body = m.issues.View(m.user)
	case screenDetail:
		body = m.detail.View()
	case screenCreate:
		body = m.create.View()
	case screenStats:
		body = m.stats.View()
	case screenChat:
		body = m.chat.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// acceptsHotkeys reports whether single-letter hotkeys are free, i.e. no
// text input owns the keyboard.
func (m appModel) acceptsHotkeys() bool {
	switch m.currentScreen {
	case screenWelcome, screenIssues, screenStats:
		return true
	case screenDetail:
		return !m.detail.editing
	default:
		return false
	}
}

func (m appModel) isAdmin() bool {
	return m.user.Role == models.RoleAdmin
}

// resetSession forgets everything tied to the logged-in user.
func (m *appModel) resetSession() {
	m.user = models.User{}
	m.issues = newIssuesModel()
	m.detail = detailModel{}
	m.create = newCreateModel()
	m.stats = statsModel{}
	m.chat = newChatModel()
	m.login = newLoginModel()
	m.register = newRegisterModel()
	m.welcome = newWelcomeModel()
	m.currentScreen = screenWelcome
}

// openIssues shows the issue list. Residents start on their own issues.
func (m appModel) openIssues() (tea.Model, tea.Cmd) {
	m.issues = newIssuesModel()
	m.issues.mine = !m.isAdmin()
	m.issues.loading = true
	m.currentScreen = screenIssues
	return m, tea.Batch(m.cmdLoadIssues(), m.issues.spinner.Tick)
}

func (m appModel) reloadIssues() (tea.Model, tea.Cmd) {
	m.issues.loading = true
	return m, tea.Batch(m.cmdLoadIssues(), m.issues.spinner.Tick)
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.login.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			m.login.focus = moveFocus(m.login.inputs, m.login.focus, 1, 0)
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			m.login.focus = moveFocus(m.login.inputs, m.login.focus, -1, 0)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			email, password := m.login.values()
			if err := m.validator.Validate(m.ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.register.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = moveFocus(m.register.inputs, m.register.focus, 1, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = moveFocus(m.register.inputs, m.register.focus, -1, 1)
			return m, nil
		case m.register.focus == registerRole && key.Matches(keyMsg, keys.left):
			m.register.roleIdx = cycle(m.register.roleIdx, -1, len(registerRoles))
			return m, nil
		case m.register.focus == registerRole && key.Matches(keyMsg, keys.right):
			m.register.roleIdx = cycle(m.register.roleIdx, 1, len(registerRoles))
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			req := m.register.request()
			if err := m.validator.Validate(m.ctx, req); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	if m.register.focus == registerRole {
		return m, nil
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateIssues(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.issues.idx > 0 {
			m.issues.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.issues.idx < len(m.issues.items)-1 {
			m.issues.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.issues.page > 1 {
			m.issues.page--
			return m.reloadIssues()
		}
	case key.Matches(keyMsg, keys.right):
		if m.issues.page < m.issues.pages {
			m.issues.page++
			return m.reloadIssues()
		}
	case key.Matches(keyMsg, keys.filter):
		m.issues.statusIdx = cycle(m.issues.statusIdx, 1, len(models.IssueStatuses)+1)
		m.issues.page = 1
		m.issues.idx = 0
		return m.reloadIssues()
	case key.Matches(keyMsg, keys.mine):
		m.issues.mine = !m.issues.mine
		m.issues.page = 1
		m.issues.idx = 0
		return m.reloadIssues()
	case key.Matches(keyMsg, keys.refresh):
		return m.reloadIssues()
	case key.Matches(keyMsg, keys.enter):
		issue, ok := m.issues.current()
		if !ok {
			return m, nil
		}
		m.detail = newDetailModel(issue, m.isAdmin())
		m.currentScreen = screenDetail
		return m, m.cmdLoadIssue(issue.ID)
	case key.Matches(keyMsg, keys.newIssue):
		m.create = newCreateModel()
		m.currentScreen = screenCreate
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.stats):
		m.stats = statsModel{loading: true}
		m.currentScreen = screenStats
		return m, m.cmdLoadStats()
	case key.Matches(keyMsg, keys.chat):
		m.currentScreen = screenChat
		m.chat.connecting = true
		m.chat.status = app.MsgChatConnecting
		return m, tea.Batch(m.cmdConnectChat(), textinput.Blink)
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.detail.editing {
		return m.updateDetailEdit(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenIssues
		if m.detail.changed {
			return m.reloadIssues()
		}
	case key.Matches(keyMsg, keys.copy):
		if m.detail.issue.ID == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.issue.ID)
	case key.Matches(keyMsg, keys.edit):
		if !m.detail.isAdmin {
			m.detail.status = app.MsgAdminOnly
			return m, cmdClearStatus()
		}
		m.detail = m.detail.startEdit()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetailEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.detail.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.detail.editing = false
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.detail = m.detail.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.detail = m.detail.moveFocus(-1)
			return m, nil
		case m.detail.focus == detailStatus && key.Matches(keyMsg, keys.left):
			m.detail.statusIdx = cycle(m.detail.statusIdx, -1, len(models.IssueStatuses))
			return m, nil
		case m.detail.focus == detailStatus && key.Matches(keyMsg, keys.right):
			m.detail.statusIdx = cycle(m.detail.statusIdx, 1, len(models.IssueStatuses))
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			req, changed := m.detail.changes()
			if !changed {
				m.detail.editing = false
				m.detail.status = app.MsgNothingChanged
				return m, cmdClearStatus()
			}
			if err := m.validator.Validate(m.ctx, req); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.detail.submitting = true
			return m, m.cmdUpdateIssue(m.detail.issue.ID, req)
		}
	}

	if m.detail.focus == detailStatus {
		return m, nil
	}

	var cmd tea.Cmd
	idx := m.detail.focus - 1
	m.detail.inputs[idx], cmd = m.detail.inputs[idx].Update(msg)
	return m, cmd
}

func (m appModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.create.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenIssues
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.create.focus = moveFocus(m.create.inputs, m.create.focus, 1, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.create.focus = moveFocus(m.create.inputs, m.create.focus, -1, 1)
			return m, nil
		case m.create.focus == createPriority && key.Matches(keyMsg, keys.left):
			m.create.priorityIdx = cycle(m.create.priorityIdx, -1, len(createPriorities))
			return m, nil
		case m.create.focus == createPriority && key.Matches(keyMsg, keys.right):
			m.create.priorityIdx = cycle(m.create.priorityIdx, 1, len(createPriorities))
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			req := m.create.request()
			if err := m.validator.Validate(m.ctx, req); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.create.submitting = true
			return m, m.cmdCreateIssue(req)
		}
	}

	if m.create.focus == createPriority {
		return m, nil
	}

	var cmd tea.Cmd
	m.create.inputs[m.create.focus], cmd = m.create.inputs[m.create.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenIssues
	case key.Matches(keyMsg, keys.refresh):
		m.stats.loading = true
		return m, m.cmdLoadStats()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			to := ""
			if m.chat.typing {
				to = m.chat.typingTo
			}
			m.chat.typing = false
			m.chat.typingTo = ""
			m.chat.peerTyping = map[string]bool{}
			m.currentScreen = screenIssues
			return m, m.cmdLeaveChat(to)
		case key.Matches(keyMsg, keys.reconnect):
			m.chat.connecting = true
			m.chat.status = app.MsgChatConnecting
			return m, m.cmdConnectChat()
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.chat.focus = moveFocus(m.chat.inputs, m.chat.focus, 1, 0)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.chat.focus == chatReceiver {
				m.chat.focus = moveFocus(m.chat.inputs, m.chat.focus, 1, 0)
				return m, nil
			}
			return m.sendChat()
		}
	}

	var cmd tea.Cmd
	before := m.chat.inputs[chatMessage].Value()
	m.chat.inputs[m.chat.focus], cmd = m.chat.inputs[m.chat.focus].Update(msg)

	if m.chat.focus != chatMessage || m.chat.inputs[chatMessage].Value() == before {
		return m, cmd
	}
	typingCmd := m.noteTyping()
	return m, tea.Batch(cmd, typingCmd)
}

// noteTyping emits typing_start on the first keystroke and schedules
// typing_stop once the user pauses.
func (m *appModel) noteTyping() tea.Cmd {
	to := m.chat.receiver()
	if to == "" || !m.services.ChatService.IsConnected() {
		return nil
	}

	var cmds []tea.Cmd
	if m.chat.typing && m.chat.typingTo != to {
		cmds = append(cmds, m.cmdStopTyping(m.chat.typingTo))
		m.chat.typing = false
	}
	if !m.chat.typing {
		m.chat.typing = true
		m.chat.typingTo = to
		cmds = append(cmds, m.cmdStartTyping(to))
	}

	m.chat.typingSeq++
	cmds = append(cmds, cmdTypingIdle(m.chat.typingSeq))
	return tea.Batch(cmds...)
}

func (m appModel) sendChat() (tea.Model, tea.Cmd) {
	to := m.chat.receiver()
	content := strings.TrimSpace(m.chat.inputs[chatMessage].Value())
	out := models.OutgoingMessage{
		ReceiverID:  to,
		Content:     content,
		MessageType: models.MessageTypeText,
	}
	if err := m.validator.Validate(m.ctx, out, validators.FieldReceiver); err != nil {
		m.chat.status = err.Error()
		return m, nil
	}
	if content == "" {
		return m, nil
	}
	if !m.services.ChatService.IsConnected() {
		m.chat.status = app.MsgChatOffline
		return m, nil
	}

	stopTyping := m.chat.typing
	m.chat.typing = false
	m.chat.typingTo = ""
	m.chat.inputs[chatMessage].Reset()
	m.chat.appendLine(chatLine{at: time.Now(), from: "me → " + to, content: content})

	return m, m.cmdSendChat(out, stopTyping)
}
