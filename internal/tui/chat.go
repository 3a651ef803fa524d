// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
)

const (
	chatReceiver = iota
	chatMessage
)

// chatHistoryLimit caps the lines kept on screen.
const chatHistoryLimit = 200

// typingIdleAfter is how long after the last keystroke typing_stop is sent.
const typingIdleAfter = 2 * time.Second

type chatLine struct {
	at      time.Time
	from    string
	content string
}

type chatModel struct {
	inputs []textinput.Model
	focus  int

	lines      []chatLine
	peerTyping map[string]bool

	typing    bool
	typingTo  string
	typingSeq int

	connecting bool
	status     string
}

func newChatModel() chatModel {
	receiver := newInput("receiver user id", 64)
	receiver.Focus()

	message := newInput("message", 2000)
	message.Width = 60

	return chatModel{
		inputs:     []textinput.Model{receiver, message},
		peerTyping: map[string]bool{},
	}
}

func (m chatModel) receiver() string {
	return strings.TrimSpace(m.inputs[chatReceiver].Value())
}

func (m *chatModel) appendLine(line chatLine) {
	m.lines = append(m.lines, line)
	if len(m.lines) > chatHistoryLimit {
		m.lines = m.lines[len(m.lines)-chatHistoryLimit:]
	}
}

func (m chatModel) View() string {
	var b strings.Builder

	if len(m.lines) == 0 {
		b.WriteString(helpStyle.Render("no messages yet") + "\n")
	}
	for _, l := range m.lines {
		fmt.Fprintf(&b, "%s %s: %s\n", l.at.Local().Format("15:04"), l.from, l.content)
	}

	for _, id := range slices.Sorted(maps.Keys(m.peerTyping)) {
		if m.peerTyping[id] {
			b.WriteString(helpStyle.Render(id+" is typing...") + "\n")
		}
	}

	b.WriteString("\nTo\n")
	b.WriteString(m.inputs[chatReceiver].View())
	b.WriteString("\n\nMessage\n")
	b.WriteString(m.inputs[chatMessage].View())

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	return renderPage("CHAT", b.String(), "tab: next field  enter: send  ctrl+r: reconnect  esc: back")
}
