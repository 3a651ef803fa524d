// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// msgSender forwards messages produced outside the program loop (realtime
// handlers, the session watcher) into the running program. Messages sent
// before bind are dropped.
type msgSender struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (s *msgSender) bind(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

func (s *msgSender) Send(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()

	if send != nil {
		send(msg)
	}
}
