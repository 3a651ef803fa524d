// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-issue-desk/internal/config"
	"github.com/MKhiriev/go-issue-desk/internal/logger"
	"github.com/MKhiriev/go-issue-desk/models"
)

func newTestManager(baseURL string, transports ...string) *Manager {
	if len(transports) == 0 {
		transports = []string{TransportWebSocket, TransportPolling}
	}
	return NewManager(config.ClientAdapter{BaseURL: baseURL, RealtimeTransports: transports}, logger.Nop())
}

func connectedManager(t *testing.T, f *fakeSocketIO) *Manager {
	t.Helper()

	m := newTestManager(f.URL())
	_, err := m.Connect(context.Background(), fakeValidToken)
	require.NoError(t, err)
	t.Cleanup(m.Disconnect)
	return m
}

// ── Connect ──

func TestManager_ConnectWebSocket(t *testing.T) {
	f := newFakeSocketIO(t)
	m := connectedManager(t, f)

	socket := m.Connection()
	require.NotNil(t, socket)
	assert.True(t, m.IsConnected())
	assert.Equal(t, TransportWebSocket, socket.Transport())
	assert.Equal(t, "sio-1", socket.ID())
	assert.EqualValues(t, 1, f.handshakes.Load())
}

func TestManager_ConnectTwiceReturnsSameHandle(t *testing.T) {
	f := newFakeSocketIO(t)
	m := newTestManager(f.URL())
	defer m.Disconnect()

	first, err := m.Connect(context.Background(), fakeValidToken)
	require.NoError(t, err)
	second, err := m.Connect(context.Background(), fakeValidToken)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.EqualValues(t, 1, f.handshakes.Load())
}

func TestManager_ConnectRejectedToken(t *testing.T) {
	f := newFakeSocketIO(t)
	m := newTestManager(f.URL())

	socket, err := m.Connect(context.Background(), "stolen-token")
	require.Error(t, err)
	assert.Nil(t, socket)
	assert.ErrorIs(t, err, ErrConnectRefused)
	assert.Contains(t, err.Error(), "Authentication error")

	assert.Nil(t, m.Connection())
	assert.False(t, m.IsConnected())
	// a refusal is final, polling is not tried
	assert.EqualValues(t, 0, f.pollingOpens.Load())
}

func TestManager_FallsBackToPolling(t *testing.T) {
	f := newFakeSocketIO(t)
	f.rejectWebSocket = true
	m := connectedManager(t, f)

	socket := m.Connection()
	require.NotNil(t, socket)
	assert.Equal(t, TransportPolling, socket.Transport())
	assert.EqualValues(t, 1, f.pollingOpens.Load())

	m.SendMessage(models.OutgoingMessage{ReceiverID: "u2", Content: "over polling"})
	assert.Equal(t, `42["send_message",{"receiverId":"u2","content":"over polling"}]`, f.next(t))
}

func TestManager_ConnectUnreachable(t *testing.T) {
	f := newFakeSocketIO(t)
	url := f.URL()
	f.srv.Close()

	m := newTestManager(url)
	socket, err := m.Connect(context.Background(), fakeValidToken)
	require.Error(t, err)
	assert.Nil(t, socket)
	assert.NotErrorIs(t, err, ErrConnectRefused)
	assert.Nil(t, m.Connection())
}

func TestManager_ConnectSilentServerHonoursContext(t *testing.T) {
	f := newFakeSocketIO(t)
	f.silentWebSocket = true
	m := newTestManager(f.URL())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	socket, err := m.Connect(ctx, fakeValidToken)
	require.Error(t, err)
	assert.Nil(t, socket)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)

	// the expired context stops the transport loop
	assert.EqualValues(t, 0, f.pollingOpens.Load())
	assert.False(t, m.IsConnected())
}

func TestManager_ReconnectAfterServerDisconnect(t *testing.T) {
	f := newFakeSocketIO(t)
	m := connectedManager(t, f)
	first := m.Connection()

	f.push("41")

	require.Eventually(t, func() bool { return !m.IsConnected() }, 2*time.Second, 10*time.Millisecond)
	// the stale handle is still reported until it is replaced
	assert.Same(t, first, m.Connection())

	second, err := m.Connect(context.Background(), fakeValidToken)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.EqualValues(t, 2, f.handshakes.Load())
}

// ── Disconnect ──

func TestManager_Disconnect(t *testing.T) {
	f := newFakeSocketIO(t)
	m := connectedManager(t, f)
	socket := m.Connection()

	m.Disconnect()

	assert.Nil(t, m.Connection())
	assert.False(t, m.IsConnected())
	assert.False(t, socket.Connected())
	assert.Equal(t, "41", f.next(t))

	select {
	case <-socket.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("read loop did not stop")
	}

	// idempotent
	m.Disconnect()
	assert.Nil(t, m.Connection())
}

func TestManager_DisconnectWithoutConnection(t *testing.T) {
	m := newTestManager("http://localhost:1")

	assert.NotPanics(t, m.Disconnect)
	assert.Nil(t, m.Connection())
	assert.False(t, m.IsConnected())
}

// ── emitters ──

func TestManager_Emitters(t *testing.T) {
	f := newFakeSocketIO(t)
	m := connectedManager(t, f)

	m.SendMessage(models.OutgoingMessage{
		ReceiverID:  "u2",
		Content:     "see attachment",
		MessageType: models.MessageTypeFile,
		Attachments: []models.Attachment{{FileName: "a.pdf", URL: "https://files/a.pdf"}},
	})
	assert.Equal(t,
		`42["send_message",{"receiverId":"u2","content":"see attachment","messageType":"file","attachments":[{"fileName":"a.pdf","url":"https://files/a.pdf"}]}]`,
		f.next(t))

	m.StartTyping("u2")
	assert.Equal(t, `42["typing_start",{"receiverId":"u2"}]`, f.next(t))

	m.StopTyping("u2")
	assert.Equal(t, `42["typing_stop",{"receiverId":"u2"}]`, f.next(t))
}

func TestManager_EmittersWhileDisconnected(t *testing.T) {
	f := newFakeSocketIO(t)
	m := newTestManager(f.URL())

	assert.NotPanics(t, func() {
		m.SendMessage(models.OutgoingMessage{ReceiverID: "u2", Content: "lost"})
		m.StartTyping("u2")
		m.StopTyping("u2")
	})
	f.nothingWithin(t, 100*time.Millisecond)
	assert.EqualValues(t, 0, f.handshakes.Load())
}

func TestManager_EmittersAfterDisconnect(t *testing.T) {
	f := newFakeSocketIO(t)
	m := connectedManager(t, f)
	m.Disconnect()

	m.SendMessage(models.OutgoingMessage{ReceiverID: "u2", Content: "lost"})
	m.StartTyping("u2")

	f.nothingWithin(t, 100*time.Millisecond)
}

// ── handlers ──

func TestManager_OnReceiveMessage(t *testing.T) {
	f := newFakeSocketIO(t)
	m := connectedManager(t, f)

	got := make(chan models.ChatMessage, 1)
	m.OnReceiveMessage(func(msg models.ChatMessage) { got <- msg })

	f.push(`42["receive_message",{"_id":"m1","senderId":"u1","receiverId":"me","content":"hello"}]`)

	select {
	case msg := <-got:
		assert.Equal(t, "m1", msg.ID)
		assert.Equal(t, "u1", msg.SenderID)
		assert.Equal(t, "hello", msg.Content)
	case <-time.After(2 * time.Second):
		t.Fatal("receive_message handler not called")
	}
}

func TestManager_TypingHandlers(t *testing.T) {
	f := newFakeSocketIO(t)
	m := connectedManager(t, f)

	typing := make(chan models.TypingEvent, 1)
	stopped := make(chan models.TypingEvent, 1)
	m.OnUserTyping(func(ev models.TypingEvent) { typing <- ev })
	m.OnUserStopTyping(func(ev models.TypingEvent) { stopped <- ev })

	f.push(`42["user_typing",{"userId":"u1"}]`)
	f.push(`42["user_stop_typing",{"userId":"u1"}]`)

	select {
	case ev := <-typing:
		assert.Equal(t, "u1", ev.UserID)
	case <-time.After(2 * time.Second):
		t.Fatal("user_typing handler not called")
	}
	select {
	case ev := <-stopped:
		assert.Equal(t, "u1", ev.UserID)
	case <-time.After(2 * time.Second):
		t.Fatal("user_stop_typing handler not called")
	}
}

func TestManager_HandlerBeforeConnectIsDropped(t *testing.T) {
	f := newFakeSocketIO(t)
	m := newTestManager(f.URL())

	early := make(chan models.ChatMessage, 1)
	m.OnReceiveMessage(func(msg models.ChatMessage) { early <- msg })

	_, err := m.Connect(context.Background(), fakeValidToken)
	require.NoError(t, err)
	defer m.Disconnect()

	// a later handler on another event acts as a barrier
	barrier := make(chan struct{}, 1)
	m.OnUserTyping(func(models.TypingEvent) { barrier <- struct{}{} })

	f.push(`42["receive_message",{"senderId":"u1","content":"hello"}]`)
	f.push(`42["user_typing",{"userId":"u1"}]`)

	select {
	case <-barrier:
	case <-time.After(2 * time.Second):
		t.Fatal("barrier handler not called")
	}
	assert.Empty(t, early)
}

func TestManager_OffRemovesHandlers(t *testing.T) {
	f := newFakeSocketIO(t)
	m := connectedManager(t, f)

	removed := make(chan struct{}, 4)
	m.OnReceiveMessage(func(models.ChatMessage) { removed <- struct{}{} })
	m.OnUserStopTyping(func(models.TypingEvent) { removed <- struct{}{} })
	m.OffReceiveMessage()
	m.OffUserStopTyping()

	barrier := make(chan struct{}, 1)
	m.OnUserTyping(func(models.TypingEvent) { barrier <- struct{}{} })

	f.push(`42["receive_message",{"content":"hello"}]`)
	f.push(`42["user_stop_typing",{"userId":"u1"}]`)
	f.push(`42["user_typing",{"userId":"u1"}]`)

	select {
	case <-barrier:
	case <-time.After(2 * time.Second):
		t.Fatal("barrier handler not called")
	}
	assert.Empty(t, removed)

	m.OffUserTyping()
	assert.NotPanics(t, newTestManager("http://localhost:1").OffUserTyping)
}

func TestManager_BadPayloadSkipsHandler(t *testing.T) {
	f := newFakeSocketIO(t)
	m := connectedManager(t, f)

	bad := make(chan struct{}, 1)
	m.OnReceiveMessage(func(models.ChatMessage) { bad <- struct{}{} })
	barrier := make(chan struct{}, 1)
	m.OnUserTyping(func(models.TypingEvent) { barrier <- struct{}{} })

	f.push(`42["receive_message","not an object"]`)
	f.push(`42["user_typing",{"userId":"u1"}]`)

	select {
	case <-barrier:
	case <-time.After(2 * time.Second):
		t.Fatal("barrier handler not called")
	}
	assert.Empty(t, bad)
	assert.True(t, m.IsConnected())
}

// ── heartbeat ──

func TestSocket_AnswersPing(t *testing.T) {
	f := newFakeSocketIO(t)
	connectedManager(t, f)

	f.push("2")

	select {
	case p := <-f.received:
		assert.Equal(t, "3", p)
	case <-time.After(2 * time.Second):
		t.Fatal("no pong")
	}
}

func TestSocket_LifecycleEvents(t *testing.T) {
	f := newFakeSocketIO(t)
	m := connectedManager(t, f)
	socket := m.Connection()

	reasons := make(chan string, 1)
	socket.On(EventDisconnect, func(args []json.RawMessage) {
		var reason string
		_ = json.Unmarshal(args[0], &reason)
		reasons <- reason
	})

	f.push("1")

	select {
	case reason := <-reasons:
		assert.Equal(t, "transport close", reason)
	case <-time.After(2 * time.Second):
		t.Fatal("disconnect not reported")
	}
	assert.ErrorIs(t, socket.Emit("x", nil), ErrNotConnected)
}
