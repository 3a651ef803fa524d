// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const (
	fakeValidToken = "valid-token"
	fakeOpenPacket = `0{"sid":"eio-1","upgrades":[],"pingInterval":25000,"pingTimeout":20000,"maxPayload":1000000}`
)

// fakeSocketIO is a minimal Socket.IO v4 server speaking both transports.
type fakeSocketIO struct {
	t   *testing.T
	srv *httptest.Server

	rejectWebSocket bool
	// silentWebSocket upgrades and then never sends the open packet.
	silentWebSocket bool

	handshakes   atomic.Int32
	pollingOpens atomic.Int32

	// postDelay holds each polling POST open; postsInFlight and postOverlaps
	// track concurrent POSTs on the session.
	postDelay     time.Duration
	postsInFlight atomic.Int32
	postOverlaps  atomic.Int32

	// received gets every client packet sent after the connect packet.
	received chan string

	mu      sync.Mutex
	wsConns []*websocket.Conn
	outbox  chan string
}

func newFakeSocketIO(t *testing.T) *fakeSocketIO {
	t.Helper()

	f := &fakeSocketIO{
		t:        t,
		received: make(chan string, 64),
		outbox:   make(chan string, 64),
	}

	r := chi.NewRouter()
	r.HandleFunc("/socket.io/", f.serve)
	f.srv = httptest.NewServer(r)

	t.Cleanup(func() {
		f.mu.Lock()
		for _, c := range f.wsConns {
			c.Close()
		}
		f.mu.Unlock()
		f.srv.Close()
	})
	return f
}

func (f *fakeSocketIO) URL() string {
	return f.srv.URL
}

func (f *fakeSocketIO) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("EIO") != "4" {
		http.Error(w, "unsupported protocol version", http.StatusBadRequest)
		return
	}

	switch r.URL.Query().Get("transport") {
	case TransportWebSocket:
		f.serveWebSocket(w, r)
	case TransportPolling:
		f.servePolling(w, r)
	default:
		http.Error(w, "unknown transport", http.StatusBadRequest)
	}
}

// authPacket answers a "40{...}" connect packet.
func (f *fakeSocketIO) authPacket(raw string) string {
	f.handshakes.Add(1)

	var auth struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal([]byte(strings.TrimPrefix(raw, "40")), &auth)
	if auth.Token != fakeValidToken {
		return `44{"message":"Authentication error"}`
	}
	return `40{"sid":"sio-1"}`
}

func (f *fakeSocketIO) serveWebSocket(w http.ResponseWriter, r *http.Request) {
	if f.rejectWebSocket {
		http.Error(w, "websocket disabled", http.StatusBadRequest)
		return
	}

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	if f.silentWebSocket {
		f.mu.Lock()
		f.wsConns = append(f.wsConns, conn)
		f.mu.Unlock()
		_, _, _ = conn.ReadMessage()
		return
	}

	if err = conn.WriteMessage(websocket.TextMessage, []byte(fakeOpenPacket)); err != nil {
		return
	}

	_, msg, err := conn.ReadMessage()
	if err != nil || !strings.HasPrefix(string(msg), "40") {
		return
	}

	reply := f.authPacket(string(msg))
	if err = conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil || strings.HasPrefix(reply, "44") {
		return
	}

	f.mu.Lock()
	f.wsConns = append(f.wsConns, conn)
	f.mu.Unlock()

	for {
		_, msg, err = conn.ReadMessage()
		if err != nil {
			return
		}
		f.received <- string(msg)
	}
}

func (f *fakeSocketIO) servePolling(w http.ResponseWriter, r *http.Request) {
	sid := r.URL.Query().Get("sid")

	switch {
	case r.Method == http.MethodGet && sid == "":
		f.pollingOpens.Add(1)
		_, _ = io.WriteString(w, fakeOpenPacket)

	case r.Method == http.MethodPost:
		if f.postsInFlight.Add(1) > 1 {
			f.postOverlaps.Add(1)
		}
		defer f.postsInFlight.Add(-1)
		time.Sleep(f.postDelay)

		body, _ := io.ReadAll(r.Body)
		for _, p := range strings.Split(string(body), recordSeparator) {
			if strings.HasPrefix(p, "40") {
				f.outbox <- f.authPacket(p)
				continue
			}
			f.received <- p
		}
		_, _ = io.WriteString(w, "ok")

	case r.Method == http.MethodGet:
		var packets []string
		select {
		case p := <-f.outbox:
			packets = append(packets, p)
		case <-time.After(time.Second):
			packets = append(packets, "6")
		case <-r.Context().Done():
			return
		}
	drain:
		for {
			select {
			case p := <-f.outbox:
				packets = append(packets, p)
			default:
				break drain
			}
		}
		_, _ = io.WriteString(w, strings.Join(packets, recordSeparator))
	}
}

// push delivers a server packet to the client on the latest connection.
func (f *fakeSocketIO) push(packet string) {
	f.t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.wsConns) == 0 {
		f.outbox <- packet
		return
	}
	conn := f.wsConns[len(f.wsConns)-1]
	if err := conn.WriteMessage(websocket.TextMessage, []byte(packet)); err != nil {
		f.t.Fatalf("push %q: %v", packet, err)
	}
}

// next returns the next client packet that is not a pong.
func (f *fakeSocketIO) next(t *testing.T) string {
	t.Helper()

	for {
		select {
		case p := <-f.received:
			if p == "3" {
				continue
			}
			return p
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for a client packet")
			return ""
		}
	}
}

// nothingWithin asserts that no event packet arrives for d.
func (f *fakeSocketIO) nothingWithin(t *testing.T, d time.Duration) {
	t.Helper()

	deadline := time.After(d)
	for {
		select {
		case p := <-f.received:
			if strings.HasPrefix(p, "42") {
				t.Fatalf("unexpected event packet %q", p)
			}
		case <-deadline:
			return
		}
	}
}
