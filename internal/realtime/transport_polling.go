// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-issue-desk/internal/logger"
)

type pollingTransport struct {
	client *resty.Client
	path   string

	sid    string
	closed atomic.Bool
	seq    atomic.Uint64

	// servers reject overlapping POSTs on one session
	writeMu sync.Mutex

	closeOnce sync.Once
	logger    *logger.Logger
}

func newPollingTransport(baseURL string, log *logger.Logger) (*pollingTransport, error) {
	u, err := endpointURL(baseURL, TransportPolling)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(u.Scheme+"://"+u.Host).
		SetQueryParams(map[string]string{
			"EIO":       protocolVersion,
			"transport": TransportPolling,
		}).
		SetRetryCount(0)

	return &pollingTransport{
		client: client,
		path:   u.Path,
		logger: log,
	}, nil
}

func (t *pollingTransport) Name() string {
	return TransportPolling
}

// request returns a resty request with the session id and a cache buster.
func (t *pollingTransport) request(ctx context.Context) *resty.Request {
	req := t.client.R().
		SetContext(ctx).
		SetQueryParam("t", strconv.FormatUint(t.seq.Add(1), 36))
	if t.sid != "" {
		req.SetQueryParam("sid", t.sid)
	}
	return req
}

func (t *pollingTransport) Open(ctx context.Context) (handshake, error) {
	resp, err := t.request(ctx).Get(t.path)
	if err != nil {
		return handshake{}, fmt.Errorf("polling open: %w", err)
	}
	if !resp.IsSuccess() {
		return handshake{}, fmt.Errorf("polling open: status %d", resp.StatusCode())
	}

	packets := splitPayload(resp.String())
	if len(packets) == 0 {
		return handshake{}, fmt.Errorf("polling open: %w", errEmptyPacket)
	}

	hs, err := decodeHandshake(packets[0])
	if err != nil {
		return handshake{}, err
	}
	t.sid = hs.SID

	t.logger.Debug().Str("func", "pollingTransport.Open").Str("sid", hs.SID).Msg("engine.io handshake completed")
	return hs, nil
}

func (t *pollingTransport) Send(ctx context.Context, packets ...string) error {
	if t.closed.Load() {
		return ErrTransportClosed
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	resp, err := t.request(ctx).
		SetHeader("Content-Type", "text/plain;charset=UTF-8").
		SetBody(joinPayload(packets)).
		Post(t.path)
	if err != nil {
		return fmt.Errorf("polling send: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("polling send: status %d", resp.StatusCode())
	}
	return nil
}

func (t *pollingTransport) Receive(ctx context.Context) ([]string, error) {
	if t.closed.Load() {
		return nil, ErrTransportClosed
	}

	resp, err := t.request(ctx).Get(t.path)
	if err != nil {
		return nil, fmt.Errorf("polling receive: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("polling receive: status %d", resp.StatusCode())
	}

	return splitPayload(resp.String()), nil
}

func (t *pollingTransport) Close() error {
	t.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if t.sid != "" {
			// best effort: the server drops the session on its own after
			// the ping timeout
			_ = t.Send(ctx, string(eioClose))
		}
		t.closed.Store(true)
	})
	return nil
}
