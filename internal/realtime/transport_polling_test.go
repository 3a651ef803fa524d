// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-issue-desk/internal/logger"
)

func TestPollingTransport_SendIsSerialized(t *testing.T) {
	f := newFakeSocketIO(t)
	f.postDelay = 20 * time.Millisecond

	tr, err := newPollingTransport(f.URL(), logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	hs, err := tr.Open(ctx)
	require.NoError(t, err)
	assert.Equal(t, "eio-1", hs.SID)

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, tr.Send(ctx, `42["ping_test"]`))
		}()
	}
	wg.Wait()

	for range 5 {
		assert.Equal(t, `42["ping_test"]`, f.next(t))
	}
	assert.Zero(t, f.postOverlaps.Load())

	require.NoError(t, tr.Close())
	assert.ErrorIs(t, tr.Send(ctx, `42["ping_test"]`), ErrTransportClosed)
}
