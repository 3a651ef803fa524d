// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-issue-desk/internal/logger"
)

const defaultSessionCheckInterval = time.Minute

type clientSessionJob struct {
	auth     ClientAuthService
	interval time.Duration

	mu        sync.Mutex
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	onExpired func()

	logger *logger.Logger
}

// NewClientSessionJob creates a job that checks the stored session every
// interval (one minute when interval is not positive). The job is idle until
// Start is called.
func NewClientSessionJob(auth ClientAuthService, interval time.Duration, logger *logger.Logger) ClientSessionJob {
	if interval <= 0 {
		interval = defaultSessionCheckInterval
	}
	return &clientSessionJob{auth: auth, interval: interval, logger: logger.Component("session-job")}
}

// Start implements ClientSessionJob. It stops any previously running job, then
// launches a background goroutine that checks the session on every tick. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSessionJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx)
			}
		}
	}()
}

// check clears a stored session whose token is no longer valid. Without a
// stored token there is nothing to do.
func (j *clientSessionJob) check(ctx context.Context) {
	if _, ok := j.auth.Token(ctx); !ok {
		return
	}
	if j.auth.IsAuthenticated(ctx) {
		return
	}

	j.logger.Info().Str("func", "clientSessionJob.check").Msg("session expired, logging out")
	if err := j.auth.Logout(ctx); err != nil {
		j.logger.Err(err).Str("func", "clientSessionJob.check").Msg("failed to clear expired session")
		return
	}

	j.mu.Lock()
	onExpired := j.onExpired
	j.mu.Unlock()

	if onExpired != nil {
		onExpired()
	}
}

// Stop implements ClientSessionJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientSessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// OnExpired implements ClientSessionJob.
func (j *clientSessionJob) OnExpired(fn func()) {
	j.mu.Lock()
	j.onExpired = fn
	j.mu.Unlock()
}
