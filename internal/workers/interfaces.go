// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing background workers of
// the client process.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one unit.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must return promptly, launching its own goroutines; the work keeps
// going until ctx is cancelled or Stop is called. Stop blocks until the
// worker's goroutines have exited and is safe to call on a worker that was
// never started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go w.loop(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
