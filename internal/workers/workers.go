// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. Nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	kept := make([]Worker, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			kept = append(kept, w)
		}
	}
	return &Workers{workers: kept}
}

// StartAll starts every worker in registration order.
func (w *Workers) StartAll(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// StopAll stops the workers in reverse registration order.
func (w *Workers) StopAll() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
