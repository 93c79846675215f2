// Package runtime wires the chat session together: destination registry,
// transcript history, the foreground input loop and the supervised receiver.
// It holds no wire or rendering logic.
package runtime

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"udp-chat/contract"
)

// Orchestrator runs the receiver, and any background worker, under supervision
// while the session owns the foreground.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	workers    []contract.Worker
	session    *Session
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	session *Session, workers ...contract.Worker) *Orchestrator {
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		workers:    workers,
		session:    session,
	}
}

// Start launches the supervised workers in the background.
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.done != nil {
		o.log.Warn("Orchestrator already started")
		return
	}
	supervisedCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.done = make(chan struct{})
	o.supervisor.Add(o.workers...)

	o.log.Info("Starting supervised workers", "count", len(o.workers))
	go func(done chan struct{}) {
		defer close(done)
		o.supervisor.Run(supervisedCtx)
	}(o.done)
}

// Run blocks on the input loop until /exit, end of input or cancellation.
func (o *Orchestrator) Run(ctx context.Context, input io.Reader) error {
	return o.session.Run(ctx, input)
}

// Stop signals the workers and waits until they have returned.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	cancel, done := o.cancel, o.done
	o.mu.Unlock()
	if done == nil {
		return
	}

	o.log.Info("Requesting orchestrator shutdown")
	cancel()
	o.supervisor.Stop()
	<-done
	o.log.Debug("Supervised workers stopped")
}
