package workers

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"time"
	"udp-chat/contract"
	"udp-chat/domain"
	"udp-chat/errors"
	"udp-chat/moderation"
)

// EntryStore is the part of the history the receiver needs.
type EntryStore interface {
	Append(entry domain.Entry)
	Snapshot() []domain.Entry
}

// ReceiverWorker listens on the endpoint forever:
// Listening -> Formatting -> Appending -> Redrawing -> Listening.
// Cancelling its context is the only shutdown signal; it unblocks the pending receive.
type ReceiverWorker struct {
	receiver    contract.DatagramReceiver
	history     EntryStore
	renderer    contract.Renderer
	moderator   *moderation.Moderator
	sinks       []contract.EntrySink
	sinkTimeout time.Duration
	log         *slog.Logger
}

func NewReceiverWorker(receiver contract.DatagramReceiver, history EntryStore,
	renderer contract.Renderer, log *slog.Logger) *ReceiverWorker {
	return &ReceiverWorker{receiver: receiver, history: history, renderer: renderer, log: log}
}

// WithModerator censors received payloads before they reach the transcript.
func (w *ReceiverWorker) WithModerator(moderator *moderation.Moderator) *ReceiverWorker {
	w.moderator = moderator
	return w
}

// WithSinks feeds every received entry to sinks, each bounded by timeout.
func (w *ReceiverWorker) WithSinks(timeout time.Duration, sinks ...contract.EntrySink) *ReceiverWorker {
	w.sinkTimeout = timeout
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *ReceiverWorker) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		if err := w.receiver.Unblock(); err != nil {
			w.log.Warn("Failed to unblock receiver", "error", err)
		}
	})
	defer stop()

	for {
		payload, from, err := w.receiver.Receive()
		if err != nil {
			if ctx.Err() != nil {
				w.log.Debug("Stopping worker")
				return ctx.Err()
			}
			w.log.Error("Receive failed, no more messages will be shown", "error", err)
			return fmt.Errorf("%w: %w", errors.ErrReceiverStopped, err)
		}
		w.handle(ctx, payload, from)
	}
}

func (w *ReceiverWorker) handle(ctx context.Context, payload []byte, from netip.AddrPort) {
	received := domain.NewReceived(payload, from, time.Now().UTC())
	if w.moderator != nil {
		var words []string
		received.Payload, words = w.moderator.Censor(received.Payload)
		if len(words) > 0 {
			w.log.Debug("Payload censored", "from", from.String(), "id", received.ID, "words", words)
		}
	}

	w.history.Append(received.Entry())
	if err := w.renderer.Redraw(w.history.Snapshot(), nil); err != nil {
		w.log.Warn("Redraw failed", "error", err)
	}

	for _, sink := range w.sinks {
		w.consume(ctx, sink, received)
	}
}

func (w *ReceiverWorker) consume(ctx context.Context, sink contract.EntrySink, received domain.Received) {
	sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
	defer cancel()
	if err := sink.Consume(sinkCtx, received); err != nil {
		w.log.Warn("Sink failed to consume entry", "id", received.ID, "error", err)
	}
}
