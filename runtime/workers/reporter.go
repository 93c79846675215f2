package workers

import (
	"context"
	"log/slog"
	"time"
	"udp-chat/observability"
)

// ReporterWorker logs traffic counters and process memory at a fixed interval.
type ReporterWorker struct {
	counters *observability.Counters
	stats    func() (observability.ProcessSnapshot, error)
	interval time.Duration
	log      *slog.Logger
}

func NewReporterWorker(counters *observability.Counters,
	stats func() (observability.ProcessSnapshot, error),
	interval time.Duration, log *slog.Logger) *ReporterWorker {
	return &ReporterWorker{counters: counters, stats: stats, interval: interval, log: log}
}

// Run reports until context cancellation, with a last report on the way out.
func (w *ReporterWorker) Run(ctx context.Context) error {
	startTime := time.Now()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report(startTime)
			return ctx.Err()
		case <-ticker.C:
			w.report(startTime)
		}
	}
}

func (w *ReporterWorker) report(startTime time.Time) {
	snapshot := w.counters.Snapshot()
	attrs := []any{
		"uptime", time.Since(startTime).Round(time.Second).String(),
		"received", snapshot.Received,
		"received_bytes", snapshot.ReceivedBytes,
		"sent", snapshot.Sent,
		"send_failures", snapshot.SendFailures,
	}
	if process, err := w.stats(); err == nil {
		attrs = append(attrs, "rss", process.RSS, "cpu", process.CPUPercent)
	}
	w.log.Info("Traffic report", attrs...)
}
