package runtime

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"udp-chat/contract"
	"udp-chat/domain"
	"udp-chat/observability"

	"github.com/samber/lo"
)

// StatsProvider reports process resource usage for /stats.
type StatsProvider func() (observability.ProcessSnapshot, error)

// Session is the foreground input loop: it reads lines, dispatches commands,
// broadcasts messages and hands the pending status to the renderer once.
type Session struct {
	log         *slog.Logger
	broadcaster contract.Broadcaster
	registry    *Registry
	history     *History
	renderer    contract.Renderer
	counters    *observability.Counters
	stats       StatsProvider
	nick        string
	pending     *domain.Status
}

func NewSession(log *slog.Logger, broadcaster contract.Broadcaster, registry *Registry,
	history *History, renderer contract.Renderer, counters *observability.Counters,
	stats StatsProvider) *Session {
	return &Session{
		log:         log,
		broadcaster: broadcaster,
		registry:    registry,
		history:     history,
		renderer:    renderer,
		counters:    counters,
		stats:       stats,
	}
}

type line struct {
	text string
	err  error
}

// Run reads input until /exit, end of input or cancellation of ctx.
// Lines are read in their own goroutine so a cancellation is not held up by a blocked read.
func (s *Session) Run(ctx context.Context, input io.Reader) error {
	done := make(chan struct{})
	defer close(done)
	lines := readLines(input, done)
	for {
		if err := s.renderer.Prompt(); err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		select {
		case <-ctx.Done():
			s.log.Debug("Context done, stopping session")
			return nil
		case l, ok := <-lines:
			if !ok {
				s.log.Debug("End of input")
				return nil
			}
			if l.err != nil {
				return fmt.Errorf("read input: %w", l.err)
			}
			if exit := s.Handle(l.text); exit {
				return nil
			}
			if err := s.Flush(); err != nil {
				return fmt.Errorf("redraw: %w", err)
			}
		}
	}
}

// readLines feeds lines until the input ends or done is closed.
// Lines have no length limit; the trailing "\n" or "\r\n" is removed.
func readLines(input io.Reader, done <-chan struct{}) <-chan line {
	lines := make(chan line)
	send := func(l line) bool {
		select {
		case lines <- l:
			return true
		case <-done:
			return false
		}
	}
	go func() {
		defer close(lines)
		reader := bufio.NewReader(input)
		for {
			text, err := reader.ReadString('\n')
			if text != "" && !send(line{text: trimLineEnd(text)}) {
				return
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				send(line{err: err})
				return
			}
		}
	}()
	return lines
}

func trimLineEnd(text string) string {
	return strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
}

// Handle applies one input line. It reports whether the session must end.
func (s *Session) Handle(text string) bool {
	switch cmd := domain.ParseInput(text).(type) {
	case nil:
	case domain.BroadcastCommand:
		s.broadcast(domain.Compose(s.nick, cmd.Text))
	case domain.NickCommand:
		s.nick = cmd.Nick
		s.broadcast(domain.NickAnnouncement(cmd.Nick))
	case domain.AddCommand:
		if err := s.registry.Add(cmd.Args); err != nil {
			s.log.Debug("Destination rejected", "args", cmd.Args, "error", err)
			s.pending = lo.ToPtr(domain.UsageAdd)
		}
	case domain.ListCommand:
		s.pending = lo.ToPtr(domain.DestinationList(s.registry.List()))
	case domain.WhoAmICommand:
		s.pending = lo.ToPtr(domain.WhoAmI(s.broadcaster.LocalPort()))
	case domain.StatsCommand:
		s.pending = lo.ToPtr(s.statsStatus())
	case domain.ExitCommand:
		return true
	default:
		s.log.Debug("Ignoring unknown command", "keyword", cmd.Name())
	}
	return false
}

// Flush redraws with the pending status, which is then discarded.
func (s *Session) Flush() error {
	status := s.pending
	s.pending = nil
	return s.renderer.Redraw(s.history.Snapshot(), status)
}

func (s *Session) broadcast(payload string) {
	destinations := s.registry.List()
	if failures := s.broadcaster.Broadcast([]byte(payload), destinations); failures > 0 {
		s.log.Debug("Broadcast partially failed", "failures", failures, "destinations", len(destinations))
	}
}

func (s *Session) statsStatus() domain.Status {
	counters := s.counters.Snapshot()
	rss := "unknown"
	if s.stats != nil {
		if snapshot, err := s.stats(); err != nil {
			s.log.Warn("Failed to collect process stats", "error", err)
		} else {
			rss = fmt.Sprintf("%d", snapshot.RSS)
		}
	}
	return domain.Status(fmt.Sprintf("entries=%d destinations=%d received=%d sent=%d failed=%d rss=%s",
		s.history.Len(), s.registry.Len(),
		counters.Received, counters.Sent, counters.SendFailures, rss))
}
