package e2e

import (
	"context"
	"fmt"
	"io"
	"net/netip"
	"slices"
	"sync"
	"testing"
	"time"
	"udp-chat/domain"
	"udp-chat/observability"
	"udp-chat/runtime"
	"udp-chat/runtime/workers"
	"udp-chat/transport"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

const defaultRestart = 100 * time.Millisecond

type BasePeerSuite struct {
	suite.Suite
	Config Config
	peers  []*Peer
}

// SetupSuite loads the environment configuration before running tests
func (s *BasePeerSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BasePeerSuite) TearDownTest() {
	for _, peer := range s.peers {
		peer.Close()
	}
	s.peers = nil
}

// Step prints a colorized header for a scenario step in logs
func (s *BasePeerSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Peer is a complete chat instance on a real loopback socket, typed into through a pipe.
type Peer struct {
	Name         string
	endpoint     *transport.UDPTransport
	screen       *screen
	input        *io.PipeWriter
	orchestrator *runtime.Orchestrator
	done         chan struct{}
	err          error
	once         sync.Once
}

// StartPeer binds a system picked port and runs the session in the background.
func (s *BasePeerSuite) StartPeer(t *testing.T, name string) *Peer {
	log := logs.GetLoggerFromString("ERROR")
	counters := observability.NewCounters()
	endpoint, err := transport.Bind(netip.MustParseAddr(s.Config.BindHost), 0, 10000, counters, log)
	s.Require().NoError(err, "Failed to bind peer "+name)

	history := runtime.NewHistory()
	screen := &screen{}
	receiver := workers.NewReceiverWorker(endpoint, history, screen, log)
	session := runtime.NewSession(log, endpoint, runtime.NewRegistry(), history, screen,
		counters, observability.ProcessStats)
	orchestrator := runtime.NewOrchestrator(log, workers.NewSupervisor(log, defaultRestart), session, receiver)

	reader, writer := io.Pipe()
	peer := &Peer{
		Name:         name,
		endpoint:     endpoint,
		screen:       screen,
		input:        writer,
		orchestrator: orchestrator,
		done:         make(chan struct{}),
	}
	orchestrator.Start(context.Background())
	go func() {
		defer close(peer.done)
		peer.err = orchestrator.Run(context.Background(), reader)
		orchestrator.Stop()
	}()
	t.Logf("%s listening on %s", name, peer.Address())
	s.peers = append(s.peers, peer)
	return peer
}

func (p *Peer) Address() netip.AddrPort {
	return p.endpoint.LocalAddr()
}

// Type sends one line to the peer input, as if typed and followed by Enter.
func (p *Peer) Type(line string) error {
	_, err := fmt.Fprintln(p.input, line)
	return err
}

// Transcript is the history as last drawn on screen.
func (p *Peer) Transcript() []domain.Entry {
	return p.screen.transcript()
}

// Status is the last non empty status drawn on screen.
func (p *Peer) Status() domain.Status {
	return p.screen.lastStatus()
}

// Done is closed once the session has ended and the receiver has stopped.
func (p *Peer) Done() <-chan struct{} {
	return p.done
}

// Err is the session result, valid once Done is closed.
func (p *Peer) Err() error {
	return p.err
}

func (p *Peer) Close() {
	p.once.Do(func() {
		_ = p.input.Close()
		<-p.done
		_ = p.endpoint.Close()
	})
}

// screen records what would be drawn instead of writing escape sequences.
type screen struct {
	mu      sync.Mutex
	history []domain.Entry
	status  domain.Status
}

func (s *screen) Redraw(history []domain.Entry, status *domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = slices.Clone(history)
	if status != nil {
		s.status = *status
	}
	return nil
}

func (s *screen) Prompt() error {
	return nil
}

func (s *screen) transcript() []domain.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}

func (s *screen) lastStatus() domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
