package runtime

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
	"udp-chat/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrchestrator_RunsReceiverUntilStopped(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockISupervisor(ctrl)
	receiver := mocks.NewMockWorker(ctrl)

	running := make(chan struct{})
	// Given a supervisor that blocks until its context is cancelled
	supervisor.EXPECT().Add(receiver).Return(supervisor)
	supervisor.EXPECT().Run(gomock.Any()).Do(func(ctx context.Context) {
		close(running)
		<-ctx.Done()
	})
	supervisor.EXPECT().Stop()
	f.renderer.EXPECT().Prompt().Return(nil).AnyTimes()

	orchestrator := NewOrchestrator(slog.Default(), supervisor, f.session, receiver)

	// When the session ends on /exit
	orchestrator.Start(context.Background())
	<-running
	req.NoError(orchestrator.Run(context.Background(), strings.NewReader("/exit\n")))

	// Then Stop returns once the receiver is done
	stopped := make(chan struct{})
	go func() {
		orchestrator.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		req.Fail("Orchestrator did not stop")
	}
}

func TestOrchestrator_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockISupervisor(ctrl)

	// Then no supervisor call is made
	NewOrchestrator(slog.Default(), supervisor, nil, mocks.NewMockWorker(ctrl)).Stop()
}
