package runtime

import (
	"context"
	"io"
	"log/slog"
	"net/netip"
	"strings"
	"testing"
	"time"
	"udp-chat/domain"
	"udp-chat/mocks"
	"udp-chat/observability"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	session     *Session
	broadcaster *mocks.MockBroadcaster
	renderer    *mocks.MockRenderer
	registry    *Registry
	history     *History
}

func newSessionFixture(t *testing.T) sessionFixture {
	ctrl := gomock.NewController(t)
	broadcaster := mocks.NewMockBroadcaster(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)
	registry := NewRegistry()
	history := NewHistory()
	stats := func() (observability.ProcessSnapshot, error) {
		return observability.ProcessSnapshot{RSS: 4096}, nil
	}
	session := NewSession(logs.GetLoggerFromLevel(slog.LevelDebug), broadcaster, registry,
		history, renderer, observability.NewCounters(), stats)
	return sessionFixture{
		session:     session,
		broadcaster: broadcaster,
		renderer:    renderer,
		registry:    registry,
		history:     history,
	}
}

func TestSession_AddInvalidAddress_ShowsUsageOnce(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	// Then the usage status is shown on the first redraw only
	gomock.InOrder(
		f.renderer.EXPECT().Redraw(gomock.Any(), lo.ToPtr(domain.UsageAdd)).Return(nil),
		f.renderer.EXPECT().Redraw(gomock.Any(), gomock.Nil()).Return(nil),
	)

	// When an invalid address is added
	req.False(f.session.Handle("/add not-an-ip"))
	req.NoError(f.session.Flush())
	req.NoError(f.session.Flush())

	// And the registry is unchanged
	req.Empty(f.registry.List())
}

func TestSession_AddThenBroadcast(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	destination := netip.MustParseAddrPort("127.0.0.1:9001")

	// Then the line is sent as typed, without nickname
	f.broadcaster.EXPECT().
		Broadcast([]byte("hello"), []netip.AddrPort{destination}).
		Return(0).
		Times(1)

	// When a destination is added and a line is typed
	req.False(f.session.Handle("/add 127.0.0.1 9001"))
	req.False(f.session.Handle("hello"))
}

func TestSession_Nick_AnnouncesAndPrefixes(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	req.NoError(f.registry.Add([]string{"127.0.0.1", "9001"}))
	destinations := f.registry.List()

	gomock.InOrder(
		f.broadcaster.EXPECT().Broadcast([]byte("Changed nick to alice"), destinations).Return(0),
		f.broadcaster.EXPECT().Broadcast([]byte("alice: hi there"), destinations).Return(0),
	)

	// When the nick is changed, extra tokens ignored, then a line is typed
	req.False(f.session.Handle("/nick alice ignored"))
	req.False(f.session.Handle("hi there"))
	req.Equal("alice", f.session.nick)
}

func TestSession_BroadcastFailuresAreNotSurfaced(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	req.NoError(f.registry.Add([]string{"127.0.0.1", "9001"}))

	f.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Return(1)
	f.renderer.EXPECT().Redraw(gomock.Any(), gomock.Nil()).Return(nil)

	// When every send fails
	req.False(f.session.Handle("hello"))

	// Then no status is shown
	req.NoError(f.session.Flush())
}

func TestSession_WhoAmI(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	f.broadcaster.EXPECT().LocalPort().Return(uint16(9000))
	f.renderer.EXPECT().Redraw(gomock.Any(), lo.ToPtr(domain.Status("Your port is: 9000"))).Return(nil)

	req.False(f.session.Handle("/whoami"))
	req.NoError(f.session.Flush())
}

func TestSession_List(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	req.NoError(f.registry.Add([]string{"127.0.0.1", "9001"}))
	req.NoError(f.registry.Add([]string{"127.0.0.1", "9002"}))

	f.renderer.EXPECT().
		Redraw(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ []domain.Entry, status *domain.Status) error {
			req.Equal([]string{"127.0.0.1:9001", "127.0.0.1:9002"}, status.Lines())
			return nil
		})

	req.False(f.session.Handle("/list"))
	req.NoError(f.session.Flush())
}

func TestSession_Stats(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	f.history.Append("hello\t127.0.0.1:9001")

	expected := domain.Status("entries=1 destinations=0 received=0 sent=0 failed=0 rss=4096")
	f.renderer.EXPECT().Redraw(gomock.Any(), lo.ToPtr(expected)).Return(nil)

	req.False(f.session.Handle("/stats"))
	req.NoError(f.session.Flush())
}

func TestSession_UnknownCommandAndEmptyLine(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	// Then nothing is broadcast and no status is produced
	f.renderer.EXPECT().Redraw(gomock.Any(), gomock.Nil()).Return(nil).Times(2)

	req.False(f.session.Handle("/dance"))
	req.NoError(f.session.Flush())
	req.False(f.session.Handle(""))
	req.NoError(f.session.Flush())
}

func TestSession_Run_StopsOnExit(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	f.history.Append("hi\t127.0.0.1:9001")

	f.renderer.EXPECT().Prompt().Return(nil).AnyTimes()
	f.broadcaster.EXPECT().LocalPort().Return(uint16(9000))
	f.renderer.EXPECT().
		Redraw([]domain.Entry{"hi\t127.0.0.1:9001"}, lo.ToPtr(domain.WhoAmI(9000))).
		Return(nil)

	// Given a line typed after /exit
	input := strings.NewReader("/whoami\n/exit\nhello\n")

	// Then the session returns before broadcasting it
	req.NoError(f.session.Run(context.Background(), input))
}

func TestSession_Run_StopsOnEndOfInput(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	f.renderer.EXPECT().Prompt().Return(nil).AnyTimes()
	f.renderer.EXPECT().Redraw(gomock.Any(), gomock.Nil()).Return(nil).Times(1)

	req.NoError(f.session.Run(context.Background(), strings.NewReader("\n")))
}

func TestSession_Run_KeepsGoingAfterOverlongLine(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	long := strings.Repeat("a", 70000)

	f.renderer.EXPECT().Prompt().Return(nil).AnyTimes()
	f.broadcaster.EXPECT().LocalPort().Return(uint16(9000))
	// Then the long line and the next one are both broadcast as typed
	gomock.InOrder(
		f.broadcaster.EXPECT().Broadcast([]byte(long), gomock.Any()).Return(0),
		f.broadcaster.EXPECT().Broadcast([]byte("hello"), gomock.Any()).Return(0),
	)
	gomock.InOrder(
		f.renderer.EXPECT().Redraw(gomock.Any(), gomock.Nil()).Return(nil).Times(2),
		f.renderer.EXPECT().Redraw(gomock.Any(), lo.ToPtr(domain.WhoAmI(9000))).Return(nil),
	)

	// Given a line longer than any default scanner buffer, typed with a CRLF ending
	input := strings.NewReader(long + "\r\nhello\n/whoami")

	// When the session reads it, then it does not fail and reaches the last command
	req.NoError(f.session.Run(context.Background(), input))
}

func TestSession_Run_StopsOnCancel(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	f.renderer.EXPECT().Prompt().Return(nil).AnyTimes()

	// Given an input that never delivers a line
	blocked, writer := io.Pipe()
	defer writer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- f.session.Run(ctx, blocked) }()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("Session did not stop on cancellation")
	}
}
