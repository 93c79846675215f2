package transport

import (
	stdErrors "errors"
	"fmt"
	"log/slog"
	"net/netip"
	"testing"
	"time"
	"udp-chat/errors"
	"udp-chat/mocks"
	"udp-chat/observability"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var loopback = netip.MustParseAddr("127.0.0.1")

func bind(t *testing.T, counters *observability.Counters) *UDPTransport {
	t.Helper()
	tr, err := Bind(loopback, 0, 10000, counters, logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })
	return tr
}

func TestBroadcast_OneSendPerDestinationInOrder(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sender := mocks.NewMockDatagramSender(ctrl)
	payload := []byte("hello")

	destinations := []netip.AddrPort{
		netip.MustParseAddrPort("127.0.0.1:9001"),
		netip.MustParseAddrPort("10.255.255.1:9002"),
		netip.MustParseAddrPort("127.0.0.1:9003"),
		netip.MustParseAddrPort("127.0.0.1:9001"),
	}

	// Given the second destination fails
	// Then every destination is still sent to, in registry order
	gomock.InOrder(
		sender.EXPECT().SendTo(payload, destinations[0]).Return(nil),
		sender.EXPECT().SendTo(payload, destinations[1]).Return(fmt.Errorf("network is unreachable")),
		sender.EXPECT().SendTo(payload, destinations[2]).Return(nil),
		sender.EXPECT().SendTo(payload, destinations[3]).Return(nil),
	)

	failures := Broadcast(sender, payload, destinations)
	req.Equal(1, failures)
}

func TestBroadcast_NoDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sender := mocks.NewMockDatagramSender(ctrl)

	// Then no send happens at all
	require.Equal(t, 0, Broadcast(sender, []byte("hello"), nil))
}

func TestUDPTransport_SendAndReceive(t *testing.T) {
	req := require.New(t)
	counters := observability.NewCounters()
	alice := bind(t, counters)
	bob := bind(t, observability.NewCounters())

	// When alice broadcasts to bob
	failures := alice.Broadcast([]byte("hello"), []netip.AddrPort{bob.LocalAddr()})
	req.Equal(0, failures)

	// Then bob receives exactly the payload, from alice
	payload, from, err := bob.Receive()
	req.NoError(err)
	req.Equal([]byte("hello"), payload)
	req.Equal(alice.LocalAddr(), from)
	req.Equal(uint64(1), counters.Snapshot().Sent)
}

func TestUDPTransport_BindFailsWhenPortInUse(t *testing.T) {
	req := require.New(t)
	first := bind(t, observability.NewCounters())

	// When a second endpoint binds the same port
	_, err := Bind(loopback, first.LocalPort(), 10000, observability.NewCounters(), slog.Default())

	// Then binding fails
	req.Error(err)
	req.True(stdErrors.Is(err, errors.ErrBindFailed))
}

func TestUDPTransport_UnblockReleasesReceive(t *testing.T) {
	req := require.New(t)
	tr := bind(t, observability.NewCounters())
	done := make(chan error, 1)

	// Given a receive blocked without any traffic
	go func() {
		_, _, err := tr.Receive()
		done <- err
	}()

	// When the endpoint is unblocked
	time.Sleep(20 * time.Millisecond)
	req.NoError(tr.Unblock())

	// Then receive returns an error
	select {
	case err := <-done:
		req.Error(err)
	case <-time.After(time.Second):
		req.Fail("Receive did not return after Unblock")
	}
}
