// Package transport owns the single UDP endpoint of the process.
// Sends are fire-and-forget: UDP gives no delivery guarantee and none is added.
package transport

import (
	"fmt"
	"log/slog"
	"net"
	"net/netip"
	"time"
	"udp-chat/contract"
	"udp-chat/errors"
	"udp-chat/observability"
)

type UDPTransport struct {
	conn       *net.UDPConn
	bufferSize int
	counters   *observability.Counters
	log        *slog.Logger
}

// Bind reserves the local UDP port on host. Port 0 lets the system pick one.
func Bind(host netip.Addr, port uint16, bufferSize int,
	counters *observability.Counters, log *slog.Logger) (*UDPTransport, error) {
	local := net.UDPAddrFromAddrPort(netip.AddrPortFrom(host, port))
	conn, err := net.ListenUDP("udp", local)
	if err != nil {
		return nil, fmt.Errorf("%w: port %d: %w", errors.ErrBindFailed, port, err)
	}
	log.Debug("UDP endpoint bound", "address", conn.LocalAddr().String())
	return &UDPTransport{conn: conn, bufferSize: bufferSize, counters: counters, log: log}, nil
}

// Receive blocks until a datagram arrives and returns its payload and sender.
func (t *UDPTransport) Receive() ([]byte, netip.AddrPort, error) {
	buf := make([]byte, t.bufferSize)
	n, from, err := t.conn.ReadFromUDPAddrPort(buf)
	if err != nil {
		return nil, netip.AddrPort{}, err
	}
	t.counters.IncrReceived(n)
	return buf[:n], netip.AddrPortFrom(from.Addr().Unmap(), from.Port()), nil
}

// SendTo writes one datagram. The error is only reported to the caller and counted.
func (t *UDPTransport) SendTo(payload []byte, destination netip.AddrPort) error {
	if _, err := t.conn.WriteToUDPAddrPort(payload, destination); err != nil {
		t.counters.IncrSendFailures()
		t.log.Debug("Send failed", "destination", destination.String(), "error", err)
		return err
	}
	t.counters.IncrSent()
	return nil
}

func (t *UDPTransport) Broadcast(payload []byte, destinations []netip.AddrPort) int {
	return Broadcast(t, payload, destinations)
}

// Unblock makes a pending Receive return immediately with a timeout error.
func (t *UDPTransport) Unblock() error {
	return t.conn.SetReadDeadline(time.Now())
}

func (t *UDPTransport) LocalPort() uint16 {
	return t.conn.LocalAddr().(*net.UDPAddr).AddrPort().Port()
}

func (t *UDPTransport) LocalAddr() netip.AddrPort {
	addrPort := t.conn.LocalAddr().(*net.UDPAddr).AddrPort()
	return netip.AddrPortFrom(addrPort.Addr().Unmap(), addrPort.Port())
}

func (t *UDPTransport) Close() error {
	return t.conn.Close()
}

// Broadcast sends payload once per destination, in order.
// A failure never prevents the sends to later destinations. It returns the number of failures.
func Broadcast(sender contract.DatagramSender, payload []byte, destinations []netip.AddrPort) int {
	failures := 0
	for _, destination := range destinations {
		if err := sender.SendTo(payload, destination); err != nil {
			failures++
		}
	}
	return failures
}
