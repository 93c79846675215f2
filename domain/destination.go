package domain

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
	"udp-chat/errors"
)

const (
	localhost     = "localhost"
	localhostAddr = "127.0.0.1"
)

// ParseDestination turns the arguments of /add into a peer address.
// The first token is tried as a full "host:port" socket address, otherwise it must be a
// numeric IP followed by a numeric port token. No default port is ever assumed.
func ParseDestination(args []string) (netip.AddrPort, error) {
	if len(args) == 0 {
		return netip.AddrPort{}, fmt.Errorf("%w: missing address", errors.ErrInvalidAddress)
	}
	host := resolveLocalhost(args[0])

	if addrPort, err := netip.ParseAddrPort(host); err == nil {
		return addrPort, nil
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("%w: %q", errors.ErrInvalidAddress, args[0])
	}
	if len(args) < 2 {
		return netip.AddrPort{}, fmt.Errorf("%w: %w: no port given for %s",
			errors.ErrInvalidAddress, errors.ErrInvalidPort, host)
	}
	port, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("%w: %w: %q",
			errors.ErrInvalidAddress, errors.ErrInvalidPort, args[1])
	}
	return netip.AddrPortFrom(addr, uint16(port)), nil
}

// resolveLocalhost maps the literal "localhost", alone or as the host part of "localhost:port".
func resolveLocalhost(host string) string {
	if host == localhost {
		return localhostAddr
	}
	if port, ok := strings.CutPrefix(host, localhost+":"); ok {
		return localhostAddr + ":" + port
	}
	return host
}
