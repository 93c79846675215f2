package domain

import (
	"net/netip"
	"testing"
	"udp-chat/errors"

	stdErrors "errors"

	"github.com/stretchr/testify/require"
)

func TestParseDestination_Valid(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected netip.AddrPort
	}{
		{
			name:     "Combined address and port",
			args:     []string{"127.0.0.1:9001"},
			expected: netip.MustParseAddrPort("127.0.0.1:9001"),
		},
		{
			name:     "Address and port as two tokens",
			args:     []string{"127.0.0.1", "9001"},
			expected: netip.MustParseAddrPort("127.0.0.1:9001"),
		},
		{
			name:     "Localhost is resolved",
			args:     []string{"localhost", "9001"},
			expected: netip.MustParseAddrPort("127.0.0.1:9001"),
		},
		{
			name:     "Combined localhost form",
			args:     []string{"localhost:9002"},
			expected: netip.MustParseAddrPort("127.0.0.1:9002"),
		},
		{
			name:     "Combined form wins over a second token",
			args:     []string{"10.0.0.2:4000", "5000"},
			expected: netip.MustParseAddrPort("10.0.0.2:4000"),
		},
		{
			name:     "IPv6 with separate port",
			args:     []string{"::1", "7000"},
			expected: netip.MustParseAddrPort("[::1]:7000"),
		},
		{
			name:     "IPv6 combined form",
			args:     []string{"[::1]:7000"},
			expected: netip.MustParseAddrPort("[::1]:7000"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			addrPort, err := ParseDestination(tt.args)
			req.NoError(err)
			req.Equal(tt.expected, addrPort)
			req.Equal(tt.expected.Addr(), addrPort.Addr())
			req.Equal(tt.expected.Port(), addrPort.Port())
		})
	}
}

func TestParseDestination_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "No argument", args: nil},
		{name: "Hostname is not resolved", args: []string{"not-an-ip"}},
		{name: "Hostname with port", args: []string{"example.com", "80"}},
		{name: "Bare address without port", args: []string{"127.0.0.1"}},
		{name: "Bare localhost without port", args: []string{"localhost"}},
		{name: "Port is not a number", args: []string{"127.0.0.1", "abc"}},
		{name: "Port out of range", args: []string{"127.0.0.1", "70000"}},
		{name: "Negative port", args: []string{"127.0.0.1", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			addrPort, err := ParseDestination(tt.args)
			req.Error(err)
			req.True(stdErrors.Is(err, errors.ErrInvalidAddress))
			req.False(addrPort.IsValid())
		})
	}
}
