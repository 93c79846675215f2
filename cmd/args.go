package main

import (
	"fmt"
	"strconv"
	"udp-chat/errors"
)

const usage = "Usage: udp-chat [port]"

// parsePort reads the single positional argument, the local UDP port.
func parsePort(args []string) (uint16, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected one argument, got %d", errors.ErrInvalidPort, len(args))
	}
	port, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidPort, args[0])
	}
	return uint16(port), nil
}
