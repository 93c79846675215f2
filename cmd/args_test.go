package main

import (
	stdErrors "errors"
	"testing"
	"udp-chat/errors"

	"github.com/stretchr/testify/require"
)

func TestParsePort(t *testing.T) {
	req := require.New(t)

	port, err := parsePort([]string{"9000"})
	req.NoError(err)
	req.Equal(uint16(9000), port)

	for _, args := range [][]string{nil, {"abc"}, {"70000"}, {"-1"}, {"9000", "9001"}} {
		_, err = parsePort(args)
		req.True(stdErrors.Is(err, errors.ErrInvalidPort), "args=%v", args)
	}
}
