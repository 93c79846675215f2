// Package domain contains core concepts of the chat client.
// Transcript entries are immutable and only ever appended.
package domain

import (
	"fmt"
	"net/netip"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ReplacementChar stands in for every invalid UTF-8 sequence of a received payload.
const ReplacementChar = "�"

// Entry is one line of the on-screen transcript.
type Entry string

// Lines splits the entry into terminal rows. An empty entry still occupies one row.
func (e Entry) Lines() []string {
	return SplitLines(string(e))
}

// Received is a datagram accepted by the receiver, after decoding.
type Received struct {
	ID      uuid.UUID
	Payload string
	From    netip.AddrPort
	At      time.Time
}

// NewReceived decodes a raw datagram. Decoding never fails on garbage.
func NewReceived(payload []byte, from netip.AddrPort, at time.Time) Received {
	return Received{
		ID:      uuid.New(),
		Payload: DecodePayload(payload),
		From:    from,
		At:      at,
	}
}

// Entry formats the transcript line as "<payload>\t<sender>".
func (r Received) Entry() Entry {
	return Entry(fmt.Sprintf("%s\t%s", r.Payload, r.From))
}

// DecodePayload turns a datagram into displayable text. Each invalid UTF-8
// sequence becomes one ReplacementChar, as do control characters other than
// tab and line breaks so a peer cannot move the cursor or clear the screen.
func DecodePayload(payload []byte) string {
	var sb strings.Builder
	sb.Grow(len(payload))
	for len(payload) > 0 {
		r, size := utf8.DecodeRune(payload)
		switch {
		case r == utf8.RuneError && size <= 1:
			sb.WriteString(ReplacementChar)
			size = invalidSequenceLen(payload)
		case r == '\r' && len(payload) > 1 && payload[1] == '\n':
			sb.WriteRune(r)
		case isControl(r):
			sb.WriteString(ReplacementChar)
		default:
			sb.WriteRune(r)
		}
		payload = payload[size:]
	}
	return sb.String()
}

func isControl(r rune) bool {
	if r == '\t' || r == '\n' {
		return false
	}
	return r < 0x20 || (r >= 0x7f && r <= 0x9f)
}

// invalidSequenceLen is the length of the longest prefix of p that starts
// a well formed sequence, at least one byte.
func invalidSequenceLen(p []byte) int {
	need := 0
	low, high := byte(0x80), byte(0xbf)
	switch b := p[0]; {
	case b >= 0xc2 && b <= 0xdf:
		need = 1
	case b == 0xe0:
		need, low = 2, 0xa0
	case b >= 0xe1 && b <= 0xec, b == 0xee, b == 0xef:
		need = 2
	case b == 0xed:
		need, high = 2, 0x9f
	case b == 0xf0:
		need, low = 3, 0x90
	case b >= 0xf1 && b <= 0xf3:
		need = 3
	case b == 0xf4:
		need, high = 3, 0x8f
	default:
		return 1
	}
	n := 1
	for n <= need && n < len(p) && p[n] >= low && p[n] <= high {
		n++
		low, high = 0x80, 0xbf
	}
	return n
}

// SplitLines splits on line feeds, drops a carriage return ending each line
// and ignores a single trailing line feed.
func SplitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return lo.Map(strings.Split(s, "\n"), func(line string, _ int) string {
		return strings.TrimSuffix(line, "\r")
	})
}
