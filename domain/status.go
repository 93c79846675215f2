package domain

import (
	"fmt"
	"net/netip"
	"strings"
)

// Status is a transient message shown once above the input line.
type Status string

const UsageAdd Status = "usage: /add [address:port] or [address port]"

// Lines returns the rows of the status, none for a nil or empty status.
func (s *Status) Lines() []string {
	if s == nil || *s == "" {
		return nil
	}
	return SplitLines(string(*s))
}

func WhoAmI(port uint16) Status {
	return Status(fmt.Sprintf("Your port is: %d", port))
}

// DestinationList puts every destination on its own line, in registry order.
func DestinationList(destinations []netip.AddrPort) Status {
	var sb strings.Builder
	for _, destination := range destinations {
		sb.WriteString(destination.String())
		sb.WriteString("\n")
	}
	return Status(sb.String())
}

// NickAnnouncement is the payload broadcast when the nickname changes.
func NickAnnouncement(nick string) string {
	return fmt.Sprintf("Changed nick to %s", nick)
}

// Compose prefixes an outbound line with the nickname, if any.
func Compose(nick, line string) string {
	if nick == "" {
		return line
	}
	return fmt.Sprintf("%s: %s", nick, line)
}
