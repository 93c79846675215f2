package domain

import "strings"

const commandPrefix = "/"

// Command is the classification of one line typed by the user.
type Command interface {
	Name() string
}

type BroadcastCommand struct {
	Text string
}

type NickCommand struct {
	Nick string
}

// AddCommand holds at most two tokens: an address and an optional port.
type AddCommand struct {
	Args []string
}

type ListCommand struct{}

type WhoAmICommand struct{}

type ExitCommand struct{}

type StatsCommand struct{}

// UnknownCommand is any slash keyword nobody handles. It is ignored silently.
type UnknownCommand struct {
	Keyword string
}

func (BroadcastCommand) Name() string { return "broadcast" }
func (NickCommand) Name() string      { return "nick" }
func (AddCommand) Name() string       { return "add" }
func (ListCommand) Name() string      { return "list" }
func (WhoAmICommand) Name() string    { return "whoami" }
func (ExitCommand) Name() string      { return "exit" }
func (StatsCommand) Name() string     { return "stats" }
func (c UnknownCommand) Name() string { return c.Keyword }

// ParseInput classifies a line. It returns nil for an empty line.
// Keywords are case-sensitive and are the first whitespace-delimited token after the slash.
func ParseInput(line string) Command {
	if line == "" {
		return nil
	}
	rest, ok := strings.CutPrefix(line, commandPrefix)
	if !ok {
		return BroadcastCommand{Text: line}
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return UnknownCommand{}
	}
	keyword, args := fields[0], fields[1:]

	switch keyword {
	case "nick":
		nick := ""
		if len(args) > 0 {
			nick = args[0]
		}
		return NickCommand{Nick: nick}
	case "add":
		return AddCommand{Args: args[:min(len(args), 2)]}
	case "list":
		return ListCommand{}
	case "whoami":
		return WhoAmICommand{}
	case "exit":
		return ExitCommand{}
	case "stats":
		return StatsCommand{}
	default:
		return UnknownCommand{Keyword: keyword}
	}
}
