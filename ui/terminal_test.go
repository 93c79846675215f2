package ui

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"udp-chat/domain"

	"github.com/stretchr/testify/require"
)

func TestTerminal_RedrawWritesSequences(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	terminal := NewTerminalWithSize(&out, func() (int, error) { return 5, nil }, false, slog.Default())
	status := domain.WhoAmI(9000)

	req.NoError(terminal.Redraw([]domain.Entry{"hello\t127.0.0.1:9001"}, &status))

	written := out.String()
	req.True(strings.HasPrefix(written, "\x1b[?25l\x1b7\x1b[1A\x1b[2K\x1b[1J\x1b[1;1H"))
	req.Contains(written, "hello\t127.0.0.1:9001\x1b[1E")
	req.Contains(written, "Your port is: 9000\x1b[1F")
	req.True(strings.HasSuffix(written, "\x1b8\x1b[?25h"))
}

func TestTerminal_FallsBackToDefaultHeight(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	terminal := NewTerminalWithSize(&out, func() (int, error) { return 0, fmt.Errorf("not a terminal") },
		false, slog.Default())

	req.NoError(terminal.Redraw(entries(40), nil))

	// 24 rows minus the input line
	req.Equal(defaultHeight-1, strings.Count(out.String(), "\x1b[1E"))
	req.NotContains(out.String(), "message 16\t")
	req.Contains(out.String(), "message 17\t")
}

func TestTerminal_ConcurrentRedrawsDoNotInterleave(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	terminal := NewTerminalWithSize(&out, func() (int, error) { return 3, nil }, false, slog.Default())
	single := Plan([]domain.Entry{"x"}, nil, 3)
	var expected strings.Builder
	for _, i := range single {
		expected.WriteString(i.Sequence())
	}

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = terminal.Redraw([]domain.Entry{"x"}, nil)
		}()
	}
	wg.Wait()

	req.Equal(strings.Repeat(expected.String(), 20), out.String())
}

func TestTerminal_PromptAndAlternateScreen(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	terminal := NewTerminalWithSize(&out, func() (int, error) { return 24, nil }, true, slog.Default())

	req.NoError(terminal.EnterAlternateScreen())
	req.NoError(terminal.Prompt())
	req.NoError(terminal.LeaveAlternateScreen())

	req.Equal("\x1b[?1049h\x1b[2J\x1b[1;1H> \x1b[?1049l", out.String())
}
