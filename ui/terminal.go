package ui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"udp-chat/domain"

	"github.com/gookit/color"
	"golang.org/x/term"
)

const (
	defaultHeight  = 24
	prompt         = "> "
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	clearAll       = "\x1b[2J"
)

// SizeFunc reports the terminal height in rows.
type SizeFunc func() (int, error)

// Terminal is the only writer of the screen. Receiver and input loop
// redraw concurrently, the mutex keeps each repaint whole.
type Terminal struct {
	mu      sync.Mutex
	out     io.Writer
	size    SizeFunc
	colours bool
	log     *slog.Logger
}

// NewTerminal draws on f, querying its size before every repaint.
func NewTerminal(f *os.File, colours bool, log *slog.Logger) *Terminal {
	return NewTerminalWithSize(f, func() (int, error) {
		_, height, err := term.GetSize(int(f.Fd()))
		return height, err
	}, colours, log)
}

func NewTerminalWithSize(out io.Writer, size SizeFunc, colours bool, log *slog.Logger) *Terminal {
	return &Terminal{out: out, size: size, colours: colours, log: log}
}

// Redraw repaints the transcript and the optional status above the input line.
func (t *Terminal) Redraw(history []domain.Entry, status *domain.Status) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.write(t.render(Plan(history, status, t.height())))
}

// Prompt marks the start of the input line.
func (t *Terminal) Prompt() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.write(prompt)
}

func (t *Terminal) EnterAlternateScreen() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.write(enterAltScreen + clearAll + "\x1b[1;1H")
}

func (t *Terminal) LeaveAlternateScreen() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.write(leaveAltScreen)
}

func (t *Terminal) height() int {
	height, err := t.size()
	if err != nil || height <= 0 {
		t.log.Debug("Terminal size unavailable, using default", "height", defaultHeight, "error", err)
		return defaultHeight
	}
	return height
}

func (t *Terminal) render(plan []Instruction) string {
	var sb strings.Builder
	for _, instruction := range plan {
		if instruction.Op == OpPrintStatus && t.colours {
			sb.WriteString(color.New(color.FgLightYellow).Sprint(instruction.Text))
			continue
		}
		sb.WriteString(instruction.Sequence())
	}
	return sb.String()
}

func (t *Terminal) write(s string) error {
	if _, err := io.WriteString(t.out, s); err != nil {
		return fmt.Errorf("write terminal: %w", err)
	}
	return nil
}
