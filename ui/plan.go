// Package ui repaints the transcript above the input line.
// Plan computes the draw instructions; Terminal writes them to the device.
package ui

import (
	"fmt"
	"strings"
	"udp-chat/domain"
)

type Op int

const (
	OpHideCursor Op = iota
	OpShowCursor
	OpSavePosition
	OpRestorePosition
	OpMoveUp
	OpMoveTo
	OpClearLine
	OpClearFromCursorUp
	OpPrint
	OpPrintStatus
	OpNextLine
	OpPreviousLine
)

// Instruction is one terminal draw step. N is a row count for moves,
// Text the content for prints.
type Instruction struct {
	Op   Op
	N    int
	Text string
}

// Sequence returns the ANSI escape sequence, or the text, of the instruction.
func (i Instruction) Sequence() string {
	switch i.Op {
	case OpHideCursor:
		return "\x1b[?25l"
	case OpShowCursor:
		return "\x1b[?25h"
	case OpSavePosition:
		return "\x1b7"
	case OpRestorePosition:
		return "\x1b8"
	case OpMoveUp:
		return fmt.Sprintf("\x1b[%dA", i.N)
	case OpMoveTo:
		return "\x1b[1;1H"
	case OpClearLine:
		return "\x1b[2K"
	case OpClearFromCursorUp:
		return "\x1b[1J"
	case OpNextLine:
		return fmt.Sprintf("\x1b[%dE", i.N)
	case OpPreviousLine:
		return fmt.Sprintf("\x1b[%dF", i.N)
	case OpPrint, OpPrintStatus:
		return i.Text
	default:
		return ""
	}
}

// Plan repaints the region above the input line:
// the newest entries that fit in height-S-1 rows, oldest first, then the S status lines
// right above the input line. The cursor always ends back on the input line.
func Plan(history []domain.Entry, status *domain.Status, height int) []Instruction {
	statusLines := status.Lines()

	plan := []Instruction{
		{Op: OpHideCursor},
		{Op: OpSavePosition},
		{Op: OpMoveUp, N: 1},
		{Op: OpClearLine},
		{Op: OpClearFromCursorUp},
		{Op: OpMoveTo},
	}

	for _, row := range VisibleRows(history, height-len(statusLines)-1) {
		plan = append(plan, Instruction{Op: OpPrint, Text: row}, Instruction{Op: OpNextLine, N: 1})
	}

	plan = append(plan, Instruction{Op: OpRestorePosition})
	if len(statusLines) > 0 {
		plan = append(plan, Instruction{Op: OpMoveUp, N: 1})
		for i := len(statusLines) - 1; i >= 0; i-- {
			plan = append(plan,
				Instruction{Op: OpPrintStatus, Text: strings.TrimSpace(statusLines[i])},
				Instruction{Op: OpPreviousLine, N: 1})
		}
		plan = append(plan, Instruction{Op: OpRestorePosition})
	}
	return append(plan, Instruction{Op: OpShowCursor})
}

// VisibleRows returns the trailing rows of history that fit in budget rows.
// Whole entries are taken newest first; when the newest entry alone is too tall,
// only its last rows are kept.
func VisibleRows(history []domain.Entry, budget int) []string {
	var rows []string
	for i := len(history) - 1; i >= 0 && budget > 0; i-- {
		lines := history[i].Lines()
		if len(lines) > budget {
			if len(rows) == 0 {
				rows = lines[len(lines)-budget:]
			}
			break
		}
		rows = append(lines, rows...)
		budget -= len(lines)
	}
	return rows
}
