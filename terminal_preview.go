// terminal_preview.go - ANSI truecolor frame preview

package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalPreview renders frames into the controlling terminal using
// half-block glyphs, two frame rows per character cell. Debug/demo output
// only; it has no part in the render tree.
type TerminalPreview struct {
	out  *os.File
	cols int
	rows int
}

func NewTerminalPreview() (*TerminalPreview, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("terminal preview: stdout is not a terminal")
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal preview: %w", err)
	}
	if rows > 1 {
		rows-- // keep one line for the status row
	}
	// Hide the cursor while previewing.
	fmt.Fprint(os.Stdout, "\x1b[?25l\x1b[2J")
	return &TerminalPreview{out: os.Stdout, cols: cols, rows: rows}, nil
}

// Render draws one frame, nearest-neighbour sampled to the terminal size.
func (p *TerminalPreview) Render(fb []uint32, w, h int) {
	if w <= 0 || h <= 0 || len(fb) < w*h {
		return
	}
	var sb strings.Builder
	sb.Grow(p.cols * p.rows * 40)
	sb.WriteString("\x1b[H")

	for ty := 0; ty < p.rows; ty++ {
		topY := (ty * 2) * h / (p.rows * 2)
		botY := (ty*2 + 1) * h / (p.rows * 2)
		for tx := 0; tx < p.cols; tx++ {
			x := tx * w / p.cols
			top := fb[topY*w+x]
			bot := fb[botY*w+x]
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				(top>>16)&0xFF, (top>>8)&0xFF, top&0xFF,
				(bot>>16)&0xFF, (bot>>8)&0xFF, bot&0xFF)
		}
		sb.WriteString("\x1b[0m\n")
	}
	fmt.Fprint(p.out, sb.String())
}

// Close restores the cursor and resets colours.
func (p *TerminalPreview) Close() {
	fmt.Fprint(p.out, "\x1b[0m\x1b[?25h\n")
}
