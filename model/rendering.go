package model

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	GlyphAlive = "█"
	GlyphDead  = " "

	// ClearScreen erases the terminal and moves the cursor home
	ClearScreen = "\x1b[2J\x1b[H"
)

// Render projects the grid onto one line of glyphs per row
func Render(g *Grid) []string {
	lines := make([]string, g.rows)
	var sb strings.Builder
	for r := range g.rows {
		sb.Reset()
		for c := range g.cols {
			if g.cells[r][c] {
				sb.WriteString(GlyphAlive)
			} else {
				sb.WriteString(GlyphDead)
			}
		}
		lines[r] = sb.String()
	}
	return lines
}

// TerminalRenderer writes frames to a terminal
type TerminalRenderer struct {
	out  io.Writer
	pool *FramePool
}

// NewTerminalRenderer returns a renderer writing to out. A nil pool
// allocates a fresh buffer for every frame.
func NewTerminalRenderer(out io.Writer, pool *FramePool) *TerminalRenderer {
	return &TerminalRenderer{out: out, pool: pool}
}

// Display clears the screen and draws the grid in a single write
func (r *TerminalRenderer) Display(g *Grid) error {
	var buf *bytes.Buffer
	if r.pool != nil {
		buf = r.pool.Get()
		defer r.pool.Put(buf)
	} else {
		buf = new(bytes.Buffer)
	}

	buf.WriteString(ClearScreen)
	for _, line := range Render(g) {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if _, err := r.out.Write(buf.Bytes()); err != nil {
		return errors.Wrapf(err, "[Display] failed to write generation %d", g.generation)
	}
	return nil
}
