package ui

import (
	"strings"

	"github.com/diegok/solopong/internal/game"
)

// ANSI sequences used by plain-text frames
const (
	ansiHome       = "\x1b[H"
	ansiClear      = "\x1b[2J"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// TextFrame rasterizes a snapshot into rows of runes, using the same
// layout as the tcell renderer.
func TextFrame(s game.Snapshot, cols, rows int) []string {
	if cols < 1 || rows < 1 {
		return nil
	}
	l := NewLayout(cols, rows, s.FieldWidth, s.FieldHeight)

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", cols))
	}

	put := func(x, y int, r rune) {
		if y >= 0 && y < rows && x >= 0 && x < cols {
			grid[y][x] = r
		}
	}
	text := func(x, y int, str string) {
		for i, r := range []rune(str) {
			put(x+i, y, r)
		}
	}
	box := func(b game.Rect, r rune) {
		x0, y0, x1, y1 := l.CellRect(b)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				put(x, y, r)
			}
		}
	}

	for y := 1; y <= l.CourtRows(); y += 2 {
		put(cols/2, y, NetChar)
	}

	score := ScoreText(s)
	text((cols-len(score))/2, 0, score)

	box(s.Player, PaddleChar)
	box(s.Opponent, PaddleChar)
	bx, by, _, _ := l.CellRect(s.Ball)
	put(bx, by, 'o')

	if rows > 1 {
		text(0, rows-1, StatusText(s))
	}

	lines := make([]string, rows)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return lines
}

// ANSIFrame renders a full frame that redraws a terminal from the top left
func ANSIFrame(s game.Snapshot, cols, rows int) string {
	var b strings.Builder
	b.WriteString(ansiHome)
	b.WriteString(strings.Join(TextFrame(s, cols, rows), "\r\n"))
	return b.String()
}

// ANSIBegin prepares a terminal for frame streaming
func ANSIBegin() string {
	return ansiClear + ansiHideCursor
}

// ANSIEnd restores the terminal after streaming
func ANSIEnd() string {
	return ansiShowCursor + "\r\n"
}
