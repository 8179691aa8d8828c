package ui

import "github.com/diegok/solopong/internal/game"

// Layout maps field coordinates to terminal cells. Row 0 holds the
// scoreboard, the last row holds the status bar and the court fills the
// rows in between.
type Layout struct {
	Cols, Rows     int
	FieldW, FieldH float64
}

func NewLayout(cols, rows int, fieldW, fieldH float64) Layout {
	return Layout{Cols: cols, Rows: rows, FieldW: fieldW, FieldH: fieldH}
}

// CourtRows is the number of rows available to the court
func (l Layout) CourtRows() int {
	if l.Rows < 3 {
		return 1
	}
	return l.Rows - 2
}

func (l Layout) scaleX() float64 {
	return float64(l.Cols) / l.FieldW
}

func (l Layout) scaleY() float64 {
	return float64(l.CourtRows()) / l.FieldH
}

// CellRect returns the inclusive cell range covered by a field box.
// Every box covers at least one cell.
func (l Layout) CellRect(r game.Rect) (x0, y0, x1, y1 int) {
	sx, sy := l.scaleX(), l.scaleY()

	x0 = int(r.X * sx)
	x1 = int((r.X+r.W)*sx) - 1
	if x1 < x0 {
		x1 = x0
	}

	y0 = 1 + int(r.Y*sy)
	y1 = int((r.Y+r.H)*sy)
	if y1 < y0 {
		y1 = y0
	}

	x0, x1 = clampInt(x0, 0, l.Cols-1), clampInt(x1, 0, l.Cols-1)
	y0, y1 = clampInt(y0, 1, l.CourtRows()), clampInt(y1, 1, l.CourtRows())
	return x0, y0, x1, y1
}

// FieldY converts a screen row to the field coordinate at the row's middle
func (l Layout) FieldY(row int) float64 {
	y := (float64(row-1) + 0.5) / l.scaleY()
	return game.Clamp(y, 0, l.FieldH)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
