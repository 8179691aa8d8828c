package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/game"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
	NetChar    = '|'
)

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Layout returns the mapping for the current screen size
func (r *Renderer) Layout(fieldW, fieldH float64) Layout {
	w, h := r.screen.Size()
	return NewLayout(w, h, fieldW, fieldH)
}

// Render implements the frame driver's render sink
func (r *Renderer) Render(s game.Snapshot) {
	r.RenderGame(s)
}

// RenderGame displays the field, paddles, ball, score and status bar
func (r *Renderer) RenderGame(s game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	l := NewLayout(screenW, screenH, s.FieldWidth, s.FieldHeight)

	// Court background
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, l.CourtRows(), courtStyle, ' ')

	// Center dashed line
	centerX := screenW / 2
	lineStyle := courtStyle.Foreground(tcell.ColorDarkGray)
	for y := 1; y <= l.CourtRows(); y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, NetChar)
	}

	r.renderScoreboard(s, screenW)

	r.fillBox(l, s.Player, courtStyle.Foreground(PlayerColor), PaddleChar)
	r.fillBox(l, s.Opponent, courtStyle.Foreground(OpponentColor), PaddleChar)

	bx, by, _, _ := l.CellRect(s.Ball)
	r.screen.SetCell(bx, by, courtStyle.Foreground(tcell.ColorWhite), BallChar)

	// Status bar at bottom
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')
	r.screen.DrawText(0, statusY, StatusText(s), statusStyle)

	r.screen.Show()
}

func (r *Renderer) fillBox(l Layout, box game.Rect, style tcell.Style, ch rune) {
	x0, y0, x1, y1 := l.CellRect(box)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetCell(x, y, style, ch)
		}
	}
}

// renderScoreboard draws the score at top center: [ YOU 3 - 2 CPU ]
func (r *Renderer) renderScoreboard(s game.Snapshot, screenW int) {
	boardStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	text := ScoreText(s)
	x := (screenW - len(text)) / 2

	r.screen.DrawText(x, 0, text, boardStyle)
	r.screen.DrawText(x+2, 0, "YOU", boardStyle.Foreground(PlayerColor))
	r.screen.DrawText(x+len(text)-5, 0, "CPU", boardStyle.Foreground(OpponentColor))
}

// ScoreText formats the scoreboard line
func ScoreText(s game.Snapshot) string {
	return fmt.Sprintf("[ YOU %d - %d CPU ]", s.Score.Player, s.Score.Opponent)
}

// StatusText formats the bottom status bar
func StatusText(s game.Snapshot) string {
	switch {
	case !s.Gated:
		return " Mouse or W/S to move | q quit"
	case !s.Running:
		return fmt.Sprintf(" %s | ENTER/SPACE start | q quit", s.Elapsed)
	default:
		return fmt.Sprintf(" %s | r restart | q quit", s.Elapsed)
	}
}

// RenderConnecting displays the connecting screen
func (r *Renderer) RenderConnecting(addr string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "SOLOPONG"
	titleX := (screenW - len(title)) / 2
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal)
	r.screen.DrawText(titleX, screenH/2-3, title, titleStyle)

	connectText := fmt.Sprintf("Connecting to %s...", addr)
	connectX := (screenW - len(connectText)) / 2
	r.screen.DrawText(connectX, screenH/2, connectText, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	hintText := "Press 'q' to cancel"
	hintX := (screenW - len(hintText)) / 2
	r.screen.DrawText(hintX, screenH/2+3, hintText, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "ERROR"
	titleX := (screenW - len(title)) / 2
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed)
	r.screen.DrawText(titleX, screenH/2-2, title, titleStyle)

	// Truncate if too long
	maxErrLen := screenW - 4
	errMsg := err
	if maxErrLen > 3 && len(errMsg) > maxErrLen {
		errMsg = errMsg[:maxErrLen-3] + "..."
	}
	errX := (screenW - len(errMsg)) / 2
	r.screen.DrawText(errX, screenH/2, errMsg, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	hintText := "Press any key to continue"
	hintX := (screenW - len(hintText)) / 2
	r.screen.DrawText(hintX, screenH/2+3, hintText, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}
