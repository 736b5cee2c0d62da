package kulki

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/kulki/internal/core"
	"github.com/vovakirdan/kulki/internal/games/kulki/core"
)

// Board layout in screen cells. Every board cell takes two columns; the
// frame adds a one-column border and one column of padding on each side,
// and row numbers sit two columns outside the frame.
const (
	frameWidth  = 2*core.Width + 3
	frameHeight = core.Height + 2

	// LayoutWidth is the width of the board with its labels.
	LayoutWidth = frameWidth + 4
	// BoardHeight covers the title down to the bottom column letters.
	BoardHeight = 4 + frameHeight + 1
	// LayoutHeight adds a blank line and the message line.
	LayoutHeight = BoardHeight + 2
)

// Render draws the session centred in dst. The screen is expected to be
// cleared.
func (g *Game) Render(dst *platformcore.Screen) {
	if dst.Width() < LayoutWidth || dst.Height() < BoardHeight {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", platformcore.ColorNotice)
		return
	}

	ox := (dst.Width() - LayoutWidth) / 2
	oy := max((dst.Height()-LayoutHeight)/2, 0)
	grid := g.engine.Grid()

	dst.DrawTextCentered(oy, g.Title(), platformcore.ColorFrame)
	dst.DrawTextCentered(oy+1, fmt.Sprintf("Score: %d", g.engine.Score()), platformcore.ColorDefault)

	frame := platformcore.NewRect(ox+2, oy+4, frameWidth, frameHeight)
	g.drawLetters(dst, frame.X, frame.Y-1)
	g.drawLetters(dst, frame.X, frame.Bottom())
	dst.DrawBox(frame, platformcore.ColorFrame)

	for y := range core.Height {
		row := fmt.Sprint(y + 1)
		sy := frame.Y + 1 + y
		dst.DrawTextColored(ox, sy, row, platformcore.ColorFrame)
		dst.DrawTextColored(frame.Right()+1, sy, row, platformcore.ColorFrame)

		for x := range core.Width {
			g.drawCell(dst, cellX(frame, x), sy, grid.Get(x, y))
		}
	}

	if g.showTargets {
		for _, i := range g.targets {
			x, y := core.XY(i)
			dst.SetColored(cellX(frame, x), frame.Y+1+y, '·', platformcore.ColorTarget)
		}
	}

	if g.selected != NoCell {
		g.drawMarker(dst, frame, g.selected, '(', ')')
	}
	if g.showCursor && !g.engine.GameOver() {
		g.drawMarker(dst, frame, g.cursor, '[', ']')
	}

	if g.message != "" {
		dst.DrawTextCentered(oy+BoardHeight+1, g.message, platformcore.ColorNotice)
	}

	if g.engine.GameOver() {
		g.drawGameOver(dst, frame)
	}
}

// cellX returns the screen column of board column x.
func cellX(frame platformcore.Rect, x int) int {
	return frame.X + 2 + 2*x
}

func (g *Game) drawLetters(dst *platformcore.Screen, left, y int) {
	frame := platformcore.NewRect(left, 0, frameWidth, 0)
	for x := range core.Width {
		dst.SetColored(cellX(frame, x), y, rune('A'+x), platformcore.ColorFrame)
	}
}

func (g *Game) drawCell(dst *platformcore.Screen, sx, sy int, c core.Color) {
	if c == core.Empty {
		return
	}
	r := g.glyph
	if r == 0 {
		r = rune('0' + c)
	}
	dst.SetColored(sx, sy, r, platformcore.BallColor(int(c)))
}

func (g *Game) drawMarker(dst *platformcore.Screen, frame platformcore.Rect, i int, left, right rune) {
	x, y := core.XY(i)
	sx, sy := cellX(frame, x), frame.Y+1+y
	dst.SetColored(sx-1, sy, left, platformcore.ColorCursor)
	dst.SetColored(sx+1, sy, right, platformcore.ColorCursor)
}

func (g *Game) drawGameOver(dst *platformcore.Screen, frame platformcore.Rect) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", g.engine.Score()),
	}
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}

	box := frame.Centered(w+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorNotice)
	for i, l := range lines {
		x := box.X + (box.W-len(l))/2
		dst.DrawTextColored(x, box.Y+1+i, l, platformcore.ColorNotice)
	}
}

// BoardText renders only the board, without colours, for line-oriented
// front ends.
func (g *Game) BoardText() string {
	scr := platformcore.NewScreen(LayoutWidth, BoardHeight)
	g.Render(scr)
	return strings.TrimRight(scr.String(), "\n")
}
