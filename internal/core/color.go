package core

// Color is a logical foreground colour for a screen cell.
// Front ends map it to real terminal colours; ball colours come from the
// configured theme.
type Color uint8

// Logical colours used by the board renderer.
const (
	ColorDefault Color = iota
	ColorBall1
	ColorBall2
	ColorBall3
	ColorBall4
	ColorBall5
	ColorBall6
	ColorBall7
	ColorFrame   // Board border and labels
	ColorCursor  // Cursor brackets
	ColorTarget  // Reachable target markers
	ColorNotice  // Status messages
)

// BallColor returns the screen colour for ball colour n (1-based).
// Out-of-range values map to ColorDefault.
func BallColor(n int) Color {
	if n < 1 || n > 7 {
		return ColorDefault
	}
	return ColorBall1 + Color(n-1)
}

// IsBall returns true for the seven ball colours.
func (c Color) IsBall() bool {
	return c >= ColorBall1 && c <= ColorBall7
}
