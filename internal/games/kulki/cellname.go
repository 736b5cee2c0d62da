package kulki

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/kulki/internal/games/kulki/core"
)

// ErrInvalidCell is returned for anything that is not a cell name such as
// "A1" or "i9".
var ErrInvalidCell = errors.New("invalid cell name")

// Cell names are a column letter A..I followed by a row digit 1..9:
//
//	  A B C D E F G H I
//	1 A1 ...         I1
//	9 A9 ...         I9
//
// A1 is index 0 and I9 is index 80.

// ParseCell converts a case-insensitive cell name to a board index.
func ParseCell(name string) (int, error) {
	if len(name) != 2 {
		return -1, fmt.Errorf("%w: %q", ErrInvalidCell, name)
	}

	col := name[0]
	if col >= 'a' && col <= 'z' {
		col -= 'a' - 'A'
	}
	x := int(col) - 'A'
	y := int(name[1]) - '1'
	if !core.InBounds(x, y) {
		return -1, fmt.Errorf("%w: %q", ErrInvalidCell, name)
	}
	return core.Index(x, y), nil
}

// CellName returns the name of board index i, or "??" when i is off the
// board.
func CellName(i int) string {
	if !core.ValidIndex(i) {
		return "??"
	}
	x, y := core.XY(i)
	return string([]byte{'A' + byte(x), '1' + byte(y)})
}

// ParseMove parses a move command of two cell names separated by
// whitespace, e.g. "A1 b1".
func ParseMove(cmd string) (from, to int, err error) {
	fields := strings.Fields(cmd)
	if len(fields) != 2 {
		return -1, -1, fmt.Errorf("%w: expected two cells, got %q", ErrInvalidCell, cmd)
	}
	if from, err = ParseCell(fields[0]); err != nil {
		return -1, -1, err
	}
	if to, err = ParseCell(fields[1]); err != nil {
		return -1, -1, err
	}
	return from, to, nil
}
