// Package board holds the rectangular play board and the level generator that places the
// four key objects on its edges.
package board

import (
	"errors"
	"fmt"
)

// MinSize is the smallest width or height for which every edge has a non-corner cell.
const MinSize = 3

// ErrBoardTooSmall is returned when a board dimension leaves no non-corner edge cell.
var ErrBoardTooSmall = errors.New("board: dimensions too small for edge placement")

// Board is a Width x Height grid of cells. x grows right, y grows up.
type Board struct {
	Width  int
	Height int
}

// New returns a board of the given size. Both dimensions must be at least MinSize.
func New(width, height int) (Board, error) {
	if width < MinSize || height < MinSize {
		return Board{}, fmt.Errorf("%w: %dx%d", ErrBoardTooSmall, width, height)
	}
	return Board{Width: width, Height: height}, nil
}

// Cells returns the number of cells on the board.
func (b Board) Cells() int {
	return b.Width * b.Height
}

// Contains reports whether (x, y) is on the board.
func (b Board) Contains(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// OnEdge reports whether (x, y) lies on the outer ring of the board.
func (b Board) OnEdge(x, y int) bool {
	return x == 0 || x == b.Width-1 || y == 0 || y == b.Height-1
}

// IsCorner reports whether (x, y) is one of the four corner cells.
func (b Board) IsCorner(x, y int) bool {
	return (x == 0 || x == b.Width-1) && (y == 0 || y == b.Height-1)
}

// Inner returns the inclusive range of coordinates strictly inside the edge ring.
func (b Board) Inner() (minX, maxX, minY, maxY float32) {
	return 1, float32(b.Width - 2), 1, float32(b.Height - 2)
}
