package board

// Edge is one side of the board. A column edge has a fixed x and its cells vary along y;
// a row edge has a fixed y and its cells vary along x. IsEnd picks the max coordinate.
type Edge struct {
	IsColumn bool
	IsEnd    bool
}

var (
	Top    = Edge{IsColumn: false, IsEnd: true}
	Bottom = Edge{IsColumn: false, IsEnd: false}
	Left   = Edge{IsColumn: true, IsEnd: false}
	Right  = Edge{IsColumn: true, IsEnd: true}
)

// Edges lists the four edges in the order the generator draws from.
var Edges = [4]Edge{Top, Bottom, Left, Right}

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Extent is the number of cells along the edge.
func (e Edge) Extent(b Board) int {
	if e.IsColumn {
		return b.Height
	}
	return b.Width
}

// Cell returns the absolute cell at offset along the edge.
func (e Edge) Cell(b Board, offset int) Cell {
	fixed := 0
	if e.IsColumn {
		if e.IsEnd {
			fixed = b.Width - 1
		}
		return Cell{X: fixed, Y: offset}
	}
	if e.IsEnd {
		fixed = b.Height - 1
	}
	return Cell{X: offset, Y: fixed}
}

// EdgeOf returns the edge a non-corner edge cell lies on. ok is false for inner cells and corners.
func (b Board) EdgeOf(c Cell) (Edge, bool) {
	if !b.Contains(c.X, c.Y) || b.IsCorner(c.X, c.Y) {
		return Edge{}, false
	}
	switch {
	case c.X == 0:
		return Left, true
	case c.X == b.Width-1:
		return Right, true
	case c.Y == 0:
		return Bottom, true
	case c.Y == b.Height-1:
		return Top, true
	}
	return Edge{}, false
}
