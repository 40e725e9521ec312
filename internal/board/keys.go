package board

import "fmt"

// Key names one of the four key objects.
type Key int

const (
	Peanut Key = iota
	Bread
	Jelly
	Serve
)

// NumKeys is the number of key objects on every level.
const NumKeys = 4

// Keys lists every key in placement and draw order.
var Keys = [NumKeys]Key{Peanut, Bread, Jelly, Serve}

func (k Key) String() string {
	switch k {
	case Peanut:
		return "peanut"
	case Bread:
		return "bread"
	case Jelly:
		return "jelly"
	case Serve:
		return "serve"
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Cell is an integer board coordinate. Z is zero for everything placed on the board.
type Cell struct {
	X, Y, Z int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// KeyLocations holds one cell per key, indexed by Key.
type KeyLocations [NumKeys]Cell

// At returns the key placed at (x, y), if any.
func (kl KeyLocations) At(x, y int) (Key, bool) {
	for _, k := range Keys {
		if kl[k].X == x && kl[k].Y == y && kl[k].Z == 0 {
			return k, true
		}
	}
	return 0, false
}

// Occupied reports whether any key sits at (x, y).
func (kl KeyLocations) Occupied(x, y int) bool {
	_, ok := kl.At(x, y)
	return ok
}
