package board

import "fmt"

// Source is the random source the generator draws from. *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Generate places every key on its own edge at a uniformly random non-corner offset.
// Each key takes a uniformly random edge from those not yet used, so no two keys share
// an edge and, on boards of at least MinSize, no two keys share a cell.
func Generate(b Board, rng Source) (KeyLocations, error) {
	var kl KeyLocations
	remaining := append([]Edge(nil), Edges[:]...)

	for _, k := range Keys {
		i := rng.IntN(len(remaining))
		edge := remaining[i]
		remaining = append(remaining[:i], remaining[i+1:]...)

		// Offsets run along the edge itself, so non-square boards stay in bounds.
		extent := edge.Extent(b)
		if extent < MinSize {
			return KeyLocations{}, fmt.Errorf("%w: %s edge has %d cells", ErrBoardTooSmall, edge, extent)
		}
		offset := 1 + rng.IntN(extent-2)
		kl[k] = edge.Cell(b, offset)
	}
	return kl, nil
}
