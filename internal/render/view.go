// Package render turns the current game state into a frame: the world-to-clip transform,
// the lighting terms, and the ordered list of mesh draws. It performs no GPU work; the
// graphics package executes frames.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"pbj/internal/board"
)

const (
	// boardFill is how much of the [-1,1] clip box the board may span, leaving room for the shear.
	boardFill  = 1.75
	depthScale = -0.25
)

// shearZ slants +z toward screen right and down so raised meshes read as standing on the board.
var shearZ = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0.5, -0.75, 1, 0,
	0, 0, 0, 1,
}

// WorldToClip fits the board into a width x height viewport with the board center at the
// screen center, then applies the oblique shear.
func WorldToClip(b board.Board, width, height int) mgl32.Mat4 {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	scale := min(
		boardFill*aspect/float32(b.Width),
		boardFill/float32(b.Height),
	)
	cx := 0.5 * float32(b.Width)
	cy := 0.5 * float32(b.Height)

	// Column-major, like mgl32 literals everywhere else.
	fit := mgl32.Mat4{
		scale / aspect, 0, 0, 0,
		0, scale, 0, 0,
		0, 0, depthScale, 0,
		-(scale / aspect) * cx, -scale * cy, 0, 1,
	}
	return shearZ.Mul4(fit)
}

// Place returns the object-to-world transform for a mesh whose origin sits at the center of
// the cell at pos, rotated by rot.
func Place(pos mgl32.Vec3, rot mgl32.Quat) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X()+0.5, pos.Y()+0.5, pos.Z()).Mul4(rot.Mat4())
}

// PlaceCell is Place for an integer cell with no rotation.
func PlaceCell(c board.Cell, z float32) mgl32.Mat4 {
	return Place(mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z) + z}, mgl32.QuatIdent())
}
