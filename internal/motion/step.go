package motion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"pbj/internal/board"
	"pbj/internal/controls"
)

// Step advances the avatar by one tick of dt seconds: accelerate along held directions,
// stop any axis with neither of its directions held, clamp velocity, then move by the
// velocity and keep the avatar inside the inner ring of b.
//
// Opposing directions on one axis cancel. When several directions are held the facing
// follows the last of left, right, up, down.
func (a *Avatar) Step(dt float32, held controls.State, p Params, b board.Board) {
	if math32.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	dv := p.Acceleration * dt

	if held.Left {
		a.VelocityX -= dv
		a.Rotation = FacingLeft
	}
	if held.Right {
		a.VelocityX += dv
		a.Rotation = FacingRight
	}
	if held.Up {
		a.VelocityY += dv
		a.Rotation = FacingUp
	}
	if held.Down {
		a.VelocityY -= dv
		a.Rotation = FacingDown
	}

	// No friction yet: releasing an axis stops it immediately.
	if !held.Left && !held.Right {
		a.VelocityX = 0
	}
	if !held.Up && !held.Down {
		a.VelocityY = 0
	}

	maxV := math32.Abs(p.MaxVelocity)
	a.VelocityX = clampVelocity(a.VelocityX, maxV)
	a.VelocityY = clampVelocity(a.VelocityY, maxV)

	if a.VelocityX == 0 && a.VelocityY == 0 {
		return
	}
	a.Position = a.Position.Add(a.Velocity())

	minX, maxX, minY, maxY := b.Inner()
	a.Position[0] = mgl32.Clamp(a.Position[0], minX, maxX)
	a.Position[1] = mgl32.Clamp(a.Position[1], minY, maxY)
}

// clampVelocity limits v to [-maxV, maxV]; an infinite acceleration saturates.
func clampVelocity(v, maxV float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return mgl32.Clamp(v, -maxV, maxV)
}
