// Package motion integrates the avatar's 2D movement over the board from the held
// directions.
package motion

import "github.com/go-gl/mathgl/mgl32"

// Facing rotations about +z. The avatar model faces +x by default.
var (
	FacingRight = mgl32.QuatIdent()
	FacingLeft  = mgl32.QuatRotate(mgl32.DegToRad(180), mgl32.Vec3{0, 0, 1})
	FacingUp    = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1})
	FacingDown  = mgl32.QuatRotate(mgl32.DegToRad(-90), mgl32.Vec3{0, 0, 1})
)

// Params tune the integrator. Velocity is an offset applied once per tick, so MaxVelocity
// is in cells per tick.
type Params struct {
	Acceleration float32
	MaxVelocity  float32
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Acceleration: 1.0,
		MaxVelocity:  0.1,
	}
}

// Avatar is the player's continuous state on the board.
type Avatar struct {
	Position  mgl32.Vec3
	Rotation  mgl32.Quat
	VelocityX float32
	VelocityY float32
}

// NewAvatar returns an avatar at position facing right, at rest.
func NewAvatar(position mgl32.Vec3) *Avatar {
	return &Avatar{
		Position: position,
		Rotation: FacingRight,
	}
}

// Velocity returns the velocity as a vector in the board plane.
func (a *Avatar) Velocity() mgl32.Vec3 {
	return mgl32.Vec3{a.VelocityX, a.VelocityY, 0}
}
