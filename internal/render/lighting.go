package render

import "github.com/go-gl/mathgl/mgl32"

// Lighting is the sun (directional) and sky (hemispherical) terms of the shading model.
// Directions point toward the light.
type Lighting struct {
	SunDirection mgl32.Vec3
	SunColor     mgl32.Vec3
	SkyDirection mgl32.Vec3
	SkyColor     mgl32.Vec3
}

// DefaultLighting is a warm sun slightly behind the camera with a dim blue sky from +y.
func DefaultLighting() Lighting {
	return Lighting{
		SunDirection: mgl32.Vec3{0.2, -0.2, 1.0}.Normalize(),
		SunColor:     mgl32.Vec3{0.81, 0.81, 0.76},
		SkyDirection: mgl32.Vec3{0, 1, 0},
		SkyColor:     mgl32.Vec3{0.2, 0.2, 0.3},
	}
}

// Normalized returns l with unit-length directions. Zero directions are left as they are.
func (l Lighting) Normalized() Lighting {
	if l.SunDirection.Len() > 0 {
		l.SunDirection = l.SunDirection.Normalize()
	}
	if l.SkyDirection.Len() > 0 {
		l.SkyDirection = l.SkyDirection.Normalize()
	}
	return l
}
