// Package camera provides the free camera used to drive distance-based
// level of detail. Input mapping lives in the embedding application.
package camera

import (
	gomath "math"

	"github.com/Faultbox/voxelray/pkg/math"
)

// FlyCamera is a free-flying camera described by a position and
// yaw/pitch angles in radians. Yaw 0 looks down positive Z.
type FlyCamera struct {
	Position math.Vec3
	Yaw      float32
	Pitch    float32
}

// NewFlyCamera creates a camera just outside the default scene volume,
// looking in.
func NewFlyCamera() *FlyCamera {
	return &FlyCamera{
		Position: math.Vec3{X: 0, Y: 1, Z: -1},
	}
}

// Forward returns the unit view direction.
func (c *FlyCamera) Forward() math.Vec3 {
	cp := math.Cos(c.Pitch)
	return math.Vec3{
		X: math.Sin(c.Yaw) * cp,
		Y: math.Sin(c.Pitch),
		Z: math.Cos(c.Yaw) * cp,
	}.Normalize()
}

// LookAt points the camera at a world position.
func (c *FlyCamera) LookAt(target math.Vec3) {
	d := target.Sub(c.Position)
	c.Yaw = float32(gomath.Atan2(float64(d.X), float64(d.Z)))
	horiz := math.Vec3{X: d.X, Z: d.Z}.Length()
	c.Pitch = float32(gomath.Atan2(float64(d.Y), float64(horiz)))
}

// DistanceTo returns the distance from the camera to a world position.
// This is the distance the voxel providers use for LOD selection.
func (c *FlyCamera) DistanceTo(p math.Vec3) float32 {
	return c.Position.Distance(p)
}
