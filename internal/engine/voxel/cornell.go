package voxel

import "github.com/Faultbox/voxelray/pkg/math"

// Cornell Box reference scene: a 2x2x2 room with a red left wall, a
// green right wall, an area light in the ceiling and two rotated
// boxes. Used by the benchmark harness and as the default scene.

const cornellWallThickness = 0.05

var (
	cornellWhite = [3]float32{0.73, 0.73, 0.73}
	cornellRed   = [3]float32{0.65, 0.05, 0.05}
	cornellGreen = [3]float32{0.12, 0.45, 0.15}
)

// NewCornellBox builds the Cornell Box scene in an octree centered at
// the origin with half extent 2 (the room spans X -1..1, Y 0..2,
// Z 0..2).
func NewCornellBox(maxDepth uint8, resolution float32) (*StaticProvider, error) {
	return NewStaticProvider(math.Vec3{}, 2.0, maxDepth, resolution, CornellBoxAt)
}

// CornellBoxAt is the SceneFunc for the Cornell Box.
func CornellBoxAt(p math.Vec3) (Sample, bool) {
	const t = cornellWallThickness

	// Floor
	if p.Y >= -t && p.Y <= t {
		if p.X >= -1 && p.X <= 1 && p.Z >= 0 && p.Z <= 2 {
			return Solid(cornellWhite), true
		}
	}

	// Ceiling, with the area light in its center
	if p.Y >= 2-t && p.Y <= 2+t {
		if p.X >= -1 && p.X <= 1 && p.Z >= 0 && p.Z <= 2 {
			if p.X >= -0.25 && p.X <= 0.25 && p.Z >= 0.75 && p.Z <= 1.25 {
				return Emissive([3]float32{1, 1, 0.95}, [3]float32{5, 5, 4.75}), true
			}
			return Solid(cornellWhite), true
		}
	}

	// Back wall
	if p.Z >= 2-t && p.Z <= 2+t {
		if p.X >= -1-t && p.X <= 1+t && p.Y >= -t && p.Y <= 2+t {
			return Solid(cornellWhite), true
		}
	}

	// Left wall (red)
	if p.X >= -1-t && p.X <= -1+t {
		if p.Z >= 0 && p.Z <= 2 && p.Y >= 0 && p.Y <= 2 {
			return Solid(cornellRed), true
		}
	}

	// Right wall (green)
	if p.X >= 1-t && p.X <= 1+t {
		if p.Z >= 0 && p.Z <= 2 && p.Y >= 0 && p.Y <= 2 {
			return Solid(cornellGreen), true
		}
	}

	// Both boxes share the same ~17 degree rotation about Y.
	const cosA = 0.956
	const sinA = -0.292

	// Tall box
	tallCenter := math.Vec3{X: -0.35, Y: 0.3, Z: 0.65}
	tallHalf := math.Vec3{X: 0.15, Y: 0.3, Z: 0.15}

	off := p.Sub(tallCenter)
	rx := off.X*cosA - off.Z*sinA
	rz := off.X*sinA + off.Z*cosA
	if math.Abs(rx) <= tallHalf.X && p.Y >= 0 && p.Y <= tallHalf.Y*2 && math.Abs(rz) <= tallHalf.Z {
		return Solid(cornellWhite), true
	}

	// Short box, rotated the opposite way
	shortCenter := math.Vec3{X: 0.35, Y: 0.15, Z: 1.35}
	shortHalf := math.Vec3{X: 0.15, Y: 0.15, Z: 0.15}

	off = p.Sub(shortCenter)
	rx = off.X*cosA + off.Z*sinA
	rz = -off.X*sinA + off.Z*cosA
	if math.Abs(rx) <= shortHalf.X && p.Y >= 0 && p.Y <= shortHalf.Y*2 && math.Abs(rz) <= shortHalf.Z {
		return Solid(cornellWhite), true
	}

	return Sample{}, false
}
