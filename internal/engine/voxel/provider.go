package voxel

import (
	"errors"

	"github.com/Faultbox/voxelray/pkg/math"
)

// Step size bounds for ray marching. Steps below MinStepSize blow up
// the per-ray sample count; steps above MaxStepSize skip through thin
// geometry.
const (
	MinStepSize = 0.005
	MaxStepSize = 0.05
)

// ErrStaticProvider is returned by UpdateVoxel on providers that do
// not support dynamic scene updates.
var ErrStaticProvider = errors.New("voxel: provider does not support dynamic updates")

// Provider is the sampling surface the render loop sees. One default
// implementation exists (StaticProvider); alternate strategies swap in
// behind this interface.
type Provider interface {
	// SampleVoxel resolves the voxel at a world position, picking a
	// level of detail from the camera distance.
	SampleVoxel(position math.Vec3, distanceFromCamera float32) Sample

	// StepSize returns the ray-marching step to use at this distance.
	StepSize(distanceFromCamera, baseStepSize float32) float32

	// SetQualityTarget installs the base step size chosen by the
	// adaptive quality controller.
	SetQualityTarget(baseStepSize float32)

	// Bounds returns the min and max corners of the scene volume.
	Bounds() (math.Vec3, math.Vec3)

	// Dynamic reports whether UpdateVoxel is supported.
	Dynamic() bool

	// UpdateVoxel mutates a voxel in place on dynamic providers.
	UpdateVoxel(position math.Vec3, s Sample) error
}

// DefaultStepSize is the distance-scaled step policy shared by
// providers: farther samples tolerate larger marching steps without
// visible error.
func DefaultStepSize(distanceFromCamera, baseStepSize float32) float32 {
	factor := 1 + distanceFromCamera*0.1
	return math.Clamp(baseStepSize*factor, MinStepSize, MaxStepSize)
}
