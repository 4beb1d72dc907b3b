// Package voxel implements the sparse octree that backs the volume
// renderer: point insertion, distance-aware lookup with level of
// detail, and the provider abstraction the frame loop samples through.
package voxel

// Material classifies how a voxel scatters light.
type Material uint32

const (
	MaterialDiffuse Material = iota
	MaterialMetallic
	MaterialGlass
	MaterialEmissive
)

// Sample is the value stored per octree cell.
// A sample with Density == 0 means "no geometry" regardless of the
// other fields.
type Sample struct {
	Color    [3]float32 // albedo, unit range
	Density  float32    // [0,1], 0 = empty
	Emission [3]float32 // radiant contribution for light-emitting cells
	Material Material
}

// Empty returns the sample used for unoccupied space.
func Empty() Sample {
	return Sample{}
}

// Solid returns an opaque diffuse sample with the given albedo.
func Solid(color [3]float32) Sample {
	return Sample{
		Color:    color,
		Density:  1.0,
		Material: MaterialDiffuse,
	}
}

// Emissive returns an opaque light-emitting sample.
func Emissive(color, emission [3]float32) Sample {
	return Sample{
		Color:    color,
		Density:  1.0,
		Emission: emission,
		Material: MaterialEmissive,
	}
}

// IsEmpty reports whether the sample carries no geometry.
func (s Sample) IsEmpty() bool {
	return s.Density == 0
}
