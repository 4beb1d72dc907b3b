package voxel

import (
	"go.uber.org/zap"

	"github.com/Faultbox/voxelray/internal/logger"
	"github.com/Faultbox/voxelray/pkg/math"
)

// lodDistanceStep is how many world units of camera distance buy one
// level of coarsening.
const lodDistanceStep = 5.0

// SceneFunc describes scene geometry for rasterization: it returns the
// sample at a world position, or ok=false where there is none.
type SceneFunc func(p math.Vec3) (Sample, bool)

// StaticProvider serves a scene that was rasterized into the octree
// once at load time. It is the default Provider implementation;
// UpdateVoxel is not supported.
type StaticProvider struct {
	tree         *Tree
	baseStepSize float32
}

// NewStaticProvider rasterizes scene into a fresh octree. The scene
// function is probed on a regular grid of the given resolution across
// the root volume; positions it leaves empty stay sparse.
func NewStaticProvider(center math.Vec3, halfExtent float32, maxDepth uint8, resolution float32, scene SceneFunc) (*StaticProvider, error) {
	tree, err := NewTree(center, halfExtent, maxDepth)
	if err != nil {
		return nil, err
	}

	p := &StaticProvider{
		tree:         tree,
		baseStepSize: 0.02,
	}
	p.rasterize(resolution, scene)
	return p, nil
}

func (p *StaticProvider) rasterize(resolution float32, scene SceneFunc) {
	min, max := p.tree.Bounds()
	count := 0

	for x := min.X; x <= max.X; x += resolution {
		for y := min.Y; y <= max.Y; y += resolution {
			for z := min.Z; z <= max.Z; z += resolution {
				pos := math.Vec3{X: x, Y: y, Z: z}
				if s, ok := scene(pos); ok {
					p.tree.Insert(pos, s)
					count++
				}
			}
		}
	}

	logger.Info("rasterized scene into octree",
		zap.Int("voxels", count),
		zap.Uint8("maxDepth", p.tree.MaxDepth),
		zap.Float32("baseVoxelSize", p.tree.BaseVoxelSize),
	)
}

// SampleVoxel resolves a voxel with distance-based level of detail:
// every lodDistanceStep units of camera distance coarsens the lookup
// by one tree level.
func (p *StaticProvider) SampleVoxel(position math.Vec3, distanceFromCamera float32) Sample {
	lod := uint8(0)
	if distanceFromCamera > 0 {
		level := int(distanceFromCamera / lodDistanceStep)
		if level > int(p.tree.MaxDepth) {
			level = int(p.tree.MaxDepth)
		}
		lod = uint8(level)
	}
	return p.tree.Sample(position, lod)
}

// StepSize applies the shared distance-scaled step policy.
func (p *StaticProvider) StepSize(distanceFromCamera, baseStepSize float32) float32 {
	return DefaultStepSize(distanceFromCamera, baseStepSize)
}

// SetQualityTarget installs the controller's chosen base step size.
func (p *StaticProvider) SetQualityTarget(baseStepSize float32) {
	p.baseStepSize = baseStepSize
}

// BaseStepSize returns the current base marching step.
func (p *StaticProvider) BaseStepSize() float32 {
	return p.baseStepSize
}

// Bounds returns the scene volume.
func (p *StaticProvider) Bounds() (math.Vec3, math.Vec3) {
	return p.tree.Bounds()
}

// Dynamic reports false: the octree is read-only after construction.
func (p *StaticProvider) Dynamic() bool {
	return false
}

// UpdateVoxel always fails on the static provider.
func (p *StaticProvider) UpdateVoxel(position math.Vec3, s Sample) error {
	return ErrStaticProvider
}

// Tree exposes the underlying octree for baking and tests.
func (p *StaticProvider) Tree() *Tree {
	return p.tree
}

// Bake samples the octree over a regular size³ grid and packs each
// cell into 4 bytes (RGB8 color, 8-bit density), laid out Z-major then
// Y then X, ready for upload as an RGBA8 3D texture.
func (p *StaticProvider) Bake(size int) []byte {
	min, max := p.tree.Bounds()
	extent := max.Sub(min)
	data := make([]byte, size*size*size*4)

	for z := 0; z < size; z++ {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				pos := math.Vec3{
					X: min.X + float32(x)/float32(size)*extent.X,
					Y: min.Y + float32(y)/float32(size)*extent.Y,
					Z: min.Z + float32(z)/float32(size)*extent.Z,
				}

				s := p.tree.Sample(pos, 0)
				idx := ((z*size+y)*size + x) * 4
				data[idx] = byte(s.Color[0] * 255)
				data[idx+1] = byte(s.Color[1] * 255)
				data[idx+2] = byte(s.Color[2] * 255)
				data[idx+3] = byte(s.Density * 255)
			}
		}
	}

	return data
}
