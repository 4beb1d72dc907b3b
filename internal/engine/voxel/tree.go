package voxel

import (
	"fmt"

	"github.com/Faultbox/voxelray/pkg/math"
)

// Tree is a sparse octree over a cubic volume. It is built once at
// scene-load time and treated as read-only while rendering; neither
// Insert nor Sample takes locks.
type Tree struct {
	Root     Node
	MaxDepth uint8

	// BaseVoxelSize is the edge length of a cell at MaxDepth.
	BaseVoxelSize float32
}

// NewTree creates an octree centered at center with the given half
// extent, subdividing at most maxDepth levels below the root.
func NewTree(center math.Vec3, halfExtent float32, maxDepth uint8) (*Tree, error) {
	if halfExtent <= 0 {
		return nil, fmt.Errorf("octree half extent must be positive, got %v", halfExtent)
	}
	return &Tree{
		Root:          NewNode(center, halfExtent, 0),
		MaxDepth:      maxDepth,
		BaseVoxelSize: halfExtent * 2 / float32(int(1)<<maxDepth),
	}, nil
}

// Insert stores a sample at the leaf containing position, subdividing
// along the way. Repeated inserts at the same position overwrite
// (last write wins). Positions outside the root volume are ignored;
// the tree is a best-effort spatial cache, not a validating store.
func (t *Tree) Insert(position math.Vec3, s Sample) {
	insertNode(&t.Root, position, s, t.MaxDepth)
}

func insertNode(n *Node, position math.Vec3, s Sample, maxDepth uint8) {
	if !n.Contains(position) {
		return
	}

	if n.Depth >= maxDepth {
		stored := s
		n.Sample = &stored
		return
	}

	if n.Children == nil {
		n.Subdivide()
	}
	insertNode(&n.Children[n.ChildIndex(position)], position, s, maxDepth)
}

// Sample resolves the voxel at position no finer than
// min(minLevel, MaxDepth). A coarse minLevel lets far-away lookups
// stop at an ancestor that already holds data instead of descending
// to the leaves; positions outside the root volume resolve to the
// empty sample.
func (t *Tree) Sample(position math.Vec3, minLevel uint8) Sample {
	level := minLevel
	if level > t.MaxDepth {
		level = t.MaxDepth
	}
	return sampleNode(&t.Root, position, level)
}

func sampleNode(n *Node, position math.Vec3, minLevel uint8) Sample {
	if !n.Contains(position) {
		return Empty()
	}

	if n.Depth >= minLevel && n.Sample != nil {
		return *n.Sample
	}

	if n.Children != nil {
		return sampleNode(&n.Children[n.ChildIndex(position)], position, minLevel)
	}

	if n.Sample != nil {
		return *n.Sample
	}
	return Empty()
}

// Bounds returns the min and max corners of the root cube.
func (t *Tree) Bounds() (math.Vec3, math.Vec3) {
	h := math.Vec3{X: t.Root.HalfExtent, Y: t.Root.HalfExtent, Z: t.Root.HalfExtent}
	return t.Root.Center.Sub(h), t.Root.Center.Add(h)
}
