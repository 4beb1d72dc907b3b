package voxel

import "github.com/Faultbox/voxelray/pkg/math"

// Node is a single octant of the tree. Children is either nil or holds
// exactly eight owned child nodes; once subdivided a node never reverts
// to a leaf.
type Node struct {
	Center     math.Vec3
	HalfExtent float32
	Children   *[8]Node
	Sample     *Sample
	Depth      uint8
}

// NewNode creates an undivided node covering the cube
// [Center-HalfExtent, Center+HalfExtent] on each axis.
func NewNode(center math.Vec3, halfExtent float32, depth uint8) Node {
	return Node{
		Center:     center,
		HalfExtent: halfExtent,
		Depth:      depth,
	}
}

// Contains reports whether the position lies within the node's cube.
// Faces are inclusive.
func (n *Node) Contains(p math.Vec3) bool {
	return math.Abs(p.X-n.Center.X) <= n.HalfExtent &&
		math.Abs(p.Y-n.Center.Y) <= n.HalfExtent &&
		math.Abs(p.Z-n.Center.Z) <= n.HalfExtent
}

// ChildIndex returns the octant index for a position: bit 0 set when
// X is on the positive side of the center, bit 1 for Y, bit 2 for Z.
func (n *Node) ChildIndex(p math.Vec3) int {
	idx := 0
	if p.X > n.Center.X {
		idx |= 1
	}
	if p.Y > n.Center.Y {
		idx |= 2
	}
	if p.Z > n.Center.Z {
		idx |= 4
	}
	return idx
}

// Subdivide splits the node into eight children of half the extent,
// offset by ±HalfExtent/2 along each axis (same bit scheme as
// ChildIndex). Subdividing an already-subdivided node is a no-op.
func (n *Node) Subdivide() {
	if n.Children != nil {
		return
	}

	half := n.HalfExtent * 0.5
	depth := n.Depth + 1

	var children [8]Node
	for i := range children {
		offset := math.Vec3{X: -half, Y: -half, Z: -half}
		if i&1 != 0 {
			offset.X = half
		}
		if i&2 != 0 {
			offset.Y = half
		}
		if i&4 != 0 {
			offset.Z = half
		}
		children[i] = NewNode(n.Center.Add(offset), half, depth)
	}

	n.Children = &children
}
