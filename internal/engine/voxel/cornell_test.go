package voxel

import (
	"testing"

	"github.com/Faultbox/voxelray/pkg/math"
)

func TestCornellBoxAt_Geometry(t *testing.T) {
	tests := []struct {
		name     string
		p        math.Vec3
		occupied bool
		color    [3]float32
		material Material
	}{
		{"floor", math.Vec3{X: 0, Y: 0, Z: 1}, true, cornellWhite, MaterialDiffuse},
		{"ceiling", math.Vec3{X: 0.8, Y: 2, Z: 0.4}, true, cornellWhite, MaterialDiffuse},
		{"ceiling light", math.Vec3{X: 0, Y: 2, Z: 1}, true, [3]float32{1, 1, 0.95}, MaterialEmissive},
		{"back wall", math.Vec3{X: 0, Y: 1, Z: 2}, true, cornellWhite, MaterialDiffuse},
		{"left wall", math.Vec3{X: -1, Y: 1, Z: 1}, true, cornellRed, MaterialDiffuse},
		{"right wall", math.Vec3{X: 1, Y: 1, Z: 1}, true, cornellGreen, MaterialDiffuse},
		{"tall box", math.Vec3{X: -0.35, Y: 0.3, Z: 0.65}, true, cornellWhite, MaterialDiffuse},
		{"short box", math.Vec3{X: 0.35, Y: 0.15, Z: 1.35}, true, cornellWhite, MaterialDiffuse},
		{"room interior", math.Vec3{X: 0, Y: 1, Z: 1}, false, [3]float32{}, MaterialDiffuse},
		{"in front of room", math.Vec3{X: 0, Y: 1, Z: -1}, false, [3]float32{}, MaterialDiffuse},
	}

	for _, tt := range tests {
		s, ok := CornellBoxAt(tt.p)
		if ok != tt.occupied {
			t.Errorf("%s: occupied = %v, want %v", tt.name, ok, tt.occupied)
			continue
		}
		if !ok {
			continue
		}
		if s.Color != tt.color {
			t.Errorf("%s: color = %v, want %v", tt.name, s.Color, tt.color)
		}
		if s.Material != tt.material {
			t.Errorf("%s: material = %v, want %v", tt.name, s.Material, tt.material)
		}
		if s.Density != 1 {
			t.Errorf("%s: density = %v, want 1", tt.name, s.Density)
		}
	}
}

func TestCornellBoxAt_LightEmits(t *testing.T) {
	s, ok := CornellBoxAt(math.Vec3{X: 0, Y: 2, Z: 1})
	if !ok {
		t.Fatal("light position not occupied")
	}
	if s.Emission == ([3]float32{}) {
		t.Error("ceiling light has no emission")
	}
}

func TestNewCornellBox(t *testing.T) {
	p, err := NewCornellBox(5, 0.1)
	if err != nil {
		t.Fatalf("NewCornellBox: %v", err)
	}

	min, max := p.Bounds()
	if min != (math.Vec3{X: -2, Y: -2, Z: -2}) || max != (math.Vec3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("Bounds() = %+v, %+v, want the -2..2 cube", min, max)
	}

	// The rasterized tall box is solid at its center
	box := p.SampleVoxel(math.Vec3{X: -0.35, Y: 0.3, Z: 0.65}, 0)
	if box.IsEmpty() {
		t.Error("expected rasterized voxel inside the tall box")
	}

	// Open air inside the room stays sparse
	air := p.SampleVoxel(math.Vec3{X: 0.05, Y: 1.05, Z: 1.05}, 0)
	if !air.IsEmpty() {
		t.Errorf("room interior = %+v, want empty", air)
	}
}
