// Package gpures uploads baked voxel data and tuning parameters to the
// GPU. It performs no windowing: callers must have a current OpenGL
// context before using it.
package gpures

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelray/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture3D wraps an RGBA8 3D texture holding baked voxel data
// (RGB color, density in alpha).
type Texture3D struct {
	id   uint32
	size int32
}

// NewTexture3D uploads a baked size³ RGBA8 buffer as a 3D texture with
// linear filtering and clamp-to-edge addressing.
// IMPORTANT: Must be called with a current OpenGL context!
func NewTexture3D(data []byte, size int) (*Texture3D, error) {
	if len(data) != size*size*size*4 {
		return nil, fmt.Errorf("baked buffer is %d bytes, want %d for size %d", len(data), size*size*size*4, size)
	}

	t := &Texture3D{size: int32(size)}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_3D, t.id)
	gl.TexImage3D(gl.TEXTURE_3D, 0, gl.RGBA8, t.size, t.size, t.size, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_3D, 0)

	logger.Info("uploaded voxel 3D texture",
		zap.Int("size", size),
		zap.Int("bytes", len(data)),
	)
	return t, nil
}

// Bind binds the texture to the given texture unit.
func (t *Texture3D) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_3D, t.id)
}

// ID returns the OpenGL texture name.
func (t *Texture3D) ID() uint32 {
	return t.id
}

// Close deletes the texture.
func (t *Texture3D) Close() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
