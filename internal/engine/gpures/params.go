package gpures

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ParamBuffer is the GPU-visible home of the step-size scalar the
// quality controller tunes. The render loop writes it only when the
// controller signals a change, so the common per-frame path does no
// buffer traffic.
type ParamBuffer struct {
	ubo     uint32
	binding uint32
}

// std140 layout: vec4-aligned even for a lone float.
const paramBufferBytes = 16

// NewParamBuffer allocates the uniform buffer and binds it to the
// given binding point with an initial step size.
// IMPORTANT: Must be called with a current OpenGL context!
func NewParamBuffer(binding uint32, stepSize float32) (*ParamBuffer, error) {
	b := &ParamBuffer{binding: binding}

	gl.GenBuffers(1, &b.ubo)
	if b.ubo == 0 {
		return nil, fmt.Errorf("allocating param buffer failed")
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, paramBufferBytes, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, b.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	b.SetStepSize(stepSize)
	return b, nil
}

// SetStepSize writes a new step size into the buffer.
func (b *ParamBuffer) SetStepSize(stepSize float32) {
	data := []float32{stepSize, 0, 0, 0}
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, paramBufferBytes, gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// Close deletes the buffer.
func (b *ParamBuffer) Close() {
	if b.ubo != 0 {
		gl.DeleteBuffers(1, &b.ubo)
		b.ubo = 0
	}
}
