// Package gpu describes vertexdata attribute streams to the GoGPU HAL and
// uploads them into device buffers. It narrows the float64 CPU-side data to
// the float32 the GPU consumes; the conversion happens here, at the upload
// boundary, and nowhere else.
package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vertexdata"
)

// Shader locations of the three vertex streams.
const (
	LocationPosition = 0
	LocationTexCoord = 1
	LocationColor    = 2
)

// Per-vertex stream strides in bytes, float32 on the GPU side.
const (
	PositionStride = 2 * 4
	TexCoordStride = 2 * 4
	ColorStride    = 4 * 4
)

// Usage is the buffer usage for vertex stream buffers created by Upload.
const Usage = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst

// VertexLayouts returns the vertex buffer layouts of the three streams, in
// position, texture coordinate, color order. Each stream lives in its own
// buffer (split arrays, not interleaved), so each layout holds exactly one
// attribute at offset 0.
func VertexLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: PositionStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: LocationPosition},
			},
		},
		{
			ArrayStride: TexCoordStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: LocationTexCoord},
			},
		},
		{
			ArrayStride: ColorStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: LocationColor},
			},
		},
	}
}

// PositionBytes returns the position stream as little-endian float32 bytes.
// The result is a snapshot, safe to retain across mutation of vd.
func PositionBytes(vd *vertexdata.VertexData) []byte {
	return streamBytes(vd.Positions())
}

// TexCoordBytes returns the texture coordinate stream as little-endian
// float32 bytes. The result is a snapshot.
func TexCoordBytes(vd *vertexdata.VertexData) []byte {
	return streamBytes(vd.TexCoords())
}

// ColorBytes returns the color stream as little-endian float32 bytes.
// The result is a snapshot.
func ColorBytes(vd *vertexdata.VertexData) []byte {
	return streamBytes(vd.Colors())
}

// streamBytes narrows a float64 attribute stream to packed little-endian
// float32, the wire form WriteBuffer expects for Float32x* attributes.
func streamBytes(values []float64) []byte {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(float32(v)))
	}
	return buf
}
