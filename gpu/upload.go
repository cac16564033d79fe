package gpu

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vertexdata"
)

// Buffers holds the device-side buffers for one uploaded VertexData
// snapshot, one buffer per attribute stream.
type Buffers struct {
	Position hal.Buffer
	TexCoord hal.Buffer
	Color    hal.Buffer

	// NumVertices is the vertex count at upload time, the draw count for
	// a non-indexed draw over these streams.
	NumVertices int

	device hal.Device
}

// Upload creates one vertex-usage buffer per attribute stream and writes
// the streams into them. The label prefixes the buffer labels for GPU
// debugging tools. On error, any buffers already created are destroyed.
//
// The buffers are a snapshot: later mutation of vd is not reflected.
// The caller owns the result and must call Destroy when done.
func Upload(device hal.Device, queue hal.Queue, vd *vertexdata.VertexData, label string) (*Buffers, error) {
	pos, err := createAndUpload(device, queue, label+"_positions", PositionBytes(vd))
	if err != nil {
		return nil, err
	}
	tex, err := createAndUpload(device, queue, label+"_texcoords", TexCoordBytes(vd))
	if err != nil {
		device.DestroyBuffer(pos)
		return nil, err
	}
	col, err := createAndUpload(device, queue, label+"_colors", ColorBytes(vd))
	if err != nil {
		device.DestroyBuffer(tex)
		device.DestroyBuffer(pos)
		return nil, err
	}

	vertexdata.Logger().Debug("vertex streams uploaded",
		"label", label,
		"vertices", vd.NumVertices(),
		"bytes", (PositionStride+TexCoordStride+ColorStride)*vd.NumVertices())

	return &Buffers{
		Position:    pos,
		TexCoord:    tex,
		Color:       col,
		NumVertices: vd.NumVertices(),
		device:      device,
	}, nil
}

// createAndUpload creates a GPU buffer and uploads data.
func createAndUpload(device hal.Device, queue hal.Queue, label string, data []byte) (hal.Buffer, error) {
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: Usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	if err := queue.WriteBuffer(buf, 0, data); err != nil {
		device.DestroyBuffer(buf)
		return nil, fmt.Errorf("write %s: %w", label, err)
	}
	return buf, nil
}

// Destroy releases the three device buffers. Safe to call on a partially
// zeroed value; nil buffers are skipped.
func (b *Buffers) Destroy() {
	if b == nil || b.device == nil {
		return
	}
	if b.Color != nil {
		b.device.DestroyBuffer(b.Color)
		b.Color = nil
	}
	if b.TexCoord != nil {
		b.device.DestroyBuffer(b.TexCoord)
		b.TexCoord = nil
	}
	if b.Position != nil {
		b.device.DestroyBuffer(b.Position)
		b.Position = nil
	}
}
