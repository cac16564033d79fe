package vertexdata

import "fmt"

// Strides of the three attribute streams, in floats per vertex.
const (
	posStride = 2
	texStride = 2
	colStride = 4
)

// VertexData stores per-vertex attributes for 2D geometry in split arrays:
// one flat float slice per attribute, kept in lock-step by vertex index.
// Vertex id*stride addresses a vertex's elements within each slice.
//
// The three streams are position (x, y), texture coordinate (u, v), and
// color (r, g, b, a with unit-range channels). Display objects fill a
// VertexData on the CPU and hand its streams to the renderer for upload;
// the type itself never talks to the GPU (see the gpu sub-package).
//
// VertexData is not safe for concurrent use.
type VertexData struct {
	positions []float64 // x,y pairs, len = numVertices*2
	texCoords []float64 // u,v pairs, len = numVertices*2
	colors    []float64 // r,g,b,a quads, len = numVertices*4

	numVertices        int
	premultipliedAlpha bool

	// CopyColorData controls whether the color stream is written when this
	// instance is the *target* of CopyTo, CopyRangeTo, or CopyTransformedTo.
	// Note the inversion: the target's flag gates the source's copy call.
	// Defaults to true.
	CopyColorData bool
}

// New creates a VertexData holding numVertices vertices. Positions and
// texture coordinates start at zero; colors start opaque white so fresh
// geometry renders visible and untinted.
//
// premultipliedAlpha selects the color encoding: when true, stored rgb
// channels carry the alpha factor, matching premultiplied texture data.
func New(numVertices int, premultipliedAlpha bool) *VertexData {
	if numVertices < 0 {
		panic(fmt.Errorf("%w: vertex count %d", ErrInvalidRange, numVertices))
	}
	vd := &VertexData{
		premultipliedAlpha: premultipliedAlpha,
		CopyColorData:      true,
	}
	vd.Resize(numVertices)
	return vd
}

// NumVertices returns the number of vertices in the buffer.
func (vd *VertexData) NumVertices() int {
	return vd.numVertices
}

// PremultipliedAlpha reports whether stored rgb channels carry the alpha
// factor. Use SetPremultipliedAlpha to change the encoding.
func (vd *VertexData) PremultipliedAlpha() bool {
	return vd.premultipliedAlpha
}

// Resize grows or shrinks the buffer to n vertices. Growing appends
// zeroed positions and texture coordinates and opaque white colors;
// shrinking truncates from the end. Vertices below min(old, n) keep
// their data. Panics with ErrInvalidRange if n is negative.
func (vd *VertexData) Resize(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: vertex count %d", ErrInvalidRange, n))
	}
	switch {
	case n < vd.numVertices:
		vd.positions = vd.positions[:n*posStride]
		vd.texCoords = vd.texCoords[:n*texStride]
		vd.colors = vd.colors[:n*colStride]
	case n > vd.numVertices:
		delta := n - vd.numVertices
		vd.positions = append(vd.positions, make([]float64, delta*posStride)...)
		vd.texCoords = append(vd.texCoords, make([]float64, delta*texStride)...)
		for i := 0; i < delta; i++ {
			vd.colors = append(vd.colors, 1, 1, 1, 1)
		}
	}
	vd.numVertices = n
}

// Clone returns an independent copy of the whole buffer.
func (vd *VertexData) Clone() *VertexData {
	return vd.CloneRange(0, -1)
}

// CloneRange returns an independent copy of count vertices starting at
// start. A negative count, or one overrunning the end, means the rest of
// the buffer. The copy shares no storage with the original and carries the
// same premultiplied-alpha mode; its CopyColorData flag is reset to true.
func (vd *VertexData) CloneRange(start, count int) *VertexData {
	start, count = vd.clampRange(start, count)
	return &VertexData{
		positions:          append([]float64(nil), vd.positions[start*posStride:(start+count)*posStride]...),
		texCoords:          append([]float64(nil), vd.texCoords[start*texStride:(start+count)*texStride]...),
		colors:             append([]float64(nil), vd.colors[start*colStride:(start+count)*colStride]...),
		numVertices:        count,
		premultipliedAlpha: vd.premultipliedAlpha,
		CopyColorData:      true,
	}
}

// Positions returns the raw position stream, x,y pairs in vertex order.
// The slice is a view over the backing storage for direct upload; it is
// invalidated by Resize and Append, which may reallocate.
func (vd *VertexData) Positions() []float64 {
	return vd.positions
}

// TexCoords returns the raw texture coordinate stream, u,v pairs in vertex
// order. The same view caveats as Positions apply.
func (vd *VertexData) TexCoords() []float64 {
	return vd.texCoords
}

// Colors returns the raw color stream, r,g,b,a quads in vertex order.
// The same view caveats as Positions apply.
func (vd *VertexData) Colors() []float64 {
	return vd.colors
}

// checkVertex panics with an ErrIndexOutOfRange-wrapped error when id does
// not address a vertex. Out-of-range ids are programmer errors, so the
// per-vertex accessors keep the same contract as slice indexing.
func (vd *VertexData) checkVertex(id int) {
	if id < 0 || id >= vd.numVertices {
		panic(fmt.Errorf("%w: vertex %d, buffer has %d", ErrIndexOutOfRange, id, vd.numVertices))
	}
}

// clampRange resolves a start/count pair against the buffer for the
// forgiving operations (clone, bounds, in-place transforms): a negative
// count, or one that overruns the end, means the rest of the buffer.
// Panics when start itself is outside [0, NumVertices].
func (vd *VertexData) clampRange(start, count int) (int, int) {
	if start < 0 || start > vd.numVertices {
		panic(fmt.Errorf("%w: start vertex %d, buffer has %d", ErrIndexOutOfRange, start, vd.numVertices))
	}
	if count < 0 || start+count > vd.numVertices {
		count = vd.numVertices - start
	}
	return start, count
}
