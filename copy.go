package vertexdata

import "fmt"

// Append concatenates another buffer's vertices onto the end of this one.
// All three streams are appended in vertex order; growth is amortized over
// the appended size. The other buffer's color data is taken verbatim, so
// the two buffers should share the same premultiplied-alpha mode.
func (vd *VertexData) Append(other *VertexData) {
	vd.positions = append(vd.positions, other.positions...)
	vd.texCoords = append(vd.texCoords, other.texCoords...)
	vd.colors = append(vd.colors, other.colors...)
	vd.numVertices += other.numVertices
}

// CopyTo overwrites target's vertices starting at targetStart with this
// buffer's full contents. Positions and texture coordinates are always
// copied; colors only when target.CopyColorData is set. The target is
// never grown: if the destination range does not fit, an error wrapping
// ErrInsufficientCapacity is returned and nothing is written.
//
// Source and target must be distinct buffers; overlapping self-copy is
// undefined.
func (vd *VertexData) CopyTo(target *VertexData, targetStart int) error {
	return vd.CopyRangeTo(target, targetStart, 0, -1)
}

// CopyRangeTo is CopyTo restricted to count source vertices starting at
// start. A count of -1, or one overrunning the end, means the rest of the
// buffer; counts below -1 are rejected with ErrInvalidRange.
func (vd *VertexData) CopyRangeTo(target *VertexData, targetStart, start, count int) error {
	start, count, err := vd.copyRange(target, targetStart, start, count)
	if err != nil {
		return err
	}
	copy(target.positions[targetStart*posStride:], vd.positions[start*posStride:(start+count)*posStride])
	copy(target.texCoords[targetStart*texStride:], vd.texCoords[start*texStride:(start+count)*texStride])
	if target.CopyColorData {
		copy(target.colors[targetStart*colStride:], vd.colors[start*colStride:(start+count)*colStride])
	}
	return nil
}

// CopyTransformedTo is CopyTo with every position passed through the given
// transform on the way; texture coordinates are copied verbatim and colors
// follow the same target.CopyColorData gate.
func (vd *VertexData) CopyTransformedTo(target *VertexData, targetStart int, m Matrix) error {
	start, count, err := vd.copyRange(target, targetStart, 0, -1)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		si := (start + i) * posStride
		ti := (targetStart + i) * posStride
		p := m.TransformPoint(Point{X: vd.positions[si], Y: vd.positions[si+1]})
		target.positions[ti] = p.X
		target.positions[ti+1] = p.Y
	}
	copy(target.texCoords[targetStart*texStride:], vd.texCoords[start*texStride:(start+count)*texStride])
	if target.CopyColorData {
		copy(target.colors[targetStart*colStride:], vd.colors[start*colStride:(start+count)*colStride])
	}
	return nil
}

// copyRange validates a source range and a destination offset for the copy
// operations. Unlike clampRange it reports errors instead of panicking:
// the ranges come from caller geometry, not from vertex ids.
func (vd *VertexData) copyRange(target *VertexData, targetStart, start, count int) (int, int, error) {
	if start < 0 || start > vd.numVertices {
		return 0, 0, fmt.Errorf("%w: source start %d, buffer has %d", ErrInvalidRange, start, vd.numVertices)
	}
	if count < -1 {
		return 0, 0, fmt.Errorf("%w: count %d", ErrInvalidRange, count)
	}
	if count < 0 || start+count > vd.numVertices {
		count = vd.numVertices - start
	}
	if targetStart < 0 {
		return 0, 0, fmt.Errorf("%w: target start %d", ErrInvalidRange, targetStart)
	}
	if targetStart+count > target.numVertices {
		return 0, 0, fmt.Errorf("%w: %d vertices at offset %d, target has %d",
			ErrInsufficientCapacity, count, targetStart, target.numVertices)
	}
	return start, count, nil
}

// TranslateVertex moves one vertex's position by (dx, dy) in place.
func (vd *VertexData) TranslateVertex(id int, dx, dy float64) {
	vd.checkVertex(id)
	i := id * posStride
	vd.positions[i] += dx
	vd.positions[i+1] += dy
}

// TransformVertices applies the transform in place to the positions of
// count consecutive vertices starting at startID. A negative count, or one
// overrunning the end, means the rest of the buffer.
func (vd *VertexData) TransformVertices(startID int, m Matrix, count int) {
	startID, count = vd.clampRange(startID, count)
	for i := 0; i < count; i++ {
		pi := (startID + i) * posStride
		p := m.TransformPoint(Point{X: vd.positions[pi], Y: vd.positions[pi+1]})
		vd.positions[pi] = p.X
		vd.positions[pi+1] = p.Y
	}
}

// SetUniformColor applies SetColor to every vertex.
func (vd *VertexData) SetUniformColor(rgb uint32) {
	for id := 0; id < vd.numVertices; id++ {
		vd.SetColor(id, rgb)
	}
}

// SetUniformAlpha applies SetAlpha to every vertex.
func (vd *VertexData) SetUniformAlpha(alpha float64) {
	for id := 0; id < vd.numVertices; id++ {
		vd.SetAlpha(id, alpha)
	}
}

// ScaleAlpha multiplies the alpha of count consecutive vertices starting at
// startID by factor. A factor of exactly 1 is a no-op; a negative count, or
// one overrunning the end, means the rest of the buffer.
//
// In premultiplied mode the scaling goes through Alpha/SetAlpha so the rgb
// channels are re-premultiplied; otherwise the raw alpha channel is scaled
// directly.
func (vd *VertexData) ScaleAlpha(startID int, factor float64, count int) {
	if factor == 1.0 {
		return
	}
	startID, count = vd.clampRange(startID, count)
	if vd.premultipliedAlpha {
		for i := 0; i < count; i++ {
			id := startID + i
			vd.SetAlpha(id, vd.Alpha(id)*factor)
		}
		return
	}
	for i := 0; i < count; i++ {
		vd.colors[(startID+i)*colStride+3] *= factor
	}
}
