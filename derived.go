package vertexdata

// Tinted reports whether any color channel of any vertex deviates from 1.0.
// A fully white, fully opaque buffer is untinted, signaling to a renderer
// that color modulation can be skipped.
func (vd *VertexData) Tinted() bool {
	for _, c := range vd.colors {
		if c != 1.0 {
			return true
		}
	}
	return false
}

// SetPremultipliedAlpha switches the color encoding of the buffer. When the
// mode actually changes and updateData is set, every vertex's rgb channels
// are rewritten from the old encoding to the new one: divided by the old
// effective multiplier and multiplied by the new one. Vertices with zero
// alpha keep their rgb unchanged, since the division would be undefined.
// The mode flag is updated in every case.
func (vd *VertexData) SetPremultipliedAlpha(value, updateData bool) {
	if value == vd.premultipliedAlpha {
		return
	}
	if updateData {
		for i := 0; i < len(vd.colors); i += colStride {
			alpha := vd.colors[i+3]
			oldMult, newMult := 1.0, 1.0
			if vd.premultipliedAlpha {
				oldMult = alpha
			}
			if value {
				newMult = alpha
			}
			if oldMult == 0 {
				continue
			}
			factor := newMult / oldMult
			vd.colors[i] *= factor
			vd.colors[i+1] *= factor
			vd.colors[i+2] *= factor
		}
	}
	vd.premultipliedAlpha = value
}

// Bounds computes the axis-aligned bounding box of count consecutive
// vertices' positions starting at start, each passed through m when it is
// non-nil. A negative count, or one overrunning the end, means the rest of
// the buffer. An empty range yields the zero Rect.
func (vd *VertexData) Bounds(m *Matrix, start, count int) Rect {
	start, count = vd.clampRange(start, count)
	if count == 0 {
		return Rect{}
	}
	r := EmptyRect()
	for i := 0; i < count; i++ {
		pi := (start + i) * posStride
		x, y := vd.positions[pi], vd.positions[pi+1]
		if m != nil {
			p := m.TransformPoint(Point{X: x, Y: y})
			x, y = p.X, p.Y
		}
		r = r.UnionPoint(x, y)
	}
	return r
}
