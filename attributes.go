package vertexdata

// minPremultipliedAlpha is the floor SetAlpha enforces in premultiplied
// mode. An exact zero would zero the stored rgb channels and make the
// original color unrecoverable.
const minPremultipliedAlpha = 0.001

// SetPosition sets the position of the vertex with the given id.
func (vd *VertexData) SetPosition(id int, x, y float64) {
	vd.checkVertex(id)
	i := id * posStride
	vd.positions[i] = x
	vd.positions[i+1] = y
}

// Position returns the position of the vertex with the given id.
func (vd *VertexData) Position(id int) Point {
	vd.checkVertex(id)
	i := id * posStride
	return Point{X: vd.positions[i], Y: vd.positions[i+1]}
}

// SetTexCoord sets the texture coordinate of the vertex with the given id.
func (vd *VertexData) SetTexCoord(id int, u, v float64) {
	vd.checkVertex(id)
	i := id * texStride
	vd.texCoords[i] = u
	vd.texCoords[i+1] = v
}

// TexCoord returns the texture coordinate of the vertex with the given id.
func (vd *VertexData) TexCoord(id int) Point {
	vd.checkVertex(id)
	i := id * texStride
	return Point{X: vd.texCoords[i], Y: vd.texCoords[i+1]}
}

// SetColor sets the rgb channels of the vertex from a packed 0xRRGGBB
// value. In premultiplied mode each channel is multiplied by the vertex's
// current alpha before it is stored; the alpha channel itself is untouched.
func (vd *VertexData) SetColor(id int, rgb uint32) {
	vd.checkVertex(id)
	r, g, b := unpackRGB(rgb)
	i := id * colStride
	mult := 1.0
	if vd.premultipliedAlpha {
		mult = vd.colors[i+3]
	}
	vd.colors[i] = r * mult
	vd.colors[i+1] = g * mult
	vd.colors[i+2] = b * mult
}

// Color returns the vertex's rgb channels as a packed 0xRRGGBB value. In
// premultiplied mode the stored channels are divided by alpha first; a
// vertex with zero alpha reports black, since its color is unrecoverable.
func (vd *VertexData) Color(id int) uint32 {
	vd.checkVertex(id)
	i := id * colStride
	divisor := 1.0
	if vd.premultipliedAlpha {
		divisor = vd.colors[i+3]
		if divisor == 0 {
			return 0
		}
	}
	return packRGB(vd.colors[i]/divisor, vd.colors[i+1]/divisor, vd.colors[i+2]/divisor)
}

// SetAlpha sets the vertex's alpha channel. In premultiplied mode the
// value is floored at 0.001 and the stored rgb channels are re-premultiplied
// against the new alpha, so the effective color is preserved.
func (vd *VertexData) SetAlpha(id int, alpha float64) {
	vd.checkVertex(id)
	if !vd.premultipliedAlpha {
		vd.colors[id*colStride+3] = alpha
		return
	}
	if alpha < minPremultipliedAlpha {
		alpha = minPremultipliedAlpha
	}
	rgb := vd.Color(id)
	vd.colors[id*colStride+3] = alpha
	vd.SetColor(id, rgb)
}

// Alpha returns the vertex's stored alpha channel without conversion.
func (vd *VertexData) Alpha(id int) float64 {
	vd.checkVertex(id)
	return vd.colors[id*colStride+3]
}
