package vertexdata

import "image/color"

// Colors are exchanged with callers as packed 24-bit integers (0xRRGGBB);
// alpha always travels separately as a float in [0, 1]. Internally each
// channel is stored as a unit-range float per vertex.

// unpackRGB splits a packed 0xRRGGBB color into unit-range channels.
func unpackRGB(rgb uint32) (r, g, b float64) {
	r = float64(rgb>>16&0xff) / 255.0
	g = float64(rgb>>8&0xff) / 255.0
	b = float64(rgb&0xff) / 255.0
	return r, g, b
}

// packRGB packs unit-range channels into 0xRRGGBB. Channels are truncated,
// not rounded, when quantized to 8 bits; values outside [0, 1] are clamped
// first so one channel cannot spill into another's bits.
func packRGB(r, g, b float64) uint32 {
	return uint32(clampUnit(r)*255.0)<<16 |
		uint32(clampUnit(g)*255.0)<<8 |
		uint32(clampUnit(b)*255.0)
}

// clampUnit restricts a value to the [0, 1] range.
func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// PackColor converts a standard color.Color to the packed 0xRRGGBB form and
// a separate alpha value. The premultiplication applied by color.Color.RGBA
// is undone, so the packed value holds straight rgb.
func PackColor(c color.Color) (rgb uint32, alpha float64) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0, 0
	}
	return packRGB(float64(r)/float64(a), float64(g)/float64(a), float64(b)/float64(a)),
		float64(a) / 65535.0
}

// UnpackColor converts a packed 0xRRGGBB color and alpha to a standard
// color.NRGBA.
func UnpackColor(rgb uint32, alpha float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(rgb >> 16 & 0xff),
		G: uint8(rgb >> 8 & 0xff),
		B: uint8(rgb & 0xff),
		A: uint8(clampUnit(alpha) * 255.0),
	}
}
