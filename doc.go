// Package vertexdata manages per-vertex attributes for 2D geometry ahead of
// GPU upload.
//
// # Overview
//
// A VertexData holds three parallel attribute streams — position (x, y),
// texture coordinate (u, v), and color (r, g, b, a) — as flat float slices
// kept in lock-step by vertex index. Display objects of a 2D renderer use
// it to describe renderable quads and meshes: set attributes per vertex,
// append or copy buffers into larger batches, transform positions through
// an affine Matrix, and query bounds. The raw streams are exposed as views
// for upload to GPU-resident buffers.
//
// # Quick Start
//
//	import "github.com/gogpu/vertexdata"
//
//	// A quad: four vertices, straight (non-premultiplied) alpha.
//	vd := vertexdata.New(4, false)
//	vd.SetPosition(0, 0, 0)
//	vd.SetPosition(1, 10, 0)
//	vd.SetPosition(2, 10, 10)
//	vd.SetPosition(3, 0, 10)
//	vd.SetUniformColor(0xFF8000)
//
//	bounds := vd.Bounds(nil, 0, -1)
//
// # Color Model
//
// Callers exchange colors as packed 24-bit 0xRRGGBB integers; alpha always
// travels separately as a float in [0, 1]. A buffer in premultiplied-alpha
// mode stores rgb channels multiplied by alpha, matching common texture
// decoding conventions; SetColor, Color, SetAlpha, and ScaleAlpha convert
// at the boundary so callers always see straight rgb.
//
// # GPU Upload
//
// The gpu sub-package describes the three streams as wgpu vertex buffer
// layouts and uploads them through the GoGPU HAL. This package only
// prepares data; deciding when to upload belongs to the renderer.
//
// # Concurrency
//
// VertexData is a plain in-memory value with no internal locking; callers
// must not mutate one buffer from multiple goroutines concurrently.
package vertexdata
