package vertexdata

import "testing"

// BenchmarkCopyTransformedTo measures the transformed bulk copy for
// batch sizes typical of sprite batching.
func BenchmarkCopyTransformedTo(b *testing.B) {
	sizes := []struct {
		name     string
		vertices int
	}{
		{"4", 4},
		{"64", 64},
		{"1024", 1024},
		{"16384", 16384},
	}

	m := Translate(3, 4).Multiply(Rotate(0.5))
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			src := New(size.vertices, false)
			for id := 0; id < size.vertices; id++ {
				src.SetPosition(id, float64(id), float64(id%7))
			}
			target := New(size.vertices, false)
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := src.CopyTransformedTo(target, 0, m); err != nil {
					b.Fatal(err)
				}
			}
			b.SetBytes(int64(size.vertices * (posStride + texStride + colStride) * 8))
		})
	}
}

// BenchmarkSetUniformColor measures the per-vertex color write path,
// straight versus premultiplied alpha.
func BenchmarkSetUniformColor(b *testing.B) {
	for _, pma := range []struct {
		name string
		on   bool
	}{{"straight", false}, {"premultiplied", true}} {
		b.Run(pma.name, func(b *testing.B) {
			vd := New(1024, pma.on)
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				vd.SetUniformColor(0x804020)
			}
		})
	}
}

// BenchmarkBounds measures min/max accumulation with and without a
// transform.
func BenchmarkBounds(b *testing.B) {
	vd := New(4096, false)
	for id := 0; id < 4096; id++ {
		vd.SetPosition(id, float64(id%64), float64(id/64))
	}
	m := Rotate(0.3)

	b.Run("raw", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = vd.Bounds(nil, 0, -1)
		}
	})
	b.Run("transformed", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = vd.Bounds(&m, 0, -1)
		}
	})
}

// BenchmarkAppend measures amortized growth of batched buffers.
func BenchmarkAppend(b *testing.B) {
	chunk := New(4, false)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		batch := New(0, false)
		for j := 0; j < 64; j++ {
			batch.Append(chunk)
		}
	}
}
