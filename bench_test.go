package md5ext

import (
	"fmt"
	"testing"
)

func BenchmarkCompress(b *testing.B) {
	var state [4]uint32
	var block [16]uint32

	b.SetBytes(BlockSize)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		compress(&state, &block)
	}
}

func BenchmarkIncremental(b *testing.B) {
	run := func(b *testing.B, size int) {
		h := New()
		out := make([]byte, 0, Size)
		buf := make([]byte, size)
		b.ReportAllocs()
		b.SetBytes(int64(len(buf)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			h.Write(buf)
			out = h.Sum(out[:0])
			h.Reset()
		}
	}

	for _, n := range []int{
		1, 4, 8, 12, 16,
	} {
		b.Run(fmt.Sprintf("%04d_block", n), func(b *testing.B) { run(b, n*64) })
	}

	for _, n := range []int{
		1, 16, 256, 1024,
	} {
		b.Run(fmt.Sprintf("%04d_kib", n), func(b *testing.B) { run(b, n*1024) })
		b.Run(fmt.Sprintf("%04d_kib+13", n), func(b *testing.B) { run(b, n*1024+13) })
	}
}

func BenchmarkExtend(b *testing.B) {
	known := Sum128([]byte("secret"))
	suffix := []byte("&admin=true")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ExtendDigest(6, known, suffix)
	}
}
