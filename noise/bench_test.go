package noise_test

import (
	"testing"

	"github.com/katalvlaran/wayfind/noise"
)

// BenchmarkSample measures a single gradient-noise evaluation.
func BenchmarkSample(b *testing.B) {
	f := noise.New(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Sample(float64(i%1000)*0.1, float64(i%777)*0.1)
	}
}

// BenchmarkFractal_4Octaves measures the default fractal configuration
// used by biome generation.
func BenchmarkFractal_4Octaves(b *testing.B) {
	f := noise.New(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Fractal(float64(i%1000), float64(i%777), 4, 0.5, 0.1)
	}
}
