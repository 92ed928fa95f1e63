package frame

import (
	"testing"
)

func buildBenchFrame(rows int) *Frame {
	f := New()
	_ = f.AddColumn("id", DTypeInt64)
	_ = f.AddColumn("amount", DTypeFloat64)
	_ = f.AddColumn("segment", DTypeString)

	segments := []string{"retail", "corporate", "sme"}
	for i := 0; i < rows; i++ {
		_ = f.AppendRow(map[string]interface{}{
			"id":      int64(i % 100),
			"amount":  float64(i%1000) / 4,
			"segment": segments[i%3],
		})
	}
	return f
}

func BenchmarkAppendRow(b *testing.B) {
	f := New()
	_ = f.AddColumn("id", DTypeInt64)
	_ = f.AddColumn("amount", DTypeFloat64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.AppendRow(map[string]interface{}{
			"id":     int64(i),
			"amount": float64(i),
		})
	}
}

func BenchmarkShrink(b *testing.B) {
	r := NewReducer()
	r.Verbose = false

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		f := buildBenchFrame(10000)
		b.StartTimer()
		r.Shrink(f)
	}
}

func BenchmarkFloat16Convert(b *testing.B) {
	col := NewFloatColumn()
	for i := 0; i < 10000; i++ {
		_ = col.Append(float64(i%1000) / 4)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		col.convert(DTypeFloat16)
		col.convert(DTypeFloat64)
	}
}
