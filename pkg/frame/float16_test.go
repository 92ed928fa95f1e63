package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat16RoundTripExact(t *testing.T) {
	// Values exactly representable in binary16 survive the round trip
	exact := []float64{0, 1, -1, 0.5, 1.5, -2.25, 1024, 65504, -65504, 0.00006103515625}

	for _, v := range exact {
		got := float16ToFloat64(float16FromFloat64(v))
		assert.Equal(t, v, got, "value %v", v)
	}
}

func TestFloat16Rounding(t *testing.T) {
	// 1.1 is not representable; the round trip lands on the nearest half value
	got := float16ToFloat64(float16FromFloat64(1.1))
	assert.NotEqual(t, 1.1, got)
	assert.InDelta(t, 1.1, got, 0.001)
}

func TestFloat16Overflow(t *testing.T) {
	assert.True(t, math.IsInf(float16ToFloat64(float16FromFloat64(70000)), 1))
	assert.True(t, math.IsInf(float16ToFloat64(float16FromFloat64(-70000)), -1))

	// 65504 is the largest finite half value
	assert.Equal(t, float64(MaxFloat16), float16ToFloat64(float16FromFloat64(65504)))
}

func TestFloat16Underflow(t *testing.T) {
	// Below the subnormal range the value flushes to signed zero
	assert.Equal(t, 0.0, float16ToFloat64(float16FromFloat64(1e-10)))

	neg := float16ToFloat64(float16FromFloat64(-1e-10))
	assert.True(t, neg == 0)
	assert.True(t, math.Signbit(neg))
}

func TestFloat16Specials(t *testing.T) {
	assert.True(t, math.IsInf(float16ToFloat64(float16FromFloat64(math.Inf(1))), 1))
	assert.True(t, math.IsInf(float16ToFloat64(float16FromFloat64(math.Inf(-1))), -1))
	assert.True(t, math.IsNaN(float16ToFloat64(float16FromFloat64(math.NaN()))))
}

func TestFloat16Subnormal(t *testing.T) {
	// Smallest positive subnormal is 2^-24
	smallest := math.Pow(2, -24)
	assert.Equal(t, smallest, float16ToFloat64(float16FromFloat64(smallest)))

	// Largest subnormal is just under the smallest normal 2^-14
	largestSub := math.Pow(2, -14) - math.Pow(2, -24)
	assert.Equal(t, largestSub, float16ToFloat64(float16FromFloat64(largestSub)))
}
