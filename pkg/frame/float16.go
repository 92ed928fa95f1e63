package frame

import "math"

// MaxFloat16 is the largest finite value representable in IEEE 754 binary16.
const MaxFloat16 = 65504.0

// float32ToFloat16 converts a float32 to binary16 bits with
// round-to-nearest-even. Values beyond the finite half range become Inf.
func float32ToFloat16(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16((b >> 16) & 0x8000)
	exp := int32((b>>23)&0xff) - 127 + 15
	mant := b & 0x7fffff

	// Inf and NaN keep their class
	if (b>>23)&0xff == 0xff {
		if mant != 0 {
			return sign | 0x7e00
		}
		return sign | 0x7c00
	}

	if exp >= 0x1f {
		// Overflow to infinity
		return sign | 0x7c00
	}

	if exp <= 0 {
		if exp < -10 {
			// Too small even for a subnormal
			return sign
		}
		// Subnormal: shift in the implicit leading bit
		mant |= 0x800000
		shift := uint32(14 - exp)
		half := uint16(mant >> shift)
		round := (mant >> (shift - 1)) & 1
		sticky := mant & ((1 << (shift - 1)) - 1)
		if round != 0 && (sticky != 0 || half&1 != 0) {
			half++
		}
		return sign | half
	}

	half := sign | uint16(exp)<<10 | uint16(mant>>13)
	// Round to nearest even on the 13 dropped bits; a carry here may
	// legitimately bump the exponent, including up to infinity.
	if mant&0x1000 != 0 && (mant&0xfff != 0 || half&1 != 0) {
		half++
	}
	return half
}

// float16ToFloat32 converts binary16 bits back to float32. The conversion
// is exact: every half value is representable as a float32.
func float16ToFloat32(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1f
	mant := uint32(h & 0x3ff)

	switch {
	case exp == 0:
		if mant == 0 {
			return math.Float32frombits(sign) // signed zero
		}
		// Normalize the subnormal
		e := uint32(127 - 15 + 1)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x3ff
		return math.Float32frombits(sign | e<<23 | mant<<13)
	case exp == 0x1f:
		return math.Float32frombits(sign | 0x7f800000 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp-15+127)<<23 | mant<<13)
	}
}

// float16FromFloat64 converts a float64 to binary16 bits.
func float16FromFloat64(f float64) uint16 {
	return float32ToFloat16(float32(f))
}

// float16ToFloat64 converts binary16 bits to a float64.
func float16ToFloat64(h uint16) float64 {
	return float64(float16ToFloat32(h))
}
