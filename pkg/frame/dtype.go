package frame

import "math"

// DType identifies the physical type of a column buffer.
type DType int

const (
	DTypeInt8 DType = iota
	DTypeInt16
	DTypeInt32
	DTypeInt64
	DTypeFloat16
	DTypeFloat32
	DTypeFloat64
	DTypeString
	DTypeBool
)

// String returns the dtype name in the usual dataframe notation.
func (t DType) String() string {
	switch t {
	case DTypeInt8:
		return "int8"
	case DTypeInt16:
		return "int16"
	case DTypeInt32:
		return "int32"
	case DTypeInt64:
		return "int64"
	case DTypeFloat16:
		return "float16"
	case DTypeFloat32:
		return "float32"
	case DTypeFloat64:
		return "float64"
	case DTypeString:
		return "string"
	case DTypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// IsInteger reports whether the dtype is a signed integer width.
func (t DType) IsInteger() bool {
	return t >= DTypeInt8 && t <= DTypeInt64
}

// IsFloat reports whether the dtype is a floating-point width.
func (t DType) IsFloat() bool {
	return t >= DTypeFloat16 && t <= DTypeFloat64
}

// IsNumeric reports whether the dtype participates in numeric downcasting.
func (t DType) IsNumeric() bool {
	return t.IsInteger() || t.IsFloat()
}

// Size returns the number of bytes one value occupies, or 0 for
// variable-width types.
func (t DType) Size() int {
	switch t {
	case DTypeInt8:
		return 1
	case DTypeInt16, DTypeFloat16:
		return 2
	case DTypeInt32, DTypeFloat32:
		return 4
	case DTypeInt64, DTypeFloat64:
		return 8
	default:
		return 0
	}
}

// intTier is one step in the ordered integer downcast table.
type intTier struct {
	dtype DType
	min   int64
	max   int64
}

// floatTier is one step in the ordered float downcast table. The
// representable range of a float width is symmetric, so only the positive
// bound is kept.
type floatTier struct {
	dtype DType
	max   float64
}

// Downcast candidates in ascending width order. Selection walks the table
// and takes the first tier whose representable range contains the observed
// column range, so the widest tier acts as the catch-all.
var (
	intTiers = []intTier{
		{DTypeInt8, math.MinInt8, math.MaxInt8},
		{DTypeInt16, math.MinInt16, math.MaxInt16},
		{DTypeInt32, math.MinInt32, math.MaxInt32},
		{DTypeInt64, math.MinInt64, math.MaxInt64},
	}

	floatTiers = []floatTier{
		{DTypeFloat16, MaxFloat16},
		{DTypeFloat32, math.MaxFloat32},
		{DTypeFloat64, math.MaxFloat64},
	}
)

// narrowestIntType returns the narrowest signed integer dtype whose range
// contains [min, max].
func narrowestIntType(min, max int64) DType {
	for _, tier := range intTiers {
		if min >= tier.min && max <= tier.max {
			return tier.dtype
		}
	}
	return DTypeInt64
}

// narrowestFloatType returns the narrowest float dtype whose finite range
// contains [min, max]. Non-finite observations fall back to float64.
func narrowestFloatType(min, max float64) DType {
	for _, tier := range floatTiers {
		if min >= -tier.max && max <= tier.max {
			return tier.dtype
		}
	}
	return DTypeFloat64
}
