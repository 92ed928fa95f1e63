package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntColumnAppendAndRange(t *testing.T) {
	col := NewIntColumn()
	require.NoError(t, col.Append(10))
	require.NoError(t, col.Append(int64(-5)))
	require.NoError(t, col.Append("42"))

	assert.Equal(t, 3, col.Len())
	assert.Equal(t, int64(10), col.Get(0))
	assert.Equal(t, int64(-5), col.Get(1))
	assert.Equal(t, int64(42), col.Get(2))

	min, max, ok := col.Range()
	require.True(t, ok)
	assert.Equal(t, int64(-5), min)
	assert.Equal(t, int64(42), max)
}

func TestIntColumnRejectsJunk(t *testing.T) {
	col := NewIntColumn()
	assert.Error(t, col.Append("not a number"))
	assert.Error(t, col.Append(3.14))
}

func TestIntColumnEmptyRange(t *testing.T) {
	col := NewIntColumn()
	_, _, ok := col.Range()
	assert.False(t, ok)
}

func TestIntColumnConvertPreservesValues(t *testing.T) {
	col := NewIntColumn()
	values := []int64{-128, 0, 127}
	for _, v := range values {
		require.NoError(t, col.Append(v))
	}

	col.convert(DTypeInt8)
	assert.Equal(t, DTypeInt8, col.DType())
	assert.Equal(t, int64(3), col.MemoryUsage())
	for i, v := range values {
		assert.Equal(t, v, col.Get(i))
	}
}

func TestIntColumnWidensOnAppend(t *testing.T) {
	col := NewIntColumn()
	require.NoError(t, col.Append(1))
	col.convert(DTypeInt8)
	require.Equal(t, DTypeInt8, col.DType())

	// 300 does not fit int8; the buffer widens, keeping prior values
	require.NoError(t, col.Append(300))
	assert.Equal(t, DTypeInt16, col.DType())
	assert.Equal(t, int64(1), col.Get(0))
	assert.Equal(t, int64(300), col.Get(1))
}

func TestFloatColumnAppendAndRange(t *testing.T) {
	col := NewFloatColumn()
	require.NoError(t, col.Append(1.5))
	require.NoError(t, col.Append(float32(-2.25)))
	require.NoError(t, col.Append("3.75"))
	require.NoError(t, col.Append(4))

	assert.Equal(t, 4, col.Len())
	assert.Equal(t, 1.5, col.Get(0))
	assert.Equal(t, -2.25, col.Get(1))

	min, max, ok := col.Range()
	require.True(t, ok)
	assert.Equal(t, -2.25, min)
	assert.Equal(t, 4.0, max)
}

func TestFloatColumnConvertIsLossless16(t *testing.T) {
	col := NewFloatColumn()
	for _, v := range []float64{0.5, 1.5, -2.25, 1024} {
		require.NoError(t, col.Append(v))
	}

	col.convert(DTypeFloat16)
	assert.Equal(t, DTypeFloat16, col.DType())
	assert.Equal(t, int64(8), col.MemoryUsage())

	// These values are exactly representable in binary16
	assert.Equal(t, 0.5, col.Get(0))
	assert.Equal(t, 1.5, col.Get(1))
	assert.Equal(t, -2.25, col.Get(2))
	assert.Equal(t, 1024.0, col.Get(3))
}

func TestFloatColumnWidensOnAppend(t *testing.T) {
	col := NewFloatColumn()
	require.NoError(t, col.Append(1.5))
	col.convert(DTypeFloat16)

	// Beyond the finite half range; the buffer widens
	require.NoError(t, col.Append(100000.25))
	assert.Equal(t, DTypeFloat32, col.DType())
	assert.Equal(t, 1.5, col.Get(0))
	assert.Equal(t, float64(float32(100000.25)), col.Get(1))
}

func TestStringColumnBasics(t *testing.T) {
	col := NewStringColumn()
	require.NoError(t, col.Append("alpha"))
	require.NoError(t, col.Append("beta"))
	assert.Error(t, col.Append(42))

	assert.Equal(t, DTypeString, col.DType())
	assert.Equal(t, 2, col.Len())
	assert.Equal(t, "alpha", col.Get(0))
	assert.Equal(t, "beta", col.Get(1))
}

func TestStringColumnDictionaryConversion(t *testing.T) {
	col := NewStringColumn()

	// Repetitive column: conversion to dictionary mode kicks in past 100
	// values and must not change what Get returns
	values := []string{"visa", "mastercard", "amex"}
	for i := 0; i < 300; i++ {
		require.NoError(t, col.Append(values[i%3]))
	}

	assert.True(t, col.dictMode)
	assert.Equal(t, 300, col.Len())
	for i := 0; i < 300; i++ {
		assert.Equal(t, values[i%3], col.Get(i))
	}

	// Dictionary storage should be far smaller than row storage
	assert.Less(t, col.MemoryUsage(), int64(300*16))
}

func TestBoolColumnBitPacking(t *testing.T) {
	col := NewBoolColumn()
	for i := 0; i < 130; i++ {
		require.NoError(t, col.Append(i%3 == 0))
	}

	assert.Equal(t, 130, col.Len())
	for i := 0; i < 130; i++ {
		assert.Equal(t, i%3 == 0, col.Get(i), "index %d", i)
	}

	// 130 bools fit in three uint64 words
	assert.Equal(t, int64(24), col.MemoryUsage())
}

func TestColumnClear(t *testing.T) {
	intCol := NewIntColumn()
	require.NoError(t, intCol.Append(1000))
	intCol.convert(DTypeInt16)
	intCol.Clear()
	assert.Equal(t, 0, intCol.Len())
	assert.Equal(t, DTypeInt64, intCol.DType())

	floatCol := NewFloatColumn()
	require.NoError(t, floatCol.Append(1.5))
	floatCol.Clear()
	assert.Equal(t, 0, floatCol.Len())
	assert.Equal(t, DTypeFloat64, floatCol.DType())
}
