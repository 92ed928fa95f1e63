// Package frame implements dashlib's in-memory tabular dataset and its
// memory shrinking pass.
//
// # Overview
//
// A Frame holds named, homogeneously typed columns in insertion order.
// Columns are stored columnar-style with type-specific buffers:
//
//   - IntColumn: signed integers in an int8/int16/int32/int64 buffer
//   - FloatColumn: floats in a float16/float32/float64 buffer
//   - StringColumn: strings with automatic dictionary encoding
//   - BoolColumn: bit-packed booleans
//
// # Shrinking
//
// The Reducer narrows every numeric column to the smallest dtype whose
// representable range contains the column's observed min and max. The
// candidate widths live in explicit ordered tier tables and are tested in
// ascending order, first match wins:
//
//	f, _ := frame.ReadCSV("extract.csv", frame.DefaultCSVOptions())
//	frame.ShrinkColumns(f) // prints before/after memory usage
//
// Integer downcasts are lossless. Float downcasts are chosen by range
// only, so a narrowed float column may lose mantissa precision; callers
// that need full float64 precision should not shrink those columns.
//
// Shrinking mutates the frame in place and returns the same *Frame. It is
// idempotent, and a frame whose columns already sit in their narrowest
// dtypes comes back unchanged.
//
// # Concurrency
//
// Individual frame accessors are internally locked. Whole-frame passes
// (Shrink, CSV/JSON export) on the same frame must be serialized by the
// caller; concurrent calls on distinct frames need no coordination.
package frame
