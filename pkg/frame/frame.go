package frame

import (
	"fmt"
	"sort"
	"sync"
)

// Schema defines the structure of a frame
type Schema struct {
	Fields []FieldSchema
}

// FieldSchema defines a single field in the schema
type FieldSchema struct {
	Name string
	Type DType
}

// Frame is an in-memory tabular dataset with named, homogeneously typed
// columns. Columns keep their insertion order, which is also the order
// every whole-frame pass (shrinking, export) visits them in.
//
// Individual accessors are guarded by an internal lock, but whole-frame
// mutations such as Shrink are not a concurrent operation: callers must
// serialize them per frame.
type Frame struct {
	mu       sync.RWMutex
	columns  map[string]Column
	order    []string
	rowCount int
}

// New creates an empty frame
func New() *Frame {
	return &Frame{
		columns: make(map[string]Column),
	}
}

// NewWithSchema creates a frame with predefined columns. Numeric field
// types select the column category; integer columns start at int64 and
// float columns at float64 until a shrink pass narrows them.
func NewWithSchema(schema *Schema) *Frame {
	f := New()
	for _, field := range schema.Fields {
		f.columns[field.Name] = createColumn(field.Type)
		f.order = append(f.order, field.Name)
	}
	return f
}

// AddColumn adds a new column to the frame
func (f *Frame) AddColumn(name string, dtype DType) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.columns[name]; exists {
		return fmt.Errorf("column %q already exists", name)
	}

	col := createColumn(dtype)

	// Backfill if rows already exist
	for i := 0; i < f.rowCount; i++ {
		if err := col.Append(zeroValue(col.DType())); err != nil {
			return err
		}
	}

	f.columns[name] = col
	f.order = append(f.order, name)
	return nil
}

// AppendRow adds a new row. Unknown keys auto-create columns (in sorted
// key order, so repeated loads produce the same layout); missing keys get
// the column's fill value.
func (f *Frame) AppendRow(data map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ensureColumns(data); err != nil {
		return err
	}
	return f.appendLocked(data)
}

// AppendBatch adds multiple rows
func (f *Frame) AppendBatch(rows []map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, row := range rows {
		if err := f.ensureColumns(row); err != nil {
			return err
		}
	}

	for _, row := range rows {
		if err := f.appendLocked(row); err != nil {
			return err
		}
	}
	return nil
}

// ensureColumns auto-creates columns for unseen keys, inferring the dtype
// from the first value observed
func (f *Frame) ensureColumns(data map[string]interface{}) error {
	var missing []string
	for key := range data {
		if _, exists := f.columns[key]; !exists {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	for _, key := range missing {
		col := createColumn(inferDType(data[key]))
		for i := 0; i < f.rowCount; i++ {
			if err := col.Append(zeroValue(col.DType())); err != nil {
				return err
			}
		}
		f.columns[key] = col
		f.order = append(f.order, key)
	}
	return nil
}

func (f *Frame) appendLocked(data map[string]interface{}) error {
	for _, name := range f.order {
		col := f.columns[name]
		value, exists := data[name]
		if !exists {
			value = zeroValue(col.DType())
		}
		if err := col.Append(value); err != nil {
			return fmt.Errorf("error appending to column %q: %w", name, err)
		}
	}
	f.rowCount++
	return nil
}

// GetRow retrieves a row by index
func (f *Frame) GetRow(index int) (map[string]interface{}, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if index < 0 || index >= f.rowCount {
		return nil, fmt.Errorf("index %d out of range [0, %d)", index, f.rowCount)
	}

	row := make(map[string]interface{}, len(f.order))
	for _, name := range f.order {
		row[name] = f.columns[name].Get(index)
	}
	return row, nil
}

// GetColumn retrieves a column by name
func (f *Frame) GetColumn(name string) (Column, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	col, exists := f.columns[name]
	return col, exists
}

// Columns returns column names in insertion order
func (f *Frame) Columns() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, len(f.order))
	copy(names, f.order)
	return names
}

// RowCount returns the number of rows
func (f *Frame) RowCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.rowCount
}

// ColumnCount returns the number of columns
func (f *Frame) ColumnCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.columns)
}

// MemoryUsage returns total memory usage in bytes
func (f *Frame) MemoryUsage() int64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.memoryUsageLocked()
}

func (f *Frame) memoryUsageLocked() int64 {
	var total int64

	// Overhead for the frame itself
	total += 64
	total += int64(len(f.columns) * 32)

	for _, name := range f.order {
		total += int64(len(name))
		total += f.columns[name].MemoryUsage()
	}
	return total
}

// MemoryPerRow returns average memory usage per row
func (f *Frame) MemoryPerRow() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.rowCount == 0 {
		return 0
	}
	return float64(f.memoryUsageLocked()) / float64(f.rowCount)
}

// Clear removes all data, keeping the column layout
func (f *Frame) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, col := range f.columns {
		col.Clear()
	}
	f.rowCount = 0
}

// Rows materializes every row in order
func (f *Frame) Rows() []map[string]interface{} {
	f.mu.RLock()
	defer f.mu.RUnlock()

	rows := make([]map[string]interface{}, 0, f.rowCount)
	for i := 0; i < f.rowCount; i++ {
		row := make(map[string]interface{}, len(f.order))
		for _, name := range f.order {
			row[name] = f.columns[name].Get(i)
		}
		rows = append(rows, row)
	}
	return rows
}

// inferDType attempts to determine a column dtype from a value
func inferDType(value interface{}) DType {
	switch value.(type) {
	case int, int8, int16, int32, int64:
		return DTypeInt64
	case float32, float64:
		return DTypeFloat64
	case bool:
		return DTypeBool
	default:
		return DTypeString
	}
}

// Iterator provides sequential access to rows
type Iterator struct {
	frame *Frame
	index int
}

// NewIterator creates a new iterator over the frame
func (f *Frame) NewIterator() *Iterator {
	return &Iterator{
		frame: f,
		index: -1,
	}
}

// Next advances to the next row
func (it *Iterator) Next() bool {
	it.index++
	return it.index < it.frame.RowCount()
}

// Row returns the current row
func (it *Iterator) Row() map[string]interface{} {
	row, _ := it.frame.GetRow(it.index)
	return row
}
