package frame

import (
	"fmt"
	"strconv"
)

// Column is the base interface for all column types
type Column interface {
	DType() DType
	Len() int
	Get(i int) interface{}
	Append(value interface{}) error
	Clear()
	MemoryUsage() int64
}

// createColumn creates a new column of the specified dtype
func createColumn(dtype DType) Column {
	switch {
	case dtype.IsInteger():
		return NewIntColumn()
	case dtype.IsFloat():
		return NewFloatColumn()
	case dtype == DTypeBool:
		return NewBoolColumn()
	default:
		return NewStringColumn()
	}
}

// zeroValue returns the fill value appended for missing fields
func zeroValue(dtype DType) interface{} {
	switch {
	case dtype.IsInteger():
		return int64(0)
	case dtype.IsFloat():
		return float64(0)
	case dtype == DTypeBool:
		return false
	default:
		return ""
	}
}

// IntColumn stores signed integers in the narrowest buffer that has been
// selected for it. Values are always surfaced as int64; the active width
// only changes the backing buffer. Min and max are tracked incrementally
// on append.
type IntColumn struct {
	dtype DType
	v8    []int8
	v16   []int16
	v32   []int32
	v64   []int64
	min   int64
	max   int64
}

// NewIntColumn creates a new integer column at the default int64 width
func NewIntColumn() *IntColumn {
	return &IntColumn{
		dtype: DTypeInt64,
		v64:   make([]int64, 0, 1024),
	}
}

func (c *IntColumn) DType() DType { return c.dtype }

func (c *IntColumn) Len() int {
	switch c.dtype {
	case DTypeInt8:
		return len(c.v8)
	case DTypeInt16:
		return len(c.v16)
	case DTypeInt32:
		return len(c.v32)
	default:
		return len(c.v64)
	}
}

func (c *IntColumn) Get(i int) interface{} {
	return c.at(i)
}

// at reads one value from the active buffer as int64
func (c *IntColumn) at(i int) int64 {
	switch c.dtype {
	case DTypeInt8:
		return int64(c.v8[i])
	case DTypeInt16:
		return int64(c.v16[i])
	case DTypeInt32:
		return int64(c.v32[i])
	default:
		return c.v64[i]
	}
}

func (c *IntColumn) Append(value interface{}) error {
	var intVal int64
	switch v := value.(type) {
	case int:
		intVal = int64(v)
	case int64:
		intVal = v
	case int32:
		intVal = int64(v)
	case int16:
		intVal = int64(v)
	case int8:
		intVal = int64(v)
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as int: %w", v, err)
		}
		intVal = parsed
	default:
		return fmt.Errorf("expected int, got %T", value)
	}

	if c.Len() == 0 {
		c.min = intVal
		c.max = intVal
	} else {
		if intVal < c.min {
			c.min = intVal
		}
		if intVal > c.max {
			c.max = intVal
		}
	}

	// Widen the buffer when a value falls outside the active width
	if need := narrowestIntType(intVal, intVal); need > c.dtype {
		c.convert(need)
	}

	switch c.dtype {
	case DTypeInt8:
		c.v8 = append(c.v8, int8(intVal))
	case DTypeInt16:
		c.v16 = append(c.v16, int16(intVal))
	case DTypeInt32:
		c.v32 = append(c.v32, int32(intVal))
	default:
		c.v64 = append(c.v64, intVal)
	}
	return nil
}

// Range returns the observed min and max. ok is false for an empty column.
func (c *IntColumn) Range() (min, max int64, ok bool) {
	if c.Len() == 0 {
		return 0, 0, false
	}
	return c.min, c.max, true
}

// convert replaces the backing buffer with one of the given width. The
// caller is responsible for ensuring every value fits.
func (c *IntColumn) convert(dtype DType) {
	if dtype == c.dtype || !dtype.IsInteger() {
		return
	}

	n := c.Len()
	old := c.dtype
	c.dtype = dtype

	switch dtype {
	case DTypeInt8:
		buf := make([]int8, n)
		for i := 0; i < n; i++ {
			buf[i] = int8(c.atWidth(old, i))
		}
		c.v8 = buf
	case DTypeInt16:
		buf := make([]int16, n)
		for i := 0; i < n; i++ {
			buf[i] = int16(c.atWidth(old, i))
		}
		c.v16 = buf
	case DTypeInt32:
		buf := make([]int32, n)
		for i := 0; i < n; i++ {
			buf[i] = int32(c.atWidth(old, i))
		}
		c.v32 = buf
	default:
		buf := make([]int64, n)
		for i := 0; i < n; i++ {
			buf[i] = c.atWidth(old, i)
		}
		c.v64 = buf
	}

	c.dropWidth(old)
}

// atWidth reads from the buffer belonging to a specific width
func (c *IntColumn) atWidth(dtype DType, i int) int64 {
	switch dtype {
	case DTypeInt8:
		return int64(c.v8[i])
	case DTypeInt16:
		return int64(c.v16[i])
	case DTypeInt32:
		return int64(c.v32[i])
	default:
		return c.v64[i]
	}
}

// dropWidth releases the buffer belonging to a specific width
func (c *IntColumn) dropWidth(dtype DType) {
	switch dtype {
	case DTypeInt8:
		c.v8 = nil
	case DTypeInt16:
		c.v16 = nil
	case DTypeInt32:
		c.v32 = nil
	default:
		c.v64 = nil
	}
}

func (c *IntColumn) Clear() {
	c.v8 = nil
	c.v16 = nil
	c.v32 = nil
	c.v64 = make([]int64, 0, 1024)
	c.dtype = DTypeInt64
	c.min = 0
	c.max = 0
}

func (c *IntColumn) MemoryUsage() int64 {
	return int64(c.Len() * c.dtype.Size())
}

// FloatColumn stores floating point values in the narrowest buffer that
// has been selected for it. Half-precision values are kept as raw binary16
// bits. Values are always surfaced as float64.
type FloatColumn struct {
	dtype DType
	v16   []uint16
	v32   []float32
	v64   []float64
}

// NewFloatColumn creates a new float column at the default float64 width
func NewFloatColumn() *FloatColumn {
	return &FloatColumn{
		dtype: DTypeFloat64,
		v64:   make([]float64, 0, 1024),
	}
}

func (c *FloatColumn) DType() DType { return c.dtype }

func (c *FloatColumn) Len() int {
	switch c.dtype {
	case DTypeFloat16:
		return len(c.v16)
	case DTypeFloat32:
		return len(c.v32)
	default:
		return len(c.v64)
	}
}

func (c *FloatColumn) Get(i int) interface{} {
	return c.at(i)
}

func (c *FloatColumn) at(i int) float64 {
	switch c.dtype {
	case DTypeFloat16:
		return float16ToFloat64(c.v16[i])
	case DTypeFloat32:
		return float64(c.v32[i])
	default:
		return c.v64[i]
	}
}

func (c *FloatColumn) Append(value interface{}) error {
	var floatVal float64
	switch v := value.(type) {
	case float64:
		floatVal = v
	case float32:
		floatVal = float64(v)
	case int:
		floatVal = float64(v)
	case int64:
		floatVal = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as float: %w", v, err)
		}
		floatVal = parsed
	default:
		return fmt.Errorf("expected float, got %T", value)
	}

	// Widen the buffer when a value falls outside the active range
	if need := narrowestFloatType(floatVal, floatVal); need > c.dtype {
		c.convert(need)
	}

	switch c.dtype {
	case DTypeFloat16:
		c.v16 = append(c.v16, float16FromFloat64(floatVal))
	case DTypeFloat32:
		c.v32 = append(c.v32, float32(floatVal))
	default:
		c.v64 = append(c.v64, floatVal)
	}
	return nil
}

// Range scans the column for its observed min and max. ok is false for an
// empty column.
func (c *FloatColumn) Range() (min, max float64, ok bool) {
	n := c.Len()
	if n == 0 {
		return 0, 0, false
	}

	min = c.at(0)
	max = min
	for i := 1; i < n; i++ {
		v := c.at(i)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, true
}

// convert replaces the backing buffer with one of the given width. A
// narrowing conversion keeps the value range but may lose mantissa
// precision.
func (c *FloatColumn) convert(dtype DType) {
	if dtype == c.dtype || !dtype.IsFloat() {
		return
	}

	n := c.Len()
	old := c.dtype
	c.dtype = dtype

	switch dtype {
	case DTypeFloat16:
		buf := make([]uint16, n)
		for i := 0; i < n; i++ {
			buf[i] = float16FromFloat64(c.atWidth(old, i))
		}
		c.v16 = buf
	case DTypeFloat32:
		buf := make([]float32, n)
		for i := 0; i < n; i++ {
			buf[i] = float32(c.atWidth(old, i))
		}
		c.v32 = buf
	default:
		buf := make([]float64, n)
		for i := 0; i < n; i++ {
			buf[i] = c.atWidth(old, i)
		}
		c.v64 = buf
	}

	c.dropWidth(old)
}

func (c *FloatColumn) atWidth(dtype DType, i int) float64 {
	switch dtype {
	case DTypeFloat16:
		return float16ToFloat64(c.v16[i])
	case DTypeFloat32:
		return float64(c.v32[i])
	default:
		return c.v64[i]
	}
}

func (c *FloatColumn) dropWidth(dtype DType) {
	switch dtype {
	case DTypeFloat16:
		c.v16 = nil
	case DTypeFloat32:
		c.v32 = nil
	default:
		c.v64 = nil
	}
}

func (c *FloatColumn) Clear() {
	c.v16 = nil
	c.v32 = nil
	c.v64 = make([]float64, 0, 1024)
	c.dtype = DTypeFloat64
}

func (c *FloatColumn) MemoryUsage() int64 {
	return int64(c.Len() * c.dtype.Size())
}

// StringColumn stores string values, switching to dictionary encoding when
// the column turns out to be repetitive
type StringColumn struct {
	values    []string
	dict      map[string]uint32
	words     []string // reverse dictionary, indexed by code
	codes     []uint32
	dictMode  bool
	threshold float64 // Switch to dictionary when repetition > threshold
}

// NewStringColumn creates a new string column
func NewStringColumn() *StringColumn {
	return &StringColumn{
		values:    make([]string, 0, 1024),
		dict:      make(map[string]uint32),
		codes:     make([]uint32, 0, 1024),
		threshold: 0.5, // Use dict if >50% values are repeated
	}
}

func (c *StringColumn) DType() DType { return DTypeString }

func (c *StringColumn) Len() int {
	if c.dictMode {
		return len(c.codes)
	}
	return len(c.values)
}

func (c *StringColumn) Get(i int) interface{} {
	if c.dictMode {
		return c.words[c.codes[i]]
	}
	return c.values[i]
}

func (c *StringColumn) Append(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}

	if c.dictMode {
		c.appendCode(str)
		return nil
	}

	c.values = append(c.values, str)
	if len(c.values) > 100 && c.shouldUseDictionary() {
		c.convertToDictionary()
	}
	return nil
}

func (c *StringColumn) appendCode(str string) {
	if code, exists := c.dict[str]; exists {
		c.codes = append(c.codes, code)
		return
	}
	newCode := uint32(len(c.words))
	c.dict[str] = newCode
	c.words = append(c.words, str)
	c.codes = append(c.codes, newCode)
}

func (c *StringColumn) shouldUseDictionary() bool {
	unique := make(map[string]struct{})
	for _, v := range c.values {
		unique[v] = struct{}{}
	}
	ratio := float64(len(unique)) / float64(len(c.values))
	return ratio < c.threshold
}

func (c *StringColumn) convertToDictionary() {
	c.dictMode = true
	c.dict = make(map[string]uint32)
	c.words = c.words[:0]
	c.codes = make([]uint32, 0, len(c.values))

	for _, v := range c.values {
		c.appendCode(v)
	}

	// Release the row storage
	c.values = nil
}

func (c *StringColumn) Clear() {
	c.values = c.values[:0]
	c.codes = c.codes[:0]
	c.words = c.words[:0]
	c.dict = make(map[string]uint32)
	c.dictMode = false
}

func (c *StringColumn) MemoryUsage() int64 {
	var total int64

	if c.dictMode {
		for _, w := range c.words {
			total += int64(len(w)) // String bytes
			total += 4             // uint32 code
		}
		total += int64(len(c.codes) * 4) // codes array
	} else {
		for _, v := range c.values {
			total += int64(len(v))
			total += 16 // string header overhead
		}
	}

	return total
}

// BoolColumn stores boolean values bit-packed, 64 per word
type BoolColumn struct {
	values []uint64
	count  int
}

// NewBoolColumn creates a new boolean column
func NewBoolColumn() *BoolColumn {
	return &BoolColumn{
		values: make([]uint64, 0, 16),
	}
}

func (c *BoolColumn) DType() DType { return DTypeBool }
func (c *BoolColumn) Len() int     { return c.count }

func (c *BoolColumn) Get(i int) interface{} {
	wordIndex := i / 64
	bitIndex := i % 64
	return (c.values[wordIndex] & (1 << bitIndex)) != 0
}

func (c *BoolColumn) Append(value interface{}) error {
	var boolVal bool
	switch v := value.(type) {
	case bool:
		boolVal = v
	case string:
		boolVal = v == "true" || v == "1" || v == "yes"
	default:
		return fmt.Errorf("expected bool, got %T", value)
	}

	wordIndex := c.count / 64
	bitIndex := c.count % 64

	if wordIndex >= len(c.values) {
		c.values = append(c.values, 0)
	}

	if boolVal {
		c.values[wordIndex] |= (1 << bitIndex)
	}

	c.count++
	return nil
}

func (c *BoolColumn) Clear() {
	c.values = c.values[:0]
	c.count = 0
}

func (c *BoolColumn) MemoryUsage() int64 {
	return int64(len(c.values) * 8)
}
