package frame

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/gigc-analytics/dashlib/pkg/logger"
	"github.com/gigc-analytics/dashlib/pkg/metrics"
)

// ShrinkStats reports the effect of one shrink pass
type ShrinkStats struct {
	BeforeBytes    int64
	AfterBytes     int64
	ColumnsChanged int
}

const bytesPerMB = 1024 * 1024

// BeforeMB returns the pre-shrink footprint in megabytes
func (s ShrinkStats) BeforeMB() float64 {
	return float64(s.BeforeBytes) / bytesPerMB
}

// AfterMB returns the post-shrink footprint in megabytes
func (s ShrinkStats) AfterMB() float64 {
	return float64(s.AfterBytes) / bytesPerMB
}

// Reduction returns the percentage reduction in memory usage
func (s ShrinkStats) Reduction() float64 {
	if s.BeforeBytes == 0 {
		return 0
	}
	return 100 * float64(s.BeforeBytes-s.AfterBytes) / float64(s.BeforeBytes)
}

// Reducer shrinks a frame's numeric columns to the narrowest dtype whose
// representable range contains each column's observed values. Integer
// downcasting is lossless. Float downcasting is selected by range only, so
// narrowing a float column may lose mantissa precision; that is accepted
// behavior, not a defect.
//
// The before/after diagnostic goes to Output when Verbose is set, keeping
// reporting separate from the returned result: callers detect anything
// they care about from the frame itself, never from the printed lines.
type Reducer struct {
	// Verbose enables the two-line before/after memory diagnostic
	Verbose bool
	// Output receives the diagnostic. Defaults to os.Stdout.
	Output io.Writer

	logger *zap.Logger
}

// NewReducer creates a reducer with verbose diagnostics on stdout
func NewReducer() *Reducer {
	return &Reducer{
		Verbose: true,
		Output:  os.Stdout,
		logger:  logger.Get(),
	}
}

// Shrink downcasts every numeric column of f in place and returns the same
// frame. Non-numeric columns are left untouched. Zero-row numeric columns
// have no observable range and are skipped. The pass is idempotent.
func (r *Reducer) Shrink(f *Frame) *Frame {
	f2, _ := r.ShrinkWithStats(f)
	return f2
}

// ShrinkWithStats is Shrink plus the before/after accounting
func (r *Reducer) ShrinkWithStats(f *Frame) (*Frame, ShrinkStats) {
	start := time.Now()

	f.mu.Lock()
	stats := ShrinkStats{BeforeBytes: f.memoryUsageLocked()}

	for _, name := range f.order {
		col := f.columns[name]
		before := col.DType()

		switch c := col.(type) {
		case *IntColumn:
			min, max, ok := c.Range()
			if !ok {
				continue
			}
			c.convert(narrowestIntType(min, max))
		case *FloatColumn:
			min, max, ok := c.Range()
			if !ok {
				continue
			}
			c.convert(narrowestFloatType(min, max))
		default:
			continue
		}

		if after := col.DType(); after != before {
			stats.ColumnsChanged++
			metrics.ColumnsDowncast.WithLabelValues(after.String()).Inc()
			if r.logger != nil {
				r.logger.Debug("column downcast",
					zap.String("column", name),
					zap.String("from", before.String()),
					zap.String("to", after.String()))
			}
		}
	}

	stats.AfterBytes = f.memoryUsageLocked()
	f.mu.Unlock()

	if saved := stats.BeforeBytes - stats.AfterBytes; saved > 0 {
		metrics.ShrinkBytesSaved.Add(float64(saved))
	}
	metrics.ShrinkDuration.Observe(time.Since(start).Seconds())

	if r.Verbose {
		out := r.Output
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprintf(out, "Initial memory usage = %.2f Mb\n", stats.BeforeMB())
		fmt.Fprintf(out, "Mem. usage decreased to %.2f Mb (%.1f%% reduction)\n",
			stats.AfterMB(), stats.Reduction())
	}

	return f, stats
}

// ShrinkColumns downcasts f's numeric columns with the default verbose
// reducer, mirroring the call most dashboard update scripts make.
func ShrinkColumns(f *Frame) *Frame {
	return NewReducer().Shrink(f)
}
