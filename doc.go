// Package dashlib is a data preparation toolkit for dashboard refresh
// jobs. It loads tabular extracts into typed columnar frames, shrinks
// their memory footprint by downcasting numeric columns to the narrowest
// dtype that holds their observed range, and ships the small lookup and
// date helpers the update scripts share.
//
// # Packages
//
//   - pkg/frame: the columnar Frame, CSV/JSON ingestion and export, and
//     the numeric shrinking Reducer
//   - pkg/strings: pooled string building plus the pattern finder used to
//     locate columns and files by substring
//   - pkg/dates: reference-month boundary helpers for monthly update jobs
//   - pkg/config, pkg/logger, pkg/errors, pkg/metrics: configuration,
//     zap logging, structured errors, and Prometheus instrumentation
//
// # Quick Start
//
// Shrink a CSV extract before handing it to a dashboard:
//
//	import "github.com/gigc-analytics/dashlib/pkg/frame"
//
//	f, err := frame.ReadCSV("extract.csv", frame.DefaultCSVOptions())
//	if err != nil {
//	    return err
//	}
//	frame.ShrinkColumns(f) // prints before/after memory usage
//
// The same operations are available from the command line:
//
//	dashlib shrink extract.csv -o shrunk.csv
//	dashlib stats extract.csv
//	dashlib find saldo saldo_total saldo_capital
package dashlib
