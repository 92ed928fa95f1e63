package frame

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/gigc-analytics/dashlib/pkg/errors"
	"github.com/gigc-analytics/dashlib/pkg/logger"
	"github.com/gigc-analytics/dashlib/pkg/metrics"
	stringutil "github.com/gigc-analytics/dashlib/pkg/strings"
)

// CSVOptions configures CSV ingestion
type CSVOptions struct {
	Delimiter  rune
	Comment    rune
	HasHeader  bool
	NullValues []string
	TrimSpace  bool
}

// DefaultCSVOptions returns the options most dashboard extracts use
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter:  ',',
		HasHeader:  true,
		NullValues: []string{""},
	}
}

func (o CSVOptions) isNull(cell string) bool {
	for _, nv := range o.NullValues {
		if cell == nv {
			return true
		}
	}
	return false
}

// ReadCSV loads a CSV file into a new frame
func ReadCSV(path string, opts CSVOptions) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open CSV file").
			WithDetail("path", path)
	}
	defer file.Close()

	return ReadCSVFrom(file, opts)
}

// ReadCSVFrom loads CSV data from a reader into a new frame. Column dtypes
// are inferred over the whole input: a column whose every non-null cell
// parses as an integer becomes int64, one whose cells parse as numbers
// becomes float64, anything else stays string. Null tokens are stored as
// the column's zero value.
func ReadCSVFrom(r io.Reader, opts CSVOptions) (*Frame, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	if opts.Comment != 0 {
		reader.Comment = opts.Comment
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to parse CSV data")
	}

	if len(records) == 0 {
		return New(), nil
	}

	var headers []string
	rows := records
	if opts.HasHeader {
		headers = records[0]
		rows = records[1:]
	} else {
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = stringutil.Sprintf("column_%d", i)
		}
	}

	dtypes := inferCSVTypes(rows, len(headers), opts)

	schema := &Schema{Fields: make([]FieldSchema, len(headers))}
	for i, name := range headers {
		schema.Fields[i] = FieldSchema{Name: name, Type: dtypes[i]}
	}

	f := NewWithSchema(schema)
	for rowIdx, record := range rows {
		if len(record) != len(headers) {
			return nil, errors.New(errors.ErrorTypeData, "row has wrong number of fields").
				WithDetail("row", rowIdx).
				WithDetail("fields", len(record)).
				WithDetail("expected", len(headers))
		}
		for i, cell := range record {
			if opts.TrimSpace {
				cell = stringutil.TrimSpace(cell)
			}
			col := f.columns[headers[i]]
			if opts.isNull(cell) && col.DType() != DTypeString {
				cell = ""
			}
			var appendErr error
			if cell == "" && col.DType() != DTypeString {
				appendErr = col.Append(zeroValue(col.DType()))
			} else {
				appendErr = col.Append(cell)
			}
			if appendErr != nil {
				return nil, errors.Wrap(appendErr, errors.ErrorTypeData, "failed to append cell").
					WithDetail("row", rowIdx).
					WithDetail("column", headers[i])
			}
		}
		f.rowCount++
	}

	metrics.RowsLoaded.WithLabelValues("csv").Add(float64(f.rowCount))
	logger.Get().Info("CSV loaded",
		zap.Int("rows", f.rowCount),
		zap.Int("columns", len(headers)))

	return f, nil
}

// inferCSVTypes walks every cell once, demoting each column from int64 to
// float64 to string as cells fail to parse. All-null columns stay string.
func inferCSVTypes(rows [][]string, numCols int, opts CSVOptions) []DType {
	const (
		candidateInt = iota
		candidateFloat
		candidateString
	)

	candidates := make([]int, numCols)
	seen := make([]bool, numCols)

	for _, record := range rows {
		for i, cell := range record {
			if i >= numCols || candidates[i] == candidateString {
				continue
			}
			if opts.TrimSpace {
				cell = stringutil.TrimSpace(cell)
			}
			if opts.isNull(cell) {
				continue
			}
			seen[i] = true

			if candidates[i] == candidateInt {
				if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
					continue
				}
				candidates[i] = candidateFloat
			}
			if candidates[i] == candidateFloat {
				if _, err := strconv.ParseFloat(cell, 64); err == nil {
					continue
				}
				candidates[i] = candidateString
			}
		}
	}

	dtypes := make([]DType, numCols)
	for i := range dtypes {
		switch {
		case !seen[i]:
			dtypes[i] = DTypeString
		case candidates[i] == candidateInt:
			dtypes[i] = DTypeInt64
		case candidates[i] == candidateFloat:
			dtypes[i] = DTypeFloat64
		default:
			dtypes[i] = DTypeString
		}
	}
	return dtypes
}

// WriteCSV writes the frame to a CSV file with a header row
func WriteCSV(f *Frame, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to create CSV file").
			WithDetail("path", path)
	}
	defer file.Close()

	return WriteCSVTo(f, file)
}

// WriteCSVTo writes the frame to a writer as CSV with a header row
func WriteCSVTo(f *Frame, w io.Writer) error {
	writer := csv.NewWriter(w)

	headers := f.Columns()
	if err := writer.Write(headers); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write CSV header")
	}

	record := make([]string, len(headers))
	for i := 0; i < f.RowCount(); i++ {
		row, err := f.GetRow(i)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeData, "failed to read row")
		}
		for j, name := range headers {
			record[j] = formatValue(row[name])
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "failed to write CSV row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to flush CSV output")
	}
	return nil
}

// formatValue renders a cell for CSV output
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return stringutil.Sprintf("%v", val)
	}
}
