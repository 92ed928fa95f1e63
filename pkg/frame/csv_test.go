package frame

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `id,score,name
1,1.1,ana
2,2.2,blas
3,3.3,cleo
`

func TestReadCSVFromInfersTypes(t *testing.T) {
	f, err := ReadCSVFrom(strings.NewReader(sampleCSV), DefaultCSVOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, f.RowCount())
	assert.Equal(t, []string{"id", "score", "name"}, f.Columns())

	id, _ := f.GetColumn("id")
	score, _ := f.GetColumn("score")
	name, _ := f.GetColumn("name")
	assert.Equal(t, DTypeInt64, id.DType())
	assert.Equal(t, DTypeFloat64, score.DType())
	assert.Equal(t, DTypeString, name.DType())

	assert.Equal(t, int64(2), id.Get(1))
	assert.Equal(t, 2.2, score.Get(1))
	assert.Equal(t, "blas", name.Get(1))
}

func TestReadCSVFromDemotesMixedColumns(t *testing.T) {
	input := "a,b\n1,1\n2.5,x\n"
	f, err := ReadCSVFrom(strings.NewReader(input), DefaultCSVOptions())
	require.NoError(t, err)

	a, _ := f.GetColumn("a")
	b, _ := f.GetColumn("b")
	assert.Equal(t, DTypeFloat64, a.DType(), "int demotes to float on a decimal cell")
	assert.Equal(t, DTypeString, b.DType(), "float demotes to string on a non-numeric cell")
}

func TestReadCSVFromNulls(t *testing.T) {
	input := "v,w\n10,\n,x\n30,y\n"
	f, err := ReadCSVFrom(strings.NewReader(input), DefaultCSVOptions())
	require.NoError(t, err)

	// Nulls do not demote a numeric column; they load as the zero value
	v, _ := f.GetColumn("v")
	assert.Equal(t, DTypeInt64, v.DType())
	assert.Equal(t, int64(0), v.Get(1))

	w, _ := f.GetColumn("w")
	assert.Equal(t, DTypeString, w.DType())
	assert.Equal(t, "", w.Get(0))
}

func TestReadCSVFromAllNullColumn(t *testing.T) {
	input := "v\n\n\n"
	f, err := ReadCSVFrom(strings.NewReader(input), DefaultCSVOptions())
	require.NoError(t, err)

	v, _ := f.GetColumn("v")
	assert.Equal(t, DTypeString, v.DType(), "a column with no observed values stays string")
}

func TestReadCSVFromNoHeader(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.HasHeader = false

	f, err := ReadCSVFrom(strings.NewReader("1,ana\n2,blas\n"), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"column_0", "column_1"}, f.Columns())
	assert.Equal(t, 2, f.RowCount())
}

func TestReadCSVFromEmpty(t *testing.T) {
	f, err := ReadCSVFrom(strings.NewReader(""), DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, f.RowCount())
	assert.Equal(t, 0, f.ColumnCount())
}

func TestReadCSVFromRaggedRow(t *testing.T) {
	_, err := ReadCSVFrom(strings.NewReader("a,b\n1\n"), DefaultCSVOptions())
	assert.Error(t, err)
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV("/nonexistent/extract.csv", DefaultCSVOptions())
	assert.Error(t, err)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	f, err := ReadCSVFrom(strings.NewReader(sampleCSV), DefaultCSVOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSVTo(f, &buf))

	f2, err := ReadCSVFrom(&buf, DefaultCSVOptions())
	require.NoError(t, err)

	assert.Equal(t, f.Columns(), f2.Columns())
	assert.Equal(t, f.RowCount(), f2.RowCount())

	row, err := f2.GetRow(2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), row["id"])
	assert.Equal(t, 3.3, row["score"])
	assert.Equal(t, "cleo", row["name"])
}

func TestShrinkLoadedCSV(t *testing.T) {
	// End to end over the CSV path: id narrows to int8, score to float16,
	// name stays string with the same values
	f, err := ReadCSVFrom(strings.NewReader(sampleCSV), DefaultCSVOptions())
	require.NoError(t, err)

	newSilentReducer().Shrink(f)

	id, _ := f.GetColumn("id")
	score, _ := f.GetColumn("score")
	name, _ := f.GetColumn("name")
	assert.Equal(t, DTypeInt8, id.DType())
	assert.Equal(t, DTypeFloat16, score.DType())
	assert.Equal(t, DTypeString, name.DType())
	assert.Equal(t, "ana", name.Get(0))
}

func TestFrameJSONExport(t *testing.T) {
	f, err := ReadCSVFrom(strings.NewReader(sampleCSV), DefaultCSVOptions())
	require.NoError(t, err)

	data, err := f.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"ana"`)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(f, &buf))
	assert.Contains(t, buf.String(), `"id":2`)
}
