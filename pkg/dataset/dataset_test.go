package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetValue(t *testing.T) {
	ds := NewDataset(
		NewColumn("HV024", []float64{5, 5, math.NaN()}),
		NewStringColumn("shdistrict", []string{"51", " 52 ", "oops"}),
	)

	require.Equal(t, 3, ds.Height())
	assert.True(t, ds.Has("hv024"))
	assert.True(t, ds.Has("HV024"), "lookups are case-insensitive")
	assert.False(t, ds.Has("v024"))

	v, ok := ds.Value("hv024", 0)
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)

	// Missing cell
	_, ok = ds.Value("hv024", 2)
	assert.False(t, ok)

	// Absent column
	_, ok = ds.Value("nope", 0)
	assert.False(t, ok)

	// String cells coerce, with whitespace tolerated and junk missing
	v, ok = ds.Value("shdistrict", 1)
	assert.True(t, ok)
	assert.Equal(t, 52.0, v)

	_, ok = ds.Value("shdistrict", 2)
	assert.False(t, ok, "unparseable cells are missing, not zero")
}

func TestDatasetConstructionPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewDataset(
			NewColumn("a", []float64{1, 2}),
			NewColumn("b", []float64{1}),
		)
	}, "mismatched heights")

	assert.Panics(t, func() {
		NewDataset(
			NewColumn("a", []float64{1}),
			NewColumn("A", []float64{2}),
		)
	}, "duplicate name after normalisation")
}

func TestDatasetViews(t *testing.T) {
	ds := NewDataset(
		NewColumn("x", []float64{10, 20, 30, 40}),
		NewColumn("keep", []float64{1, 0, 1, 0}),
	)

	view := ds.FilterEq("keep", 1)
	require.Equal(t, 2, view.Height())

	v, ok := view.Value("x", 1)
	require.True(t, ok)
	assert.Equal(t, 30.0, v)

	// Views compose: selecting within a view maps back to the right rows
	sub := view.Select([]int{1})
	require.Equal(t, 1, sub.Height())

	v, ok = sub.Value("x", 0)
	require.True(t, ok)
	assert.Equal(t, 30.0, v)

	// Filtering a view down to nothing gives an empty view, not the original
	empty := view.FilterEq("x", 999)
	assert.Equal(t, 0, empty.Height())
}

func TestDatasetFilterEqMissing(t *testing.T) {
	ds := NewDataset(NewColumn("code", []float64{7, math.NaN(), 7}))

	// Missing cells never match, even against NaN-ish comparisons
	assert.Equal(t, 2, ds.FilterEq("code", 7).Height())
	assert.Equal(t, 0, ds.FilterEq("absent", 7).Height())
}

func TestColumnsWithPrefix(t *testing.T) {
	ds := NewDataset(
		NewColumn("b3_03", []float64{1}),
		NewColumn("b3_01", []float64{1}),
		NewColumn("bord_01", []float64{1}),
		NewColumn("v005", []float64{1}),
	)

	assert.Equal(t, []string{"b3_01", "b3_03"}, ds.ColumnsWithPrefix("b3_"))
	assert.Empty(t, ds.ColumnsWithPrefix("hw"))
}

func TestEmptyDataset(t *testing.T) {
	ds := NewDataset()
	assert.Equal(t, 0, ds.Height())
	assert.Empty(t, ds.ColumnNames())
}
