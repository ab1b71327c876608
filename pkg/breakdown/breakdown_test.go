package breakdown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhirwa23/DHS-API/pkg/dataset"
)

func TestPercentageOmitsEmptyDistricts(t *testing.T) {
	// Three rows in district 51, none in 52: "B" must be absent from the
	// result, not reported as zero.
	ds := dataset.NewDataset(
		dataset.NewColumn("v024", []float64{5, 5, 5}),
		dataset.NewColumn("sdistrict", []float64{51, 51, 51}),
		dataset.NewColumn("indicator", []float64{1, 1, 1}),
		dataset.NewColumn("v005", []float64{1_000_000, 1_000_000, 1_000_000}),
	)

	result, err := Percentage(ds, "indicator", "v005", 5,
		map[int]string{51: "A", 52: "B"}, "Households")
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 100}, result.Districts)
	assert.NotContains(t, result.Districts, "B")
	assert.Equal(t, 100.0, result.Province)
	assert.Equal(t, 100.0, result.National)
	assert.Equal(t, "Households", result.PopulationType)
}

func TestPercentageThreeTiers(t *testing.T) {
	// Rows span two provinces; national covers everything, province and
	// districts only region 5.
	ds := dataset.NewDataset(
		dataset.NewColumn("v024", []float64{5, 5, 5, 5, 2, 2}),
		dataset.NewColumn("sdistrict", []float64{51, 51, 52, 52, 21, 21}),
		dataset.NewColumn("indicator", []float64{1, 0, 1, 1, 0, 0}),
		dataset.NewColumn("v005", repeat(1_000_000, 6)),
	)

	result, err := Percentage(ds, "indicator", "v005", 5,
		map[int]string{51: "Rwamagana", 52: "Nyagatare"}, "Women age 15-49")
	require.NoError(t, err)

	assert.Equal(t, 50.0, result.Districts["Rwamagana"])
	assert.Equal(t, 100.0, result.Districts["Nyagatare"])
	assert.Equal(t, 75.0, result.Province)
	assert.Equal(t, 50.0, result.National)
}

func TestPercentageByManyToOneStrata(t *testing.T) {
	// Children's (KR) files carry no district variable: districts are
	// recovered from the sample stratum column v023, whose finer-grained
	// codes map two per district onto one name.
	ds := dataset.NewDataset(
		dataset.NewColumn("v024", []float64{5, 5, 5, 5}),
		dataset.NewColumn("v023", []float64{47, 48, 47, 49}),
		dataset.NewColumn("indicator", []float64{1, 1, 0, 0}),
		dataset.NewColumn("v005", repeat(1_000_000, 4)),
	)

	strata := map[int]string{
		47: "Rwamagana", 48: "Rwamagana",
		49: "Nyagatare", 50: "Nyagatare",
	}

	result, err := PercentageBy(ds, "indicator", "v005", 5, "v023", strata, "Children under 5")
	require.NoError(t, err)

	// Codes 47+48 pool three rows (two positive)
	assert.Equal(t, 67.0, result.Districts["Rwamagana"])
	assert.Equal(t, 0.0, result.Districts["Nyagatare"])
	assert.Len(t, result.Districts, 2)
	assert.Equal(t, 50.0, result.Province)
}

func TestApplyByNamedGroupingColumn(t *testing.T) {
	// The default resolver would group this dataset by cluster (no
	// district variable), yielding no matching districts; naming the
	// stratum column explicitly recovers them.
	ds := dataset.NewDataset(
		dataset.NewColumn("v024", []float64{5, 5, 5}),
		dataset.NewColumn("v023", []float64{47, 48, 47}),
		dataset.NewColumn("indicator", []float64{1, 1, 0}),
		dataset.NewColumn("v005", repeat(1_000_000, 3)),
	)

	strata := map[int]string{47: "Rwamagana", 48: "Rwamagana"}

	result, err := Percentage(ds, "indicator", "v005", 5, strata, "")
	require.NoError(t, err)
	assert.Empty(t, result.Districts, "stratum codes are invisible to the district resolver")

	result, err = PercentageBy(ds, "indicator", "v005", 5, "v023", strata, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Rwamagana": 67}, result.Districts)
}

func TestPercentageMissingRegionColumn(t *testing.T) {
	ds := dataset.NewDataset(
		dataset.NewColumn("indicator", []float64{1}),
		dataset.NewColumn("v005", []float64{1_000_000}),
	)

	_, err := Percentage(ds, "indicator", "v005", 5, map[int]string{51: "A"}, "")
	require.Error(t, err)

	var missing *dataset.MissingColumnError
	assert.True(t, errors.As(err, &missing), "region failure must surface typed")
}

func TestPercentageClusterFallback(t *testing.T) {
	// No district variable: grouping degrades to cluster codes.
	ds := dataset.NewDataset(
		dataset.NewColumn("v024", []float64{5, 5}),
		dataset.NewColumn("hv001", []float64{101, 102}),
		dataset.NewColumn("indicator", []float64{1, 0}),
		dataset.NewColumn("v005", repeat(1_000_000, 2)),
	)

	result, err := Percentage(ds, "indicator", "v005", 5,
		map[int]string{101: "A", 102: "B"}, "")
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.Districts["A"])
	assert.Equal(t, 0.0, result.Districts["B"])
}

func TestPercentageUnparseableDistrictCells(t *testing.T) {
	// String-typed district cells coerce numerically; junk never matches.
	ds := dataset.NewDataset(
		dataset.NewColumn("v024", []float64{5, 5, 5}),
		dataset.NewStringColumn("sdistrict", []string{"51", "junk", "51"}),
		dataset.NewColumn("indicator", []float64{1, 1, 0}),
		dataset.NewColumn("v005", repeat(1_000_000, 3)),
	)

	result, err := Percentage(ds, "indicator", "v005", 5, map[int]string{51: "A"}, "")
	require.NoError(t, err)

	assert.Equal(t, 50.0, result.Districts["A"])
}

func TestApplyDistrictNumeratorsSumToProvince(t *testing.T) {
	// Per-group rounding is not reconciled, but the unrounded weighted
	// numerators of the districts must partition the province's.
	ds := dataset.NewDataset(
		dataset.NewColumn("v024", []float64{5, 5, 5, 5, 5}),
		dataset.NewColumn("sdistrict", []float64{51, 52, 51, 52, 51}),
		dataset.NewColumn("indicator", []float64{1, 1, 0, 1, 1}),
		dataset.NewColumn("v005", []float64{1_700_000, 400_000, 2_250_000, 900_000, 1_150_000}),
	)

	numerator := func(sub *dataset.Dataset) float64 {
		var sum float64
		for row := 0; row < sub.Height(); row++ {
			x, xok := sub.Value("indicator", row)
			w, wok := sub.Value("v005", row)

			if xok && wok {
				sum += x * w / 1_000_000
			}
		}

		return sum
	}

	result, err := Apply(ds, 5, map[int]string{51: "A", 52: "B"}, "", numerator)
	require.NoError(t, err)

	districtSum := result.Districts["A"] + result.Districts["B"]
	assert.InDelta(t, result.Province, districtSum, 1e-9)
}

func TestApplyDrivesArbitraryEstimators(t *testing.T) {
	// The same tiering loop serves non-percentage estimators (fertility
	// rates, weighted medians); here a plain row count.
	ds := dataset.NewDataset(
		dataset.NewColumn("v024", []float64{5, 5, 2}),
		dataset.NewColumn("sdistrict", []float64{51, 51, 21}),
	)

	count := func(sub *dataset.Dataset) float64 { return float64(sub.Height()) }

	result, err := Apply(ds, 5, map[int]string{51: "A"}, "", count)
	require.NoError(t, err)

	assert.Equal(t, 2.0, result.Districts["A"])
	assert.Equal(t, 2.0, result.Province)
	assert.Equal(t, 3.0, result.National)
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
