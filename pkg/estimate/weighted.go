// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package estimate implements the weighted estimators shared by every survey
// indicator: percentages of binary indicators, means and medians of
// continuous variables.  Estimators are pure functions over a read-only
// dataset; anomalies in the data degrade to documented fallbacks rather than
// errors, because on real survey files a single bad row must never abort an
// aggregate over thousands.
package estimate

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/muhirwa23/DHS-API/pkg/dataset"
)

// WeightScale is the fixed divisor applied to raw sampling weights before
// use.  Survey files store weights multiplied by one million.
const WeightScale = 1_000_000.0

// WeightedPercentage computes the weight-adjusted percentage of a binary
// (0/1) indicator over the given dataset, rounded via StandardRound.  Rows
// where the indicator or the weight is missing are excluded from both
// numerator and denominator.  An empty dataset (or one emptied by the
// exclusions) yields 0, which callers render as "no data".
//
// When the named weight column cannot be resolved, the result silently
// degrades to the unweighted percentage.  Note that because rounding is
// applied per call, values across nested geographies need not be monotonic.
func WeightedPercentage(ds *dataset.Dataset, indicatorCol, weightCol string) float64 {
	return float64(StandardRound(weightedAverage(ds, indicatorCol, weightCol) * 100))
}

// WeightedProportion is WeightedPercentage without the scaling to 0-100.
func WeightedProportion(ds *dataset.Dataset, indicatorCol, weightCol string) float64 {
	return float64(StandardRound(weightedAverage(ds, indicatorCol, weightCol)))
}

// WeightedMean computes the weight-adjusted mean of a continuous variable,
// with the same exclusion and fallback rules as WeightedPercentage but no
// rounding.
func WeightedMean(ds *dataset.Dataset, valueCol, weightCol string) float64 {
	return weightedAverage(ds, valueCol, weightCol)
}

// WeightedMedian computes the weighted median of a continuous variable: the
// first value (in ascending order) whose cumulative weight reaches half the
// total weight.  An empty dataset yields 0.
func WeightedMedian(ds *dataset.Dataset, valueCol, weightCol string) float64 {
	wcol := resolveWeight(ds, weightCol)
	//
	type cell struct {
		value  float64
		weight float64
	}
	//
	var cells []cell
	//
	for row, n := 0, ds.Height(); row < n; row++ {
		v, ok := ds.Value(valueCol, row)
		if !ok {
			continue
		}
		//
		w := 1.0
		if wcol != "" {
			if w, ok = ds.Value(wcol, row); !ok {
				continue
			}

			w /= WeightScale
		}
		//
		cells = append(cells, cell{v, w})
	}

	if len(cells) == 0 {
		return 0
	}
	//
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].value < cells[j].value })
	//
	var total float64
	for _, c := range cells {
		total += c.weight
	}
	//
	cutoff := total / 2
	//
	var cumulative float64
	for _, c := range cells {
		cumulative += c.weight
		if cumulative >= cutoff {
			return c.value
		}
	}
	// Unreachable for positive weights
	return cells[len(cells)-1].value
}

// weightedAverage is the unrounded, unscaled core shared by all estimators:
// sum(w*x) / sum(w) over rows where both cells are present.
func weightedAverage(ds *dataset.Dataset, valueCol, weightCol string) float64 {
	if ds.Height() == 0 {
		return 0
	}
	//
	wcol := resolveWeight(ds, weightCol)
	//
	var sumWX, sumW float64
	//
	for row, n := 0, ds.Height(); row < n; row++ {
		x, ok := ds.Value(valueCol, row)
		if !ok {
			continue
		}

		if wcol == "" {
			sumWX += x
			sumW++

			continue
		}

		w, ok := ds.Value(wcol, row)
		if !ok {
			continue
		}
		//
		w /= WeightScale
		sumWX += w * x
		sumW += w
	}

	if sumW == 0 {
		return 0
	}
	//
	return sumWX / sumW
}

// resolveWeight maps the requested weight column to one actually present,
// degrading to unweighted (empty string) when none of the conventional
// candidates exists either.
func resolveWeight(ds *dataset.Dataset, weightCol string) string {
	if weightCol != "" && ds.Has(weightCol) {
		return weightCol
	}

	if col := dataset.WeightColumn(ds); col != "" {
		return col
	}

	if weightCol != "" {
		log.Warnf("weight column %s not found, using unweighted", weightCol)
	}

	return ""
}
