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

// Package breakdown drives an estimator across the three geographic tiers an
// indicator is reported at: each district of a province, the province, and
// the nation.  The driver owns geography only; what is being estimated is
// supplied by the caller, either as a binary indicator column or as an
// arbitrary estimator function.
package breakdown

import (
	"github.com/muhirwa23/DHS-API/pkg/dataset"
	"github.com/muhirwa23/DHS-API/pkg/estimate"
)

// Estimator computes a single value over a record set.
type Estimator func(*dataset.Dataset) float64

// Result holds one estimate per geographic scope, plus the caller-supplied
// description of the population estimated over.  District estimates are
// keyed by district name; a district with no matching rows is omitted
// entirely rather than reported as zero, and consumers rely on that
// distinction.
type Result struct {
	Districts      map[string]float64
	Province       float64
	National       float64
	PopulationType string
}

// Percentage drives estimate.WeightedPercentage across all three tiers for
// the given binary indicator.  See Apply for the geography semantics.
func Percentage(ds *dataset.Dataset, indicatorCol, weightCol string, regionCode int,
	districts map[int]string, populationType string) (Result, error) {
	return Apply(ds, regionCode, districts, populationType,
		percentageOf(indicatorCol, weightCol))
}

// PercentageBy is Percentage with an explicit grouping column.  See ApplyBy.
func PercentageBy(ds *dataset.Dataset, indicatorCol, weightCol string, regionCode int,
	groupCol string, districts map[int]string, populationType string) (Result, error) {
	return ApplyBy(ds, regionCode, groupCol, districts, populationType,
		percentageOf(indicatorCol, weightCol))
}

func percentageOf(indicatorCol, weightCol string) Estimator {
	return func(sub *dataset.Dataset) float64 {
		return estimate.WeightedPercentage(sub, indicatorCol, weightCol)
	}
}

// Apply runs the given estimator once per district in the supplied code->name
// mapping, once over the whole province and once over the full (national)
// dataset.  The grouping column is resolved from the dataset's district
// candidates (falling back to cluster); use ApplyBy to group on something
// else.
func Apply(ds *dataset.Dataset, regionCode int, districts map[int]string,
	populationType string, fn Estimator) (Result, error) {
	return ApplyBy(ds, regionCode, dataset.DistrictColumn(ds), districts, populationType, fn)
}

// ApplyBy is Apply with the grouping column named by the caller rather than
// resolved.  Children's (KR) files, for example, carry no district variable
// at all: districts are recovered from the sample stratum column (v023),
// whose codes map two-to-one onto district names.
//
// The province subset is rows whose region cell equals regionCode; it is
// computed once and shared by every district call.  District membership is
// determined by numeric comparison of the grouping column, with missing or
// unparseable cells never matching.  The mapping may be many-to-one: several
// codes sharing one name are estimated together as a single district.
//
// Region resolution failure is the only error this function returns.
func ApplyBy(ds *dataset.Dataset, regionCode int, groupCol string,
	districts map[int]string, populationType string, fn Estimator) (Result, error) {
	//
	regionCol, err := dataset.RegionColumn(ds)
	if err != nil {
		return Result{}, err
	}
	//
	province := ds.FilterEq(regionCol, float64(regionCode))
	// Invert the mapping so codes sharing a name are grouped
	codesByName := make(map[string][]float64)
	for code, name := range districts {
		codesByName[name] = append(codesByName[name], float64(code))
	}
	//
	result := Result{
		Districts:      make(map[string]float64),
		PopulationType: populationType,
	}
	//
	for name, codes := range codesByName {
		sub := province.Filter(func(r dataset.Row) bool {
			v, ok := r.Value(groupCol)
			if !ok {
				return false
			}

			for _, code := range codes {
				if v == code {
					return true
				}
			}

			return false
		})
		// Omit rather than report zero
		if sub.Height() == 0 {
			continue
		}

		result.Districts[name] = fn(sub)
	}
	//
	result.Province = fn(province)
	result.National = fn(ds)
	//
	return result, nil
}
