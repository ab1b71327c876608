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
package dataset

// Filters bundles the standard row restrictions applied before estimation:
// geography, age range and usual residence.  Zero values mean "no
// restriction" (region and district codes are strictly positive in survey
// data, as are the ages callers restrict on).  A filter whose column is
// absent from the dataset is skipped rather than failed, matching how
// heterogeneous survey files are handled everywhere else.
type Filters struct {
	// Province/region code (1-5), or 0 for all regions
	Region int
	// District code, or 0 for all districts
	District int
	// Minimum age in completed years, or 0 for no minimum
	MinAge int
	// Maximum age in completed years, or 0 for no maximum
	MaxAge int
	// Restrict to usual (de jure) residents
	DeJure bool
}

// Age and residence also vary by file type: households record member age in
// hv105 and residence in hv102, women's files use v012 and v135.
var (
	ageCandidates       = []string{"hv105", "v012"}
	residenceCandidates = []string{"hv102", "v135"}
)

// Apply this set of filters to the given dataset, returning the restricted
// view.
func (f Filters) Apply(ds *Dataset) *Dataset {
	out := ds
	//
	if f.Region > 0 {
		if col := resolve(out, regionCandidates, ""); col != "" {
			out = out.FilterEq(col, float64(f.Region))
		}
	}
	//
	if f.District > 0 {
		if col := resolve(out, districtCandidates, ""); col != "" {
			out = out.FilterEq(col, float64(f.District))
		}
	}
	//
	if f.MinAge > 0 || f.MaxAge > 0 {
		if col := resolve(out, ageCandidates, ""); col != "" {
			out = out.Filter(func(r Row) bool {
				age, ok := r.Value(col)
				if !ok {
					return false
				}

				if f.MinAge > 0 && age < float64(f.MinAge) {
					return false
				}

				return f.MaxAge == 0 || age <= float64(f.MaxAge)
			})
		}
	}
	//
	if f.DeJure {
		if col := resolve(out, residenceCandidates, ""); col != "" {
			out = out.FilterEq(col, 1)
		}
	}
	//
	return out
}
