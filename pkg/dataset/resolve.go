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

import (
	"fmt"
	"strings"
)

// Survey file schemas are not stable across recodes: the same semantic role
// is carried by different variable names in household (hv*), women (v*) and
// men (mv*) files.  Each role therefore resolves against a priority-ordered
// candidate list, once per dataset, rather than scattering name checks
// through every computation.
var (
	weightCandidates   = []string{"hv005", "v005", "mv005", "hv005a"}
	regionCandidates   = []string{"hv024", "v024", "mv024"}
	districtCandidates = []string{"shdistrict", "sdistrict", "sdstr", "smdistrict"}
)

// ClusterColumn is the enumeration-area identifier present in every survey
// file.  It is the fallback grouping when no district variable exists.
const ClusterColumn = "hv001"

// MissingColumnError indicates that a semantically required column could not
// be resolved against any of its candidate names.  It is never swallowed by
// the estimators; callers must surface it as a request failure.
type MissingColumnError struct {
	// Role of the column being resolved (e.g. "region")
	Role string
	// Candidate names which were tried, in priority order
	Candidates []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("no %s column found (tried %s)",
		e.Role, strings.Join(e.Candidates, ", "))
}

// Resolve returns the first candidate present amongst the available column
// names, or fallback if none is.  Matching is case-insensitive on both
// sides, consistent with Dataset.Has.
func Resolve(available []string, candidates []string, fallback string) string {
	for _, c := range candidates {
		for _, a := range available {
			if strings.EqualFold(a, c) {
				return strings.ToLower(c)
			}
		}
	}

	return fallback
}

// WeightColumn resolves the sampling-weight column for the given dataset.
// The empty string is returned when no candidate is present, which degrades
// downstream aggregation to unweighted means.
func WeightColumn(ds *Dataset) string {
	return resolve(ds, weightCandidates, "")
}

// RegionColumn resolves the province/region column for the given dataset.
// There is no safe fallback for this role: every geographic breakdown needs
// it, so absence is a MissingColumnError.
func RegionColumn(ds *Dataset) (string, error) {
	if col := resolve(ds, regionCandidates, ""); col != "" {
		return col, nil
	}

	return "", &MissingColumnError{"region", regionCandidates}
}

// DistrictColumn resolves the district column for the given dataset, falling
// back to the cluster identifier when no district variable exists.
func DistrictColumn(ds *Dataset) string {
	return resolve(ds, districtCandidates, ClusterColumn)
}

func resolve(ds *Dataset, candidates []string, fallback string) string {
	for _, c := range candidates {
		if ds.Has(c) {
			return c
		}
	}

	return fallback
}
