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

// Package fertility estimates total fertility rates from a women's survey
// record set.  Unlike the point-in-time estimators, fertility requires
// replaying the five years before each interview month by month: a woman
// contributes exposure to whichever five-year age band she occupied in each
// of those months, and each birth in the window counts against the band she
// occupied when it happened.  Dates are century-month codes (CMC, months
// since January 1900), so all age arithmetic is integer month counts.
package fertility

import (
	"math"
	"strings"

	"github.com/muhirwa23/DHS-API/pkg/dataset"
	"github.com/muhirwa23/DHS-API/pkg/estimate"
)

const (
	// Window is the retrospective reference period, in months.
	Window = 60
	// Bands is the number of five-year maternal age bands (15-19 ... 45-49).
	Bands = 7
	// IdealSentinel replaces implausible or missing "ideal number of
	// children" responses.  No birth order can exceed it, so such women
	// never fail the wanted-birth test.
	IdealSentinel = 99
	// Responses above this are non-numeric codes ("don't know" etc), not
	// counts.
	maxIdeal = 40
)

// Survey variable names used by the estimator.  b3_* (birth date, CMC) and
// bord_* (birth order) columns are discovered per dataset, since the number
// of birth-history slots varies.
const (
	weightCol    = "v005"
	interviewCol = "v008"
	birthDateCol = "v011"
	idealCol     = "v613"
	historyCol   = "b3_"
	orderPrefix  = "bord_"
)

// Rates computes the observed and wanted total fertility rates, in children
// per woman, over the five years preceding each interview.  Every row is
// assumed to be a woman of reproductive age.  Both rates are rounded to one
// decimal; an empty record set yields (0, 0).
//
// A birth counts as wanted when its birth order does not exceed the mother's
// stated ideal number of children.  Wanted is therefore a sub-count of
// observed, so wanted <= observed always holds.
func Rates(ds *dataset.Dataset) (observed, wanted float64) {
	if ds.Height() == 0 {
		return 0, 0
	}
	//
	var (
		exposureYears [Bands]float64
		birthsObs     [Bands]float64
		birthsWtd     [Bands]float64
	)
	//
	accumulateExposure(ds, &exposureYears)
	accumulateBirths(ds, &birthsObs, &birthsWtd)
	// Each band rate is births per woman-year of exposure within a
	// five-year band, so scaling the sum by five gives the lifetime
	// equivalent total.
	var sumObs, sumWtd float64
	//
	for i := 0; i < Bands; i++ {
		if exposureYears[i] != 0 {
			sumObs += birthsObs[i] / exposureYears[i]
			sumWtd += birthsWtd[i] / exposureYears[i]
		}
	}
	//
	return estimate.Round1(5 * sumObs), estimate.Round1(5 * sumWtd)
}

// accumulateExposure walks every month of the reference window and credits
// each woman's normalised weight to the age band she occupied that month.
// Month totals are converted to woman-years on accumulation.
func accumulateExposure(ds *dataset.Dataset, exposureYears *[Bands]float64) {
	for row, n := 0, ds.Height(); row < n; row++ {
		w, interview, dob, ok := womanAt(ds, row)
		if !ok {
			continue
		}

		for offset := 1; offset <= Window; offset++ {
			band := ageBand(interview-float64(offset), dob)
			if band >= 0 {
				exposureYears[band] += w / 12.0
			}
		}
	}
}

// accumulateBirths scans every birth-history slot for births falling inside
// the reference window, crediting each to the band the mother occupied at
// the birth.
func accumulateBirths(ds *dataset.Dataset, birthsObs, birthsWtd *[Bands]float64) {
	for _, birthCol := range ds.ColumnsWithPrefix(historyCol) {
		orderCol := orderPrefix + strings.TrimPrefix(birthCol, historyCol)
		if !ds.Has(orderCol) {
			continue
		}

		for row, n := 0, ds.Height(); row < n; row++ {
			w, interview, dob, ok := womanAt(ds, row)
			if !ok {
				continue
			}

			birth, ok := ds.Value(birthCol, row)
			if !ok || birth < interview-Window || birth >= interview {
				continue
			}

			band := ageBand(birth, dob)
			if band < 0 {
				continue
			}
			//
			birthsObs[band] += w
			//
			if order, ok := ds.Value(orderCol, row); ok && order <= idealAt(ds, row) {
				birthsWtd[band] += w
			}
		}
	}
}

// womanAt extracts the per-woman values every accumulation step needs.  A
// woman missing any of them contributes nothing.
func womanAt(ds *dataset.Dataset, row int) (w, interview, dob float64, ok bool) {
	if w, ok = ds.Value(weightCol, row); !ok {
		return 0, 0, 0, false
	}

	if interview, ok = ds.Value(interviewCol, row); !ok {
		return 0, 0, 0, false
	}

	if dob, ok = ds.Value(birthDateCol, row); !ok {
		return 0, 0, 0, false
	}

	return w / estimate.WeightScale, interview, dob, true
}

// idealAt returns the woman's stated ideal number of children, with missing
// and implausible responses mapped to the sentinel.
func idealAt(ds *dataset.Dataset, row int) float64 {
	ideal, ok := ds.Value(idealCol, row)
	if !ok || ideal > maxIdeal {
		return IdealSentinel
	}

	return ideal
}

// ageBand maps a CMC instant and a date of birth to a five-year maternal age
// band index, or -1 when the age falls outside [15, 50).  Completed years
// use floor division, matching how ages are derived throughout the survey.
func ageBand(at, dob float64) int {
	age := math.Floor((at - dob) / 12)
	band := math.Floor((age - 15) / 5)
	//
	if band < 0 || band >= Bands {
		return -1
	}

	return int(band)
}
