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
	"math"
	"strconv"
	"strings"
)

// Column is a single named vector of survey observations.  Cells are stored
// as float64, with NaN marking a missing or unparseable value.  Survey files
// encode categorical data as numeric codes, so a single numeric cell type is
// sufficient for every variable the estimators consume.
type Column struct {
	// Holds the lowercase-normalised name of this column
	name string
	// Holds the raw data making up this column
	data []float64
}

// NewColumn constructs a column from numeric data.  The name is normalised to
// lowercase, matching how survey files are standardised on load.
func NewColumn(name string, data []float64) Column {
	return Column{strings.ToLower(name), data}
}

// NewStringColumn constructs a column from raw string cells, coercing each
// cell to a number.  Cells which do not parse become missing values rather
// than errors, since partial failure on one row must never abort an aggregate.
func NewStringColumn(name string, cells []string) Column {
	data := make([]float64, len(cells))
	//
	for i, cell := range cells {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			v = math.NaN()
		}

		data[i] = v
	}
	//
	return NewColumn(name, data)
}

// Name returns the (lowercase) name of the given column.
func (p Column) Name() string {
	return p.name
}

// Height determines the height of this column.
func (p Column) Height() int {
	return len(p.data)
}

// Get the value at a given row in this column.  The second result is false
// when the cell is missing.
func (p Column) Get(row int) (float64, bool) {
	v := p.data[row]
	return v, !math.IsNaN(v)
}
