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

// Package dataset provides the column-oriented record set which all survey
// estimators consume: an immutable table of named columns where individual
// cells may be missing.  Row subsets are lightweight views which share the
// backing column data, so pre-filtering a province once and reusing the
// subset across district-level calls costs nothing.
package dataset

import (
	"fmt"
	"slices"
	"strings"
)

// Dataset describes a set of named, equal-height data columns, addressed by
// (column name, row).  A dataset may be a view onto a subset of another
// dataset's rows; views never copy cell data.
type Dataset struct {
	// Holds every column, in insertion order
	columns []Column
	// Maps column name to its index within columns
	index map[string]int
	// Maps view rows to backing rows.  A nil mapping means the view covers
	// all rows in order.
	rows []int
}

// NewDataset constructs a dataset from the given columns.  All columns must
// have the same height and distinct names; violating either is a programmer
// error, not a data error, hence the panic.
func NewDataset(cols ...Column) *Dataset {
	p := &Dataset{index: make(map[string]int, len(cols))}
	//
	for _, col := range cols {
		if len(p.columns) > 0 && col.Height() != p.columns[0].Height() {
			panic(fmt.Sprintf("column %s has height %d, expected %d",
				col.Name(), col.Height(), p.columns[0].Height()))
		}

		if _, ok := p.index[col.Name()]; ok {
			panic(fmt.Sprintf("column %s already exists", col.Name()))
		}
		//
		p.index[col.Name()] = len(p.columns)
		p.columns = append(p.columns, col)
	}
	//
	return p
}

// Height determines the number of rows in this dataset (or view).
func (p *Dataset) Height() int {
	if p.rows != nil {
		return len(p.rows)
	}

	if len(p.columns) == 0 {
		return 0
	}

	return p.columns[0].Height()
}

// Has checks whether the dataset has a given column or not.  Names are
// matched after lowercase normalisation.
func (p *Dataset) Has(name string) bool {
	_, ok := p.index[strings.ToLower(name)]
	return ok
}

// ColumnNames returns the name of every column, in insertion order.
func (p *Dataset) ColumnNames() []string {
	names := make([]string, len(p.columns))
	for i, col := range p.columns {
		names[i] = col.Name()
	}

	return names
}

// ColumnsWithPrefix returns the (sorted) names of all columns sharing a given
// prefix.  Birth-history variables, for example, arrive as a family of
// suffixed columns (b3_01, b3_02, ...) whose width varies between files.
func (p *Dataset) ColumnsWithPrefix(prefix string) []string {
	var names []string
	//
	for _, col := range p.columns {
		if strings.HasPrefix(col.Name(), prefix) {
			names = append(names, col.Name())
		}
	}
	//
	slices.Sort(names)
	//
	return names
}

// Value returns the cell at the given column and (view) row.  The second
// result is false when the column does not exist or the cell is missing;
// callers uniformly exclude such rows from whatever they are computing.
func (p *Dataset) Value(name string, row int) (float64, bool) {
	ci, ok := p.index[strings.ToLower(name)]
	if !ok {
		return 0, false
	}

	if p.rows != nil {
		row = p.rows[row]
	}

	return p.columns[ci].Get(row)
}

// Row returns an accessor for the given (view) row.
func (p *Dataset) Row(index int) Row {
	return Row{p, index}
}

// Select constructs a view containing the given rows of this dataset, in the
// given order.  Row indices are relative to this view.
func (p *Dataset) Select(rows []int) *Dataset {
	mapped := make([]int, len(rows))
	//
	for i, r := range rows {
		if p.rows != nil {
			mapped[i] = p.rows[r]
		} else {
			mapped[i] = r
		}
	}
	//
	return &Dataset{p.columns, p.index, mapped}
}

// Filter constructs a view containing exactly those rows matching the given
// predicate.
func (p *Dataset) Filter(pred func(Row) bool) *Dataset {
	var rows []int
	//
	for i, n := 0, p.Height(); i < n; i++ {
		if pred(Row{p, i}) {
			rows = append(rows, i)
		}
	}
	//
	return p.Select(rows)
}

// FilterEq constructs a view containing those rows whose cell in the given
// column numerically equals code.  Rows where the cell is missing (or the
// column absent) never match.
func (p *Dataset) FilterEq(name string, code float64) *Dataset {
	return p.Filter(func(r Row) bool {
		v, ok := r.Value(name)
		return ok && v == code
	})
}

// Row provides cell access for a single row of a dataset.
type Row struct {
	dataset *Dataset
	index   int
}

// Value returns this row's cell in the given column, with the same missing
// semantics as Dataset.Value.
func (r Row) Value(name string) (float64, bool) {
	return r.dataset.Value(name, r.index)
}
