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

// Loader is the collaborator contract through which callers obtain record
// sets, keyed by logical dataset name (e.g. "household", "women", "men",
// "children").  Implementations own file formats, caching and memoisation;
// the estimators only ever receive already-loaded datasets and treat them as
// read-only snapshots, which keeps every computation safe to run
// concurrently without coordination.
type Loader interface {
	// Load the dataset registered under the given logical name.  Column
	// names must be lowercase-normalised, as produced by NewColumn.
	Load(name string) (*Dataset, error)
}
