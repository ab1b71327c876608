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
package estimate

import "math"

// StandardRound rounds to the nearest integer with ties going up, i.e.
// floor(x + 0.5).  This is the rounding convention published survey tables
// use, and it differs from round-half-to-even: 44.5 rounds to 45.  It must
// only ever be applied as the final step of a computation, never to
// intermediate sums.
func StandardRound(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Round1 rounds a rate to one decimal place, as reported for fertility rates
// and median ages.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
