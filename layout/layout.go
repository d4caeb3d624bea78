// Copyright 2026 lythd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package layout provides the pure index arithmetic behind the debug
// heap-style binary-tree visualization. No runtime behavior outside of
// debug rendering depends on it.
package layout

import "math"

// Depth returns the 0-based row of the node at heap index i.
func Depth(i int) int {
	return int(math.Floor(math.Log2(float64(i + 1))))
}

// Column returns the 0-based position of index i within its row, given
// that row's depth.
func Column(i, depth int) int {
	return i - (int(math.Pow(2, float64(depth))) - 1)
}

// RowWidth returns the number of slots in the row at depth.
func RowWidth(depth int) int {
	return int(math.Pow(2, float64(depth)))
}
