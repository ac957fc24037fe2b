// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metric

import "math"

// Taxicab scores a key tuple by the sum, over every consecutive pair
// of keys in the tuple, of the Manhattan distance between their
// physical positions. positions is indexed by key index, in the same
// order as the key set passed to encoding.New.
func Taxicab(positions [][2]float64) Func {
	return func(keys []int) float64 {
		var total float64
		for i := 1; i < len(keys); i++ {
			a, b := positions[keys[i-1]], positions[keys[i]]
			total += math.Abs(a[0]-b[0]) + math.Abs(a[1]-b[1])
		}
		return total
	}
}

// Euclidean scores a key tuple by the sum, over every consecutive pair
// of keys in the tuple, of the straight-line distance between their
// physical positions.
func Euclidean(positions [][2]float64) Func {
	return func(keys []int) float64 {
		var total float64
		for i := 1; i < len(keys); i++ {
			a, b := positions[keys[i-1]], positions[keys[i]]
			dx, dy := a[0]-b[0], a[1]-b[1]
			total += math.Sqrt(dx*dx + dy*dy)
		}
		return total
	}
}

// SameFingerPenalty adds penalty for every consecutive pair of keys in
// the tuple assigned to the same finger, fingers being indexed by key
// index the same way positions is in Taxicab/Euclidean.
func SameFingerPenalty(fingers []int, penalty float64) Func {
	return func(keys []int) float64 {
		var total float64
		for i := 1; i < len(keys); i++ {
			if fingers[keys[i-1]] == fingers[keys[i]] {
				total += penalty
			}
		}
		return total
	}
}
