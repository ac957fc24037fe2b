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

// Package search explores permutations of a layout's free positions
// (everything past a pinned prefix) looking for one that minimizes an
// Analyzer's score. It never mutates the pinned prefix. The only error
// is Exhaustive's ErrTooFewFreePositions, returned when the pins leave
// fewer than two free positions.
package search

// Analyzer is the scoring contract every search routine operates
// against. Score computes the full cost of a complete layout.
// PrefixScore computes a monotone lower bound on the score of any
// completion of a partial layout, used to prune the exhaustive search.
type Analyzer interface {
	Score(layout []int) float64
	PrefixScore(layout []int) float64
}

// HillClimb repeatedly sweeps every pair of free positions (i, j),
// swapping and rescoring, accepting a swap only if it strictly
// improves the score. It stops after a full sweep makes no
// improvement, so it reaches a 2-swap local optimum.
func HillClimb(a Analyzer, layout []int, pins int) {
	n := len(layout)
	current := a.Score(layout)
	improved := true
	for improved {
		improved = false
		for i := pins; i < n; i++ {
			for j := i + 1; j < n; j++ {
				layout[i], layout[j] = layout[j], layout[i]
				cand := a.Score(layout)
				if cand < current {
					current = cand
					improved = true
				} else {
					layout[i], layout[j] = layout[j], layout[i]
				}
			}
		}
	}
}
