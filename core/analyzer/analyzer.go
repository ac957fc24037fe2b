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

// Package analyzer combines a dense key-position cost tensor with a
// sparse character n-gram tensor into a function that scores a
// candidate layout, and that can score a partial layout as a lower
// bound for exhaustive search pruning.
package analyzer

import "sort"

// SparseEntry is a weighted character-index tuple, as produced by
// corpus.Set.SparseTensor.
type SparseEntry struct {
	Indices []int
	Weight  float64
}

// CompiledAnalyzer pairs a dense key-position tensor with one corpus's
// sparse character n-gram weights, bucketed by the highest character
// index each entry references so that a partial layout's contribution
// can be computed without touching entries that are not yet fully
// determined.
type CompiledAnalyzer struct {
	dense        []float64
	side         int
	pins         int
	sparse       []SparseEntry
	bucketBounds []int // bucketBounds[k] = count of entries with max index <= k-1
}

// Compile builds a CompiledAnalyzer. dense is a flat tensor as produced
// by metric.Tensor.Raw, addressed by base-side fold of a key-index
// tuple. sparse holds one entry per observed character n-gram. Entries
// whose every index falls inside the pinned prefix contribute a
// constant regardless of search and are discarded up front.
func Compile(dense []float64, side, pins int, sparse []SparseEntry) *CompiledAnalyzer {
	filtered := make([]SparseEntry, 0, len(sparse))
	for _, e := range sparse {
		if maxIndex(e.Indices) >= pins {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return maxIndex(filtered[i].Indices) < maxIndex(filtered[j].Indices)
	})

	bucketBounds := make([]int, side+1)
	cur := 0
	for k := 1; k <= side; k++ {
		for cur < len(filtered) && maxIndex(filtered[cur].Indices) <= k-1 {
			cur++
		}
		bucketBounds[k] = cur
	}
	return &CompiledAnalyzer{dense: dense, side: side, pins: pins, sparse: filtered, bucketBounds: bucketBounds}
}

func maxIndex(indices []int) int {
	m := indices[0]
	for _, v := range indices[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func fold(indices []int, layout []int, base int) int {
	idx := 0
	for _, c := range indices {
		idx = idx*base + layout[c]
	}
	return idx
}

// Score returns the full cost of layout: the sum, over every sparse
// entry, of its weight times the dense cell its characters fold to
// under layout.
func (a *CompiledAnalyzer) Score(layout []int) float64 {
	var total float64
	for _, e := range a.sparse {
		total += e.Weight * a.dense[fold(e.Indices, layout, a.side)]
	}
	return total
}

// StepScore returns the contribution of entries whose maximum
// character index is exactly len(layout)-1: the part of the score that
// becomes defined for the first time once that position is assigned.
func (a *CompiledAnalyzer) StepScore(layout []int) float64 {
	l := len(layout)
	if l < 1 || l > a.side {
		return 0
	}
	var total float64
	for _, e := range a.sparse[a.bucketBounds[l-1]:a.bucketBounds[l]] {
		total += e.Weight * a.dense[fold(e.Indices, layout, a.side)]
	}
	return total
}

// PrefixScore returns the sum of every sparse entry whose maximum
// character index is already covered by layout (a prefix of the full
// permutation). Because every dense weight and sparse weight is
// assumed nonnegative, this is a monotone lower bound on Score of any
// completion of layout, which is what makes exhaustive search's
// prefix pruning sound.
func (a *CompiledAnalyzer) PrefixScore(layout []int) float64 {
	l := len(layout)
	if l > a.side {
		l = a.side
	}
	var total float64
	for _, e := range a.sparse[:a.bucketBounds[l]] {
		total += e.Weight * a.dense[fold(e.Indices, layout, a.side)]
	}
	return total
}

// HasNegativeDense reports whether the dense tensor contains a
// negative cell, which would invalidate the PrefixScore pruning bound.
func (a *CompiledAnalyzer) HasNegativeDense() bool {
	for _, v := range a.dense {
		if v < 0 {
			return true
		}
	}
	return false
}
