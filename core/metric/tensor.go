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

// Package metric scores a tuple of key positions independently of
// which characters occupy them - finger travel, same-row runs and the
// like. A Tensor precomputes that score for every reachable key-tuple
// once, so the search loop never calls a Func again.
package metric

import "github.com/czcorpus/layoutgen/v2/core/encoding"

// Func scores one tuple of key indices, e.g. the physical distance a
// finger travels striking them in order.
type Func func(keys []int) float64

// Tensor is a dense array of Func applied to every length-n tuple over
// [0, side), addressed by base-side fold of the tuple.
type Tensor struct {
	side int
	n    int
	data []float64
}

// New enumerates every length-n tuple of key indices in [0, side) and
// stores weightFn(tuple) at its base-side fold.
func New(side, n int, weightFn Func) *Tensor {
	it := encoding.NewTupleIter(side, n)
	data := make([]float64, encoding.IntPow(side, n))
	pos := 0
	for it.Next() {
		tuple := it.Value()
		data[pos] = weightFn(tuple)
		pos++
	}
	return &Tensor{side: side, n: n, data: data}
}

// Side returns the number of distinct key indices the tensor was built
// over.
func (t *Tensor) Side() int {
	return t.side
}

// Raw exposes the underlying dense array, addressed by
// encoding.Fold(keyTuple, Side()). Callers must not mutate it.
func (t *Tensor) Raw() []float64 {
	return t.data
}

// Weight looks up the cost of an n-gram of characters under a given
// layout: it maps each character index through layout to a key index,
// folds the resulting key tuple in base side, and returns that tensor
// cell.
func (t *Tensor) Weight(chars []int, layout []int) float64 {
	idx := 0
	for _, c := range chars {
		idx = idx*t.side + layout[c]
	}
	return t.data[idx]
}

// HasNegative reports whether any cell of the tensor is negative. The
// exhaustive search's prefix-pruning bound is only valid when every
// cell is nonnegative.
func (t *Tensor) HasNegative() bool {
	for _, v := range t.data {
		if v < 0 {
			return true
		}
	}
	return false
}
