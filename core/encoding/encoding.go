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

// Package encoding builds a bijection between a small domain (a key
// set, a character set) and a contiguous range of integers [0, n),
// with a caller-chosen prefix of "pinned" elements placed first. Every
// other package in this module addresses its tensors and permutations
// through integers produced here rather than through the original
// domain values.
package encoding

import "fmt"

// Encoding is a bijection between values of T and indices [0, n).
type Encoding[T comparable] struct {
	values []T
	index  map[T]int
	pins   int
}

// New builds an Encoding over fullSet, placing every element of pins
// first (in the given order) followed by the remaining elements of
// fullSet in their original order. It fails if fullSet contains a
// duplicate or if pins names a value absent from fullSet.
func New[T comparable](pins []T, fullSet []T) (*Encoding[T], error) {
	seen := make(map[T]bool, len(fullSet))
	for _, v := range fullSet {
		if seen[v] {
			return nil, &ErrDuplicate[T]{Value: v}
		}
		seen[v] = true
	}
	pinSet := make(map[T]bool, len(pins))
	for _, p := range pins {
		if !seen[p] {
			return nil, &ErrInvalid[T]{Value: p}
		}
		pinSet[p] = true
	}

	values := make([]T, 0, len(fullSet))
	values = append(values, pins...)
	for _, v := range fullSet {
		if !pinSet[v] {
			values = append(values, v)
		}
	}

	index := make(map[T]int, len(values))
	for i, v := range values {
		index[v] = i
	}
	return &Encoding[T]{values: values, index: index, pins: len(pins)}, nil
}

// Len returns the size of the domain, n.
func (e *Encoding[T]) Len() int {
	return len(e.values)
}

// Pins returns how many leading indices are occupied by pinned values.
func (e *Encoding[T]) Pins() int {
	return e.pins
}

// Encode returns the index assigned to v, or false if v is not part of
// the domain.
func (e *Encoding[T]) Encode(v T) (int, bool) {
	i, ok := e.index[v]
	return i, ok
}

// Decode returns the value assigned to index i. It panics if i is out
// of range - a caller should only ever pass indices it obtained from
// Encode or from iterating [0, Len()).
func (e *Encoding[T]) Decode(i int) T {
	if i < 0 || i >= len(e.values) {
		panic(fmt.Sprintf("encoding: index %d out of range [0,%d)", i, len(e.values)))
	}
	return e.values[i]
}

// Values returns the domain in index order. The returned slice must
// not be mutated.
func (e *Encoding[T]) Values() []T {
	return e.values
}

// SparseEntry is one nonzero cell of a sparse tensor: a tuple of domain
// indices together with its weight.
type SparseEntry struct {
	Indices []int
	Weight  float64
}

// EncodeIntoTensor materializes a dense, length Len()^d array holding
// weightFn(tuple) at the base-Len() fold of every d-tuple over the
// domain, in the same order TupleIter produces them.
func (e *Encoding[T]) EncodeIntoTensor(d int, weightFn func(tuple []T) float64) []float64 {
	n := e.Len()
	out := make([]float64, IntPow(n, d))
	it := NewTupleIter(n, d)
	tuple := make([]T, d)
	pos := 0
	for it.Next() {
		idx := it.Value()
		for i, ix := range idx {
			tuple[i] = e.values[ix]
		}
		out[pos] = weightFn(tuple)
		pos++
	}
	return out
}

// EncodeIntoSparseTensor enumerates every d-tuple over the domain and
// keeps only the entries whose weight differs from defaultWeight,
// returning them as SparseEntry values addressed by domain index.
func (e *Encoding[T]) EncodeIntoSparseTensor(d int, weightFn func(tuple []T) float64, defaultWeight float64) []SparseEntry {
	n := e.Len()
	it := NewTupleIter(n, d)
	tuple := make([]T, d)
	var out []SparseEntry
	for it.Next() {
		idx := it.Value()
		for i, ix := range idx {
			tuple[i] = e.values[ix]
		}
		w := weightFn(tuple)
		if w != defaultWeight {
			out = append(out, SparseEntry{Indices: append([]int(nil), idx...), Weight: w})
		}
	}
	return out
}
