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

// Package corpus merges the character-indexed n-gram tables of
// several corpora into one deduplicated structure, so that a layout
// can be scored against a worst-case blend of corpora rather than a
// single one. Larger corpora do not get to dominate the result: each
// corpus's contribution is normalized by its own total before corpora
// are compared.
package corpus

import (
	"github.com/czcorpus/layoutgen/v2/core/encoding"
)

// Set is a deduplicated list of length-n character-index tuples with a
// dense count per corpus.
type Set struct {
	n        int
	entries  [][]int
	keyToIdx map[string]int
	weights  [][]uint64 // weights[entryIdx][corpusIdx]
	totals   []uint64   // per-corpus total, clamped to at least 1
}

// New merges corpora (each a table of character-tuple keys, as
// produced by EncodeTable, to occurrence counts) into one Set.
func New(n int, corpora []map[string]uint64) *Set {
	s := &Set{
		n:        n,
		keyToIdx: make(map[string]int),
		weights:  nil,
		totals:   make([]uint64, len(corpora)),
	}
	for ci, table := range corpora {
		for key, cnt := range table {
			idx, ok := s.keyToIdx[key]
			if !ok {
				idx = len(s.entries)
				s.keyToIdx[key] = idx
				s.entries = append(s.entries, decodeIndexKey(key, n))
				s.weights = append(s.weights, make([]uint64, len(corpora)))
			}
			s.weights[idx][ci] += cnt
			s.totals[ci] += cnt
		}
	}
	for ci := range s.totals {
		if s.totals[ci] < 1 {
			s.totals[ci] = 1
		}
	}
	return s
}

// NumCorpora returns how many corpora this Set was built from.
func (s *Set) NumCorpora() int {
	return len(s.totals)
}

// Totals returns the per-corpus clamped total used to normalize raw
// scores.
func (s *Set) Totals() []uint64 {
	return s.totals
}

// AggregateScores combines one raw score per corpus into a single
// worst-case figure: the maximum, over corpora, of the raw score
// divided by that corpus's total. A layout that is cheap on every
// corpus but catastrophic on one still scores as catastrophic.
func (s *Set) AggregateScores(perCorpusRaw []float64) float64 {
	var worst float64
	for ci, raw := range perCorpusRaw {
		ratio := raw / float64(s.totals[ci])
		if ci == 0 || ratio > worst {
			worst = ratio
		}
	}
	return worst
}

// SparseTensor extracts corpus ci's contribution as a sparse tensor,
// skipping entries this corpus never observed. remap, if non-nil,
// translates each stable character index to the index space the
// caller wants the returned entries addressed in (used by the
// generator to move pinned characters to the front of the index
// space for one generate call).
func (s *Set) SparseTensor(ci int, remap []int) []encoding.SparseEntry {
	var out []encoding.SparseEntry
	for idx, entry := range s.entries {
		w := s.weights[idx][ci]
		if w == 0 {
			continue
		}
		indices := entry
		if remap != nil {
			indices = make([]int, len(entry))
			for i, v := range entry {
				indices[i] = remap[v]
			}
		}
		out = append(out, encoding.SparseEntry{Indices: indices, Weight: float64(w)})
	}
	return out
}

// EncodeTable converts an ngram.Data-style table, whose keys are
// strings of runes, into an index-keyed table suitable for New,
// dropping any n-gram that contains a character absent from enc.
func EncodeTable(table map[string]uint64, enc *encoding.Encoding[rune]) map[string]uint64 {
	out := make(map[string]uint64, len(table))
	for key, cnt := range table {
		rs := []rune(key)
		indices := make([]int, len(rs))
		ok := true
		for i, r := range rs {
			idx, found := enc.Encode(r)
			if !found {
				ok = false
				break
			}
			indices[i] = idx
		}
		if !ok {
			continue
		}
		out[indexKey(indices)] += cnt
	}
	return out
}

func indexKey(indices []int) string {
	b := make([]byte, len(indices))
	for i, v := range indices {
		b[i] = byte(v)
	}
	return string(b)
}

func decodeIndexKey(key string, n int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = int(key[i])
	}
	return out
}
