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

// Package generator is the facade tying every core package together:
// it validates a keyset/charset/corpus/metric combination once, then
// serves repeated Generate calls (each with its own pins and search
// strategy) without recompiling the corpus data.
package generator

import (
	"math/rand"

	"github.com/czcorpus/layoutgen/v2/core/analyzer"
	"github.com/czcorpus/layoutgen/v2/core/corpus"
	"github.com/czcorpus/layoutgen/v2/core/encoding"
	"github.com/czcorpus/layoutgen/v2/core/metric"
	"github.com/czcorpus/layoutgen/v2/core/search"
)

// Pin fixes a single character to a single key for one Generate call.
type Pin[K comparable] struct {
	Key  K
	Char rune
}

// StrategyKind selects which search routine follows the mandatory hill
// climb.
type StrategyKind int

const (
	// StrategyHillClimbOnly stops after the hill climb.
	StrategyHillClimbOnly StrategyKind = iota
	// StrategyExhaustive follows the hill climb with an exhaustive
	// bounded search.
	StrategyExhaustive
	// StrategyAnneal follows the hill climb with a temperature-decay
	// search.
	StrategyAnneal
)

// Strategy configures the search phase of Generate.
type Strategy struct {
	Kind       StrategyKind
	Resistance float64 // used only by StrategyAnneal, must be >= 1
	Seed       int64   // used only by StrategyAnneal
}

// Generator holds the compiled, pin-independent state for a keyset,
// charset, corpus set and metric: the metric's dense tensor and the
// corpus set's per-character n-gram weights. Building this is the
// expensive step; Generate is cheap to call repeatedly.
type Generator[K comparable] struct {
	keyEnc  *encoding.Encoding[K]
	charEnc *encoding.Encoding[rune]
	n       int
	dense   []float64
	corpora *corpus.Set
	side    int
}

// New validates keys and chars (equal size, no duplicates), compiles
// every corpus table through the character encoding (dropping n-grams
// that reference an unknown character), and builds the metric's dense
// tensor.
func New[K comparable](keys []K, chars []rune, corpora []map[string]uint64, n int, metricFn metric.Func) (*Generator[K], error) {
	keyEnc, err := encoding.New[K](nil, keys)
	if err != nil {
		return nil, err
	}
	charEnc, err := encoding.New[rune](nil, chars)
	if err != nil {
		return nil, err
	}
	if keyEnc.Len() != charEnc.Len() {
		return nil, &ErrSizeMismatch{Keys: keyEnc.Len(), Chars: charEnc.Len()}
	}
	side := keyEnc.Len()

	encodedCorpora := make([]map[string]uint64, len(corpora))
	for i, c := range corpora {
		encodedCorpora[i] = corpus.EncodeTable(c, charEnc)
	}
	cs := corpus.New(n, encodedCorpora)

	tensor := metric.New(side, n, metricFn)

	return &Generator[K]{
		keyEnc:  keyEnc,
		charEnc: charEnc,
		n:       n,
		dense:   tensor.Raw(),
		corpora: cs,
		side:    side,
	}, nil
}

// Layout is one resolved (key, char) pair of a generated keyboard
// layout. Generate returns the pairs ordered by character: pinned
// characters first, in pin order, then the rest in charset order.
type Layout[K comparable] struct {
	Key  K
	Char rune
}

// Scores breaks down a generated layout's cost: Aggregate is the
// worst-case normalized score across every corpus (what the search
// actually minimized), PerCorpus gives that same normalized score one
// corpus at a time, in the order the corpus tables were passed to New.
type Scores struct {
	Aggregate float64
	PerCorpus []float64
}

// Generate builds a layout honoring pins, running a mandatory hill
// climb over every non-pinned position followed by the search named in
// strategy.
func (g *Generator[K]) Generate(pins []Pin[K], strategy Strategy) ([]Layout[K], Scores, error) {
	n := g.side

	pinnedChars := make([]rune, 0, len(pins))
	seenChar := make(map[rune]bool, len(pins))
	seenKey := make(map[K]bool, len(pins))
	type resolvedPin struct {
		key  int
		char int
	}
	resolved := make([]resolvedPin, 0, len(pins))

	for _, p := range pins {
		if _, ok := g.keyEnc.Encode(p.Key); !ok {
			return nil, Scores{}, &ErrInvalidKey[K]{Key: p.Key}
		}
		if _, ok := g.charEnc.Encode(p.Char); !ok {
			return nil, Scores{}, &ErrInvalidChar{Char: p.Char}
		}
		if seenKey[p.Key] {
			return nil, Scores{}, &ErrDuplicateKey[K]{Key: p.Key}
		}
		if seenChar[p.Char] {
			return nil, Scores{}, &ErrDuplicateChar{Char: p.Char}
		}
		seenKey[p.Key] = true
		seenChar[p.Char] = true
		pinnedChars = append(pinnedChars, p.Char)
	}

	// Build a char ordering for this call that puts pinned characters
	// first, matching the component invariant that pinned positions
	// occupy the prefix [0, pins) of the permutation.
	charOrder, err := encoding.New(pinnedChars, g.charEnc.Values())
	if err != nil {
		return nil, Scores{}, err
	}
	stableToNew := make([]int, n)
	for i := 0; i < n; i++ {
		r := g.charEnc.Decode(i)
		newIdx, _ := charOrder.Encode(r)
		stableToNew[i] = newIdx
	}

	for _, p := range pins {
		k, _ := g.keyEnc.Encode(p.Key)
		c, _ := charOrder.Encode(p.Char)
		resolved = append(resolved, resolvedPin{key: k, char: c})
	}

	an := g.buildAnalyzer(stableToNew, len(pins))

	layout := make([]int, n)
	for i := range layout {
		layout[i] = i
	}
	for _, p := range resolved {
		i := indexOfKey(layout, p.key)
		layout[i], layout[p.char] = layout[p.char], layout[i]
	}

	pinCount := len(pins)
	search.HillClimb(an, layout, pinCount)

	switch strategy.Kind {
	case StrategyExhaustive:
		if an.HasNegativeDense() {
			panic("generator: exhaustive search requires a nonnegative metric")
		}
		if err := search.Exhaustive(an, layout, pinCount); err != nil {
			return nil, Scores{}, err
		}
	case StrategyAnneal:
		rng := rand.New(rand.NewSource(strategy.Seed))
		search.Anneal(an, layout, pinCount, strategy.Resistance, rng)
	}

	out := make([]Layout[K], n)
	for pos := 0; pos < n; pos++ {
		keyVal := g.keyEnc.Decode(layout[pos])
		charVal := charOrder.Decode(pos)
		out[pos] = Layout[K]{Key: keyVal, Char: charVal}
	}

	perCorpus := an.PerChildScores(layout)
	var aggregate float64
	for i, s := range perCorpus {
		if i == 0 || s > aggregate {
			aggregate = s
		}
	}
	return out, Scores{Aggregate: aggregate, PerCorpus: perCorpus}, nil
}

func (g *Generator[K]) buildAnalyzer(stableToNew []int, pins int) *analyzer.MultiCorpus {
	totals := g.corpora.Totals()
	children := make([]*analyzer.CompiledAnalyzer, g.corpora.NumCorpora())
	for ci := range children {
		sparse := g.corpora.SparseTensor(ci, stableToNew)
		entries := make([]analyzer.SparseEntry, len(sparse))
		for i, e := range sparse {
			entries[i] = analyzer.SparseEntry{Indices: e.Indices, Weight: e.Weight}
		}
		children[ci] = analyzer.Compile(g.dense, g.side, pins, entries)
	}
	return analyzer.NewMultiCorpus(children, totals)
}

func indexOfKey(layout []int, k int) int {
	for i, v := range layout {
		if v == k {
			return i
		}
	}
	panic("generator: key index not found in layout, invariant violated")
}
