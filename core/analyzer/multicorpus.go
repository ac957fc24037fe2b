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

package analyzer

// MultiCorpus aggregates several CompiledAnalyzer values, one per
// corpus, that share the same dense tensor, into the single scoring
// function a search routine operates on: the maximum, across corpora,
// of each corpus's raw score divided by its total.
//
// Because every per-corpus raw score is a nonnegative, nondecreasing
// function of how much of the layout has been fixed, the max of those
// ratios is itself nondecreasing - a PrefixScore computed here is still
// a sound lower bound on the aggregate Score of any completion.
type MultiCorpus struct {
	children []*CompiledAnalyzer
	totals   []uint64
}

// NewMultiCorpus builds a MultiCorpus over children, each normalized by
// the corresponding entry of totals.
func NewMultiCorpus(children []*CompiledAnalyzer, totals []uint64) *MultiCorpus {
	return &MultiCorpus{children: children, totals: totals}
}

// Score returns the worst-case normalized score of layout across every
// corpus.
func (m *MultiCorpus) Score(layout []int) float64 {
	return m.aggregate(func(c *CompiledAnalyzer) float64 { return c.Score(layout) })
}

// PrefixScore returns the worst-case normalized score of the partial
// layout across every corpus, a valid lower bound for pruning.
func (m *MultiCorpus) PrefixScore(layout []int) float64 {
	return m.aggregate(func(c *CompiledAnalyzer) float64 { return c.PrefixScore(layout) })
}

// PerChildScores returns layout's normalized score (raw Score divided
// by that corpus's total) for every child, in the same order as the
// children passed to NewMultiCorpus. The worst-case aggregate Score
// is the maximum of this slice.
func (m *MultiCorpus) PerChildScores(layout []int) []float64 {
	out := make([]float64, len(m.children))
	for i, c := range m.children {
		out[i] = c.Score(layout) / float64(m.totals[i])
	}
	return out
}

func (m *MultiCorpus) aggregate(raw func(*CompiledAnalyzer) float64) float64 {
	var worst float64
	for i, c := range m.children {
		ratio := raw(c) / float64(m.totals[i])
		if i == 0 || ratio > worst {
			worst = ratio
		}
	}
	return worst
}

// HasNegativeDense reports whether any child's dense tensor contains a
// negative cell.
func (m *MultiCorpus) HasNegativeDense() bool {
	for _, c := range m.children {
		if c.HasNegativeDense() {
			return true
		}
	}
	return false
}
