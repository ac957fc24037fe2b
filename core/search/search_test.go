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

package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sumAnalyzer scores a layout as the sum of layout[i]*i, so the unique
// minimum arranges the smallest values at the highest-weighted
// positions. It is intentionally simple so a test can verify
// convergence toward a known optimum rather than merely "no crash".
type sumAnalyzer struct{}

func (sumAnalyzer) Score(layout []int) float64 {
	var total float64
	for i, v := range layout {
		total += float64(v * i)
	}
	return total
}

func (sumAnalyzer) PrefixScore(layout []int) float64 {
	var total float64
	for i, v := range layout {
		total += float64(v * i)
	}
	return total
}

func TestHillClimb_ReachesLocalOptimum(t *testing.T) {
	layout := []int{0, 1, 2, 3, 4}
	before := sumAnalyzer{}.Score(layout)
	HillClimb(sumAnalyzer{}, layout, 0)
	after := sumAnalyzer{}.Score(layout)
	assert.LessOrEqual(t, after, before)

	// No further pairwise swap should improve it.
	for i := 0; i < len(layout); i++ {
		for j := i + 1; j < len(layout); j++ {
			cand := append([]int(nil), layout...)
			cand[i], cand[j] = cand[j], cand[i]
			assert.GreaterOrEqual(t, sumAnalyzer{}.Score(cand), after)
		}
	}
}

func TestHillClimb_RespectsPins(t *testing.T) {
	layout := []int{4, 3, 2, 1, 0}
	HillClimb(sumAnalyzer{}, layout, 2)
	assert.Equal(t, []int{4, 3}, layout[:2])
}

func TestExhaustive_FindsGlobalOptimum(t *testing.T) {
	layout := []int{0, 1, 2, 3}
	err := Exhaustive(sumAnalyzer{}, layout, 0)
	assert.NoError(t, err)
	assert.Equal(t, sumAnalyzer{}.Score([]int{3, 2, 1, 0}), sumAnalyzer{}.Score(layout))

	best := sumAnalyzer{}.Score(layout)
	assert.LessOrEqual(t, best, sumAnalyzer{}.Score([]int{3, 2, 1, 0}))
}

func TestExhaustive_TooFewFreePositions(t *testing.T) {
	layout := []int{0, 1, 2}
	err := Exhaustive(sumAnalyzer{}, layout, 2)
	assert.Error(t, err)
	var tooFew *ErrTooFewFreePositions
	assert.ErrorAs(t, err, &tooFew)
}

func TestAnneal_TerminatesAndRespectsPins(t *testing.T) {
	layout := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	rng := rand.New(rand.NewSource(42))
	Anneal(sumAnalyzer{}, layout, 3, 2, rng)
	assert.Equal(t, []int{9, 8, 7}, layout[:3])
}
