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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTensor_WeightMatchesFunc(t *testing.T) {
	side := 3
	fn := func(keys []int) float64 {
		out := 0.0
		for _, k := range keys {
			out += float64(k)
		}
		return out
	}
	tensor := New(side, 2, fn)
	assert.Len(t, tensor.Raw(), 9)

	layout := []int{2, 0, 1} // char0->key2, char1->key0, char2->key1
	got := tensor.Weight([]int{0, 2}, layout)
	assert.Equal(t, fn([]int{2, 1}), got)
}

func TestTensor_HasNegative(t *testing.T) {
	pos := New(2, 2, func(keys []int) float64 { return 1 })
	assert.False(t, pos.HasNegative())

	neg := New(2, 2, func(keys []int) float64 { return -1 })
	assert.True(t, neg.HasNegative())
}
