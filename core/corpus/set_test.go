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

package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/layoutgen/v2/core/encoding"
)

func TestEncodeTable_DropsUnknownChars(t *testing.T) {
	enc, err := encoding.New(nil, []rune{'a', 'b'})
	assert.NoError(t, err)

	table := map[string]uint64{
		"ab": 3,
		"ac": 5, // 'c' unknown, dropped
	}
	out := EncodeTable(table, enc)
	assert.Len(t, out, 1)
}

func TestSet_MergeAndAggregate(t *testing.T) {
	enc, err := encoding.New(nil, []rune{'a', 'b', 'c'})
	assert.NoError(t, err)

	corpusA := EncodeTable(map[string]uint64{"ab": 10, "bc": 5}, enc)
	corpusB := EncodeTable(map[string]uint64{"ab": 1, "ca": 4}, enc)

	s := New(2, []map[string]uint64{corpusA, corpusB})
	assert.Equal(t, 2, s.NumCorpora())
	assert.Equal(t, []uint64{15, 5}, s.Totals())

	aggregate := s.AggregateScores([]float64{15, 0})
	assert.Equal(t, 1.0, aggregate)

	aggregate2 := s.AggregateScores([]float64{0, 5})
	assert.Equal(t, 1.0, aggregate2)
}

func TestSet_SparseTensorSkipsZeroWeight(t *testing.T) {
	enc, err := encoding.New(nil, []rune{'a', 'b'})
	assert.NoError(t, err)

	corpusA := EncodeTable(map[string]uint64{"ab": 2}, enc)
	corpusB := EncodeTable(map[string]uint64{"ba": 3}, enc)

	s := New(2, []map[string]uint64{corpusA, corpusB})
	sparseA := s.SparseTensor(0, nil)
	assert.Len(t, sparseA, 1)
	assert.Equal(t, 2.0, sparseA[0].Weight)
}
