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

package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_PinsFirst(t *testing.T) {
	enc, err := New([]rune{'c', 'a'}, []rune{'a', 'b', 'c', 'd'})
	assert.NoError(t, err)
	assert.Equal(t, 4, enc.Len())
	assert.Equal(t, 2, enc.Pins())

	ci, ok := enc.Encode('c')
	assert.True(t, ok)
	assert.Equal(t, 0, ci)

	ai, ok := enc.Encode('a')
	assert.True(t, ok)
	assert.Equal(t, 1, ai)

	assert.Equal(t, 'b', enc.Decode(2))
	assert.Equal(t, 'd', enc.Decode(3))
}

func TestNew_DuplicateInFullSet(t *testing.T) {
	_, err := New(nil, []rune{'a', 'b', 'a'})
	assert.Error(t, err)
	var dup *ErrDuplicate[rune]
	assert.ErrorAs(t, err, &dup)
}

func TestNew_PinNotInFullSet(t *testing.T) {
	_, err := New([]rune{'z'}, []rune{'a', 'b'})
	assert.Error(t, err)
	var invalid *ErrInvalid[rune]
	assert.ErrorAs(t, err, &invalid)
}

func TestTupleIter_AllTuples(t *testing.T) {
	it := NewTupleIter(2, 3)
	var got [][]int
	for it.Next() {
		got = append(got, append([]int(nil), it.Value()...))
	}
	want := [][]int{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}
	assert.Equal(t, want, got)
}

func TestFold_MatchesTupleIterOrder(t *testing.T) {
	it := NewTupleIter(3, 2)
	pos := 0
	for it.Next() {
		assert.Equal(t, pos, Fold(it.Value(), 3))
		pos++
	}
}

func TestEncodeIntoTensor(t *testing.T) {
	enc, err := New(nil, []rune{'a', 'b'})
	assert.NoError(t, err)

	tensor := enc.EncodeIntoTensor(2, func(tuple []rune) float64 {
		if tuple[0] == tuple[1] {
			return 0
		}
		return 1
	})
	assert.Len(t, tensor, 4)
	assert.Equal(t, []float64{0, 1, 1, 0}, tensor)
}

func TestEncodeIntoSparseTensor(t *testing.T) {
	enc, err := New(nil, []rune{'a', 'b'})
	assert.NoError(t, err)

	sparse := enc.EncodeIntoSparseTensor(2, func(tuple []rune) float64 {
		if tuple[0] == tuple[1] {
			return 1
		}
		return 0
	}, 0)
	assert.Len(t, sparse, 2)
	for _, e := range sparse {
		assert.Equal(t, e.Indices[0], e.Indices[1])
		assert.Equal(t, 1.0, e.Weight)
	}
}
