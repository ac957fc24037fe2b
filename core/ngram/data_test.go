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

package ngram

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func toSymbols(s string) []Symbol {
	rs := []rune(s)
	out := make([]Symbol, len(rs))
	for i, r := range rs {
		out[i] = Symbol(r)
	}
	return out
}

func TestData_AddAndInto(t *testing.T) {
	d := New(3)
	assert.NoError(t, d.Add(toSymbols("Aaaaa")))

	got := d.Into()
	want := Table{
		"Aaa": 1,
		"aaa": 2,
	}
	assert.Equal(t, want, got)
}

func TestData_Contract(t *testing.T) {
	d := New(3)
	assert.NoError(t, d.Add(toSymbols("Aaaaa")))

	got := d.Contract(2)
	want := Table{
		"Aa": 1,
		"aa": 3,
	}
	assert.Equal(t, want, got)
}

func TestData_AddTooShort(t *testing.T) {
	d := New(4)
	err := d.Add(toSymbols("abc"))
	assert.Error(t, err)
	var tooShort *ErrInputTooShort
	assert.ErrorAs(t, err, &tooShort)
}

func TestData_Expand(t *testing.T) {
	d := New(3)
	assert.NoError(t, d.Add(toSymbols("Quick Fox")))

	expandFn := func(s Symbol) []Symbol {
		r := rune(s)
		if unicode.IsUpper(r) {
			return []Symbol{Symbol('⇧'), Symbol(unicode.ToLower(r))}
		}
		return []Symbol{s}
	}
	expanded, err := d.Expand(expandFn)
	assert.NoError(t, err)

	got := expanded.Into()
	assert.Equal(t, uint64(1), got[string([]rune{'⇧', 'q', 'u'})])
	assert.Equal(t, uint64(1), got[string([]rune{' ', '⇧', 'f'})])
	_, hasOriginal := got[string([]rune{'Q', 'u', 'i'})]
	assert.False(t, hasOriginal)
}

func TestData_ExpandIdentity(t *testing.T) {
	d := New(3)
	assert.NoError(t, d.Add(toSymbols("banana")))

	identity := func(s Symbol) []Symbol { return []Symbol{s} }
	expanded, err := d.Expand(identity)
	assert.NoError(t, err)

	assert.Equal(t, d.Into(), expanded.Into())
}

func TestData_ExpandEmptyRejected(t *testing.T) {
	d := New(2)
	assert.NoError(t, d.Add(toSymbols("ab")))

	_, err := d.Expand(func(s Symbol) []Symbol { return nil })
	assert.Error(t, err)
	var empty *ErrEmptyExpansion
	assert.ErrorAs(t, err, &empty)
}

func TestWindowIter(t *testing.T) {
	seq := []int{1, 2, 3, 4, 5}

	it := NewWindowIter(seq, 2)
	var windows [][]int
	for it.Next() {
		w := append([]int(nil), it.Value()...)
		windows = append(windows, w)
	}
	assert.Equal(t, [][]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}}, windows)

	it2 := NewWindowIter(seq, 4)
	var count int
	for it2.Next() {
		count++
	}
	assert.Equal(t, 2, count)
}
