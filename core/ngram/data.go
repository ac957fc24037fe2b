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

// Package ngram counts fixed-length character n-grams from one or more
// input sequences and supports two lossless derivations over the
// result: contraction to a shorter n-gram length and character-level
// expansion (e.g. rewriting an uppercase letter into a shift marker
// plus its lowercase form).
//
// A Data value keeps every sliding window of an Add call in one of two
// maps, ngrams or tails. Only the final window of each call goes into
// tails; everything else goes into ngrams. That split is what lets
// Contract and Expand reproduce exact counts without re-reading the
// original sequence.
package ngram

import "fmt"

// Symbol is an atomic unit counted in an n-gram. The system never looks
// inside a Symbol (no grapheme clustering, no case folding) - it is
// whatever a corpus reader or an Expand function decides it is.
type Symbol rune

// Table maps a length-N tuple (encoded via tupleKey) to its occurrence
// count. It is the flat, order-independent shape produced by Contract
// and Into.
type Table map[string]uint64

// Data counts length-N windows slid across every sequence passed to Add.
type Data struct {
	n      int
	ngrams Table
	tails  Table
}

// New creates an empty Data counting windows of length n.
func New(n int) *Data {
	if n < 1 {
		panic("ngram: n must be >= 1")
	}
	return &Data{n: n, ngrams: make(Table), tails: make(Table)}
}

// N returns the window length this Data counts.
func (d *Data) N() int {
	return d.n
}

// Add slides a length-n window across seq and increments the
// corresponding counts. Every window except the last goes into the
// ngrams table; the last goes into tails - this is what lets Contract
// reconstruct shorter-length counts exactly (see Contract).
func (d *Data) Add(seq []Symbol) error {
	if len(seq) < d.n {
		return &ErrInputTooShort{Got: len(seq), Want: d.n}
	}
	last := len(seq) - d.n
	for i := 0; i <= last; i++ {
		key := tupleKey(seq[i : i+d.n])
		if i == last {
			d.tails[key]++
		} else {
			d.ngrams[key]++
		}
	}
	return nil
}

// Into returns the merged length-N count table (ngrams and tails
// combined). It is the terminal read of a Data's lifecycle.
func (d *Data) Into() Table {
	return d.Contract(d.n)
}

// Contract derives a length-k count table (k <= n) that is exactly what
// would have been obtained by counting the same input sequences
// directly with window length k.
//
// Every ngrams entry (a non-final window of some Add call) contributes
// its own length-k prefix once - the window's own starting offset is
// the only k-window that is "new" at this window, since all later
// offsets within it are reproduced when the next overlapping window is
// processed. Every tails entry (the final window of some Add call) has
// no following window to defer to, so it contributes every one of its
// n-k+1 length-k sub-windows.
func (d *Data) Contract(k int) Table {
	if k < 1 || k > d.n {
		panic(fmt.Sprintf("ngram: contraction requires 1 <= k <= n, got k=%d n=%d", k, d.n))
	}
	out := make(Table, len(d.ngrams)+len(d.tails))
	for key, cnt := range d.ngrams {
		rs := []rune(key)
		out[string(rs[:k])] += cnt
	}
	for key, cnt := range d.tails {
		rs := []rune(key)
		for off := 0; off <= d.n-k; off++ {
			out[string(rs[off:off+k])] += cnt
		}
	}
	return out
}

// Expand produces a new Data representing the sequence obtained by
// flat-mapping f over every symbol of every original sequence, without
// ever materializing that flat-mapped sequence. f must never return an
// empty expansion.
//
// For a non-final (ngrams) window w0..w_{n-1}, only the first
// len(f(w0)) windows of the concatenation f(w0)++...++f(w_{n-1}) are
// emitted (anchored at this window's own position); the remainder is
// always reproduced by the overlapping window that follows it in the
// original sequence. A final (tails) window has no such follower, so it
// emits every window of its concatenation, with the last one becoming
// the new tails entry.
func (d *Data) Expand(f func(Symbol) []Symbol) (*Data, error) {
	out := New(d.n)
	expandOne := func(key string, cnt uint64, isTail bool) error {
		rs := []rune(key)
		var concat []Symbol
		segLens := make([]int, len(rs))
		for i, r := range rs {
			seg := f(Symbol(r))
			if len(seg) == 0 {
				return &ErrEmptyExpansion{Symbol: Symbol(r)}
			}
			segLens[i] = len(seg)
			concat = append(concat, seg...)
		}
		var maxOffset int
		if isTail {
			maxOffset = len(concat) - d.n
		} else {
			maxOffset = segLens[0] - 1
		}
		for off := 0; off <= maxOffset; off++ {
			winKey := symbolsKey(concat[off : off+d.n])
			if isTail && off == maxOffset {
				out.tails[winKey] += cnt
			} else {
				out.ngrams[winKey] += cnt
			}
		}
		return nil
	}
	for key, cnt := range d.ngrams {
		if err := expandOne(key, cnt, false); err != nil {
			return nil, err
		}
	}
	for key, cnt := range d.tails {
		if err := expandOne(key, cnt, true); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func tupleKey(seq []Symbol) string {
	rs := make([]rune, len(seq))
	for i, s := range seq {
		rs[i] = rune(s)
	}
	return string(rs)
}

func symbolsKey(seq []Symbol) string {
	return tupleKey(seq)
}
