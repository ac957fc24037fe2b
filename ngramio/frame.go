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

// Package ngramio reads and writes a length-prefixed binary frame
// mapping length-N character tuples to their occurrence counts, so a
// counted corpus can be cached to disk and reloaded without
// re-scanning the original text.
package ngramio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

var magic = [4]byte{'N', 'G', 'T', '1'}

// WriteTable writes table (keyed by an N-rune string, as produced by
// core/ngram.Data) to w in the frame format:
//
//	magic   [4]byte   "NGT1"
//	n       uint32LE  the n-gram length
//	count   uint64LE  number of entries
//	entries count x { symbols [n]uint32LE, count uint64LE }
func WriteTable(w io.Writer, n int, table map[string]uint64) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(magic[:]); err != nil {
		return fmt.Errorf("failed to write ngram frame magic: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(n)); err != nil {
		return fmt.Errorf("failed to write ngram frame size: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint64(len(table))); err != nil {
		return fmt.Errorf("failed to write ngram frame count: %w", err)
	}
	for symbols, count := range table {
		runes := []rune(symbols)
		if len(runes) != n {
			return fmt.Errorf("ngram key %q has %d runes, expected %d", symbols, len(runes), n)
		}
		for _, r := range runes {
			if err := binary.Write(bw, binary.LittleEndian, uint32(r)); err != nil {
				return fmt.Errorf("failed to write ngram frame symbol: %w", err)
			}
		}
		if err := binary.Write(bw, binary.LittleEndian, count); err != nil {
			return fmt.Errorf("failed to write ngram frame entry count: %w", err)
		}
	}
	return bw.Flush()
}

// ReadTable reads a table previously written by WriteTable, returning
// the n-gram length it was written with alongside the table itself.
func ReadTable(r io.Reader) (n int, table map[string]uint64, err error) {
	br := bufio.NewReader(r)
	var gotMagic [4]byte
	if _, err := io.ReadFull(br, gotMagic[:]); err != nil {
		return 0, nil, fmt.Errorf("failed to read ngram frame magic: %w", err)
	}
	if gotMagic != magic {
		return 0, nil, fmt.Errorf("not an ngram frame (bad magic %v)", gotMagic)
	}
	var n32 uint32
	if err := binary.Read(br, binary.LittleEndian, &n32); err != nil {
		return 0, nil, fmt.Errorf("failed to read ngram frame size: %w", err)
	}
	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return 0, nil, fmt.Errorf("failed to read ngram frame count: %w", err)
	}
	n = int(n32)
	table = make(map[string]uint64, count)
	runes := make([]rune, n)
	for i := uint64(0); i < count; i++ {
		for j := 0; j < n; j++ {
			var codepoint uint32
			if err := binary.Read(br, binary.LittleEndian, &codepoint); err != nil {
				return 0, nil, fmt.Errorf("failed to read ngram frame symbol: %w", err)
			}
			runes[j] = rune(codepoint)
		}
		var entryCount uint64
		if err := binary.Read(br, binary.LittleEndian, &entryCount); err != nil {
			return 0, nil, fmt.Errorf("failed to read ngram frame entry count: %w", err)
		}
		table[string(runes)] = entryCount
	}
	return n, table, nil
}
