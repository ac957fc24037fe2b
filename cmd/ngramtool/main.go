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

// Command ngramtool is a minimal n-gram cache helper: given a corpus
// path and a cache path, it loads the cache if it already exists,
// otherwise it counts the corpus and writes the cache.
package main

import (
	"fmt"
	"os"

	"github.com/czcorpus/layoutgen/v2/corpusreader"
	"github.com/czcorpus/layoutgen/v2/core/ngram"
	"github.com/czcorpus/layoutgen/v2/fs"
	"github.com/czcorpus/layoutgen/v2/ngramio"
)

const defaultNgramSize = 3

func loadCache(cachePath string) error {
	f, err := os.Open(cachePath)
	if err != nil {
		return fmt.Errorf("failed to open cache %s: %w", cachePath, err)
	}
	defer f.Close()
	n, table, err := ngramio.ReadTable(f)
	if err != nil {
		return fmt.Errorf("failed to read cache %s: %w", cachePath, err)
	}
	fmt.Printf("loaded %d %d-grams from %s\n", len(table), n, cachePath)
	return nil
}

func computeAndWrite(corpusPath, cachePath string) error {
	ch, err := corpusreader.ReadPlainText(corpusPath)
	if err != nil {
		return fmt.Errorf("failed to read corpus %s: %w", corpusPath, err)
	}
	data := ngram.New(defaultNgramSize)
	var seq []ngram.Symbol
	for r := range ch {
		seq = append(seq, ngram.Symbol(r))
	}
	if err := data.Add(seq); err != nil {
		return fmt.Errorf("failed to count corpus %s: %w", corpusPath, err)
	}
	table := data.Into()
	out, err := os.Create(cachePath)
	if err != nil {
		return fmt.Errorf("failed to create cache %s: %w", cachePath, err)
	}
	defer out.Close()
	if err := ngramio.WriteTable(out, defaultNgramSize, table); err != nil {
		return fmt.Errorf("failed to write cache %s: %w", cachePath, err)
	}
	fmt.Printf("counted %d %d-grams from %s, wrote %s\n", len(table), defaultNgramSize, corpusPath, cachePath)
	return nil
}

func run(corpusPath, cachePath string) error {
	if fs.IsFile(cachePath) {
		return loadCache(cachePath)
	}
	return computeAndWrite(corpusPath, cachePath)
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: ngramtool CORPUS_PATH CACHE_PATH")
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
