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

// Package library orchestrates a full generation run: resolving each
// configured corpus source to a counted n-gram table (from a cache
// file, a persistent store, or by scanning the corpus), then handing
// the tables to core/generator.
package library

import (
	"fmt"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/layoutgen/v2/cnf"
	"github.com/czcorpus/layoutgen/v2/core/generator"
	"github.com/czcorpus/layoutgen/v2/core/ngram"
	"github.com/czcorpus/layoutgen/v2/corpusreader"
	"github.com/czcorpus/layoutgen/v2/db"
	"github.com/czcorpus/layoutgen/v2/db/factory"
	"github.com/czcorpus/layoutgen/v2/fs"
	"github.com/czcorpus/layoutgen/v2/ngramio"
)

func readRunes(src cnf.CorpusSource) (<-chan rune, error) {
	switch src.Format {
	case "vertical":
		return corpusreader.ReadVertical(src.Path, src.Column)
	default:
		return corpusreader.ReadPlainText(src.Path)
	}
}

func buildExpander(expansions []cnf.Expansion) func(ngram.Symbol) []ngram.Symbol {
	rules := make(map[ngram.Symbol][]ngram.Symbol, len(expansions))
	for _, e := range expansions {
		from := []rune(e.From)
		if len(from) != 1 {
			continue
		}
		to := make([]ngram.Symbol, 0, len(e.To))
		for _, s := range e.To {
			for _, r := range s {
				to = append(to, ngram.Symbol(r))
			}
		}
		rules[ngram.Symbol(from[0])] = to
	}
	return func(s ngram.Symbol) []ngram.Symbol {
		if to, ok := rules[s]; ok {
			return to
		}
		return []ngram.Symbol{s}
	}
}

// countCorpus reads and counts src from scratch, applying conf's
// expansion rules.
func countCorpus(src cnf.CorpusSource, conf *cnf.Config) (map[string]uint64, error) {
	runes, err := readRunes(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", src.Path, err)
	}
	var seq []ngram.Symbol
	for r := range runes {
		seq = append(seq, ngram.Symbol(r))
	}
	data := ngram.New(conf.NgramSize)
	if err := data.Add(seq); err != nil {
		return nil, fmt.Errorf("failed to count corpus %s: %w", src.Path, err)
	}
	if len(conf.Expansions) > 0 {
		data, err = data.Expand(buildExpander(conf.Expansions))
		if err != nil {
			return nil, fmt.Errorf("failed to expand corpus %s: %w", src.Path, err)
		}
	}
	return data.Into(), nil
}

// resolveCorpus returns the n-gram table for src, preferring an
// already-computed cache (a store entry or an ngramio cache file) over
// rescanning the corpus text.
func resolveCorpus(src cnf.CorpusSource, conf *cnf.Config, store db.Store) (map[string]uint64, error) {
	if src.Cache != "" && fs.IsFile(src.Cache) {
		f, err := os.Open(src.Cache)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache %s: %w", src.Cache, err)
		}
		defer f.Close()
		_, table, err := ngramio.ReadTable(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read cache %s: %w", src.Cache, err)
		}
		return table, nil
	}
	if store != nil {
		if table, found, err := store.LoadTable(src.Path, conf.NgramSize); err != nil {
			log.Warn().Err(err).Str("corpus", src.Path).Msg("failed to query n-gram store, recomputing")
		} else if found {
			return table, nil
		}
	}

	table, err := countCorpus(src, conf)
	if err != nil {
		return nil, err
	}

	if src.Cache != "" {
		f, err := os.Create(src.Cache)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache %s: %w", src.Cache, err)
		}
		defer f.Close()
		if err := ngramio.WriteTable(f, conf.NgramSize, table); err != nil {
			return nil, fmt.Errorf("failed to write cache %s: %w", src.Cache, err)
		}
	}
	if store != nil {
		if err := store.SaveTable(src.Path, conf.NgramSize, table); err != nil {
			log.Warn().Err(err).Str("corpus", src.Path).Msg("failed to persist n-gram table")
		}
	}
	return table, nil
}

func buildPins(pins []cnf.Pin) ([]generator.Pin[string], error) {
	out := make([]generator.Pin[string], len(pins))
	for i, p := range pins {
		r, size := utf8.DecodeRuneInString(p.Char)
		if r == utf8.RuneError || size != len(p.Char) {
			return nil, fmt.Errorf("pin char %q is not a single character", p.Char)
		}
		out[i] = generator.Pin[string]{Key: p.Key, Char: r}
	}
	return out, nil
}

func buildStrategy(conf cnf.SearchConf) generator.Strategy {
	kind := generator.StrategyHillClimbOnly
	switch conf.Strategy {
	case "exhaustive":
		kind = generator.StrategyExhaustive
	case "anneal":
		kind = generator.StrategyAnneal
	}
	return generator.Strategy{Kind: kind, Resistance: conf.Resistance, Seed: conf.Seed}
}

// corpusLabel names src for display in a score breakdown, preferring
// its path (what a reader recognizes) over its cache file.
func corpusLabel(src cnf.CorpusSource, i int) string {
	if src.Path != "" {
		return src.Path
	}
	if src.Cache != "" {
		return src.Cache
	}
	return fmt.Sprintf("corpus%d", i)
}

// GenerateLayout runs a full generation pass described by conf:
// resolving every configured corpus to a counted table, building a
// Generator over conf's key/char sets and metric, and running it with
// conf's pins and search strategy. The returned scores map holds the
// worst-case normalized "aggregate" score alongside one entry per
// corpus, keyed by corpusLabel.
func GenerateLayout(conf *cnf.Config) ([]generator.Layout[string], map[string]float64, error) {
	var store db.Store
	if conf.DB.Type != "" {
		var err error
		store, err = factory.NewStore(conf.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open n-gram store: %w", err)
		}
		if err := store.Open(true); err != nil {
			return nil, nil, fmt.Errorf("failed to open n-gram store: %w", err)
		}
		defer store.Close()
	}

	tables := make([]map[string]uint64, len(conf.Corpora))
	errs := make([]error, len(conf.Corpora))
	var wg sync.WaitGroup
	wg.Add(len(conf.Corpora))
	for i, src := range conf.Corpora {
		go func(i int, src cnf.CorpusSource) {
			defer wg.Done()
			table, err := resolveCorpus(src, conf, store)
			if err != nil {
				errs[i] = err
				return
			}
			tables[i] = table
		}(i, src)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}

	chars := make([]rune, len(conf.Chars))
	for i, c := range conf.Chars {
		r, size := utf8.DecodeRuneInString(c)
		if r == utf8.RuneError || size != len(c) {
			return nil, nil, fmt.Errorf("char %q is not a single character", c)
		}
		chars[i] = r
	}

	metricFn, err := conf.BuildMetric()
	if err != nil {
		return nil, nil, err
	}

	gen, err := generator.New(conf.Keys, chars, tables, conf.NgramSize, metricFn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build generator: %w", err)
	}

	pins, err := buildPins(conf.Pins)
	if err != nil {
		return nil, nil, err
	}

	layout, scores, err := gen.Generate(pins, buildStrategy(conf.Search))
	if err != nil {
		return nil, nil, fmt.Errorf("generation failed: %w", err)
	}

	scoreMap := make(map[string]float64, len(conf.Corpora)+1)
	scoreMap["aggregate"] = scores.Aggregate
	for i, src := range conf.Corpora {
		if i < len(scores.PerCorpus) {
			scoreMap[corpusLabel(src, i)] = scores.PerCorpus[i]
		}
	}
	return layout, scoreMap, nil
}
