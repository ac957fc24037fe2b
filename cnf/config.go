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

package cnf

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/layoutgen/v2/db"
)

// corpusPath wraps a corpus source path so duplicate configured paths
// can be detected with collections.BinTree rather than a hand-rolled
// set.
type corpusPath string

func (p corpusPath) Compare(other collections.Comparable) int {
	o, ok := other.(corpusPath)
	if !ok {
		return -1
	}
	return strings.Compare(string(p), string(o))
}

// CorpusSource names one corpus to count n-grams from. Either Path is
// set (Format selects how to read it) or Cache is set, pointing at an
// ngramio-format file holding an already-computed table.
type CorpusSource struct {
	Path   string  `json:"path,omitempty"`
	Format string  `json:"format,omitempty"` // "text" or "vertical"
	Column int     `json:"column,omitempty"` // word column, vertical only
	Cache  string  `json:"cache,omitempty"`
	Weight float64 `json:"weight,omitempty"`

	// Legacy value

	// WordColumn
	//
	// Deprecated: please use Column instead.
	WordColumn int `json:"wordColumn,omitempty"`
}

func (cs *CorpusSource) upgradeLegacy() {
	if cs.WordColumn != 0 && cs.Column == 0 {
		log.Warn().Msg("upgrading legacy corpus source configuration")
		cs.Column = cs.WordColumn
	}
}

// MetricConf selects a built-in cost metric and its parameters.
type MetricConf struct {
	Name   string             `json:"name"`
	Params map[string]float64 `json:"params,omitempty"`
}

// Pin fixes one key to one character ahead of the search.
type Pin struct {
	Key  string `json:"key"`
	Char string `json:"char"`
}

// SearchConf configures the follow-up search run after the mandatory
// hill climb.
type SearchConf struct {
	Strategy   string  `json:"strategy"` // "hillclimb", "exhaustive" or "anneal"
	Resistance float64 `json:"resistance,omitempty"`
	Seed       int64   `json:"seed,omitempty"`
}

// Expansion declares a character-expansion rule applied through
// core/ngram's Expand, e.g. rewriting an uppercase letter into a
// shift key followed by its lowercase form.
type Expansion struct {
	From string   `json:"from"`
	To   []string `json:"to"`
}

// Config is the top-level JSON configuration for a generation run.
type Config struct {
	Keys  []string `json:"keys"`
	Chars []string `json:"chars"`

	Corpora    []CorpusSource `json:"corpora"`
	NgramSize  int            `json:"ngramSize"`
	Metric     MetricConf     `json:"metric"`
	Pins       []Pin          `json:"pins"`
	Search     SearchConf     `json:"search"`
	Expansions []Expansion    `json:"expansions,omitempty"`

	// Positions gives each key in Keys (same index, same order) its
	// physical (x, y) coordinate, required by the "taxicab" and
	// "euclidean" metrics.
	Positions [][2]float64 `json:"positions,omitempty"`

	// Fingers gives each key in Keys (same index, same order) the
	// finger assigned to strike it, required by the
	// "sameFingerPenalty" metric.
	Fingers []int `json:"fingers,omitempty"`

	DB db.Conf `json:"db"`

	Verbosity int `json:"verbosity"`
}

func (c *Config) upgradeLegacy() {
	for i := range c.Corpora {
		c.Corpora[i].upgradeLegacy()
	}
}

// Validate checks the parts of Config that cannot simply default to
// zero values.
func (c *Config) Validate() error {
	if len(c.Keys) == 0 {
		return fmt.Errorf("no keys configured")
	}
	if len(c.Chars) == 0 {
		return fmt.Errorf("no chars configured")
	}
	if len(c.Corpora) == 0 {
		return fmt.Errorf("no corpora configured")
	}
	if c.NgramSize < 1 {
		return fmt.Errorf("ngramSize must be >= 1, got %d", c.NgramSize)
	}
	seen := new(collections.BinTree[corpusPath])
	seen.UniqValues = true
	var withPath int
	for _, src := range c.Corpora {
		if src.Path == "" && src.Cache == "" {
			return fmt.Errorf("corpus source must set either path or cache")
		}
		if src.Path != "" {
			withPath++
			seen.Add(corpusPath(src.Path))
		}
	}
	if len(seen.ToSlice()) != withPath {
		return fmt.Errorf("corpora configured with duplicate paths")
	}
	return nil
}

// LoadConf reads and validates the configuration at confPath.
func LoadConf(confPath string) (*Config, error) {
	rawData, err := os.ReadFile(confPath)
	if err != nil {
		return nil, err
	}
	var conf Config
	if err := sonic.Unmarshal(rawData, &conf); err != nil {
		return nil, err
	}
	conf.upgradeLegacy()
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &conf, nil
}
