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

package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/layoutgen/v2/cnf"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func baseConfig(t *testing.T, content string) cnf.Config {
	return cnf.Config{
		Keys:      []string{"home_l", "home_r"},
		Chars:     []string{"x", "y"},
		Corpora:   []cnf.CorpusSource{{Path: writeCorpus(t, content), Format: "text"}},
		NgramSize: 2,
		Metric:    cnf.MetricConf{Name: "taxicab"},
		Positions: [][2]float64{{0, 0}, {1, 0}},
		Search:    cnf.SearchConf{Strategy: "hillclimb"},
	}
}

func TestGenerateLayout_ProducesPermutation(t *testing.T) {
	conf := baseConfig(t, "xyxyxyxy")
	layout, scores, err := GenerateLayout(&conf)
	assert.NoError(t, err)
	assert.Len(t, layout, 2)

	gotKeys := map[string]bool{}
	gotChars := map[rune]bool{}
	for _, l := range layout {
		gotKeys[l.Key] = true
		gotChars[l.Char] = true
	}
	assert.Len(t, gotKeys, 2)
	assert.Len(t, gotChars, 2)

	assert.Contains(t, scores, "aggregate")
	assert.Contains(t, scores, conf.Corpora[0].Path)
}

func TestGenerateLayout_RespectsPins(t *testing.T) {
	conf := baseConfig(t, "xyxyxyxy")
	conf.Pins = []cnf.Pin{{Key: "home_l", Char: "y"}}
	layout, _, err := GenerateLayout(&conf)
	assert.NoError(t, err)

	for _, l := range layout {
		if l.Key == "home_l" {
			assert.Equal(t, 'y', l.Char)
		}
	}
}

func TestGenerateLayout_UnknownMetric(t *testing.T) {
	conf := baseConfig(t, "xyxyxyxy")
	conf.Metric.Name = "bogus"
	_, _, err := GenerateLayout(&conf)
	assert.Error(t, err)
}
