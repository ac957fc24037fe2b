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

// Package report renders a generated layout and its score breakdown.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/bytedance/sonic"

	"github.com/czcorpus/layoutgen/v2/core/generator"
)

// Result bundles a generated layout with the score it reached under
// each named corpus, for display or serialization.
type Result[K comparable] struct {
	Layout []generator.Layout[K] `json:"layout"`
	Scores map[string]float64    `json:"scores"`
}

// Print writes a human-readable rendering of result to w: one
// key -> char line per assignment, followed by one score line per
// named corpus, sorted by name for a stable order across runs.
func Print[K comparable](w io.Writer, result Result[K]) error {
	for _, l := range result.Layout {
		if _, err := fmt.Fprintf(w, "%v\t-> %c\n", l.Key, l.Char); err != nil {
			return fmt.Errorf("failed to write layout: %w", err)
		}
	}
	names := make([]string, 0, len(result.Scores))
	for name := range result.Scores {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s\t%f\n", name, result.Scores[name]); err != nil {
			return fmt.Errorf("failed to write score: %w", err)
		}
	}
	return nil
}

// PrintJSON writes result to w as JSON, for machine consumption.
func PrintJSON[K comparable](w io.Writer, result Result[K]) error {
	enc := sonic.ConfigDefault.NewEncoder(w)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
