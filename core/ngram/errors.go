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

import "fmt"

// ErrInputTooShort is returned by Add when a sequence has fewer symbols
// than the configured window length.
type ErrInputTooShort struct {
	Got  int
	Want int
}

func (e *ErrInputTooShort) Error() string {
	return fmt.Sprintf("ngram: input has %d symbols, need at least %d", e.Got, e.Want)
}

// ErrEmptyExpansion is returned by Expand when the supplied function
// maps some symbol to zero output symbols.
type ErrEmptyExpansion struct {
	Symbol Symbol
}

func (e *ErrEmptyExpansion) Error() string {
	return fmt.Sprintf("ngram: expansion of %q produced no symbols", rune(e.Symbol))
}
