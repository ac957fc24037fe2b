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

package corpusreader

import (
	"fmt"

	"github.com/tomachalek/vertigo/v5"
)

// vertTokenReader implements vertigo.LineProcessor, feeding the word
// (or, for column > 0, a positional attribute) of each token to out as
// a rune sequence.
type vertTokenReader struct {
	column int
	out    chan<- rune
	err    error
}

func (r *vertTokenReader) word(tk *vertigo.Token) string {
	if r.column <= 0 {
		return tk.Word
	}
	if r.column-1 < len(tk.Attrs) {
		return tk.Attrs[r.column-1]
	}
	return ""
}

func (r *vertTokenReader) ProcToken(tk *vertigo.Token, line int, err error) error {
	if err != nil {
		return err
	}
	for _, c := range r.word(tk) {
		r.out <- c
	}
	return nil
}

func (r *vertTokenReader) ProcStruct(st *vertigo.Structure, line int, err error) error {
	return err
}

func (r *vertTokenReader) ProcStructClose(st *vertigo.StructureClose, line int, err error) error {
	return err
}

// ReadVertical reads the word (column == 0) or a positional attribute
// (column >= 1, 1-based as in vertigo.Token.Attrs) of every token in
// the vertical file at path into a channel, closing it once the file
// has been fully parsed.
func ReadVertical(path string, column int) (<-chan rune, error) {
	out := make(chan rune)
	reader := &vertTokenReader{column: column, out: out}
	go func() {
		defer close(out)
		conf := &vertigo.ParserConf{
			InputFilePath:         path,
			StructAttrAccumulator: "nil",
			Encoding:              "utf-8",
		}
		if err := vertigo.ParseVerticalFile(conf, reader); err != nil {
			reader.err = fmt.Errorf("failed to parse vertical file %s: %w", path, err)
		}
	}()
	return out, nil
}
