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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempVert(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.vert")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadVertical_Word(t *testing.T) {
	path := writeTempVert(t, "<doc id=\"1\">\ndog\tNN\ncat\tNN\n</doc>\n")

	ch, err := ReadVertical(path, 0)
	assert.NoError(t, err)

	var got []rune
	for r := range ch {
		got = append(got, r)
	}
	assert.Equal(t, []rune("dogcat"), got)
}

func TestReadVertical_Attribute(t *testing.T) {
	path := writeTempVert(t, "<doc id=\"1\">\ndog\tNN\ncat\tNN\n</doc>\n")

	ch, err := ReadVertical(path, 1)
	assert.NoError(t, err)

	var got []rune
	for r := range ch {
		got = append(got, r)
	}
	assert.Equal(t, []rune("NNNN"), got)
}
