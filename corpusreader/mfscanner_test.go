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

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMultiFileScanner_SingleFile(t *testing.T) {
	path := writeTempFile(t, "abc")
	scanner, err := NewMultiFileScanner(path)
	assert.NoError(t, err)
	defer scanner.Close()

	var got []rune
	for scanner.Next() {
		got = append(got, scanner.Value())
	}
	assert.NoError(t, scanner.Err())
	assert.Equal(t, []rune("abc"), got)
}

func TestMultiFileScanner_ConcatenatesFiles(t *testing.T) {
	path1 := writeTempFile(t, "ab")
	dir2 := t.TempDir()
	path2 := filepath.Join(dir2, "corpus2.txt")
	assert.NoError(t, os.WriteFile(path2, []byte("cd"), 0644))

	scanner, err := NewMultiFileScanner(path1, path2)
	assert.NoError(t, err)
	defer scanner.Close()

	var got []rune
	for scanner.Next() {
		got = append(got, scanner.Value())
	}
	assert.Equal(t, []rune("abcd"), got)
}

func TestMultiFileScanner_NoPaths(t *testing.T) {
	_, err := NewMultiFileScanner()
	assert.Error(t, err)
}

func TestReadPlainText(t *testing.T) {
	path := writeTempFile(t, "hello")
	ch, err := ReadPlainText(path)
	assert.NoError(t, err)

	var got []rune
	for r := range ch {
		got = append(got, r)
	}
	assert.Equal(t, []rune("hello"), got)
}
