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

// Package corpusreader turns raw corpus files (plain text or tagged
// vertical) into a rune channel core/ngram.Data can be fed from.
package corpusreader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// MultiFileScanner reads through multiple text files sequentially as
// one continuous rune sequence.
type MultiFileScanner struct {
	filePaths    []string
	currentIndex int
	currentFile  *os.File
	reader       *bufio.Reader
	current      rune
	err          error
}

// NewMultiFileScanner creates a scanner concatenating filePaths in
// order.
func NewMultiFileScanner(filePaths ...string) (*MultiFileScanner, error) {
	if len(filePaths) == 0 {
		return nil, fmt.Errorf("at least one file path required")
	}
	mfs := &MultiFileScanner{
		filePaths:    filePaths,
		currentIndex: -1,
	}
	if !mfs.openNextFile() {
		return nil, mfs.err
	}
	return mfs, nil
}

func (mfs *MultiFileScanner) openNextFile() bool {
	if mfs.currentFile != nil {
		mfs.currentFile.Close()
		mfs.currentFile = nil
		mfs.reader = nil
	}
	mfs.currentIndex++
	if mfs.currentIndex >= len(mfs.filePaths) {
		return false
	}
	file, err := os.Open(mfs.filePaths[mfs.currentIndex])
	if err != nil {
		mfs.err = err
		return false
	}
	mfs.currentFile = file
	mfs.reader = bufio.NewReader(file)
	return true
}

// Next advances to the next rune, returning false when every file has
// been exhausted or on error.
func (mfs *MultiFileScanner) Next() bool {
	if mfs.reader == nil {
		return false
	}
	r, _, err := mfs.reader.ReadRune()
	if err == nil {
		mfs.current = r
		return true
	}
	if !errors.Is(err, io.EOF) {
		mfs.err = err
		return false
	}
	return mfs.openNextFile() && mfs.Next()
}

// Value returns the rune Next most recently produced.
func (mfs *MultiFileScanner) Value() rune {
	return mfs.current
}

// Err returns the first error encountered while scanning.
func (mfs *MultiFileScanner) Err() error {
	return mfs.err
}

// Close closes any open file handle.
func (mfs *MultiFileScanner) Close() error {
	if mfs.currentFile != nil {
		err := mfs.currentFile.Close()
		mfs.currentFile = nil
		mfs.reader = nil
		return err
	}
	return nil
}

// ReadPlainText reads every rune of the files at paths, in order, into
// a channel, closing it once every file has been fully read.
func ReadPlainText(paths ...string) (<-chan rune, error) {
	scanner, err := NewMultiFileScanner(paths...)
	if err != nil {
		return nil, err
	}
	out := make(chan rune)
	go func() {
		defer close(out)
		defer scanner.Close()
		for scanner.Next() {
			out <- scanner.Value()
		}
	}()
	return out, nil
}
