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

// Package db defines the persistent n-gram cache a Store backend must
// implement, so counting a large corpus only has to happen once.
package db

// Conf configures a persistent n-gram store. Type selects the backend
// ("sqlite", "mysql", or "" for none); Path is a filesystem path for
// sqlite and ignored otherwise.
type Conf struct {
	Type           string   `json:"type"`
	Path           string   `json:"path,omitempty"`
	Name           string   `json:"name,omitempty"`
	Host           string   `json:"host,omitempty"`
	User           string   `json:"user,omitempty"`
	Password       string   `json:"password,omitempty"`
	PreconfQueries []string `json:"preconfQueries,omitempty"`
}

// Store persists per-corpus, per-N n-gram tables keyed by a tuple of
// rune codepoints joined into a string, so a corpus only has to be
// counted once across repeated generator runs.
type Store interface {
	// Open prepares the backend for use, creating its schema if it is
	// missing. With appendMode false a backend may first discard the
	// tables it already holds.
	Open(appendMode bool) error

	// SaveTable replaces the cached table for (corpusName, n) with
	// table.
	SaveTable(corpusName string, n int, table map[string]uint64) error

	// LoadTable returns the cached table for (corpusName, n), or
	// found=false if nothing has been cached for that pair yet.
	LoadTable(corpusName string, n int) (table map[string]uint64, found bool, err error)

	// Close releases the backend's resources.
	Close() error
}
