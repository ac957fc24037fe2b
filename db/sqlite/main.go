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

// Package sqlite implements db.Store on top of a local sqlite3 file.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3" // load the driver

	"github.com/czcorpus/layoutgen/v2/fs"
)

const schema = `
CREATE TABLE IF NOT EXISTS ngram_cache (
	corpus TEXT NOT NULL,
	n INTEGER NOT NULL,
	symbols TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY (corpus, n, symbols)
)`

// Store is a db.Store backed by a sqlite3 file.
type Store struct {
	Path     string
	database *sql.DB
}

// Open connects to the sqlite file at s.Path, creating the schema if
// it does not exist yet. If appendMode is false and the file already
// existed, the cache for every corpus is wiped.
func (s *Store) Open(appendMode bool) error {
	existed := fs.IsFile(s.Path)
	database, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return fmt.Errorf("failed to open ngram cache %s: %w", s.Path, err)
	}
	s.database = database
	if !appendMode && existed {
		log.Warn().Str("path", s.Path).Msg("ngram cache already exists, existing data will be deleted")
		if _, err := s.database.Exec("DROP TABLE IF EXISTS ngram_cache"); err != nil {
			return fmt.Errorf("failed to reset ngram cache: %w", err)
		}
	}
	if _, err := s.database.Exec(schema); err != nil {
		return fmt.Errorf("failed to create ngram cache schema: %w", err)
	}
	return nil
}

// SaveTable replaces the cached table for (corpusName, n) with table.
func (s *Store) SaveTable(corpusName string, n int, table map[string]uint64) error {
	tx, err := s.database.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin ngram cache write: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM ngram_cache WHERE corpus = ? AND n = ?", corpusName, n); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear previous ngram cache entry: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO ngram_cache (corpus, n, symbols, count) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare ngram cache insert: %w", err)
	}
	for symbols, count := range table {
		if _, err := stmt.Exec(corpusName, n, symbols, count); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to write ngram cache row: %w", err)
		}
	}
	return tx.Commit()
}

// LoadTable returns the cached table for (corpusName, n).
func (s *Store) LoadTable(corpusName string, n int) (map[string]uint64, bool, error) {
	rows, err := s.database.Query(
		"SELECT symbols, count FROM ngram_cache WHERE corpus = ? AND n = ?", corpusName, n)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query ngram cache: %w", err)
	}
	defer rows.Close()
	table := make(map[string]uint64)
	for rows.Next() {
		var symbols string
		var count uint64
		if err := rows.Scan(&symbols, &count); err != nil {
			return nil, false, fmt.Errorf("failed to read ngram cache row: %w", err)
		}
		table[symbols] = count
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to iterate ngram cache rows: %w", err)
	}
	return table, len(table) > 0, nil
}

// Close closes the underlying sqlite connection.
func (s *Store) Close() error {
	if s.database == nil {
		return nil
	}
	return s.database.Close()
}
