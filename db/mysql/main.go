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

// Package mysql implements db.Store on top of a shared MySQL database,
// for deployments where several generator instances should share one
// n-gram cache.
package mysql

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/layoutgen/v2/db"
)

const schema = `
CREATE TABLE IF NOT EXISTS ngram_cache (
	corpus VARCHAR(255) NOT NULL,
	n INT NOT NULL,
	symbols VARCHAR(64) NOT NULL,
	count BIGINT UNSIGNED NOT NULL,
	PRIMARY KEY (corpus, n, symbols)
)`

// Store is a db.Store backed by a MySQL database.
type Store struct {
	database *sql.DB
	conf     db.Conf
}

// NewStore opens a connection (without creating the schema yet - call
// Open for that) using conf.
func NewStore(conf db.Conf) (*Store, error) {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = conf.Host
	mconf.User = conf.User
	mconf.Passwd = conf.Password
	mconf.DBName = conf.Name
	mconf.ParseTime = true
	mconf.Loc = time.Local
	database, err := sql.Open("mysql", mconf.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open ngram cache database: %w", err)
	}
	return &Store{database: database, conf: conf}, nil
}

// Open creates the ngram_cache table if it does not exist. appendMode
// is accepted for symmetry with sqlite.Store; a shared MySQL cache is
// never wiped wholesale since other generator instances may depend on
// it.
func (s *Store) Open(appendMode bool) error {
	for _, q := range s.conf.PreconfQueries {
		if _, err := s.database.Exec(q); err != nil {
			return fmt.Errorf("failed to apply preconfiguration query %q: %w", q, err)
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

// Close closes the underlying MySQL connection.
func (s *Store) Close() error {
	if err := s.database.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing ngram cache database")
		return err
	}
	return nil
}
