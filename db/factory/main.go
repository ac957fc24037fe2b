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

// Package factory dispatches a db.Conf to the backend it names.
package factory

import (
	"fmt"

	"github.com/czcorpus/layoutgen/v2/db"
	"github.com/czcorpus/layoutgen/v2/db/mysql"
	"github.com/czcorpus/layoutgen/v2/db/sqlite"
)

// NullStore is returned by NewStore when conf names no backend. Every
// method fails, except Close, so a caller that never configured a
// cache gets a clear error the first time it actually tries to use
// one instead of a nil-pointer panic.
type NullStore struct{}

func (NullStore) Open(appendMode bool) error {
	return fmt.Errorf("no n-gram cache backend configured")
}

func (NullStore) SaveTable(corpusName string, n int, table map[string]uint64) error {
	return fmt.Errorf("no n-gram cache backend configured")
}

func (NullStore) LoadTable(corpusName string, n int) (map[string]uint64, bool, error) {
	return nil, false, fmt.Errorf("no n-gram cache backend configured")
}

func (NullStore) Close() error {
	return nil
}

// NewStore builds the db.Store conf.Type names ("sqlite" or "mysql"),
// or a NullStore if conf.Type is empty or unrecognized.
func NewStore(conf db.Conf) (db.Store, error) {
	switch conf.Type {
	case "sqlite":
		return &sqlite.Store{Path: conf.Path}, nil
	case "mysql":
		return mysql.NewStore(conf)
	default:
		return NullStore{}, nil
	}
}
