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

//go:build mysql_integration

package mysql

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czcorpus/layoutgen/v2/db"
)

// testConf reads connection details for a real MySQL server from the
// environment, the way a CI job running this build-tagged suite would
// provide them; it skips the test outright when they are absent.
func testConf(t *testing.T) db.Conf {
	t.Helper()
	host := os.Getenv("LAYOUTGEN_MYSQL_TEST_HOST")
	if host == "" {
		t.Skip("LAYOUTGEN_MYSQL_TEST_HOST not set, skipping mysql integration test")
	}
	return db.Conf{
		Type:     "mysql",
		Host:     host,
		User:     os.Getenv("LAYOUTGEN_MYSQL_TEST_USER"),
		Password: os.Getenv("LAYOUTGEN_MYSQL_TEST_PASSWORD"),
		Name:     os.Getenv("LAYOUTGEN_MYSQL_TEST_DBNAME"),
	}
}

func TestStore_SaveAndLoadTableRoundTrip(t *testing.T) {
	store, err := NewStore(testConf(t))
	require.NoError(t, err)
	require.NoError(t, store.Open(true))
	defer store.Close()

	table := map[string]uint64{"ab": 10, "bc": 5}
	assert.NoError(t, store.SaveTable("mycorpus_roundtrip", 2, table))

	got, found, err := store.LoadTable("mycorpus_roundtrip", 2)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, table, got)

	_, found, err = store.LoadTable("mycorpus_roundtrip", 3)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestStore_SaveTableReplacesPrevious(t *testing.T) {
	store, err := NewStore(testConf(t))
	require.NoError(t, err)
	require.NoError(t, store.Open(true))
	defer store.Close()

	assert.NoError(t, store.SaveTable("mycorpus_replace", 2, map[string]uint64{"ab": 1}))
	assert.NoError(t, store.SaveTable("mycorpus_replace", 2, map[string]uint64{"cd": 2}))

	got, found, err := store.LoadTable("mycorpus_replace", 2)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, map[string]uint64{"cd": 2}, got)
}
