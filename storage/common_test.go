// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/artregistry/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// layout used by the tests
type testPools struct {
	TestData  *storage.PoolHandle `prefix:"Z"`
	OtherData *storage.PoolHandle `prefix:"Y"`
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) (*storage.Database, *testPools) {
	removeFiles()
	db, err := storage.Open(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	pools := &testPools{}
	err = db.Bind(pools)
	if nil != err {
		t.Fatalf("storage bind error: %s", err)
	}
	return db, pools
}

// post test cleanup
func teardown(db *storage.Database) {
	db.Close()
	removeFiles()
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})
