// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/artregistry/fault"
	"github.com/bitmark-inc/artregistry/storage"
)

func openTestMemory(t *testing.T) (*storage.Database, *testPools) {
	db, err := storage.OpenMemory()
	assert.Nil(t, err, "open")
	pools := &testPools{}
	assert.Nil(t, db.Bind(pools), "bind")
	return db, pools
}

func TestTransactionReadsOwnWrites(t *testing.T) {
	db, pools := openTestMemory(t)
	defer db.Close()

	pools.TestData.Put([]byte("existing"), []byte("old"))

	trx := db.NewTransaction()
	trx.Put(pools.TestData, []byte("new"), []byte("value"))
	trx.PutN(pools.OtherData, []byte("count"), 7)
	trx.Delete(pools.TestData, []byte("existing"))

	assert.Equal(t, []byte("value"), trx.Get(pools.TestData, []byte("new")))
	assert.False(t, trx.Has(pools.TestData, []byte("existing")), "deleted key visible in transaction")
	n, found := trx.GetN(pools.OtherData, []byte("count"))
	assert.True(t, found, "pending counter")
	assert.Equal(t, uint64(7), n)

	// nothing visible outside until commit
	assert.Nil(t, pools.TestData.Get([]byte("new")), "uncommitted write visible")
	assert.True(t, pools.TestData.Has([]byte("existing")), "uncommitted delete visible")

	assert.Nil(t, trx.Commit(), "commit")
	assert.Equal(t, fault.ErrTransactionDone, trx.Commit(), "second commit")

	assert.Equal(t, []byte("value"), pools.TestData.Get([]byte("new")))
	assert.False(t, pools.TestData.Has([]byte("existing")), "delete not applied")
	n, found = pools.OtherData.GetN([]byte("count"))
	assert.True(t, found, "committed counter")
	assert.Equal(t, uint64(7), n)
}

func TestTransactionAbort(t *testing.T) {
	db, pools := openTestMemory(t)
	defer db.Close()

	trx := db.NewTransaction()
	trx.Put(pools.TestData, []byte("key"), []byte("value"))
	trx.Abort()

	assert.Equal(t, fault.ErrTransactionDone, trx.Commit(), "commit after abort")
	assert.False(t, pools.TestData.Has([]byte("key")), "aborted write applied")
}

func TestCommitAfterClose(t *testing.T) {
	db, pools := openTestMemory(t)

	trx := db.NewTransaction()
	trx.Put(pools.TestData, []byte("key"), []byte("value"))
	db.Close()

	assert.Equal(t, fault.ErrNotInitialised, trx.Commit())
	assert.Equal(t, fault.ErrNotInitialised, db.Bind(&testPools{}))
}
