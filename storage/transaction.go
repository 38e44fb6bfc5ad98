// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/artregistry/fault"
)

// Transaction - a set of writes applied atomically on Commit
//
// reads through the transaction see its own pending writes
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

// TransactionImpl - a leveldb batch with a read cache of its writes
type TransactionImpl struct {
	sync.Mutex
	database *Database
	batch    *leveldb.Batch
	cache    Cache
	done     bool
}

// NewTransaction - begin a batch of writes
func (d *Database) NewTransaction() Transaction {
	return &TransactionImpl{
		database: d,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
	}
}

func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()
	prefixed := handle.prefixKey(key)
	t.cache.Set(dbPut, string(prefixed), value)
	t.batch.Put(prefixed, value)
}

func (t *TransactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()
	prefixed := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(prefixed), nil)
	t.batch.Delete(prefixed)
}

func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	t.Lock()
	value, deleted, found := t.cache.Get(string(handle.prefixKey(key)))
	t.Unlock()
	if deleted {
		return nil
	}
	if found {
		return value
	}
	return handle.Get(key)
}

func (t *TransactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return nil != t.Get(handle, key)
}

// Commit - write the batch; a transaction can only be committed once
func (t *TransactionImpl) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return fault.ErrTransactionDone
	}
	t.done = true
	defer t.cache.Clear()

	if 0 == t.batch.Len() {
		return nil
	}

	t.database.RLock()
	defer t.database.RUnlock()
	if nil == t.database.db {
		return fault.ErrNotInitialised
	}
	return t.database.db.Write(t.batch, nil)
}

// Abort - discard every pending write
func (t *TransactionImpl) Abort() {
	t.Lock()
	defer t.Unlock()

	t.done = true
	t.batch.Reset()
	t.cache.Clear()
}
